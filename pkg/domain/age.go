package domain

import (
	"time"

	dErrors "agegate/pkg/domain-errors"
)

// AgeBounds is the inclusive window of ages, in completed years, that a
// person must fall into at the reference date.
type AgeBounds struct {
	Min int
	Max int
}

// DefaultAgeBounds accepts people who are at least 18 and at most 84.
var DefaultAgeBounds = AgeBounds{Min: 18, Max: 84}

// Validate rejects windows that cannot produce an ordered pair of boundary dates.
func (b AgeBounds) Validate() error {
	if b.Min < 0 {
		return dErrors.Newf(dErrors.CodeInvalidConfiguration, "min age must not be negative, got %d", b.Min)
	}
	if b.Max < b.Min {
		return dErrors.Newf(dErrors.CodeInvalidConfiguration, "max age %d is below min age %d", b.Max, b.Min)
	}
	return nil
}

// Span is the number of distinct birth years the window covers.
func (b AgeBounds) Span() int {
	return b.Max - b.Min + 1
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// HasReachedAge reports whether a person born on birthDate is at least
// years old at now. Uses calendar arithmetic (AddDate) so the birthday itself
// counts, and a Feb 29 birthday is reached on Mar 1 in non-leap years.
//
// Example:
//
//	birthDate := time.Date(2000, 1, 15, 0, 0, 0, 0, time.UTC)
//	now := time.Date(2018, 1, 15, 0, 0, 0, 0, time.UTC)
//	HasReachedAge(birthDate, now, 18) // true
func HasReachedAge(birthDate, now time.Time, years int) bool {
	reachedAt := birthDate.UTC().AddDate(years, 0, 0)
	return !now.UTC().Before(reachedAt)
}

// CompletedYears returns the age in whole years at now. Birth dates after
// now yield 0.
func CompletedYears(birthDate, now time.Time) int {
	birthDate, now = birthDate.UTC(), now.UTC()
	if now.Before(birthDate) {
		return 0
	}
	years := now.Year() - birthDate.Year()
	if !HasReachedAge(birthDate, now, years) {
		years--
	}
	return years
}
