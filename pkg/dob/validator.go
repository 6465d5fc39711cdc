// Package dob validates dates of birth entered as separate day, month and
// year fields against an age window anchored at a reference date.
//
// A Validator is immutable after New and safe for concurrent use. Validation
// never reads the wall clock; "today" is fixed at construction.
package dob

import (
	"fmt"
	"time"

	"agegate/pkg/domain"
	dErrors "agegate/pkg/domain-errors"
)

// ReferenceDateLayout is the accepted format of WithReferenceDate.
const ReferenceDateLayout = time.DateOnly

// Validator checks date-of-birth components against an age window.
type Validator struct {
	reference time.Time
	bounds    domain.AgeBounds

	yearMin int
	yearMax int
	dateMin time.Time // oldest accepted birth date
	dateMax time.Time // youngest accepted birth date
	years   []int
}

type config struct {
	reference string
	hasRef    bool
	bounds    domain.AgeBounds
	clock     func() time.Time
}

// Option configures a Validator.
type Option func(*config)

// WithReferenceDate anchors the age window at a "YYYY-MM-DD" date instead of today.
func WithReferenceDate(date string) Option {
	return func(c *config) {
		c.reference = date
		c.hasRef = true
	}
}

// WithAgeBounds overrides the default 18..84 window.
func WithAgeBounds(bounds domain.AgeBounds) Option {
	return func(c *config) {
		c.bounds = bounds
	}
}

// WithClock sets the source of "today" used when no reference date is given.
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// New builds a Validator. It fails with CodeInvalidConfiguration when the age
// bounds are inverted and with CodeInvalidReferenceDate when the reference
// date is not a real YYYY-MM-DD date.
func New(opts ...Option) (*Validator, error) {
	cfg := config{bounds: domain.DefaultAgeBounds, clock: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.bounds.Validate(); err != nil {
		return nil, err
	}

	var reference time.Time
	if cfg.hasRef {
		parsed, err := time.Parse(ReferenceDateLayout, cfg.reference)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInvalidReferenceDate,
				fmt.Sprintf("reference date %q must be formatted as YYYY-MM-DD", cfg.reference))
		}
		reference = parsed
	} else {
		// Use the local calendar day; the window itself is computed in UTC.
		y, m, d := cfg.clock().Date()
		reference = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	return newValidator(reference, cfg.bounds), nil
}

func newValidator(reference time.Time, bounds domain.AgeBounds) *Validator {
	year, month, day := reference.Date()
	v := &Validator{
		reference: reference,
		bounds:    bounds,
		yearMin:   year - bounds.Max,
		yearMax:   year - bounds.Min,
	}
	// time.Date normalises, so a Feb 29 reference lands on Mar 1 in a common year.
	v.dateMin = time.Date(v.yearMin, month, day, 0, 0, 0, 0, time.UTC)
	v.dateMax = time.Date(v.yearMax, month, day, 0, 0, 0, 0, time.UTC)

	v.years = make([]int, bounds.Span())
	for i := range v.years {
		v.years[i] = v.yearMin + i
	}
	return v
}

func (v *Validator) ReferenceDate() time.Time { return v.reference }
func (v *Validator) Bounds() domain.AgeBounds { return v.bounds }
func (v *Validator) YearMin() int             { return v.yearMin }
func (v *Validator) YearMax() int             { return v.yearMax }
func (v *Validator) DateMin() time.Time       { return v.dateMin }
func (v *Validator) DateMax() time.Time       { return v.dateMax }

// YearsRange returns the accepted birth years in ascending order. The slice
// is a copy and may be modified by the caller.
func (v *Validator) YearsRange() []int {
	out := make([]int, len(v.years))
	copy(out, v.years)
	return out
}

// IsValidYear accepts years in [YearMin, YearMax].
func (v *Validator) IsValidYear(year Component) bool {
	return year.within(v.yearMin, v.yearMax)
}

// IsValidDate rejects a date only when day, month and year are all out of
// range; otherwise the day is compared against the month length. A date with
// a good day and year but month 14 is therefore accepted as long as the day is
// at most 31; the age window in IsWithinAgeBounds still applies to it.
func (v *Validator) IsValidDate(day, month, year Component) bool {
	if !IsValidDayOfMonth(day) && !IsValidMonth(month) && !v.IsValidYear(year) {
		return false
	}
	if !day.valid {
		return false
	}
	return day.value <= daysInMonth(month, year)
}

// BirthDate builds the candidate instant for the components at midnight UTC.
// Out-of-range components roll over the way time.Date normalises them. It
// reports false when any component failed to parse.
func (v *Validator) BirthDate(day, month, year Component) (time.Time, bool) {
	if !day.valid || !month.valid || !year.valid {
		return time.Time{}, false
	}
	return time.Date(year.value, time.January+time.Month(month.value), day.value, 0, 0, 0, 0, time.UTC), true
}

// IsWithinAgeBounds reports whether the date passes IsValidDate and falls in
// [DateMin, DateMax], both ends inclusive. month is 0-based.
func (v *Validator) IsWithinAgeBounds(day, month, year Component) bool {
	if !v.IsValidDate(day, month, year) {
		return false
	}
	candidate, ok := v.BirthDate(day, month, year)
	if !ok {
		return false
	}
	return !candidate.Before(v.dateMin) && !candidate.After(v.dateMax)
}

// AgeAt returns the completed years of birthDate at the reference date.
func (v *Validator) AgeAt(birthDate time.Time) int {
	return domain.CompletedYears(birthDate, v.reference)
}

// ValidateUserInputYear parses and range-checks a raw year.
func (v *Validator) ValidateUserInputYear(input string) bool {
	return v.IsValidYear(ParseYear(input))
}

// ValidateUserDateOfBirth parses raw day, 1-based month and year input and
// reports whether the person is inside the age window.
func (v *Validator) ValidateUserDateOfBirth(day, month, year string) bool {
	return v.IsWithinAgeBounds(ParseDayOfMonth(day), ParseMonth(month), ParseYear(year))
}
