package validation

import (
	"unicode/utf8"

	dErrors "agegate/pkg/domain-errors"
)

const (
	// MaxBodySize bounds request bodies. A date of birth payload is a few dozen bytes.
	MaxBodySize = 1024

	// MaxComponentLength is the longest raw day, month or year input accepted.
	MaxComponentLength = 32
)

// CheckStringLength rejects values longer than max characters. Characters are
// counted as runes, matching the `max` validate tag.
func CheckStringLength(fieldName, value string, max int) error {
	if n := utf8.RuneCountInString(value); n > max {
		return dErrors.Newf(dErrors.CodeValidation, "%s must be at most %d characters", fieldName, max)
	}
	return nil
}
