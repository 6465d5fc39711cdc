package dob

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Component is one parsed part of a date of birth. A Component either holds
// an integer or is invalid because the raw input carried no leading digits.
type Component struct {
	value int
	valid bool
}

// Int wraps an already-numeric component.
func Int(v int) Component {
	return Component{value: v, valid: true}
}

// Invalid is the result of parsing input with no numeric prefix.
func Invalid() Component {
	return Component{}
}

// Value returns the integer and whether the component parsed.
func (c Component) Value() (int, bool) {
	return c.value, c.valid
}

// IsValid reports whether the component holds a number. It says nothing
// about the calendar range.
func (c Component) IsValid() bool {
	return c.valid
}

func (c Component) String() string {
	if !c.valid {
		return "NaN"
	}
	return strconv.Itoa(c.value)
}

// within reports whether the component parsed and lies in [lo, hi].
func (c Component) within(lo, hi int) bool {
	return c.valid && c.value >= lo && c.value <= hi
}

// parseIntPrefix reads the base-10 integer at the start of s. Leading
// whitespace and a single sign are accepted; everything after the first
// non-digit is ignored. "007" is 7, "12abc" is 12, "abc" and "-" are invalid.
func parseIntPrefix(s string) Component {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return Invalid()
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil || n > math.MaxInt32 {
		// Out-of-range numbers can never be a day, month or year.
		return Invalid()
	}
	if negative {
		n = -n
	}
	return Int(int(n))
}

// ParseDayOfMonth parses a 1-based day of month. No range check is applied.
func ParseDayOfMonth(input string) Component {
	return parseIntPrefix(input)
}

// IsValidDayOfMonth accepts 1..31 regardless of month; per-month lengths are
// checked by IsValidDate.
func IsValidDayOfMonth(day Component) bool {
	return day.within(1, 31)
}

// ParseMonth parses a 1-based month as entered by a person and returns it
// 0-based (January is 0). Invalid input stays invalid.
func ParseMonth(input string) Component {
	m := parseIntPrefix(input)
	if !m.valid {
		return m
	}
	return Int(m.value - 1)
}

// IsValidMonth accepts 0-based months 0..11.
func IsValidMonth(month Component) bool {
	return month.within(0, 11)
}

// ParseYear parses a year without any offset or two-digit expansion.
func ParseYear(input string) Component {
	return parseIntPrefix(input)
}

// ValidateUserInputDayOfMonth parses and range-checks a raw day.
func ValidateUserInputDayOfMonth(input string) bool {
	return IsValidDayOfMonth(ParseDayOfMonth(input))
}

// ValidateUserInputMonth parses and range-checks a raw 1-based month.
func ValidateUserInputMonth(input string) bool {
	return IsValidMonth(ParseMonth(input))
}
