package dob

// IsLeapYear applies the Gregorian rule: every fourth year, except
// centuries, except every fourth century.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in the 0-based month of year.
// Months outside 0..11 fall through to 31.
func DaysInMonth(month, year int) int {
	switch month {
	case 1:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 3, 5, 8, 10:
		return 30
	default:
		return 31
	}
}

// daysInMonth is DaysInMonth over parsed components. An unparsed month has
// 31 days and an unparsed year is never a leap year.
func daysInMonth(month, year Component) int {
	if !month.valid {
		return 31
	}
	if !year.valid {
		return DaysInMonth(month.value, 1)
	}
	return DaysInMonth(month.value, year.value)
}
