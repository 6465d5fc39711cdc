package testutil

// ReferenceDate is the anchor used by boundary fixtures. With the default
// 18..84 window it accepts birth dates 1934-06-27 through 2000-06-27.
const ReferenceDate = "2018-06-27"

// BirthDate is a raw date of birth as a form would submit it, month 1-based.
type BirthDate struct {
	Name     string
	Day      string
	Month    string
	Year     string
	Eligible bool
}

// BoundaryBirthDates lists the edges of the default window at ReferenceDate.
var BoundaryBirthDates = []BirthDate{
	{Name: "turns 18 today", Day: "27", Month: "6", Year: "2000", Eligible: true},
	{Name: "turns 18 tomorrow", Day: "28", Month: "6", Year: "2000", Eligible: false},
	{Name: "18 next month", Day: "27", Month: "7", Year: "2000", Eligible: false},
	{Name: "turns 85 tomorrow", Day: "27", Month: "6", Year: "1934", Eligible: true},
	{Name: "turned 85 yesterday", Day: "26", Month: "6", Year: "1934", Eligible: false},
	{Name: "84 a month ago", Day: "27", Month: "5", Year: "1934", Eligible: false},
	{Name: "leap day in leap year", Day: "29", Month: "2", Year: "1996", Eligible: true},
	{Name: "leap day in common year", Day: "29", Month: "2", Year: "1995", Eligible: false},
	{Name: "zero padded", Day: "07", Month: "06", Year: "1990", Eligible: true},
	{Name: "trailing characters", Day: "7abc", Month: "6x", Year: "1990y", Eligible: true},
	{Name: "unparseable day", Day: "abc", Month: "6", Year: "1990", Eligible: false},
	{Name: "month 13 rolls into next year", Day: "1", Month: "13", Year: "1990", Eligible: true},
}
