package availability

import "time"

// Weekday uses ISO numbering: Monday = 1 ... Sunday = 7.
type Weekday int

// ISOWeekday maps a calendar date to its ISO weekday. Go's time.Sunday (0)
// becomes 7.
func ISOWeekday(date time.Time) Weekday {
	wd := date.Weekday()
	if wd == time.Sunday {
		return 7
	}
	return Weekday(wd)
}

func (w Weekday) Valid() bool {
	return w >= 1 && w <= 7
}
