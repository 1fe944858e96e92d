package availability

import (
	"fmt"
	"strings"
	"time"
)

// Clock is a time of day with minute precision, counted from midnight.
type Clock int

const (
	layoutHM  = "15:04"
	layoutHMS = "15:04:05"
)

// ParseClock accepts "HH:mm" and "HH:mm:ss"; seconds are truncated.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)

	t, err := time.Parse(layoutHM, s)
	if err != nil {
		t, err = time.Parse(layoutHMS, s)
		if err != nil {
			return 0, fmt.Errorf("invalid time of day %q", s)
		}
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

func (c Clock) Add(d time.Duration) Clock {
	return c + Clock(d/time.Minute)
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Clock) UnmarshalText(b []byte) error {
	v, err := ParseClock(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Interval is the half-open range [Start, End).
type Interval struct {
	Start Clock
	End   Clock
}

func NewInterval(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	if s >= e {
		return Interval{}, fmt.Errorf("start %s is not before end %s", s, e)
	}
	return Interval{Start: s, End: e}, nil
}

func (i Interval) Contains(c Clock) bool {
	return i.Start <= c && c < i.End
}

// Covers reports whether other lies entirely inside i.
func (i Interval) Covers(other Interval) bool {
	return i.Start <= other.Start && other.End <= i.End
}

func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}
