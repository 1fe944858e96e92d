package availability

import (
	"fmt"
	"slices"
	"time"

	"github.com/BruksfildServices01/barberia-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

// ===============================
// Inputs
// ===============================

// Windows returns the working windows of the active schedule entries that
// fall on day, in the order they are stored.
func Windows(schedules []models.WeeklySchedule, day Weekday) ([]Interval, error) {
	out := make([]Interval, 0, len(schedules))
	for _, s := range schedules {
		if !s.IsActive || Weekday(s.DayOfWeek) != day {
			continue
		}
		w, err := NewInterval(s.StartTime, s.EndTime)
		if err != nil {
			return nil, fmt.Errorf("schedule %d: %w", s.ID, err)
		}
		out = append(out, w)
	}
	return out, nil
}

// Occupied returns the intervals held by appointments that still take up
// the employee's time: active and not cancelled.
func Occupied(appointments []models.Appointment) ([]Interval, error) {
	out := make([]Interval, 0, len(appointments))
	for _, ap := range appointments {
		if !ap.IsActive || !appointment.Occupies(appointment.Status(ap.Status)) {
			continue
		}
		iv, err := NewInterval(ap.StartTime, ap.EndTime)
		if err != nil {
			return nil, fmt.Errorf("appointment %d: %w", ap.ID, err)
		}
		out = append(out, iv)
	}
	return out, nil
}

// ===============================
// Classification
// ===============================

func booked(occupied []Interval, at Clock) bool {
	for _, iv := range occupied {
		if iv.Contains(at) {
			return true
		}
	}
	return false
}

// Classify lays the slot grid over every window and marks each slot.
// Overlapping windows never produce the same start twice.
func Classify(windows, occupied []Interval, step time.Duration) (DayStatus, []TimeSlot) {
	if len(windows) == 0 {
		return DayNoSchedule, []TimeSlot{}
	}

	seen := make(map[Clock]struct{})
	starts := make([]Clock, 0)
	for _, w := range windows {
		for t := range Grid(w.Start, w.End, step) {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			starts = append(starts, t)
		}
	}
	slices.Sort(starts)

	slots := make([]TimeSlot, 0, len(starts))
	for _, t := range starts {
		state := SlotAvailable
		if booked(occupied, t) {
			state = SlotBooked
		}
		slots = append(slots, TimeSlot{Start: t, End: t.Add(step), State: state})
	}
	return DayScheduled, slots
}

// Check answers a point query without building the grid.
func Check(windows, occupied []Interval, at Clock) CheckStatus {
	covered := false
	for _, w := range windows {
		if w.Contains(at) {
			covered = true
			break
		}
	}
	if !covered {
		return CheckNoSchedule
	}
	if booked(occupied, at) {
		return CheckBooked
	}
	return CheckAvailable
}

// Fits reports whether iv lies entirely inside one of the windows.
func Fits(windows []Interval, iv Interval) bool {
	for _, w := range windows {
		if w.Covers(iv) {
			return true
		}
	}
	return false
}

// Collides reports whether iv overlaps any occupied interval.
func Collides(occupied []Interval, iv Interval) bool {
	for _, o := range occupied {
		if o.Overlaps(iv) {
			return true
		}
	}
	return false
}
