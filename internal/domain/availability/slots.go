package availability

import (
	"iter"
	"time"
)

// Granularity is the fixed length of a bookable slot.
const Granularity = 30 * time.Minute

// Grid yields slot start times from start, step apart, for every slot that
// fits entirely before end. A trailing partial slot is dropped.
// The sequence can be ranged over any number of times.
func Grid(start, end Clock, step time.Duration) iter.Seq[Clock] {
	return func(yield func(Clock) bool) {
		if step < time.Minute {
			return
		}
		for t := start; t.Add(step) <= end; t = t.Add(step) {
			if !yield(t) {
				return
			}
		}
	}
}
