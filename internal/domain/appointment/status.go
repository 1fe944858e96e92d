package appointment

import "github.com/BruksfildServices01/barberia-admin/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "Scheduled"
	StatusConfirmed  Status = "Confirmed"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
	StatusNoShow     Status = "NoShow"
)

var transitions = map[Status][]Status{
	StatusScheduled:  {StatusConfirmed, StatusInProgress, StatusCancelled, StatusNoShow},
	StatusConfirmed:  {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted},
}

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Terminal statuses accept no further transition.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// Occupies reports whether an appointment in this status still holds the
// employee's time. Only a cancellation frees the slot.
func Occupies(s Status) bool {
	return s != StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanTransition validates a status change. A closed appointment reports
// appointment_closed instead of the generic invalid_state.
func CanTransition(from, to Status) error {
	if from.Terminal() {
		return httperr.ErrBusiness("appointment_closed")
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}

// CanReschedule only allows moving appointments that have not started.
func CanReschedule(current Status) error {
	if current.Terminal() {
		return httperr.ErrBusiness("appointment_closed")
	}
	if current != StatusScheduled && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
