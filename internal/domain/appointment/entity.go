package appointment

import (
	"time"

	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves ap to status to, stamping the lifecycle timestamps.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if !to.Valid() {
		return httperr.ErrValidation("invalid_status", "Estado de cita desconocido.")
	}
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}
	return nil
}
