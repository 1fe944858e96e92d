package appointment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barberia-admin/internal/audit"
	domain "github.com/BruksfildServices01/barberia-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
	"github.com/BruksfildServices01/barberia-admin/internal/timezone"
)

type TransitionAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewTransitionAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	actorID *uint,
	appointmentID uint,
	to domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Transition(ap, to, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "appointment_" + strings.ToLower(string(to)),
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"status": string(to)},
	})

	return ap, nil
}
