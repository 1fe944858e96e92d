package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barberia-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-admin/internal/dto"
	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

// Execute lists one calendar day. employeeID 0 means every employee.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	employeeID uint,
	date string,
) ([]dto.AppointmentListDTO, error) {

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date", "La fecha debe tener el formato YYYY-MM-DD.")
	}

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		employeeID,
		day,
		day.AddDate(0, 0, 1),
	)
	if err != nil {
		return nil, err
	}

	return dto.AppointmentList(appointments), nil
}
