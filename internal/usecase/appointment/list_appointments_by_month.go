package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barberia-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-admin/internal/dto"
	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
)

type ListAppointmentsByMonth struct {
	repo domain.Repository
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	employeeID uint,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	if year < 2000 || month < 1 || month > 12 {
		return nil, httperr.ErrValidation("invalid_period", "Año o mes inválido.")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		employeeID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	return dto.AppointmentList(appointments), nil
}
