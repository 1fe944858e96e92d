package availability

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barberia-admin/internal/domain/availability"
	"github.com/BruksfildServices01/barberia-admin/internal/dto"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

type ListEmployeeAppointments struct {
	repo    domain.Repository
	timeout time.Duration
}

func NewListEmployeeAppointments(
	repo domain.Repository,
	timeout time.Duration,
) *ListEmployeeAppointments {
	return &ListEmployeeAppointments{
		repo:    repo,
		timeout: timeout,
	}
}

// Execute lists the active appointments of the employee on the date,
// cancelled ones included, ordered by start time.
func (uc *ListEmployeeAppointments) Execute(
	ctx context.Context,
	employeeID uint,
	dateStr string,
) ([]dto.AppointmentListDTO, error) {

	if err := parseEmployeeID(employeeID); err != nil {
		return nil, err
	}
	date, err := ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, uc.timeout)
	defer cancel()

	apps, err := uc.repo.GetAppointments(ctx, employeeID, date)
	if err != nil {
		return nil, classify(ctx, err)
	}

	active := make([]models.Appointment, 0, len(apps))
	for _, ap := range apps {
		if ap.IsActive {
			active = append(active, ap)
		}
	}
	return dto.AppointmentList(active), nil
}
