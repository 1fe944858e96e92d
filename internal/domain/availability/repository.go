package availability

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

type Repository interface {
	// -------- Employee --------
	GetEmployee(
		ctx context.Context,
		id uint,
	) (*models.Employee, error)

	ListActiveEmployees(
		ctx context.Context,
	) ([]models.Employee, error)

	// -------- Schedule --------
	GetActiveSchedules(
		ctx context.Context,
		employeeID uint,
	) ([]models.WeeklySchedule, error)

	// -------- Appointment --------
	// Returns every appointment of the day, cancelled ones included, with
	// Client preloaded. Callers filter.
	GetAppointments(
		ctx context.Context,
		employeeID uint,
		date time.Time,
	) ([]models.Appointment, error)

	// -------- Service --------
	ListActiveServices(
		ctx context.Context,
	) ([]models.Service, error)
}
