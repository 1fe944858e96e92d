package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

// BookFunc inspects the employee's appointments of the day while the booking
// lock is held. Returning an error aborts the write.
type BookFunc func(sameDay []models.Appointment) error

type Repository interface {
	// -------- Employee / Client --------
	GetEmployee(
		ctx context.Context,
		id uint,
	) (*models.Employee, error)

	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	// -------- Schedule --------
	GetActiveSchedules(
		ctx context.Context,
		employeeID uint,
	) ([]models.WeeklySchedule, error)

	// -------- Appointment (create / reschedule) --------
	// Book locks the employee, loads the active appointments of ap's date
	// (excluding ap itself), runs check, then creates or saves ap in the
	// same transaction.
	Book(
		ctx context.Context,
		ap *models.Appointment,
		check BookFunc,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		employeeID uint,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)
}
