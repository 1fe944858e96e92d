package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barberia-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

const dateLayout = "2006-01-02"

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Employee / Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetEmployee(
	ctx context.Context,
	id uint,
) (*models.Employee, error) {

	var emp models.Employee
	if err := r.db.WithContext(ctx).First(&emp, id).Error; err != nil {
		return nil, httperr.FromDB(err, "employee_not_found")
	}
	return &emp, nil
}

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, httperr.FromDB(err, "client_not_found")
	}
	return &client, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *AppointmentGormRepository) GetActiveSchedules(
	ctx context.Context,
	employeeID uint,
) ([]models.WeeklySchedule, error) {

	var out []models.WeeklySchedule
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND is_active = ?", employeeID, true).
		Find(&out).Error; err != nil {
		return nil, httperr.FromDB(err, "schedule_not_found")
	}
	return out, nil
}

// --------------------------------------------------
// Appointment (create / reschedule)
// --------------------------------------------------

// Book serializes bookings per employee by locking the employee row for the
// length of the transaction.
func (r *AppointmentGormRepository) Book(
	ctx context.Context,
	ap *models.Appointment,
	check domain.BookFunc,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var emp models.Employee
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&emp, ap.EmployeeID).Error; err != nil {
			return httperr.FromDB(err, "employee_not_found")
		}

		var sameDay []models.Appointment
		if err := tx.
			Where(
				"employee_id = ? AND date = ? AND is_active = ? AND id <> ?",
				ap.EmployeeID,
				ap.Date.Format(dateLayout),
				true,
				ap.ID,
			).
			Find(&sameDay).Error; err != nil {
			return err
		}

		if err := check(sameDay); err != nil {
			return err
		}

		if ap.ID == 0 {
			return tx.Omit(clause.Associations).Create(ap).Error
		}
		return tx.Omit(clause.Associations).Save(ap).Error
	})

	return httperr.FromDB(err, "appointment_not_found")
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&ap).Error; err != nil {
		return nil, httperr.FromDB(err, "appointment_not_found")
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error
	return httperr.FromDB(err, "appointment_not_found")
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	employeeID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Services", "is_active = ?", true).
		Preload("Services.Service").
		Preload("Employee").
		Where(
			"is_active = ? AND date >= ? AND date < ?",
			true,
			from.Format(dateLayout),
			to.Format(dateLayout),
		)
	if employeeID != 0 {
		q = q.Where("employee_id = ?", employeeID)
	}

	var apps []models.Appointment
	if err := q.Order("date ASC, start_time ASC").Find(&apps).Error; err != nil {
		return nil, httperr.FromDB(err, "appointment_not_found")
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
