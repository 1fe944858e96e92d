package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barberia-admin/internal/domain/availability"
	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

type AvailabilityGormRepository struct {
	db *gorm.DB
}

func NewAvailabilityGormRepository(db *gorm.DB) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{db: db}
}

// --------------------------------------------------
// Employee
// --------------------------------------------------

func (r *AvailabilityGormRepository) GetEmployee(
	ctx context.Context,
	id uint,
) (*models.Employee, error) {

	var emp models.Employee
	if err := r.db.WithContext(ctx).First(&emp, id).Error; err != nil {
		return nil, httperr.FromDB(err, "employee_not_found")
	}
	return &emp, nil
}

func (r *AvailabilityGormRepository) ListActiveEmployees(
	ctx context.Context,
) ([]models.Employee, error) {

	var out []models.Employee
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC, id ASC").
		Find(&out).Error; err != nil {
		return nil, httperr.FromDB(err, "employee_not_found")
	}
	return out, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *AvailabilityGormRepository) GetActiveSchedules(
	ctx context.Context,
	employeeID uint,
) ([]models.WeeklySchedule, error) {

	var out []models.WeeklySchedule
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND is_active = ?", employeeID, true).
		Order("day_of_week ASC, start_time ASC").
		Find(&out).Error; err != nil {
		return nil, httperr.FromDB(err, "schedule_not_found")
	}
	return out, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AvailabilityGormRepository) GetAppointments(
	ctx context.Context,
	employeeID uint,
	date time.Time,
) ([]models.Appointment, error) {

	var out []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Services", "is_active = ?", true).
		Preload("Services.Service").
		Where("employee_id = ? AND date = ?", employeeID, domain.FormatDate(date)).
		Order("start_time ASC").
		Find(&out).Error; err != nil {
		return nil, httperr.FromDB(err, "appointment_not_found")
	}
	return out, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AvailabilityGormRepository) ListActiveServices(
	ctx context.Context,
) ([]models.Service, error) {

	var out []models.Service
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&out).Error; err != nil {
		return nil, httperr.FromDB(err, "service_not_found")
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*AvailabilityGormRepository)(nil)
