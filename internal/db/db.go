package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barberia-admin/internal/config"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.IsProduction() {
		level = gormlogger.Error
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Employee{},
		&models.AuthUser{},
		&models.Client{},
		&models.Service{},
		&models.WeeklySchedule{},
		&models.Appointment{},
		&models.AppointmentService{},
		&models.Payment{},
		&models.Announcement{},
		&models.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Fast path for the availability reads.
	for _, stmt := range []string{
		`CREATE INDEX IF NOT EXISTS idx_appointments_employee_date ON appointments (employee_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_weekly_schedules_employee_day ON weekly_schedules (employee_id, day_of_week)`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			log.Warn("index not created", zap.String("statement", stmt), zap.Error(err))
		}
	}

	log.Info("database ready")
	return db, nil
}
