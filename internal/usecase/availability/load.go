package availability

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	domain "github.com/BruksfildServices01/barberia-admin/internal/domain/availability"
	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

// ======================================================
// INPUT PARSING
// ======================================================

func parseEmployeeID(id uint) error {
	if id == 0 {
		return httperr.ErrValidation("invalid_employee_id", "El identificador del empleado es requerido.")
	}
	return nil
}

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, httperr.ErrValidation("invalid_date", "La fecha debe tener el formato YYYY-MM-DD.")
	}
	return d, nil
}

func parseStart(s string) (domain.Clock, error) {
	c, err := domain.ParseClock(s)
	if err != nil {
		return 0, httperr.ErrValidation("invalid_time", "La hora debe tener el formato HH:mm.")
	}
	return c, nil
}

// ======================================================
// DAY LOADING
// ======================================================

type day struct {
	employee     *models.Employee
	schedules    []models.WeeklySchedule
	appointments []models.Appointment
}

// loadDay reads the employee, the schedule and the bookings concurrently.
// Inactive employees are reported as missing.
func loadDay(
	ctx context.Context,
	repo domain.Repository,
	employeeID uint,
	date time.Time,
) (*day, error) {

	var d day
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		emp, err := repo.GetEmployee(gctx, employeeID)
		if err != nil {
			return err
		}
		if !emp.IsActive {
			return employeeNotFound()
		}
		d.employee = emp
		return nil
	})

	g.Go(func() error {
		s, err := repo.GetActiveSchedules(gctx, employeeID)
		d.schedules = s
		return err
	})

	g.Go(func() error {
		a, err := repo.GetAppointments(gctx, employeeID, date)
		d.appointments = a
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, classify(ctx, err)
	}
	return &d, nil
}

// loadBookings is loadDay without the employee lookup, for callers that
// already hold the employee row.
func loadBookings(
	ctx context.Context,
	repo domain.Repository,
	employeeID uint,
	date time.Time,
) (*day, error) {

	var d day
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s, err := repo.GetActiveSchedules(gctx, employeeID)
		d.schedules = s
		return err
	})

	g.Go(func() error {
		a, err := repo.GetAppointments(gctx, employeeID, date)
		d.appointments = a
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, classify(ctx, err)
	}
	return &d, nil
}

func (d *day) intervals(date time.Time) (windows, occupied []domain.Interval, err error) {
	windows, err = domain.Windows(d.schedules, domain.ISOWeekday(date))
	if err != nil {
		return nil, nil, err
	}
	occupied, err = domain.Occupied(d.appointments)
	if err != nil {
		return nil, nil, err
	}
	return windows, occupied, nil
}

func employeeNotFound() error {
	return httperr.ErrNotFound("employee_not_found", "Empleado no encontrado.")
}

// classify keeps typed outcomes and turns every other repository failure,
// deadlines included, into a transient error.
func classify(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return httperr.ErrTransient(ctx.Err())
	}

	var he *httperr.Error
	if errors.As(err, &he) {
		if he.Kind == httperr.KindInternal {
			return httperr.ErrTransient(err)
		}
		return err
	}
	return httperr.ErrTransient(err)
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
