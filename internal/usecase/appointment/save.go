package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/barberia-admin/internal/audit"
	domain "github.com/BruksfildServices01/barberia-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-admin/internal/domain/availability"
	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SaveAppointmentInput struct {
	EmployeeID uint   `json:"employee_id" binding:"required"`
	ClientID   uint   `json:"client_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required,hhmm"`
	EndTime    string `json:"end_time" binding:"required,hhmm"`
	Notes      string `json:"notes" binding:"max=1000"`
}

type slot struct {
	date     time.Time
	interval availability.Interval
}

func (in SaveAppointmentInput) parse() (slot, error) {
	if in.EmployeeID == 0 || in.ClientID == 0 {
		return slot{}, httperr.ErrValidation("invalid_request", "Empleado y cliente son requeridos.")
	}

	date, err := time.Parse(availability.DateLayout, strings.TrimSpace(in.Date))
	if err != nil {
		return slot{}, httperr.ErrValidation("invalid_date", "La fecha debe tener el formato YYYY-MM-DD.")
	}

	start, err := availability.ParseClock(in.StartTime)
	if err != nil {
		return slot{}, httperr.ErrValidation("invalid_time", "La hora debe tener el formato HH:mm.")
	}
	end, err := availability.ParseClock(in.EndTime)
	if err != nil {
		return slot{}, httperr.ErrValidation("invalid_time", "La hora debe tener el formato HH:mm.")
	}
	if start >= end {
		return slot{}, httperr.ErrValidation("invalid_time_range", "La hora de inicio debe ser menor a la hora de fin.")
	}

	return slot{date: date, interval: availability.Interval{Start: start, End: end}}, nil
}

// ======================================================
// SHARED CHECKS
// ======================================================

// assertBookable checks the parties and the working window. The overlap
// check runs later, under the booking lock.
func assertBookable(
	ctx context.Context,
	repo domain.Repository,
	employeeID uint,
	clientID uint,
	s slot,
) error {

	emp, err := repo.GetEmployee(ctx, employeeID)
	if err != nil {
		return err
	}
	if !emp.IsActive {
		return httperr.ErrBusiness("employee_inactive")
	}

	client, err := repo.GetClient(ctx, clientID)
	if err != nil {
		return err
	}
	if !client.IsActive {
		return httperr.ErrBusiness("client_inactive")
	}

	schedules, err := repo.GetActiveSchedules(ctx, employeeID)
	if err != nil {
		return err
	}
	windows, err := availability.Windows(schedules, availability.ISOWeekday(s.date))
	if err != nil {
		return err
	}
	if !availability.Fits(windows, s.interval) {
		return httperr.ErrBusiness("outside_schedule")
	}
	return nil
}

func noOverlap(iv availability.Interval) domain.BookFunc {
	return func(sameDay []models.Appointment) error {
		occupied, err := availability.Occupied(sameDay)
		if err != nil {
			return err
		}
		if availability.Collides(occupied, iv) {
			return httperr.ErrConflict("time_conflict", "El horario ya está ocupado.")
		}
		return nil
	}
}

// ======================================================
// CREATE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	actorID *uint,
	in SaveAppointmentInput,
) (*models.Appointment, error) {

	s, err := in.parse()
	if err != nil {
		return nil, err
	}

	if err := assertBookable(ctx, uc.repo, in.EmployeeID, in.ClientID, s); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		EmployeeID: in.EmployeeID,
		ClientID:   in.ClientID,
		Date:       s.date,
		StartTime:  s.interval.Start.String(),
		EndTime:    s.interval.End.String(),
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}
	ap.Activate()

	if err := uc.repo.Book(ctx, ap, noOverlap(s.interval)); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// ======================================================
// UPDATE (reschedule / reassign)
// ======================================================

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	actorID *uint,
	id uint,
	in SaveAppointmentInput,
) (*models.Appointment, error) {

	s, err := in.parse()
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	if err := assertBookable(ctx, uc.repo, in.EmployeeID, in.ClientID, s); err != nil {
		return nil, err
	}

	ap.EmployeeID = in.EmployeeID
	ap.ClientID = in.ClientID
	ap.Employee = nil
	ap.Client = nil
	ap.Date = s.date
	ap.StartTime = s.interval.Start.String()
	ap.EndTime = s.interval.End.String()
	ap.Notes = in.Notes

	if err := uc.repo.Book(ctx, ap, noOverlap(s.interval)); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
