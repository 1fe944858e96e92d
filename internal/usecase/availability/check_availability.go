package availability

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barberia-admin/internal/domain/availability"
)

type CheckAvailabilityInput struct {
	EmployeeID uint
	Date       string
	StartTime  string
}

var checkMessages = map[domain.CheckStatus]string{
	domain.CheckAvailable:  "El horario está disponible.",
	domain.CheckBooked:     "El horario ya está reservado.",
	domain.CheckNoSchedule: "El empleado no tiene horario asignado para esa hora.",
	domain.CheckError:      "No fue posible verificar la disponibilidad.",
}

func CheckMessage(s domain.CheckStatus) string {
	return checkMessages[s]
}

type CheckAvailability struct {
	repo    domain.Repository
	timeout time.Duration
}

func NewCheckAvailability(
	repo domain.Repository,
	timeout time.Duration,
) *CheckAvailability {
	return &CheckAvailability{
		repo:    repo,
		timeout: timeout,
	}
}

// Execute answers whether one start time can be booked. It never builds the
// slot grid. Store failures come back as errors, never as a status.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	in CheckAvailabilityInput,
) (*domain.CheckResult, error) {

	if err := parseEmployeeID(in.EmployeeID); err != nil {
		return nil, err
	}
	date, err := ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	at, err := parseStart(in.StartTime)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, uc.timeout)
	defer cancel()

	d, err := loadDay(ctx, uc.repo, in.EmployeeID, date)
	if err != nil {
		return nil, err
	}

	windows, occupied, err := d.intervals(date)
	if err != nil {
		return nil, err
	}

	status := domain.Check(windows, occupied, at)
	return &domain.CheckResult{
		Status:  status,
		Message: CheckMessage(status),
	}, nil
}
