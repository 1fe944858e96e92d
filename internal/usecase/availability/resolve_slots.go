package availability

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barberia-admin/internal/domain/availability"
)

// ======================================================
// INPUT
// ======================================================

type ResolveSlotsInput struct {
	EmployeeID uint
	Date       string
}

// ======================================================
// USE CASE
// ======================================================

type ResolveSlots struct {
	repo    domain.Repository
	timeout time.Duration
}

func NewResolveSlots(
	repo domain.Repository,
	timeout time.Duration,
) *ResolveSlots {
	return &ResolveSlots{
		repo:    repo,
		timeout: timeout,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ResolveSlots) Execute(
	ctx context.Context,
	in ResolveSlotsInput,
) (*domain.Result, error) {

	// --------------------------------------------------
	// 1. Input, before touching the store
	// --------------------------------------------------
	if err := parseEmployeeID(in.EmployeeID); err != nil {
		return nil, err
	}
	date, err := ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, uc.timeout)
	defer cancel()

	// --------------------------------------------------
	// 2. Employee, schedule and bookings in parallel
	// --------------------------------------------------
	d, err := loadDay(ctx, uc.repo, in.EmployeeID, date)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Grid and classification
	// --------------------------------------------------
	return resolve(in.EmployeeID, date, d)
}

func resolve(employeeID uint, date time.Time, d *day) (*domain.Result, error) {
	windows, occupied, err := d.intervals(date)
	if err != nil {
		return nil, err
	}

	status, slots := domain.Classify(windows, occupied, domain.Granularity)

	return &domain.Result{
		EmployeeID: employeeID,
		Date:       domain.FormatDate(date),
		Status:     status,
		Slots:      slots,
	}, nil
}
