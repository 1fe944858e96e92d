package availability

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	domain "github.com/BruksfildServices01/barberia-admin/internal/domain/availability"
)

// maxParallelEmployees bounds concurrent per-employee lookups.
const maxParallelEmployees = 4

type EmployeeSlots struct {
	EmployeeID uint              `json:"employee_id"`
	Name       string            `json:"name"`
	Specialty  string            `json:"specialty"`
	Slots      []domain.TimeSlot `json:"slots"`
}

type ListEmployeesWithSlots struct {
	repo    domain.Repository
	timeout time.Duration
}

func NewListEmployeesWithSlots(
	repo domain.Repository,
	timeout time.Duration,
) *ListEmployeesWithSlots {
	return &ListEmployeesWithSlots{
		repo:    repo,
		timeout: timeout,
	}
}

// Execute resolves every active employee for date and keeps the ones that
// work that day. The result is ordered like the employee listing.
func (uc *ListEmployeesWithSlots) Execute(
	ctx context.Context,
	dateStr string,
) ([]EmployeeSlots, error) {

	date, err := ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, uc.timeout)
	defer cancel()

	employees, err := uc.repo.ListActiveEmployees(ctx)
	if err != nil {
		return nil, classify(ctx, err)
	}

	results := make([]*domain.Result, len(employees))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelEmployees)

	for i, emp := range employees {
		g.Go(func() error {
			d, err := loadBookings(gctx, uc.repo, emp.ID, date)
			if err != nil {
				return err
			}
			res, err := resolve(emp.ID, date, d)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, classify(ctx, err)
	}

	out := make([]EmployeeSlots, 0, len(employees))
	for i, emp := range employees {
		if results[i].Status == domain.DayNoSchedule {
			continue
		}
		out = append(out, EmployeeSlots{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			Specialty:  emp.Specialty,
			Slots:      results[i].Slots,
		})
	}
	return out, nil
}
