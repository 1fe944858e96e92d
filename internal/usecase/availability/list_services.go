package availability

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barberia-admin/internal/domain/availability"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

type ListServices struct {
	repo    domain.Repository
	timeout time.Duration
}

func NewListServices(repo domain.Repository, timeout time.Duration) *ListServices {
	return &ListServices{repo: repo, timeout: timeout}
}

func (uc *ListServices) Execute(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := withTimeout(ctx, uc.timeout)
	defer cancel()

	services, err := uc.repo.ListActiveServices(ctx)
	if err != nil {
		return nil, classify(ctx, err)
	}
	return services, nil
}
