package audit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Filter narrows an audit listing. Zero fields do not filter.
type Filter struct {
	Action string
	Entity string
	From   time.Time
	To     time.Time // exclusive
	Page   int
	Limit  int
}

// Normalize clamps paging to sane values.
func (f Filter) Normalize() Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > MaxLimit {
		f.Limit = DefaultLimit
	}
	return f
}

type Page struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

// Query lists audit rows, newest first.
func (l *Logger) Query(ctx context.Context, f Filter) (*Page, error) {
	f = f.Normalize()

	q := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("created_at < ?", f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, httperr.FromDB(err, "audit_not_found")
	}

	logs := []models.AuditLog{}
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, httperr.FromDB(err, "audit_not_found")
	}

	return &Page{Page: f.Page, Limit: f.Limit, Total: total, Logs: logs}, nil
}
