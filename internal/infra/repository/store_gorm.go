package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

// Store is the soft-delete CRUD shared by every entity. PT is the pointer
// type of T so methods from models.Base resolve.
type Store[T any, PT interface {
	*T
	models.Entity
}] struct {
	db       *gorm.DB
	notFound string
	preloads []string
}

func NewStore[T any, PT interface {
	*T
	models.Entity
}](db *gorm.DB, notFoundCode string) *Store[T, PT] {
	return &Store[T, PT]{db: db, notFound: notFoundCode}
}

// WithPreload loads the named associations on every read.
func (s *Store[T, PT]) WithPreload(names ...string) *Store[T, PT] {
	s.preloads = append(s.preloads, names...)
	return s
}

func (s *Store[T, PT]) query(ctx context.Context) *gorm.DB {
	q := s.db.WithContext(ctx)
	for _, name := range s.preloads {
		q = q.Preload(name)
	}
	return q
}

func (s *Store[T, PT]) List(ctx context.Context, onlyActive bool) ([]T, error) {
	q := s.query(ctx).Order("id ASC")
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}

	var out []T
	if err := q.Find(&out).Error; err != nil {
		return nil, httperr.FromDB(err, s.notFound)
	}
	return out, nil
}

// Find lists rows matching a condition, active or not.
func (s *Store[T, PT]) Find(ctx context.Context, order string, query any, args ...any) ([]T, error) {
	var out []T
	if err := s.query(ctx).
		Where(query, args...).
		Order(order).
		Find(&out).Error; err != nil {
		return nil, httperr.FromDB(err, s.notFound)
	}
	return out, nil
}

func (s *Store[T, PT]) Get(ctx context.Context, id uint) (*T, error) {
	var out T
	if err := s.query(ctx).First(&out, id).Error; err != nil {
		return nil, httperr.FromDB(err, s.notFound)
	}
	return &out, nil
}

// Create always inserts an active row with a store-assigned id.
func (s *Store[T, PT]) Create(ctx context.Context, v PT) error {
	v.SetID(0)
	v.Activate()

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error; err != nil {
		return httperr.FromDB(err, s.notFound)
	}
	return nil
}

// Update overwrites every column except identity, creation time and the
// activity flag, which only Deactivate changes.
func (s *Store[T, PT]) Update(ctx context.Context, id uint, v PT) error {
	v.SetID(id)

	res := s.db.WithContext(ctx).
		Model(v).
		Select("*").
		Omit("id", "created_at", "is_active", clause.Associations).
		Updates(v)
	if res.Error != nil {
		return httperr.FromDB(res.Error, s.notFound)
	}
	if res.RowsAffected == 0 {
		return httperr.FromDB(gorm.ErrRecordNotFound, s.notFound)
	}
	return nil
}

// Deactivate is the only delete: rows are kept and flagged inactive.
func (s *Store[T, PT]) Deactivate(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).
		Model(PT(new(T))).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return httperr.FromDB(res.Error, s.notFound)
	}
	if res.RowsAffected == 0 {
		return httperr.FromDB(gorm.ErrRecordNotFound, s.notFound)
	}
	return nil
}
