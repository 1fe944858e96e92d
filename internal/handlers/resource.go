package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
	"github.com/BruksfildServices01/barberia-admin/internal/httpresp"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

// Store is the soft-delete persistence a Resource needs.
type Store[T any, PT interface {
	*T
	models.Entity
}] interface {
	List(ctx context.Context, onlyActive bool) ([]T, error)
	Find(ctx context.Context, order string, query any, args ...any) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, v PT) error
	Update(ctx context.Context, id uint, v PT) error
	Deactivate(ctx context.Context, id uint) error
}

// Resource serves the five CRUD routes of one entity. Every route follows
// the same path: validate, one store call, envelope.
type Resource[T any, PT interface {
	*T
	models.Entity
}] struct {
	store    Store[T, PT]
	labels   Labels
	validate func(PT) error
}

func NewResource[T any, PT interface {
	*T
	models.Entity
}](store Store[T, PT], labels Labels, validate func(PT) error) *Resource[T, PT] {
	return &Resource[T, PT]{store: store, labels: labels, validate: validate}
}

func (r *Resource[T, PT]) Register(g *gin.RouterGroup) {
	g.GET("", r.List)
	g.GET("/:id", r.Get)
	g.POST("", r.Create)
	g.PUT("/:id", r.Update)
	g.DELETE("/:id", r.Delete)
}

func (r *Resource[T, PT]) List(c *gin.Context) {
	items, err := r.store.List(c.Request.Context(), onlyActive(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, r.labels.listed(), items)
}

func (r *Resource[T, PT]) Get(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	item, err := r.store.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, r.labels.fetched(), item)
}

func (r *Resource[T, PT]) decode(c *gin.Context) (PT, error) {
	v := PT(new(T))
	if err := bindJSON(c, v); err != nil {
		return nil, err
	}
	if r.validate != nil {
		if err := r.validate(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (r *Resource[T, PT]) Create(c *gin.Context) {
	v, err := r.decode(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := r.store.Create(c.Request.Context(), v); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, r.labels.created(), v)
}

func (r *Resource[T, PT]) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	v, err := r.decode(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := r.store.Update(ctx, id, v); err != nil {
		httperr.Respond(c, err)
		return
	}

	fresh, err := r.store.Get(ctx, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, r.labels.updated(), fresh)
}

func (r *Resource[T, PT]) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := r.store.Deactivate(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, r.labels.deactivated(), gin.H{"id": id})
}

// listWhere answers a filtered listing with the resource's labels.
func (r *Resource[T, PT]) listWhere(c *gin.Context, order string, query any, args ...any) {
	items, err := r.store.Find(c.Request.Context(), order, query, args...)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, r.labels.listed(), items)
}

// listFiltered narrows the listing by f plus ?only_active=. Without any
// condition it falls back to List.
func (r *Resource[T, PT]) listFiltered(c *gin.Context, order string, f *filter) {
	if onlyActive(c) {
		f.eq("is_active", true)
	}
	if len(f.conds) == 0 {
		r.List(c)
		return
	}
	r.listWhere(c, order, f.where(), f.args...)
}
