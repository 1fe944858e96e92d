package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

type AuthGormRepository struct {
	db *gorm.DB
}

func NewAuthGormRepository(db *gorm.DB) *AuthGormRepository {
	return &AuthGormRepository{db: db}
}

// FindByUsername matches case-insensitively and preloads the role.
func (r *AuthGormRepository) FindByUsername(
	ctx context.Context,
	username string,
) (*models.AuthUser, error) {

	var u models.AuthUser
	if err := r.db.WithContext(ctx).
		Preload("Role").
		Where("LOWER(username) = ?", strings.ToLower(strings.TrimSpace(username))).
		First(&u).Error; err != nil {
		return nil, httperr.FromDB(err, "auth_user_not_found")
	}
	return &u, nil
}

func (r *AuthGormRepository) GetAuthUser(
	ctx context.Context,
	id uint,
) (*models.AuthUser, error) {

	var u models.AuthUser
	if err := r.db.WithContext(ctx).
		Preload("Role").
		First(&u, id).Error; err != nil {
		return nil, httperr.FromDB(err, "auth_user_not_found")
	}
	return &u, nil
}

func (r *AuthGormRepository) CreateAuthUser(
	ctx context.Context,
	u *models.AuthUser,
) error {

	u.ID = 0
	u.Activate()
	if err := r.db.WithContext(ctx).Omit("Role").Create(u).Error; err != nil {
		return httperr.FromDB(err, "auth_user_not_found")
	}
	return nil
}

// UpdateAuthUser rewrites username, role and links. Nil links are cleared.
func (r *AuthGormRepository) UpdateAuthUser(
	ctx context.Context,
	id uint,
	u *models.AuthUser,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.AuthUser{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"username":    strings.TrimSpace(u.Username),
			"role_id":     u.RoleID,
			"user_id":     u.UserID,
			"employee_id": u.EmployeeID,
		})
	if res.Error != nil {
		return httperr.FromDB(res.Error, "auth_user_not_found")
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("auth_user_not_found", "Usuario no encontrado.")
	}
	return nil
}

func (r *AuthGormRepository) UpdatePassword(
	ctx context.Context,
	id uint,
	hash string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.AuthUser{}).
		Where("id = ?", id).
		Update("password_hash", hash)
	if res.Error != nil {
		return httperr.FromDB(res.Error, "auth_user_not_found")
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("auth_user_not_found", "Usuario no encontrado.")
	}
	return nil
}

func (r *AuthGormRepository) TouchLastLogin(
	ctx context.Context,
	id uint,
	at time.Time,
) error {

	err := r.db.WithContext(ctx).
		Model(&models.AuthUser{}).
		Where("id = ?", id).
		Update("last_login", at).Error
	return httperr.FromDB(err, "auth_user_not_found")
}
