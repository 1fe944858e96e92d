package models

import "github.com/BruksfildServices01/barberia-admin/internal/domain/access"

type Role struct {
	Base

	RoleName   string     `gorm:"size:50;uniqueIndex;not null" json:"role_name" binding:"required,max=50"`
	MenuAccess access.Set `gorm:"type:text" json:"menu_access"`

	Lifecycle
}
