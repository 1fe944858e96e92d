package models

import "time"

type AuthUser struct {
	Base

	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	RoleID uint  `gorm:"not null" json:"role_id"`
	Role   *Role `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"role,omitempty"`

	UserID     *uint `json:"user_id"`
	EmployeeID *uint `json:"employee_id"`

	LastLogin *time.Time `json:"last_login"`

	Lifecycle
}
