package models

// User is an administrative person record; login credentials live in AuthUser.
type User struct {
	Base

	Name  string `gorm:"size:100;not null" json:"name" binding:"required,max=100"`
	Email string `gorm:"size:200;not null" json:"email" binding:"required,email,max=200"`
	Phone string `gorm:"size:50;not null" json:"phone" binding:"required,max=50"`
	Role  string `gorm:"size:50" json:"role" binding:"max=50"`

	Lifecycle
}
