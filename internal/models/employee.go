package models

type Employee struct {
	Base

	Name      string `gorm:"size:150;not null" json:"name" binding:"required,max=150"`
	Email     string `gorm:"size:255" json:"email" binding:"omitempty,email,max=255"`
	Phone     string `gorm:"size:30" json:"phone" binding:"max=30"`
	CUI       string `gorm:"size:30" json:"cui" binding:"max=30"`
	Specialty string `gorm:"size:120" json:"specialty" binding:"max=120"`

	Lifecycle
}
