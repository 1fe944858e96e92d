package models

// Service is something the shop sells (haircut, beard trim...).
type Service struct {
	Base

	Name        string  `gorm:"size:120;not null" json:"name" binding:"required,max=120"`
	Description string  `gorm:"size:500" json:"description" binding:"max=500"`
	BasePrice   float64 `gorm:"type:numeric(10,2)" json:"base_price" binding:"required,gt=0"`
	DurationMin int     `json:"duration_min" binding:"required,min=1,max=1440"`

	Lifecycle
}
