package models

import "gorm.io/gorm"

// AppointmentService is one line of work performed during an appointment.
type AppointmentService struct {
	Base

	AppointmentID uint     `gorm:"index;not null" json:"appointment_id" binding:"required"`
	ServiceID     uint     `gorm:"index;not null" json:"service_id" binding:"required"`
	Service       *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service,omitempty"`

	Quantity   int     `gorm:"not null" json:"quantity" binding:"required,min=1"`
	UnitPrice  float64 `gorm:"type:numeric(10,2)" json:"unit_price" binding:"gte=0"`
	TotalPrice float64 `gorm:"type:numeric(10,2)" json:"total_price"`

	Lifecycle
}

// BeforeSave keeps the total derived from quantity and unit price.
func (s *AppointmentService) BeforeSave(tx *gorm.DB) error {
	s.TotalPrice = float64(s.Quantity) * s.UnitPrice
	return nil
}
