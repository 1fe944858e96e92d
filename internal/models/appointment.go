package models

import "time"

type Appointment struct {
	Base

	EmployeeID uint      `gorm:"index;not null" json:"employee_id"`
	Employee   *Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"employee,omitempty"`

	ClientID uint    `gorm:"index;not null" json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client,omitempty"`

	Date      time.Time `gorm:"type:date;index;not null" json:"date"`
	StartTime string    `gorm:"size:5;not null" json:"start_time"`
	EndTime   string    `gorm:"size:5;not null" json:"end_time"`

	Status string `gorm:"size:20;default:'Scheduled'" json:"status"`
	Notes  string `gorm:"size:1000" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	Services []AppointmentService `gorm:"foreignKey:AppointmentID" json:"services,omitempty"`

	Lifecycle
}
