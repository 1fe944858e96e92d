package models

import "time"

type Client struct {
	Base

	Name   string `gorm:"size:150;not null" json:"name" binding:"required,max=150"`
	Phone  string `gorm:"size:30" json:"phone" binding:"max=30"`
	Email  string `gorm:"size:255" json:"email" binding:"omitempty,email,max=255"`
	Gender string `gorm:"size:20" json:"gender" binding:"max=20"`

	RegistrationDate *time.Time `json:"registration_date"`

	Lifecycle
}
