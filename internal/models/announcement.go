package models

import (
	"time"

	"gorm.io/gorm"
)

type Announcement struct {
	Base

	EmployeeID uint      `gorm:"index;not null" json:"employee_id" binding:"required"`
	Employee   *Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"employee,omitempty"`

	Title         string    `gorm:"size:200;not null" json:"title" binding:"required,max=200"`
	Content       string    `gorm:"type:text" json:"content"`
	PublishedDate time.Time `json:"published_date"`

	Lifecycle
}

func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	if a.PublishedDate.IsZero() {
		a.PublishedDate = time.Now()
	}
	return nil
}
