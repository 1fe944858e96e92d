package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
	PaymentVoided  = "Voided"
)

const (
	PaymentCash     = "Cash"
	PaymentTransfer = "Transfer"
	PaymentCard     = "Card"
	PaymentOther    = "Other"
)

var (
	PaymentTypes    = []string{PaymentCash, PaymentTransfer, PaymentCard, PaymentOther}
	PaymentStatuses = []string{PaymentPaid, PaymentPending, PaymentVoided}
)

type Payment struct {
	Base

	AppointmentID uint `gorm:"index;not null" json:"appointment_id" binding:"required"`
	ClientID      uint `gorm:"index;not null" json:"client_id" binding:"required"`

	PaymentType         string  `gorm:"size:20;not null" json:"payment_type" binding:"required,oneof=Cash Transfer Card Other"`
	AuthorizationNumber string  `gorm:"size:50" json:"authorization_number" binding:"max=50"`
	TransactionNumber   string  `gorm:"size:50" json:"transaction_number" binding:"max=50"`
	TotalAmount         float64 `gorm:"type:numeric(10,2)" json:"total_amount" binding:"gte=0"`

	PaymentDate *time.Time `json:"payment_date"`
	Status      string     `gorm:"size:20" json:"status" binding:"omitempty,oneof=Paid Pending Voided"`

	Lifecycle
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.Status == "" {
		p.Status = PaymentPending
	}
	if p.PaymentDate == nil {
		now := time.Now()
		p.PaymentDate = &now
	}
	return nil
}
