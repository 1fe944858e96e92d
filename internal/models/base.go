package models

import "time"

// Entity is implemented by every persisted record through Base.
type Entity interface {
	GetID() uint
	SetID(id uint)
	Activate()
}

type Base struct {
	ID uint `gorm:"primaryKey" json:"id"`
}

func (b Base) GetID() uint {
	return b.ID
}

func (b *Base) SetID(id uint) {
	b.ID = id
}

// Lifecycle is shared by all entities. Records are never removed: they are
// deactivated, and listings filter on IsActive.
type Lifecycle struct {
	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *Lifecycle) Activate() {
	l.IsActive = true
}
