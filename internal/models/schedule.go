package models

// WeeklySchedule is a recurring working window of an employee.
// DayOfWeek follows ISO numbering: 1 = Monday ... 7 = Sunday.
type WeeklySchedule struct {
	Base

	EmployeeID uint      `gorm:"index;not null" json:"employee_id" binding:"required"`
	Employee   *Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"employee,omitempty"`

	DayOfWeek int    `gorm:"not null" json:"day_of_week" binding:"required,min=1,max=7"`
	StartTime string `gorm:"size:5;not null" json:"start_time" binding:"required,hhmm"`
	EndTime   string `gorm:"size:5;not null" json:"end_time" binding:"required,hhmm"`

	Lifecycle
}
