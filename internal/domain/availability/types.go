package availability

import "time"

type SlotState string

const (
	SlotAvailable SlotState = "Available"
	SlotBooked    SlotState = "Booked"
)

// DayStatus tells an empty slot list apart from a fully booked day.
type DayStatus string

const (
	DayScheduled  DayStatus = "Scheduled"
	DayNoSchedule DayStatus = "NoSchedule"
)

type CheckStatus string

const (
	CheckAvailable  CheckStatus = "Available"
	CheckBooked     CheckStatus = "Booked"
	CheckNoSchedule CheckStatus = "NoSchedule"
	CheckError      CheckStatus = "Error"
)

type TimeSlot struct {
	Start Clock     `json:"start_time"`
	End   Clock     `json:"end_time"`
	State SlotState `json:"state"`
}

type Result struct {
	EmployeeID uint       `json:"employee_id"`
	Date       string     `json:"date"`
	Status     DayStatus  `json:"status"`
	Slots      []TimeSlot `json:"slots"`
}

type CheckResult struct {
	Status  CheckStatus `json:"status"`
	Message string      `json:"message"`
}

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}
