package dto

import (
	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

type AppointmentListDTO struct {
	ID           uint   `json:"id"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
	EmployeeID   uint   `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	ClientID     uint   `json:"client_id"`
	ClientName   string `json:"client_name"`

	Services []string `json:"services"`
}

// AppointmentList flattens preloaded relations. Missing relations leave the
// names empty. Services lists the names of active service lines.
func AppointmentList(apps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		row := AppointmentListDTO{
			ID:         ap.ID,
			Date:       ap.Date.Format("2006-01-02"),
			StartTime:  ap.StartTime,
			EndTime:    ap.EndTime,
			Status:     ap.Status,
			Notes:      ap.Notes,
			EmployeeID: ap.EmployeeID,
			ClientID:   ap.ClientID,
			Services:   serviceNames(ap.Services),
		}
		if ap.Employee != nil {
			row.EmployeeName = ap.Employee.Name
		}
		if ap.Client != nil {
			row.ClientName = ap.Client.Name
		}
		out = append(out, row)
	}
	return out
}

func serviceNames(lines []models.AppointmentService) []string {
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		if !line.IsActive || line.Service == nil {
			continue
		}
		names = append(names, line.Service.Name)
	}
	return names
}
