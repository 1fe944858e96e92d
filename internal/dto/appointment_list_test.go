package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

func serviceLine(name string, active bool) models.AppointmentService {
	line := models.AppointmentService{Service: &models.Service{Name: name}}
	line.IsActive = active
	return line
}

func TestAppointmentList_FlattensRelations(t *testing.T) {
	ap := models.Appointment{
		EmployeeID: 1,
		Employee:   &models.Employee{Name: "Ana"},
		ClientID:   2,
		Client:     &models.Client{Name: "Pedro"},
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:  "09:00",
		EndTime:    "09:30",
		Status:     "Scheduled",
		Services: []models.AppointmentService{
			serviceLine("Corte", true),
			serviceLine("Afeitado", false),
			serviceLine("Barba", true),
			{ServiceID: 9},
		},
	}
	ap.ID = 7

	out := AppointmentList([]models.Appointment{ap})
	require.Len(t, out, 1)

	row := out[0]
	assert.Equal(t, "2025-03-10", row.Date)
	assert.Equal(t, "Ana", row.EmployeeName)
	assert.Equal(t, "Pedro", row.ClientName)
	assert.Equal(t, []string{"Corte", "Barba"}, row.Services)
}

func TestAppointmentList_ServicesNeverNull(t *testing.T) {
	out := AppointmentList([]models.Appointment{{StartTime: "10:00", EndTime: "10:30"}})

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"services":[]`)
	assert.Contains(t, string(raw), `"employee_name":""`)
}
