package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

type ScheduleHandler struct {
	*Resource[models.WeeklySchedule, *models.WeeklySchedule]
}

func NewScheduleHandler(
	store Store[models.WeeklySchedule, *models.WeeklySchedule],
	validate func(*models.WeeklySchedule) error,
) *ScheduleHandler {
	return &ScheduleHandler{
		Resource: NewResource(store, Labels{Singular: "Horario", Plural: "Horarios"}, validate),
	}
}

func (h *ScheduleHandler) Register(g *gin.RouterGroup) {
	h.Resource.Register(g)
	g.GET("/by-employee/:employeeId", h.ByEmployee)
	g.GET("/by-day/:dayOfWeek", h.ByDay)
}

// ByEmployee lists the active weekly schedule of one employee.
func (h *ScheduleHandler) ByEmployee(c *gin.Context) {
	employeeID, err := paramID(c, "employeeId")
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	h.listWhere(c, "day_of_week ASC, start_time ASC",
		"employee_id = ? AND is_active = ?", employeeID, true)
}

// ByDay lists active schedules for an ISO weekday (1 = Monday, 7 = Sunday).
func (h *ScheduleHandler) ByDay(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("dayOfWeek"))
	if err != nil || day < 1 || day > 7 {
		httperr.Respond(c, httperr.ErrValidation("invalid_day_of_week", "El día debe estar entre 1 (lunes) y 7 (domingo)."))
		return
	}
	h.listWhere(c, "employee_id ASC, start_time ASC",
		"day_of_week = ? AND is_active = ?", day, true)
}
