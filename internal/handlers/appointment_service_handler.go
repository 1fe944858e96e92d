package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

type AppointmentServiceHandler struct {
	*Resource[models.AppointmentService, *models.AppointmentService]
}

func NewAppointmentServiceHandler(
	store Store[models.AppointmentService, *models.AppointmentService],
) *AppointmentServiceHandler {
	return &AppointmentServiceHandler{
		Resource: NewResource(store, Labels{Singular: "Servicio de cita", Plural: "Servicios de cita"}, nil),
	}
}

func (h *AppointmentServiceHandler) Register(g *gin.RouterGroup) {
	h.Resource.Register(g)
	g.GET("/by-appointment/:appointmentId", h.ByAppointment)
}

func (h *AppointmentServiceHandler) ByAppointment(c *gin.Context) {
	appointmentID, err := paramID(c, "appointmentId")
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	h.listWhere(c, "id ASC", "appointment_id = ? AND is_active = ?", appointmentID, true)
}
