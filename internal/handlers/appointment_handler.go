package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barberia-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
	"github.com/BruksfildServices01/barberia-admin/internal/httpresp"
	"github.com/BruksfildServices01/barberia-admin/internal/middleware"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
	ucAppointment "github.com/BruksfildServices01/barberia-admin/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	*Resource[models.Appointment, *models.Appointment]

	create     *ucAppointment.CreateAppointment
	update     *ucAppointment.UpdateAppointment
	transition *ucAppointment.TransitionAppointment
	byDate     *ucAppointment.ListAppointmentsByDate
	byMonth    *ucAppointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	store Store[models.Appointment, *models.Appointment],
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	transition *ucAppointment.TransitionAppointment,
	byDate *ucAppointment.ListAppointmentsByDate,
	byMonth *ucAppointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		Resource:   NewResource(store, Labels{Singular: "Cita", Plural: "Citas", Feminine: true}, nil),
		create:     create,
		update:     update,
		transition: transition,
		byDate:     byDate,
		byMonth:    byMonth,
	}
}

func (h *AppointmentHandler) Register(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.GET("/by-date", h.ListByDate)
	g.GET("/by-month", h.ListByMonth)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)

	g.PATCH("/:id/confirm", h.moveTo(domain.StatusConfirmed, "Cita confirmada."))
	g.PATCH("/:id/start", h.moveTo(domain.StatusInProgress, "Cita en curso."))
	g.PATCH("/:id/complete", h.moveTo(domain.StatusCompleted, "Cita completada."))
	g.PATCH("/:id/cancel", h.moveTo(domain.StatusCancelled, "Cita cancelada."))
	g.PATCH("/:id/no-show", h.moveTo(domain.StatusNoShow, "Cita marcada como no asistida."))
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req ucAppointment.SaveAppointmentInput
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), middleware.ActorID(c), req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, h.labels.created(), ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req ucAppointment.SaveAppointmentInput
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err)
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), middleware.ActorID(c), id, req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, h.labels.updated(), ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) moveTo(to domain.Status, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := paramID(c, "id")
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		ap, err := h.transition.Execute(c.Request.Context(), middleware.ActorID(c), id, to)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		httpresp.OK(c, message, ap)
	}
}

// ======================================================
// LIST
// ======================================================

// List narrows appointments by ?employee_id=, ?client_id= and ?status=.
func (h *AppointmentHandler) List(c *gin.Context) {
	var f filter
	for _, name := range []string{"employee_id", "client_id"} {
		id, err := queryID(c, name)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		if id != 0 {
			f.eq(name, id)
		}
	}

	if s := c.Query("status"); s != "" {
		if !domain.Status(s).Valid() {
			httperr.Respond(c, httperr.ErrValidation("invalid_status", "Estado de cita desconocido."))
			return
		}
		f.eq("status", s)
	}

	h.listFiltered(c, "date DESC, start_time ASC", &f)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	employeeID, err := queryID(c, "employee_id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.Respond(c, httperr.ErrValidation("missing_date", "La fecha es requerida."))
		return
	}

	out, err := h.byDate.Execute(c.Request.Context(), employeeID, dateStr)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, h.labels.listed(), out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	employeeID, err := queryID(c, "employee_id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil {
		httperr.Respond(c, httperr.ErrValidation("invalid_period", "Año o mes inválido."))
		return
	}

	out, err := h.byMonth.Execute(c.Request.Context(), employeeID, year, month)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, h.labels.listed(), out)
}
