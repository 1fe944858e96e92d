package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barberia-admin/internal/domain/availability"
	"github.com/BruksfildServices01/barberia-admin/internal/dto"
	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
	"github.com/BruksfildServices01/barberia-admin/internal/httpresp"
	"github.com/BruksfildServices01/barberia-admin/internal/timezone"
	ucAvailability "github.com/BruksfildServices01/barberia-admin/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	resolve           *ucAvailability.ResolveSlots
	check             *ucAvailability.CheckAvailability
	employeesWithSlot *ucAvailability.ListEmployeesWithSlots
	appointments      *ucAvailability.ListEmployeeAppointments
	services          *ucAvailability.ListServices
	tz                string
}

func NewAvailabilityHandler(
	resolve *ucAvailability.ResolveSlots,
	check *ucAvailability.CheckAvailability,
	employeesWithSlot *ucAvailability.ListEmployeesWithSlots,
	appointments *ucAvailability.ListEmployeeAppointments,
	services *ucAvailability.ListServices,
	tz string,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		resolve:           resolve,
		check:             check,
		employeesWithSlot: employeesWithSlot,
		appointments:      appointments,
		services:          services,
		tz:                tz,
	}
}

func (h *AvailabilityHandler) Register(g *gin.RouterGroup) {
	g.GET("/employees-with-slots", h.EmployeesWithSlots)
	g.POST("/check", h.Check)
	g.GET("/quick-check", h.QuickCheck)
	g.GET("/employees/:id/slots", h.EmployeeSlots)
	g.GET("/employees/:id/appointments", h.EmployeeAppointments)
	g.GET("/services", h.Services)
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

type CheckRequest struct {
	EmployeeID uint   `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
}

type CheckResponse struct {
	Success bool               `json:"success"`
	Status  domain.CheckStatus `json:"status"`
	Message string             `json:"message"`
}

// dateOrToday defaults a missing date to today in the shop's timezone.
func (h *AvailabilityHandler) dateOrToday(c *gin.Context) string {
	if d := strings.TrimSpace(c.Query("date")); d != "" {
		return d
	}
	return domain.FormatDate(timezone.Today(h.tz))
}

// ======================================================
// SLOTS
// ======================================================

func (h *AvailabilityHandler) EmployeesWithSlots(c *gin.Context) {
	out, err := h.employeesWithSlot.Execute(c.Request.Context(), h.dateOrToday(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if len(out) == 0 {
		httpresp.Empty[ucAvailability.EmployeeSlots](c, "No hay empleados con horario para la fecha indicada.")
		return
	}
	httpresp.List(c, "Empleados con horarios obtenidos exitosamente.", out)
}

func (h *AvailabilityHandler) EmployeeSlots(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	res, err := h.resolve.Execute(c.Request.Context(), ucAvailability.ResolveSlotsInput{
		EmployeeID: id,
		Date:       h.dateOrToday(c),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	msg := "Horarios obtenidos exitosamente."
	if res.Status == domain.DayNoSchedule {
		msg = "El empleado no tiene horario asignado para ese día."
	}
	httpresp.OK(c, msg, res)
}

// ======================================================
// CHECK
// ======================================================

func (h *AvailabilityHandler) Check(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.ErrValidation("invalid_request", "El cuerpo de la solicitud es inválido."))
		return
	}
	h.answerCheck(c, req)
}

func (h *AvailabilityHandler) QuickCheck(c *gin.Context) {
	var req CheckRequest
	if raw := c.Query("employee_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.Respond(c, httperr.ErrValidation("invalid_employee_id", "El identificador del empleado es inválido."))
			return
		}
		req.EmployeeID = uint(id)
	}
	req.Date = c.Query("date")
	req.StartTime = c.Query("start_time")

	h.answerCheck(c, req)
}

// answerCheck never reports a business status for an infrastructure
// failure: those answer 503 with status Error.
func (h *AvailabilityHandler) answerCheck(c *gin.Context, req CheckRequest) {
	res, err := h.check.Execute(c.Request.Context(), ucAvailability.CheckAvailabilityInput{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		StartTime:  req.StartTime,
	})
	if err != nil {
		if httperr.KindOf(err) == httperr.KindTransient {
			c.JSON(http.StatusServiceUnavailable, CheckResponse{
				Success: false,
				Status:  domain.CheckError,
				Message: ucAvailability.CheckMessage(domain.CheckError),
			})
			return
		}
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, CheckResponse{
		Success: res.Status == domain.CheckAvailable,
		Status:  res.Status,
		Message: res.Message,
	})
}

// ======================================================
// LISTINGS
// ======================================================

func (h *AvailabilityHandler) EmployeeAppointments(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out, err := h.appointments.Execute(c.Request.Context(), id, h.dateOrToday(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if len(out) == 0 {
		httpresp.Empty[dto.AppointmentListDTO](c, "El empleado no tiene citas para la fecha indicada.")
		return
	}
	httpresp.List(c, "Citas obtenidas exitosamente.", out)
}

func (h *AvailabilityHandler) Services(c *gin.Context) {
	out, err := h.services.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, "Servicios obtenidos exitosamente.", out)
}
