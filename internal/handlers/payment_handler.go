package handlers

import (
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

type PaymentHandler struct {
	*Resource[models.Payment, *models.Payment]
}

func NewPaymentHandler(store Store[models.Payment, *models.Payment]) *PaymentHandler {
	return &PaymentHandler{
		Resource: NewResource(store, Labels{Singular: "Pago", Plural: "Pagos"}, nil),
	}
}

func (h *PaymentHandler) Register(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List narrows payments by ?appointment_id=, ?client_id=, ?payment_type=
// and ?status=.
func (h *PaymentHandler) List(c *gin.Context) {
	var f filter
	for _, name := range []string{"appointment_id", "client_id"} {
		id, err := queryID(c, name)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		if id != 0 {
			f.eq(name, id)
		}
	}

	if t := c.Query("payment_type"); t != "" {
		if !slices.Contains(models.PaymentTypes, t) {
			httperr.Respond(c, httperr.ErrValidation("invalid_payment_type", "Tipo de pago desconocido."))
			return
		}
		f.eq("payment_type", t)
	}

	if s := c.Query("status"); s != "" {
		if !slices.Contains(models.PaymentStatuses, s) {
			httperr.Respond(c, httperr.ErrValidation("invalid_status", "Estado de pago desconocido."))
			return
		}
		f.eq("status", s)
	}

	h.listFiltered(c, "payment_date DESC, id DESC", &f)
}
