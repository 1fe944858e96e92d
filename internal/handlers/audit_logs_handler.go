package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberia-admin/internal/audit"
	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
	"github.com/BruksfildServices01/barberia-admin/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type AuditQuerier interface {
	Query(ctx context.Context, f audit.Filter) (*audit.Page, error)
}

type AuditLogsHandler struct {
	logs AuditQuerier
}

func NewAuditLogsHandler(logs AuditQuerier) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}

	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(audit.DefaultLimit)))

	// --------------------------------------------------
	// Date range, both ends inclusive days
	// --------------------------------------------------

	if s := c.Query("from"); s != "" {
		from, err := time.Parse("2006-01-02", s)
		if err != nil {
			httperr.Respond(c, httperr.ErrValidation("invalid_date", "La fecha debe tener el formato YYYY-MM-DD."))
			return
		}
		f.From = from
	}

	if s := c.Query("to"); s != "" {
		to, err := time.Parse("2006-01-02", s)
		if err != nil {
			httperr.Respond(c, httperr.ErrValidation("invalid_date", "La fecha debe tener el formato YYYY-MM-DD."))
			return
		}
		f.To = to.AddDate(0, 0, 1)
	}

	page, err := h.logs.Query(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "Registros de auditoría obtenidos exitosamente.", page)
}
