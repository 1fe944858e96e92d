package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberia-admin/internal/domain/access"
	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
	"github.com/BruksfildServices01/barberia-admin/internal/httpresp"
	"github.com/BruksfildServices01/barberia-admin/internal/middleware"
)

type MeHandler struct {
	repo AuthRepository
}

func NewMeHandler(repo AuthRepository) *MeHandler {
	return &MeHandler{repo: repo}
}

type MeResponse struct {
	AuthUserView
	Capabilities []access.Capability `json:"capabilities"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		httperr.Unauthorized(c, "missing_token", "Se requiere iniciar sesión.")
		return
	}

	user, err := h.repo.GetAuthUser(c.Request.Context(), sess.AuthUserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "Usuario obtenido exitosamente.", MeResponse{
		AuthUserView: viewOf(user),
		Capabilities: sess.Capabilities.List(),
	})
}

// GetMenu builds the navigation from the capabilities captured at login.
func (h *MeHandler) GetMenu(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		httperr.Unauthorized(c, "missing_token", "Se requiere iniciar sesión.")
		return
	}

	httpresp.OK(c, "Menú obtenido exitosamente.", access.BuildMenu(sess.Capabilities))
}
