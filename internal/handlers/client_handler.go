package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

type ClientHandler struct {
	*Resource[models.Client, *models.Client]
}

func NewClientHandler(store Store[models.Client, *models.Client]) *ClientHandler {
	return &ClientHandler{
		Resource: NewResource(store, Labels{Singular: "Cliente", Plural: "Clientes"}, nil),
	}
}

func (h *ClientHandler) Register(g *gin.RouterGroup) {
	g.GET("/search", h.Search)
	h.Resource.Register(g)
}

// ======================================================
// SEARCH (name, phone or email)
// ======================================================
func (h *ClientHandler) Search(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	if query == "" {
		h.List(c)
		return
	}

	like := "%" + query + "%"
	h.listWhere(c, "name ASC",
		"is_active = ? AND (LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?)",
		true, like, like, like,
	)
}
