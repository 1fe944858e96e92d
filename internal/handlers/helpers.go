package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
	"github.com/BruksfildServices01/barberia-admin/internal/validators"
)

// --------------------------------------------------
// Request helpers
// --------------------------------------------------

func paramID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, httperr.ErrValidation("invalid_id", "Identificador inválido.")
	}
	return uint(id), nil
}

func queryID(c *gin.Context, name string) (uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, httperr.ErrValidation("invalid_"+name, "Identificador inválido.")
	}
	return uint(id), nil
}

// onlyActive reads ?only_active=, true unless explicitly disabled.
func onlyActive(c *gin.Context) bool {
	v, err := strconv.ParseBool(c.DefaultQuery("only_active", "true"))
	return err != nil || v
}

// filter collects equality conditions from optional query parameters.
type filter struct {
	conds []string
	args  []any
}

func (f *filter) eq(column string, v any) {
	f.conds = append(f.conds, column+" = ?")
	f.args = append(f.args, v)
}

func (f *filter) where() string {
	return strings.Join(f.conds, " AND ")
}

func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return validators.FromBind(err)
	}
	return nil
}

// --------------------------------------------------
// Spanish labels
// --------------------------------------------------

type Labels struct {
	Singular string
	Plural   string
	Feminine bool
}

func (l Labels) ending() string {
	if l.Feminine {
		return "a"
	}
	return "o"
}

func (l Labels) listed() string {
	return l.Plural + " obtenid" + l.ending() + "s exitosamente."
}

func (l Labels) fetched() string {
	return l.Singular + " obtenid" + l.ending() + " exitosamente."
}

func (l Labels) created() string {
	return l.Singular + " cread" + l.ending() + " exitosamente."
}

func (l Labels) updated() string {
	return l.Singular + " actualizad" + l.ending() + " exitosamente."
}

func (l Labels) deactivated() string {
	return l.Singular + " desactivad" + l.ending() + " exitosamente."
}
