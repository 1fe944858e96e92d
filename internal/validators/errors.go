package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
)

var tagMessages = map[string]string{
	"required": "es requerido",
	"email":    "debe ser un correo válido",
	"hhmm":     "debe tener el formato HH:mm",
	"oneof":    "tiene un valor no permitido",
	"max":      "excede la longitud máxima",
	"min":      "es menor al mínimo",
	"gt":       "debe ser mayor a cero",
	"gte":      "no puede ser negativo",
}

// FromBind turns a gin binding failure into a validation error listing the
// offending fields.
func FromBind(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return httperr.ErrValidation("invalid_request", "El cuerpo de la solicitud es inválido.")
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := tagMessages[fe.Tag()]
		if !ok {
			msg = "es inválido"
		}
		parts = append(parts, fmt.Sprintf("%s %s", fe.Field(), msg))
	}
	return httperr.ErrValidation("invalid_request", "Datos inválidos: "+strings.Join(parts, "; ")+".")
}
