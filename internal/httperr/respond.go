package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var businessMessages = map[string]string{
	"invalid_state":       "El estado actual no permite esta operación.",
	"outside_schedule":    "Fuera del horario del empleado.",
	"invalid_time_range":  "La hora de inicio debe ser menor a la hora de fin.",
	"employee_inactive":   "El empleado no está activo.",
	"client_inactive":     "El cliente no está activo.",
	"invalid_credentials": "Usuario o contraseña incorrectos.",
	"invalid_menu_access": "El acceso de menú contiene opciones desconocidas.",
	"appointment_closed":  "La cita ya fue cerrada.",
}

// StatusFor maps an error onto the HTTP status the API answers with.
func StatusFor(err error) int {
	var be BusinessError
	if errors.As(err, &be) {
		return http.StatusUnprocessableEntity
	}

	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as an error envelope. Unclassified errors are logged
// and hidden behind a generic message.
func Respond(c *gin.Context, err error) {
	status := StatusFor(err)

	var be BusinessError
	if errors.As(err, &be) {
		msg, ok := businessMessages[be.Code]
		if !ok {
			msg = "Operación no permitida."
		}
		Write(c, status, be.Code, msg)
		return
	}

	var he *Error
	if errors.As(err, &he) && he.Kind != KindInternal {
		if he.Kind == KindTransient {
			zap.L().Warn("transient failure",
				zap.String("path", c.FullPath()),
				zap.Error(he.Err),
			)
		}
		Write(c, status, he.Code, he.Message)
		return
	}

	zap.L().Error("unhandled error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	Internal(c, "internal_error", "Ocurrió un error inesperado.")
}
