package validators

import (
	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
)

// Schedule checks what struct tags cannot: the window must not be empty.
func Schedule(s *models.WeeklySchedule) error {
	if s.StartTime >= s.EndTime {
		return httperr.ErrValidation("invalid_time_range", "La hora de inicio debe ser menor a la hora de fin.")
	}
	return nil
}

func Role(r *models.Role) error {
	if len(r.MenuAccess) == 0 {
		return httperr.ErrValidation("invalid_menu_access", "El rol debe tener al menos un acceso de menú.")
	}
	return nil
}
