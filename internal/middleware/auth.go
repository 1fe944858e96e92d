package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberia-admin/internal/domain/access"
	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
	"github.com/BruksfildServices01/barberia-admin/internal/session"
)

const (
	ContextSession    = "session"
	ContextAuthUserID = "authUserID"
	ContextRoleID     = "roleID"
)

var stateErrors = map[session.State][2]string{
	session.Missing: {"missing_token", "Se requiere iniciar sesión."},
	session.Invalid: {"invalid_token", "Credenciales inválidas."},
	session.Expired: {"session_expired", "La sesión ha expirado."},
	session.Revoked: {"session_revoked", "La sesión fue cerrada."},
}

// SessionGuard is the single authentication gate for protected routes.
func SessionGuard(guard *session.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := guard.Check(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			zap.L().Error("session store unavailable", zap.Error(err))
			httperr.Unavailable(c, "service_unavailable", "Servicio no disponible temporalmente.")
			c.Abort()
			return
		}

		if res.State != session.Authenticated {
			e := stateErrors[res.State]
			httperr.Unauthorized(c, e[0], e[1])
			c.Abort()
			return
		}

		c.Set(ContextSession, res.Session)
		c.Set(ContextAuthUserID, res.Session.AuthUserID)
		c.Set(ContextRoleID, res.Session.RoleID)

		c.Next()
	}
}

// RequireCapability must run after SessionGuard.
func RequireCapability(capability access.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil || !sess.Capabilities.Has(capability) {
			httperr.Forbidden(c, "forbidden", "No tiene acceso a esta sección.")
			c.Abort()
			return
		}
		c.Next()
	}
}

func CurrentSession(c *gin.Context) *session.Record {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Record)
	return sess
}

// ActorID is the authenticated user id, for audit entries.
func ActorID(c *gin.Context) *uint {
	sess := CurrentSession(c)
	if sess == nil {
		return nil
	}
	id := sess.AuthUserID
	return &id
}
