package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barberia-admin/internal/domain/access"
	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
	"github.com/BruksfildServices01/barberia-admin/internal/httpresp"
	"github.com/BruksfildServices01/barberia-admin/internal/middleware"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
	"github.com/BruksfildServices01/barberia-admin/internal/session"
)

// AuthRepository is the credential store behind login and registration.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.AuthUser, error)
	GetAuthUser(ctx context.Context, id uint) (*models.AuthUser, error)
	CreateAuthUser(ctx context.Context, u *models.AuthUser) error
	UpdateAuthUser(ctx context.Context, id uint, u *models.AuthUser) error
	UpdatePassword(ctx context.Context, id uint, hash string) error
	TouchLastLogin(ctx context.Context, id uint, at time.Time) error
}

type AuthHandler struct {
	repo     AuthRepository
	sessions *session.Manager
	cost     int
}

func NewAuthHandler(repo AuthRepository, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{repo: repo, sessions: sessions, cost: bcrypt.DefaultCost}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username   string `json:"username" binding:"required,max=100"`
	Password   string `json:"password" binding:"required,min=6"`
	RoleID     uint   `json:"role_id" binding:"required"`
	UserID     *uint  `json:"user_id"`
	EmployeeID *uint  `json:"employee_id"`
}

// UpdateAuthUserRequest replaces the identity of a credential. The password
// is only changed through new-password.
type UpdateAuthUserRequest struct {
	Username   string `json:"username" binding:"required,max=100"`
	RoleID     uint   `json:"role_id" binding:"required"`
	UserID     *uint  `json:"user_id"`
	EmployeeID *uint  `json:"employee_id"`
}

type NewPasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// --------- Responses ---------

type AuthUserView struct {
	ID         uint       `json:"id"`
	Username   string     `json:"username"`
	RoleID     uint       `json:"role_id"`
	RoleName   string     `json:"role_name"`
	UserID     *uint      `json:"user_id"`
	EmployeeID *uint      `json:"employee_id"`
	LastLogin  *time.Time `json:"last_login"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      AuthUserView `json:"user"`
	Menu      access.Menu  `json:"menu"`
}

func viewOf(u *models.AuthUser) AuthUserView {
	v := AuthUserView{
		ID:         u.ID,
		Username:   u.Username,
		RoleID:     u.RoleID,
		UserID:     u.UserID,
		EmployeeID: u.EmployeeID,
		LastLogin:  u.LastLogin,
	}
	if u.Role != nil {
		v.RoleName = u.Role.RoleName
	}
	return v
}

// capabilitiesOf is the set a session is opened with. An inactive role
// grants nothing.
func capabilitiesOf(u *models.AuthUser) access.Set {
	if u.Role == nil || !u.Role.IsActive || u.Role.MenuAccess == nil {
		return access.NewSet()
	}
	return u.Role.MenuAccess
}

func invalidCredentials(c *gin.Context) {
	httperr.Unauthorized(c, "invalid_credentials", "Usuario o contraseña incorrectos.")
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err)
		return
	}

	ctx := c.Request.Context()

	user, err := h.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if httperr.KindOf(err) == httperr.KindNotFound {
			invalidCredentials(c)
			return
		}
		httperr.Respond(c, err)
		return
	}

	if !user.IsActive {
		invalidCredentials(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		invalidCredentials(c)
		return
	}

	caps := capabilitiesOf(user)

	opened, err := h.sessions.Open(ctx, user.ID, user.Username, user.RoleID, caps)
	if err != nil {
		httperr.Respond(c, httperr.ErrTransient(err))
		return
	}

	now := time.Now()
	if err := h.repo.TouchLastLogin(ctx, user.ID, now); err != nil {
		zap.L().Warn("last login not recorded", zap.Uint("auth_user_id", user.ID), zap.Error(err))
	} else {
		user.LastLogin = &now
	}

	httpresp.OK(c, "Inicio de sesión exitoso.", LoginResponse{
		Token:     opened.Token,
		ExpiresAt: opened.ExpiresAt,
		User:      viewOf(user),
		Menu:      access.BuildMenu(caps),
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			httperr.Respond(c, httperr.ErrValidation("password_too_long", "La contraseña es demasiado larga."))
			return
		}
		httperr.Respond(c, err)
		return
	}

	user := models.AuthUser{
		Username:     req.Username,
		PasswordHash: string(hashed),
		RoleID:       req.RoleID,
		UserID:       req.UserID,
		EmployeeID:   req.EmployeeID,
	}

	if err := h.repo.CreateAuthUser(c.Request.Context(), &user); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Usuario de acceso creado exitosamente.", viewOf(&user))
}

func (h *AuthHandler) UpdateAuthUser(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req UpdateAuthUserRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err)
		return
	}

	ctx := c.Request.Context()

	if err := h.repo.UpdateAuthUser(ctx, id, &models.AuthUser{
		Username:   req.Username,
		RoleID:     req.RoleID,
		UserID:     req.UserID,
		EmployeeID: req.EmployeeID,
	}); err != nil {
		httperr.Respond(c, err)
		return
	}

	fresh, err := h.repo.GetAuthUser(ctx, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, "Usuario de acceso actualizado exitosamente.", viewOf(fresh))
}

func (h *AuthHandler) NewPassword(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		httperr.Unauthorized(c, "missing_token", "Se requiere iniciar sesión.")
		return
	}

	var req NewPasswordRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err)
		return
	}

	ctx := c.Request.Context()

	user, err := h.repo.GetAuthUser(ctx, sess.AuthUserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		invalidCredentials(c)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), h.cost)
	if err != nil {
		httperr.Respond(c, httperr.ErrValidation("invalid_password", "Contraseña inválida."))
		return
	}

	if err := h.repo.UpdatePassword(ctx, user.ID, string(hashed)); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "Contraseña actualizada exitosamente.", gin.H{"id": user.ID})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		httperr.Unauthorized(c, "missing_token", "Se requiere iniciar sesión.")
		return
	}

	if err := h.sessions.Close(c.Request.Context(), sess.ID); err != nil {
		httperr.Respond(c, httperr.ErrTransient(err))
		return
	}

	httpresp.OK(c, "Sesión cerrada exitosamente.", gin.H{})
}
