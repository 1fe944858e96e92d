package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberia-admin/internal/audit"
	"github.com/BruksfildServices01/barberia-admin/internal/config"
	"github.com/BruksfildServices01/barberia-admin/internal/domain/access"
	"github.com/BruksfildServices01/barberia-admin/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barberia-admin/internal/infra/repository"
	"github.com/BruksfildServices01/barberia-admin/internal/middleware"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
	"github.com/BruksfildServices01/barberia-admin/internal/session"
	ucAppointment "github.com/BruksfildServices01/barberia-admin/internal/usecase/appointment"
	ucAvailability "github.com/BruksfildServices01/barberia-admin/internal/usecase/availability"
	"github.com/BruksfildServices01/barberia-admin/internal/validators"
)

// Deps are the process singletons the router is built from.
type Deps struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Config *config.Config
	Audit  *audit.Dispatcher
	Logs   *audit.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	availabilityRepo := infraRepo.NewAvailabilityGormRepository(d.DB)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	authRepo := infraRepo.NewAuthGormRepository(d.DB)

	issuer := session.NewIssuer(cfg.JWTSecret, cfg.SessionTTL)
	sessionStore := session.NewRedisStore(d.Redis)
	sessions := session.NewManager(issuer, sessionStore)
	guard := session.NewGuard(issuer, sessionStore)

	loginLimiter := middleware.NewIPRateLimiter(cfg.LoginRatePerMin)

	// ======================================================
	// USE CASES: AVAILABILITY
	// ======================================================
	resolveUC := ucAvailability.NewResolveSlots(availabilityRepo, cfg.AvailabilityTimeout)
	checkUC := ucAvailability.NewCheckAvailability(availabilityRepo, cfg.AvailabilityTimeout)
	employeesWithSlotsUC := ucAvailability.NewListEmployeesWithSlots(availabilityRepo, cfg.AvailabilityTimeout)
	employeeAppointmentsUC := ucAvailability.NewListEmployeeAppointments(availabilityRepo, cfg.AvailabilityTimeout)
	servicesUC := ucAvailability.NewListServices(availabilityRepo, cfg.AvailabilityTimeout)

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, d.Audit)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, d.Audit)
	transitionAppointmentUC := ucAppointment.NewTransitionAppointment(appointmentRepo, d.Audit, cfg.Timezone)
	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)
	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(map[string]handlers.Probe{
		"database": func(ctx context.Context) error {
			sqlDB, err := d.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		"redis": func(ctx context.Context) error {
			return d.Redis.Ping(ctx).Err()
		},
	})

	authHandler := handlers.NewAuthHandler(authRepo, sessions)
	meHandler := handlers.NewMeHandler(authRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.Logs)

	availabilityHandler := handlers.NewAvailabilityHandler(
		resolveUC,
		checkUC,
		employeesWithSlotsUC,
		employeeAppointmentsUC,
		servicesUC,
		cfg.Timezone,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		infraRepo.NewStore[models.Appointment](d.DB, "appointment_not_found"),
		createAppointmentUC,
		updateAppointmentUC,
		transitionAppointmentUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)

	clientHandler := handlers.NewClientHandler(
		infraRepo.NewStore[models.Client](d.DB, "client_not_found"),
	)
	scheduleHandler := handlers.NewScheduleHandler(
		infraRepo.NewStore[models.WeeklySchedule](d.DB, "schedule_not_found"),
		validators.Schedule,
	)
	appointmentServiceHandler := handlers.NewAppointmentServiceHandler(
		infraRepo.NewStore[models.AppointmentService](d.DB, "appointment_service_not_found"),
	)

	employees := handlers.NewResource[models.Employee](
		infraRepo.NewStore[models.Employee](d.DB, "employee_not_found"),
		handlers.Labels{Singular: "Empleado", Plural: "Empleados"},
		nil,
	)
	services := handlers.NewResource[models.Service](
		infraRepo.NewStore[models.Service](d.DB, "service_not_found"),
		handlers.Labels{Singular: "Servicio", Plural: "Servicios"},
		nil,
	)
	payments := handlers.NewPaymentHandler(
		infraRepo.NewStore[models.Payment](d.DB, "payment_not_found"),
	)
	roles := handlers.NewResource[models.Role](
		infraRepo.NewStore[models.Role](d.DB, "role_not_found"),
		handlers.Labels{Singular: "Rol", Plural: "Roles"},
		validators.Role,
	)
	users := handlers.NewResource[models.User](
		infraRepo.NewStore[models.User](d.DB, "user_not_found"),
		handlers.Labels{Singular: "Usuario", Plural: "Usuarios"},
		nil,
	)
	announcements := handlers.NewResource[models.Announcement](
		infraRepo.NewStore[models.Announcement](d.DB, "announcement_not_found").WithPreload("Employee"),
		handlers.Labels{Singular: "Anuncio", Plural: "Anuncios"},
		nil,
	)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/health", healthHandler.Check)

	api := r.Group("/api/v1")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/login", middleware.RateLimit(loginLimiter), authHandler.Login)

		// ------------------------------
		// SESSION REQUIRED
		// ------------------------------
		secured := api.Group("")
		secured.Use(middleware.SessionGuard(guard))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/menu", meHandler.GetMenu)

			secured.POST("/auth/logout", authHandler.Logout)
			secured.POST("/auth/new-password", authHandler.NewPassword)
			secured.POST("/auth/register", middleware.RequireCapability(access.Auth), authHandler.Register)
			secured.PUT("/auth/:id", middleware.RequireCapability(access.Auth), authHandler.UpdateAuthUser)

			availabilityHandler.Register(gated(secured, "/availability", access.Appointments))
			appointmentHandler.Register(gated(secured, "/appointments", access.Appointments))
			appointmentServiceHandler.Register(gated(secured, "/appointment-services", access.AppointmentServices))
			scheduleHandler.Register(gated(secured, "/schedules", access.Schedules))
			clientHandler.Register(gated(secured, "/clients", access.Clients))

			employees.Register(gated(secured, "/employees", access.Employees))
			services.Register(gated(secured, "/services", access.Services))
			payments.Register(gated(secured, "/payments", access.Payments))
			roles.Register(gated(secured, "/roles", access.Roles))
			users.Register(gated(secured, "/users", access.Users))
			announcements.Register(gated(secured, "/announcements", access.Announcements))

			secured.GET("/audit-logs", middleware.RequireCapability(access.Reports), auditLogsHandler.List)
		}
	}
}

func gated(g *gin.RouterGroup, path string, capability access.Capability) *gin.RouterGroup {
	return g.Group(path, middleware.RequireCapability(capability))
}
