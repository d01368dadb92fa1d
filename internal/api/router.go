package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/peoplehub/employee-system/internal/api/handler"
	"github.com/peoplehub/employee-system/internal/api/middleware"
	"github.com/peoplehub/employee-system/internal/core/domain"
	"github.com/peoplehub/employee-system/internal/core/ports"
	"github.com/peoplehub/employee-system/internal/infrastructure/http/handlers"
)

// Dependencies carries everything the router wires into routes. Services are
// constructed by the process entry point so bootstrap steps (EnsureAdmin) can
// run against them before the server accepts traffic.
type Dependencies struct {
	Tokens     ports.TokenService
	Auth       ports.AuthService
	Employees  ports.EmployeeService
	Attendance ports.AttendanceService

	// Mongo and Redis back the readiness probe only.
	DB  *mongo.Database
	RDB *redis.Client

	// AllowAnonymous is forwarded to the auth gate.
	AllowAnonymous bool

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hr"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	employeeHandler := handler.NewEmployeeHandler(deps.Employees)
	attendanceHandler := handler.NewAttendanceHandler(deps.Attendance)

	// --- API routes behind the auth gate ---
	// The gate skips the auth namespace so login and password recovery stay
	// reachable without a token.
	api := e.Group("/api", middleware.Auth(deps.Tokens, deps.AllowAnonymous, "/api/auth"))

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)

	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	employees := api.Group("/employees")
	employees.GET("", employeeHandler.List)
	employees.POST("", employeeHandler.Create, adminOnly)
	employees.GET("/search", employeeHandler.Search)
	employees.GET("/me", employeeHandler.Me)
	employees.GET("/profile/:username", employeeHandler.Profile)
	employees.GET("/details/:id", employeeHandler.Get)
	employees.GET("/:id", employeeHandler.Get)
	employees.PUT("/:id", employeeHandler.Update, adminOnly)
	employees.DELETE("/:id", employeeHandler.Delete, adminOnly)

	attendance := api.Group("/attendance")
	attendance.POST("", attendanceHandler.Record, adminOnly)
	attendance.GET("/employee/:id", attendanceHandler.ListByEmployee)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.DB, deps.RDB)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
