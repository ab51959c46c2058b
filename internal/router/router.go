package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sekolahfit/segak-api/internal/config"
	"github.com/sekolahfit/segak-api/internal/handler"
	"github.com/sekolahfit/segak-api/internal/middleware"
	"github.com/sekolahfit/segak-api/internal/models"
	"github.com/sekolahfit/segak-api/internal/observability"
	"github.com/sekolahfit/segak-api/internal/session"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	SessionStore *session.Store
	Logger       zerolog.Logger

	AuthHandler      *handler.AuthHandler
	StudentHandler   *handler.StudentHandler
	BMIHandler       *handler.BMIHandler
	SegakHandler     *handler.SegakHandler
	DashboardHandler *handler.DashboardHandler
	ResultsHandler   *handler.ResultsHandler
}

// Register wires the HTTP routes into the fiber application. Every route
// runs under session resolution; the teacher and student gates redirect
// mismatched callers to the login page.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/healthz", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	app.Use(middleware.WithSession(deps.SessionStore, deps.Logger))

	teacherOnly := middleware.RequireRole(models.RoleTeacher)
	studentOnly := middleware.RequireRole(models.RoleStudent)

	deps.AuthHandler.Register(app)
	deps.StudentHandler.Register(app, teacherOnly)
	deps.BMIHandler.Register(app, teacherOnly)
	deps.SegakHandler.Register(app, teacherOnly)
	deps.DashboardHandler.Register(app, teacherOnly, studentOnly)
	deps.ResultsHandler.Register(app, teacherOnly)
}
