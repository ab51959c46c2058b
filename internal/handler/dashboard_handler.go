package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sekolahfit/segak-api/internal/middleware"
	"github.com/sekolahfit/segak-api/internal/service"
)

// DashboardHandler serves the teacher landing page and the student
// self-service views. The student pages are always scoped to the session's
// own identifier.
type DashboardHandler struct {
	dashboards service.DashboardService
	logger     zerolog.Logger
}

// NewDashboardHandler creates the dashboard handler.
func NewDashboardHandler(dashboards service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboards: dashboards,
		logger:     logger.With().Str("component", "dashboard_handler").Logger(),
	}
}

// Register attaches the dashboard routes behind their role gates.
func (h *DashboardHandler) Register(app fiber.Router, teacherOnly, studentOnly fiber.Handler) {
	app.Get("/dashboard", teacherOnly, h.teacherDashboard)
	app.Get("/student_dashboard", studentOnly, h.studentDashboard)
	app.Get("/student/print", studentOnly, h.studentPrint)
}

func (h *DashboardHandler) teacherDashboard(c *fiber.Ctx) error {
	teacherID := middleware.SessionUserID(c)

	dashboard, err := h.dashboards.TeacherDashboard(c.Context(), teacherID)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Uint("teacher_id", teacherID).Msg("failed to load dashboard")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	return c.Render("dashboard", fiber.Map{"Dashboard": dashboard})
}

func (h *DashboardHandler) studentDashboard(c *fiber.Ctx) error {
	studentID := middleware.SessionUserID(c)

	dashboard, err := h.dashboards.StudentDashboard(c.Context(), studentID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Student not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("student_id", studentID).Msg("failed to load student dashboard")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	return c.Render("student_dashboard", fiber.Map{
		"Profile":      dashboard.Profile,
		"BMIHistory":   dashboard.BMIHistory,
		"SegakHistory": dashboard.SegakHistory,
	})
}

func (h *DashboardHandler) studentPrint(c *fiber.Ctx) error {
	studentID := middleware.SessionUserID(c)

	view, err := h.dashboards.StudentPrint(c.Context(), studentID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Student not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("student_id", studentID).Msg("failed to load print view")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	return c.Render("student_print", fiber.Map{
		"Profile":     view.Profile,
		"LatestBMI":   view.LatestBMI,
		"LatestSegak": view.LatestSegak,
	})
}
