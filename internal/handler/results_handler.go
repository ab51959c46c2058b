package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sekolahfit/segak-api/internal/service"
)

// ResultsHandler serves the teacher drill-down view.
type ResultsHandler struct {
	results  service.ResultsService
	students service.StudentService
	logger   zerolog.Logger
}

// NewResultsHandler creates the results handler.
func NewResultsHandler(results service.ResultsService, students service.StudentService, logger zerolog.Logger) *ResultsHandler {
	return &ResultsHandler{
		results:  results,
		students: students,
		logger:   logger.With().Str("component", "results_handler").Logger(),
	}
}

// Register attaches the results route behind the teacher gate.
func (h *ResultsHandler) Register(app fiber.Router, teacherOnly fiber.Handler) {
	app.Get("/results", teacherOnly, h.show)
}

func (h *ResultsHandler) show(c *fiber.Ctx) error {
	selectedClass := c.Query("class")

	var studentID uint
	if raw := strings.TrimSpace(c.Query("student")); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return badInput(c)
		}
		studentID = uint(parsed)
	}

	view, err := h.results.Results(c.Context(), selectedClass, studentID)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load results")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	classes, err := h.students.Classes(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load classes")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	return c.Render("results", fiber.Map{
		"Classes":         classes,
		"SelectedClass":   selectedClass,
		"SelectedStudent": studentID,
		"Students":        view.Students,
		"StudentInfo":     view.StudentInfo,
		"BMIHistory":      view.BMIHistory,
		"SegakHistory":    view.SegakHistory,
	})
}
