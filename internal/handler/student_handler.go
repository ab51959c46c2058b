package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sekolahfit/segak-api/internal/dto"
	"github.com/sekolahfit/segak-api/internal/service"
)

// StudentHandler serves the teacher-only roster pages.
type StudentHandler struct {
	students service.StudentService
	logger   zerolog.Logger
}

// NewStudentHandler creates the roster handler.
func NewStudentHandler(students service.StudentService, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		students: students,
		logger:   logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register attaches the roster routes behind the teacher gate.
func (h *StudentHandler) Register(app fiber.Router, teacherOnly fiber.Handler) {
	app.Get("/add_student", teacherOnly, h.addForm)
	app.Post("/add_student", teacherOnly, h.add)
	app.Get("/students", teacherOnly, h.list)
	app.Get("/edit_student/:id", teacherOnly, h.editForm)
	app.Post("/edit_student/:id", teacherOnly, h.edit)
	app.Get("/delete_student/:id", teacherOnly, h.delete)
}

func (h *StudentHandler) addForm(c *fiber.Ctx) error {
	classes, err := h.students.Classes(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load classes")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	return c.Render("add_student", fiber.Map{"Classes": classes})
}

func (h *StudentHandler) add(c *fiber.Ctx) error {
	var form dto.StudentForm
	if err := c.BodyParser(&form); err != nil {
		return badInput(c)
	}

	classes, err := h.students.Classes(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load classes")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	if _, err := h.students.Create(c.Context(), form); err != nil {
		if isValidationError(err) {
			return badInput(c)
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create student")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	// The create page redisplays with a success note instead of
	// redirecting to the list.
	return c.Render("add_student", fiber.Map{
		"Classes": classes,
		"Success": "Student added successfully!",
	})
}

func (h *StudentHandler) list(c *fiber.Ctx) error {
	selectedClass := c.Query("class")

	rows, err := h.students.List(c.Context(), selectedClass)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list students")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	classes, err := h.students.Classes(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load classes")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	return c.Render("students", fiber.Map{
		"Students":      rows,
		"Classes":       classes,
		"SelectedClass": selectedClass,
	})
}

func (h *StudentHandler) editForm(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badInput(c)
	}

	student, err := h.students.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Student not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load student")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	classes, err := h.students.Classes(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load classes")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	return c.Render("edit_student", fiber.Map{
		"Student": student,
		"Classes": classes,
	})
}

func (h *StudentHandler) edit(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badInput(c)
	}

	var form dto.StudentForm
	if err := c.BodyParser(&form); err != nil {
		return badInput(c)
	}

	if err := h.students.Update(c.Context(), id, form); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.Status(fiber.StatusNotFound).SendString("Student not found")
		case isValidationError(err):
			return badInput(c)
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to update student")
			return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
		}
	}

	return c.Redirect("/students", fiber.StatusFound)
}

func (h *StudentHandler) delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badInput(c)
	}

	if err := h.students.Delete(c.Context(), id); err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to delete student")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	return c.Redirect("/students", fiber.StatusFound)
}
