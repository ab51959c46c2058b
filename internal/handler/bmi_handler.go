package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sekolahfit/segak-api/internal/dto"
	"github.com/sekolahfit/segak-api/internal/service"
)

// BMIHandler serves the teacher-only BMI record pages.
type BMIHandler struct {
	bmi      service.BMIService
	students service.StudentService
	logger   zerolog.Logger
}

// NewBMIHandler creates the BMI record handler.
func NewBMIHandler(bmi service.BMIService, students service.StudentService, logger zerolog.Logger) *BMIHandler {
	return &BMIHandler{
		bmi:      bmi,
		students: students,
		logger:   logger.With().Str("component", "bmi_handler").Logger(),
	}
}

// Register attaches the BMI routes behind the teacher gate.
func (h *BMIHandler) Register(app fiber.Router, teacherOnly fiber.Handler) {
	app.Get("/add_bmi", teacherOnly, h.addForm)
	app.Post("/add_bmi", teacherOnly, h.add)
	app.Get("/bmi_records", teacherOnly, h.list)
	app.Get("/edit_bmi/:id", teacherOnly, h.editForm)
	app.Post("/edit_bmi/:id", teacherOnly, h.edit)
	app.Get("/delete_bmi/:id", teacherOnly, h.delete)
}

func (h *BMIHandler) addForm(c *fiber.Ctx) error {
	classes, err := h.students.Classes(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load classes")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	// The full roster is rendered so the page can narrow the student
	// picker by class without a round trip.
	students, err := h.students.List(c.Context(), "")
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load students")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	return c.Render("add_bmi", fiber.Map{
		"Classes":  classes,
		"Students": students,
	})
}

func (h *BMIHandler) add(c *fiber.Ctx) error {
	var form dto.BMICreateForm
	if err := c.BodyParser(&form); err != nil {
		return badInput(c)
	}

	if _, err := h.bmi.Create(c.Context(), form); err != nil {
		if isValidationError(err) || errors.Is(err, service.ErrInvalidInput) {
			return badInput(c)
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create bmi record")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	return c.Redirect("/bmi_records", fiber.StatusFound)
}

func (h *BMIHandler) list(c *fiber.Ctx) error {
	selectedClass := c.Query("class")

	rows, err := h.bmi.List(c.Context(), selectedClass)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list bmi records")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	classes, err := h.students.Classes(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load classes")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	return c.Render("bmi_records", fiber.Map{
		"Records":       rows,
		"Classes":       classes,
		"SelectedClass": selectedClass,
	})
}

func (h *BMIHandler) editForm(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badInput(c)
	}

	record, err := h.bmi.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("BMI record not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load bmi record")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	return c.Render("edit_bmi", fiber.Map{
		"Record":     record,
		"RecordDate": dateString(record.RecordDate),
	})
}

func (h *BMIHandler) edit(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badInput(c)
	}

	var form dto.BMIEditForm
	if err := c.BodyParser(&form); err != nil {
		return badInput(c)
	}

	if err := h.bmi.Update(c.Context(), id, form); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.Status(fiber.StatusNotFound).SendString("BMI record not found")
		case isValidationError(err), errors.Is(err, service.ErrInvalidInput):
			return badInput(c)
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to update bmi record")
			return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
		}
	}

	return c.Redirect("/bmi_records", fiber.StatusFound)
}

func (h *BMIHandler) delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badInput(c)
	}

	if err := h.bmi.Delete(c.Context(), id); err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to delete bmi record")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	return c.Redirect("/bmi_records", fiber.StatusFound)
}
