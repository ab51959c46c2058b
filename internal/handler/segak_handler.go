package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sekolahfit/segak-api/internal/dto"
	"github.com/sekolahfit/segak-api/internal/service"
)

// SegakHandler serves the teacher-only SEGAK record pages.
type SegakHandler struct {
	segak    service.SegakService
	students service.StudentService
	logger   zerolog.Logger
}

// NewSegakHandler creates the SEGAK record handler.
func NewSegakHandler(segak service.SegakService, students service.StudentService, logger zerolog.Logger) *SegakHandler {
	return &SegakHandler{
		segak:    segak,
		students: students,
		logger:   logger.With().Str("component", "segak_handler").Logger(),
	}
}

// Register attaches the SEGAK routes behind the teacher gate.
func (h *SegakHandler) Register(app fiber.Router, teacherOnly fiber.Handler) {
	app.Get("/add_segak", teacherOnly, h.addForm)
	app.Post("/add_segak", teacherOnly, h.add)
	app.Get("/segak_records", teacherOnly, h.list)
	app.Get("/edit_segak/:id", teacherOnly, h.editForm)
	app.Post("/edit_segak/:id", teacherOnly, h.edit)
	app.Get("/delete_segak/:id", teacherOnly, h.delete)
}

func (h *SegakHandler) addForm(c *fiber.Ctx) error {
	students, err := h.students.Names(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load students")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	return c.Render("add_segak", fiber.Map{"Students": students})
}

func (h *SegakHandler) add(c *fiber.Ctx) error {
	var form dto.SegakCreateForm
	if err := c.BodyParser(&form); err != nil {
		return badInput(c)
	}

	if _, err := h.segak.Create(c.Context(), form); err != nil {
		if isValidationError(err) || errors.Is(err, service.ErrInvalidInput) {
			return badInput(c)
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create segak record")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	return c.Redirect("/segak_records", fiber.StatusFound)
}

func (h *SegakHandler) list(c *fiber.Ctx) error {
	selectedClass := c.Query("class")

	rows, err := h.segak.List(c.Context(), selectedClass)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list segak records")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	classes, err := h.students.Classes(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load classes")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	return c.Render("segak_records", fiber.Map{
		"Records":       rows,
		"Classes":       classes,
		"SelectedClass": selectedClass,
	})
}

func (h *SegakHandler) editForm(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badInput(c)
	}

	record, err := h.segak.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("SEGAK record not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load segak record")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	return c.Render("edit_segak", fiber.Map{
		"Record":   record,
		"TestDate": dateString(record.TestDate),
	})
}

func (h *SegakHandler) edit(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badInput(c)
	}

	var form dto.SegakEditForm
	if err := c.BodyParser(&form); err != nil {
		return badInput(c)
	}

	if err := h.segak.Update(c.Context(), id, form); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.Status(fiber.StatusNotFound).SendString("SEGAK record not found")
		case isValidationError(err), errors.Is(err, service.ErrInvalidInput):
			return badInput(c)
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to update segak record")
			return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
		}
	}

	return c.Redirect("/segak_records", fiber.StatusFound)
}

func (h *SegakHandler) delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badInput(c)
	}

	if err := h.segak.Delete(c.Context(), id); err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to delete segak record")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	return c.Redirect("/segak_records", fiber.StatusFound)
}
