package handler

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/sekolahfit/segak-api/internal/middleware"
)

func idParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("invalid identifier")
	}
	return uint(id), nil
}

func dateString(value datatypes.Date) string {
	return time.Time(value).Format("2006-01-02")
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}

// badInput covers both failed form decoding and failed validation: the
// request is answered with a 400 instead of letting the bad value reach
// the store.
func badInput(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).SendString("Invalid form input")
}
