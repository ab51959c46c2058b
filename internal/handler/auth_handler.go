package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sekolahfit/segak-api/internal/dto"
	"github.com/sekolahfit/segak-api/internal/models"
	"github.com/sekolahfit/segak-api/internal/service"
	"github.com/sekolahfit/segak-api/internal/session"
)

// AuthHandler serves the login page and manages the session lifecycle.
type AuthHandler struct {
	auth     service.AuthService
	sessions *session.Store
	logger   zerolog.Logger
}

// NewAuthHandler creates the authentication handler.
func NewAuthHandler(auth service.AuthService, sessions *session.Store, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		sessions: sessions,
		logger:   logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register attaches the login and logout routes.
func (h *AuthHandler) Register(app fiber.Router) {
	app.Get("/", h.showLogin)
	app.Post("/", h.login)
	app.Get("/logout", h.logout)
}

func (h *AuthHandler) showLogin(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{})
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return badInput(c)
	}

	identity, err := h.auth.Authenticate(c.Context(), form)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Render("login", fiber.Map{"Error": "Invalid email or password"})
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("login failed")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	// Any prior session is discarded before the new one is minted.
	if old := c.Cookies(session.CookieName); old != "" {
		if err := h.sessions.Destroy(c.Context(), old); err != nil {
			requestLogger(h.logger, c).Warn().Err(err).Msg("failed to discard previous session")
		}
	}

	token, err := h.sessions.Create(c.Context(), session.Session{
		UserID: identity.ID,
		Role:   identity.Role,
		Name:   identity.Name,
	})
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create session")
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	switch identity.Role {
	case models.RoleStudent:
		return c.Redirect("/student_dashboard", fiber.StatusFound)
	default:
		return c.Redirect("/dashboard", fiber.StatusFound)
	}
}

func (h *AuthHandler) logout(c *fiber.Ctx) error {
	if token := c.Cookies(session.CookieName); token != "" {
		if err := h.sessions.Destroy(c.Context(), token); err != nil {
			requestLogger(h.logger, c).Warn().Err(err).Msg("failed to destroy session")
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
	})

	return c.Redirect("/", fiber.StatusFound)
}
