package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sekolahfit/segak-api/internal/models"
	"github.com/sekolahfit/segak-api/internal/session"
)

// Locals keys populated by WithSession.
const (
	LocalUserID   = "user_id"
	LocalUserRole = "user_role"
	LocalUserName = "user_name"
)

// WithSession resolves the session cookie into request locals. An absent or
// expired session simply leaves the locals unset; the role gates decide
// what to do about it.
func WithSession(store *session.Store, logger zerolog.Logger) fiber.Handler {
	log := logger.With().Str("component", "session_middleware").Logger()

	return func(c *fiber.Ctx) error {
		token := c.Cookies(session.CookieName)
		if token != "" {
			sess, err := store.Get(c.Context(), token)
			switch {
			case err == nil:
				c.Locals(LocalUserID, sess.UserID)
				c.Locals(LocalUserRole, sess.Role)
				c.Locals(LocalUserName, sess.Name)
			case !errors.Is(err, session.ErrNotFound):
				log.Warn().Err(err).Msg("failed to resolve session")
			}
		}

		return c.Next()
	}
}

// RequireRole gates a route to one role. Any mismatch, including a missing
// session, redirects to the login page before the handler (and therefore
// any data access) runs.
func RequireRole(required models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current, ok := c.Locals(LocalUserRole).(models.Role)
		if !ok || !current.Valid() || current != required {
			return c.Redirect("/", fiber.StatusFound)
		}

		return c.Next()
	}
}

// SessionUserID returns the authenticated caller's identifier, or zero when
// the request carries no session.
func SessionUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals(LocalUserID).(uint); ok {
		return id
	}
	return 0
}

// SessionUserName returns the authenticated caller's display name.
func SessionUserName(c *fiber.Ctx) string {
	if name, ok := c.Locals(LocalUserName).(string); ok {
		return name
	}
	return ""
}
