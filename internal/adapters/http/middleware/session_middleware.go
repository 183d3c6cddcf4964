package middleware

import (
	"staffhub/internal/core/services"
	"staffhub/internal/pkg/problem"

	"github.com/gofiber/fiber/v2"
)

// Cookie names. The session cookie is HTTP-only; the CSRF cookie is
// readable so the client can echo its value in the X-XSRF-TOKEN header.
const (
	SessionCookieName = "session_id"
	CSRFCookieName    = "XSRF-TOKEN"
	CSRFHeaderName    = "X-XSRF-TOKEN"
)

// Locals keys populated once per request by SessionAuth
const (
	LocalsSessionID = "sessionID"
	LocalsUsername  = "username"
	LocalsCSRFToken = "csrfToken"
)

// SessionAuth creates the session authentication middleware. It
// resolves the session cookie against the server-side store, puts the
// principal into the request-scoped locals and slides the idle expiry
// forward. No session → 401, empty body, before any business logic.
func SessionAuth(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(SessionCookieName)
		if sessionID == "" {
			return problem.Unauthorized(c)
		}

		sess, err := authService.GetSession(sessionID)
		if err != nil {
			return problem.Unauthorized(c)
		}

		authService.TouchSession(sessionID)

		c.Locals(LocalsSessionID, sess.ID)
		c.Locals(LocalsUsername, sess.Username)
		c.Locals(LocalsCSRFToken, sess.CSRFToken)

		return c.Next()
	}
}

// CSRF creates the anti-forgery middleware for state-changing
// requests. The X-XSRF-TOKEN header must match the token bound to the
// session; mismatch rejects the request before it reaches the service
// layer. Runs after SessionAuth.
func CSRF() fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}

		token, ok := c.Locals(LocalsCSRFToken).(string)
		if !ok || token == "" {
			return problem.Forbidden(c, "Missing CSRF token.")
		}

		if c.Get(CSRFHeaderName) != token {
			return problem.Forbidden(c, "Invalid CSRF token.")
		}

		return c.Next()
	}
}
