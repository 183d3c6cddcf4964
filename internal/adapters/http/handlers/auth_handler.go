package handlers

import (
	"errors"
	"log"
	"strings"
	"time"

	"staffhub/internal/adapters/http/middleware"
	"staffhub/internal/config"
	"staffhub/internal/core/domain"
	"staffhub/internal/core/services"
	"staffhub/internal/pkg/problem"
	"staffhub/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles the authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates a user and sets the session + CSRF cookies
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return problem.BadRequest(c, "Invalid request body")
	}

	log.Printf("ℹ️ Request login for username [%s]", req.Username)

	fieldErrors := map[string]string{}
	if strings.TrimSpace(req.Username) == "" {
		fieldErrors["username"] = "User name is required"
	}
	if strings.TrimSpace(req.Password) == "" {
		fieldErrors["password"] = "Password is required"
	}
	if len(fieldErrors) > 0 {
		return problem.Validation(c, fieldErrors)
	}

	input := &services.LoginInput{
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
	}

	user, sess, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			log.Printf("⚠️ Invalid login for username [%s]", input.Username)
			return problem.Unauthorized(c)
		}
		log.Printf("❌ Login failed for username [%s]: %v", input.Username, err)
		return problem.Internal(c)
	}

	h.setSessionCookies(c, sess)

	return c.JSON(user)
}

// CurrentUser returns the authenticated principal's profile
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	log.Println("ℹ️ Request get /current-user")

	username, ok := c.Locals(middleware.LocalsUsername).(string)
	if !ok || username == "" {
		return problem.Unauthorized(c)
	}

	user, err := h.authService.CurrentUser(c.Context(), username)
	if err != nil {
		log.Printf("❌ Authenticated user not found in DB: %s", username)
		return problem.Internal(c)
	}

	return c.JSON(user)
}

// Logout destroys the session and clears both cookies. Idempotent: a
// request without an active session still returns 204.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sessionID := c.Cookies(middleware.SessionCookieName)
	log.Println("ℹ️ Request logout")

	h.authService.Logout(sessionID)
	h.clearSessionCookies(c)

	return c.SendStatus(fiber.StatusNoContent)
}

// CSRFTokenResponse represents the csrf endpoint body
type CSRFTokenResponse struct {
	Token string `json:"token"`
}

// CSRFToken returns the session's anti-forgery token and refreshes the
// readable cookie carrying it
func (h *AuthHandler) CSRFToken(c *fiber.Ctx) error {
	log.Println("ℹ️ Request get /csrf")

	sessionID, ok := c.Locals(middleware.LocalsSessionID).(string)
	if !ok || sessionID == "" {
		return problem.Unauthorized(c)
	}

	token, err := h.authService.CSRFToken(sessionID)
	if err != nil {
		return problem.Unauthorized(c)
	}

	h.setCSRFCookie(c, token)

	return c.JSON(CSRFTokenResponse{Token: token})
}

// setSessionCookies sets the HTTP-only session cookie and the readable
// CSRF cookie
func (h *AuthHandler) setSessionCookies(c *fiber.Ctx, sess *session.Session) {
	maxAge := int(h.authService.IdleTTL().Seconds())

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})

	h.setCSRFCookie(c, sess.CSRFToken)
}

// setCSRFCookie sets the CSRF cookie. NOT HTTP-only: the client must
// read it to echo the token in the X-XSRF-TOKEN header.
func (h *AuthHandler) setCSRFCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CSRFCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.authService.IdleTTL().Seconds()),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: false,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}

// clearSessionCookies clears the session and CSRF cookies
func (h *AuthHandler) clearSessionCookies(c *fiber.Ctx) {
	for _, name := range []string{middleware.SessionCookieName, middleware.CSRFCookieName} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Expires:  time.Now().Add(-1 * time.Hour),
			Secure:   h.cfg.Cookie.Secure,
			HTTPOnly: name == middleware.SessionCookieName,
			SameSite: h.cfg.Cookie.SameSite,
			Domain:   h.cfg.Cookie.Domain,
		})
	}
}
