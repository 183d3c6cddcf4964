package problem

import "github.com/gofiber/fiber/v2"

// Detail is the structured error body returned for 4xx/5xx responses.
// It follows the title/detail shape of RFC 7807, with an optional
// field→message map for validation failures.
type Detail struct {
	Title       string            `json:"title"`
	Status      int               `json:"status"`
	Detail      string            `json:"detail"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// NotFound sends a 404 problem body
func NotFound(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusNotFound).JSON(Detail{
		Title:  "Resource Not Found",
		Status: fiber.StatusNotFound,
		Detail: detail,
	})
}

// Validation sends a 400 problem body carrying per-field messages
func Validation(c *fiber.Ctx, fieldErrors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(Detail{
		Title:       "Validation Error",
		Status:      fiber.StatusBadRequest,
		Detail:      "Validation failed for request.",
		FieldErrors: fieldErrors,
	})
}

// BadRequest sends a 400 problem body without field errors
func BadRequest(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusBadRequest).JSON(Detail{
		Title:  "Bad Request",
		Status: fiber.StatusBadRequest,
		Detail: detail,
	})
}

// Unauthorized sends a bare 401; auth failures never carry a body
func Unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).Send(nil)
}

// Forbidden sends a 403 problem body (CSRF rejection)
func Forbidden(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusForbidden).JSON(Detail{
		Title:  "Forbidden",
		Status: fiber.StatusForbidden,
		Detail: detail,
	})
}

// Internal sends a generic 500 problem body. The real error is logged
// server-side by the caller, never echoed to the client.
func Internal(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(Detail{
		Title:  "Internal Server Error",
		Status: fiber.StatusInternalServerError,
		Detail: "An internal server error occurred. Please contact support.",
	})
}
