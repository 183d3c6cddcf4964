package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"staffhub/internal/adapters/persistence/models"
	"staffhub/internal/core/domain"
	"staffhub/internal/core/services"
	"staffhub/internal/pkg/problem"

	"github.com/gofiber/fiber/v2"
)

// EmployeeHandler handles the employee CRUD endpoints
type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// EmployeeRequest represents the employee payload for create/replace.
// The id is never trusted from input; create ignores it and replace
// takes it from the path.
type EmployeeRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// toModel converts the request payload to a model without an id
func (r *EmployeeRequest) toModel() *models.Employee {
	return &models.Employee{
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Role:      strings.TrimSpace(r.Role),
	}
}

// validate reports a message per blank required field
func (r *EmployeeRequest) validate() map[string]string {
	fieldErrors := map[string]string{}
	if strings.TrimSpace(r.FirstName) == "" {
		fieldErrors["firstName"] = "First name is required"
	}
	if strings.TrimSpace(r.LastName) == "" {
		fieldErrors["lastName"] = "Last name is required"
	}
	if strings.TrimSpace(r.Role) == "" {
		fieldErrors["role"] = "Role is required"
	}
	return fieldErrors
}

// List returns all employees
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	log.Println("ℹ️ Request getEmployees")

	employees, err := h.employeeService.FindAll(c.Context())
	if err != nil {
		log.Printf("❌ FindAll failed: %v", err)
		return problem.Internal(c)
	}

	return c.JSON(models.ToResponseList(employees))
}

// GetByID returns one employee
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return problem.BadRequest(c, "Invalid employee id")
	}
	log.Printf("ℹ️ Request getEmployee [id=%d]", id)

	employee, err := h.employeeService.FindByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return problem.NotFound(c, employeeNotFoundDetail(id))
		}
		log.Printf("❌ FindByID %d failed: %v", id, err)
		return problem.Internal(c)
	}

	return c.JSON(employee.ToResponse())
}

// Create persists a new employee and returns 201 with a Location header
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return problem.BadRequest(c, "Invalid request body")
	}
	log.Printf("ℹ️ Request createEmployee [firstName=%s lastName=%s role=%s]", req.FirstName, req.LastName, req.Role)

	if fieldErrors := req.validate(); len(fieldErrors) > 0 {
		return problem.Validation(c, fieldErrors)
	}

	saved, err := h.employeeService.Create(c.Context(), req.toModel())
	if err != nil {
		log.Printf("❌ Create failed: %v", err)
		return problem.Internal(c)
	}

	c.Set(fiber.HeaderLocation, fmt.Sprintf("/api/employees/%d", saved.ID))
	return c.Status(fiber.StatusCreated).JSON(saved.ToResponse())
}

// Replace upserts the employee at the given id: full replace of the
// three mutable fields when present, insert carrying the id when not
func (h *EmployeeHandler) Replace(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return problem.BadRequest(c, "Invalid employee id")
	}

	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return problem.BadRequest(c, "Invalid request body")
	}
	log.Printf("ℹ️ Request replaceEmployee [id=%d]", id)

	if fieldErrors := req.validate(); len(fieldErrors) > 0 {
		return problem.Validation(c, fieldErrors)
	}

	saved, err := h.employeeService.Upsert(c.Context(), id, req.toModel())
	if err != nil {
		log.Printf("❌ Upsert %d failed: %v", id, err)
		return problem.Internal(c)
	}

	return c.JSON(saved.ToResponse())
}

// Delete removes an employee, 404 when absent
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return problem.BadRequest(c, "Invalid employee id")
	}
	log.Printf("ℹ️ Request deleteEmployee [id=%d]", id)

	if err := h.employeeService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return problem.NotFound(c, employeeNotFoundDetail(id))
		}
		log.Printf("❌ Delete %d failed: %v", id, err)
		return problem.Internal(c)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// parseID parses the id path parameter
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func employeeNotFoundDetail(id uint) string {
	return fmt.Sprintf("Could not find employee with id [=%d]", id)
}
