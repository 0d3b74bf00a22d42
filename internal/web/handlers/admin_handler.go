package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/learnhub-portal/internal/api"
	"github.com/spec-kit/learnhub-portal/internal/api/dto"
	"github.com/spec-kit/learnhub-portal/internal/service"
)

// AdminHandler exposes the back-office pages and actions.
type AdminHandler struct {
	auth      *service.AuthService
	api       *api.Client
	loginPath string
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(authService *service.AuthService, apiClient *api.Client, loginPath string) *AdminHandler {
	return &AdminHandler{auth: authService, api: apiClient, loginPath: loginPath}
}

// LoginPage handles GET /admin/login.
func (h *AdminHandler) LoginPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"page":      c.Path(),
			"returnUrl": c.Query("returnUrl"),
		},
	})
}

// Login handles POST /admin/login.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	account, err := h.auth.LoginAdmin(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	if returnURL := c.Query("returnUrl"); returnURL != "" {
		return c.Redirect(returnURL, fiber.StatusFound)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"username": account.Username,
		"role":     account.Role,
	}})
}

// Logout handles POST /admin/logout.
func (h *AdminHandler) Logout(c *fiber.Ctx) error {
	h.auth.LogoutAdmin(c.UserContext())
	if c.Path() == h.loginPath {
		return c.SendStatus(http.StatusNoContent)
	}
	return c.Redirect(h.loginPath, fiber.StatusFound)
}

// Users handles GET /admin/users.
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	users, err := h.api.AdminUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": users})
}

// DeleteUser handles DELETE /admin/users/:id.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.api.AdminDeleteUser(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// CreateCourse handles POST /admin/courses.
func (h *AdminHandler) CreateCourse(c *fiber.Ctx) error {
	var req dto.CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	course, err := h.api.AdminCreateCourse(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": course})
}

// UpdateCourse handles PUT /admin/courses/:id.
func (h *AdminHandler) UpdateCourse(c *fiber.Ctx) error {
	var req dto.CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	course, err := h.api.AdminUpdateCourse(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": course})
}

// DeleteCourse handles DELETE /admin/courses/:id.
func (h *AdminHandler) DeleteCourse(c *fiber.Ctx) error {
	if err := h.api.AdminDeleteCourse(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
