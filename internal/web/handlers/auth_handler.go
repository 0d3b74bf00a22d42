package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/learnhub-portal/internal/api/dto"
	"github.com/spec-kit/learnhub-portal/internal/service"
)

// AuthHandler exposes the end-user entry pages and auth actions.
type AuthHandler struct {
	auth     *service.AuthService
	signPath string
	homePath string
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authService *service.AuthService, signPath, homePath string) *AuthHandler {
	return &AuthHandler{auth: authService, signPath: signPath, homePath: homePath}
}

// EntryPage handles GET on the sign and login routes. It echoes the returnUrl
// so the page can send the visitor back after success.
func (h *AuthHandler) EntryPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"page":      c.Path(),
			"returnUrl": c.Query("returnUrl"),
		},
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	user, err := h.auth.LoginUser(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	if returnURL := c.Query("returnUrl"); returnURL != "" {
		return c.Redirect(returnURL, fiber.StatusFound)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	}})
}

// Sign handles POST /auth/sign (registration).
func (h *AuthHandler) Sign(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "name, email, password required")
	}

	user, err := h.auth.RegisterUser(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	if returnURL := c.Query("returnUrl"); returnURL != "" {
		return c.Redirect(returnURL, fiber.StatusFound)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	}})
}

// Logout handles POST /auth/logout. The visitor lands on the sign page unless
// the request already targets it.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.auth.LogoutUser(c.UserContext())
	if c.Path() == h.signPath {
		return c.SendStatus(http.StatusNoContent)
	}
	return c.Redirect(h.signPath, fiber.StatusFound)
}

// DeleteAccount handles DELETE /account.
func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	if err := h.auth.DeleteAccount(c.UserContext()); err != nil {
		return err
	}
	return c.Redirect(h.homePath, fiber.StatusFound)
}
