package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/learnhub-portal/internal/api"
)

// PagesHandler serves the storefront page payloads by querying the remote API.
type PagesHandler struct {
	api *api.Client
}

// NewPagesHandler constructs the handler.
func NewPagesHandler(apiClient *api.Client) *PagesHandler {
	return &PagesHandler{api: apiClient}
}

// Courses handles GET /lms/courses.
func (h *PagesHandler) Courses(c *fiber.Ctx) error {
	courses, err := h.api.Courses(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": courses})
}

// CourseDetail handles GET /lms/courses/:id.
func (h *PagesHandler) CourseDetail(c *fiber.Ctx) error {
	course, err := h.api.Course(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": course})
}

// Books handles GET /lms/books.
func (h *PagesHandler) Books(c *fiber.Ctx) error {
	books, err := h.api.Books(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": books})
}

// MyBooks handles GET /lms/my-books (user-guarded).
func (h *PagesHandler) MyBooks(c *fiber.Ctx) error {
	books, err := h.api.MyBooks(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": books})
}

// LearningPaths handles GET /lms/learning-paths.
func (h *PagesHandler) LearningPaths(c *fiber.Ctx) error {
	paths, err := h.api.LearningPaths(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": paths})
}

// Tools handles GET /lms/tools.
func (h *PagesHandler) Tools(c *fiber.Ctx) error {
	tools, err := h.api.Tools(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": tools})
}
