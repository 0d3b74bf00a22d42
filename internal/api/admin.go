package api

import (
	"context"
	"net/http"

	"github.com/spec-kit/learnhub-portal/internal/api/dto"
	"github.com/spec-kit/learnhub-portal/internal/domain"
)

// AdminUsers lists registered users for the back-office.
func (c *Client) AdminUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminDeleteUser removes a user account.
func (c *Client) AdminDeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/users/"+id, nil, nil)
}

// AdminCreateCourse creates a course.
func (c *Client) AdminCreateCourse(ctx context.Context, req dto.CourseRequest) (*domain.Course, error) {
	var out domain.Course
	if err := c.do(ctx, http.MethodPost, "/admin/courses", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminUpdateCourse updates a course.
func (c *Client) AdminUpdateCourse(ctx context.Context, id string, req dto.CourseRequest) (*domain.Course, error) {
	var out domain.Course
	if err := c.do(ctx, http.MethodPut, "/admin/courses/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminDeleteCourse removes a course.
func (c *Client) AdminDeleteCourse(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/courses/"+id, nil, nil)
}
