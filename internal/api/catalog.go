package api

import (
	"context"
	"net/http"

	"github.com/spec-kit/learnhub-portal/internal/domain"
)

// Courses lists the storefront courses.
func (c *Client) Courses(ctx context.Context) ([]domain.Course, error) {
	var out []domain.Course
	if err := c.do(ctx, http.MethodGet, "/lms/courses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Course fetches one course by ID.
func (c *Client) Course(ctx context.Context, id string) (*domain.Course, error) {
	var out domain.Course
	if err := c.do(ctx, http.MethodGet, "/lms/courses/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Books lists the storefront books.
func (c *Client) Books(ctx context.Context) ([]domain.Book, error) {
	var out []domain.Book
	if err := c.do(ctx, http.MethodGet, "/lms/books", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyBooks lists the signed-in user's purchased books.
func (c *Client) MyBooks(ctx context.Context) ([]domain.Book, error) {
	var out []domain.Book
	if err := c.do(ctx, http.MethodGet, "/lms/my-books", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LearningPaths lists the published learning paths.
func (c *Client) LearningPaths(ctx context.Context) ([]domain.LearningPath, error) {
	var out []domain.LearningPath
	if err := c.do(ctx, http.MethodGet, "/lms/learning-paths", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Tools lists the auxiliary learning tools.
func (c *Client) Tools(ctx context.Context) ([]domain.Tool, error) {
	var out []domain.Tool
	if err := c.do(ctx, http.MethodGet, "/lms/tools", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
