package api

import (
	"context"
	"net/http"

	"github.com/spec-kit/learnhub-portal/internal/domain"
)

// Me fetches the signed-in user's profile.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAccount removes the signed-in user's account on the server. The
// caller is responsible for destroying the local credential afterwards.
func (c *Client) DeleteAccount(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/users/me", nil, nil)
}
