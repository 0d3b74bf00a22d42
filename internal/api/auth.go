package api

import (
	"context"
	"net/http"

	"github.com/spec-kit/learnhub-portal/internal/api/dto"
)

// Login authenticates an end-user and returns the issued token with the
// user's profile fields.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", dto.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new end-user account and signs it in.
func (c *Client) Register(ctx context.Context, name, email, password string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", dto.RegisterRequest{Name: name, Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminLogin authenticates a back-office operator.
func (c *Client) AdminLogin(ctx context.Context, username, password string) (*dto.AdminLoginResponse, error) {
	var out dto.AdminLoginResponse
	err := c.do(ctx, http.MethodPost, "/admin/login", dto.AdminLoginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
