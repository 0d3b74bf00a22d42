package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/learnhub-portal/internal/api"
	"github.com/spec-kit/learnhub-portal/internal/domain"
	"github.com/spec-kit/learnhub-portal/internal/session"
)

// AuthService coordinates login flows between the remote API and the local
// per-role session stores.
type AuthService struct {
	api    *api.Client
	users  *session.Store
	admins *session.Store
	logger *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(apiClient *api.Client, users, admins *session.Store, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{api: apiClient, users: users, admins: admins, logger: logger}
}

// LoginUser authenticates an end-user and stores the issued credential.
func (s *AuthService) LoginUser(ctx context.Context, email, password string) (*domain.User, error) {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.users.SetToken(ctx, resp.Token); err != nil {
		return nil, err
	}
	s.logger.Info("user logged in", zap.String("email", email))
	return &domain.User{ID: resp.ID, Name: resp.Name, Email: resp.Email}, nil
}

// RegisterUser creates an account and signs it in.
func (s *AuthService) RegisterUser(ctx context.Context, name, email, password string) (*domain.User, error) {
	resp, err := s.api.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.users.SetToken(ctx, resp.Token); err != nil {
		return nil, err
	}
	s.logger.Info("user registered", zap.String("email", email))
	return &domain.User{ID: resp.ID, Name: resp.Name, Email: resp.Email}, nil
}

// LoginAdmin authenticates a back-office operator and stores the credential.
func (s *AuthService) LoginAdmin(ctx context.Context, username, password string) (*domain.AdminAccount, error) {
	resp, err := s.api.AdminLogin(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if err := s.admins.SetToken(ctx, resp.Token); err != nil {
		return nil, err
	}
	s.logger.Info("admin logged in", zap.String("username", username))
	return &domain.AdminAccount{Username: resp.Username, Role: resp.Role}, nil
}

// LogoutUser destroys the end-user credential.
func (s *AuthService) LogoutUser(ctx context.Context) {
	s.users.Logout(ctx)
}

// LogoutAdmin destroys the admin credential.
func (s *AuthService) LogoutAdmin(ctx context.Context) {
	s.admins.Logout(ctx)
}

// DeleteAccount removes the user's account remotely, then destroys the local
// credential.
func (s *AuthService) DeleteAccount(ctx context.Context) error {
	if err := s.api.DeleteAccount(ctx); err != nil {
		return err
	}
	s.users.Logout(ctx)
	return nil
}
