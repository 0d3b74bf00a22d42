// Package transport is the authorization boundary for outgoing requests: it
// attaches the selected bearer credential and classifies failures uniformly.
package transport

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/spec-kit/learnhub-portal/internal/auth"
)

// TokenSource yields a usable (non-expired) token, or empty. Implemented by
// the per-role session stores.
type TokenSource interface {
	AccessToken(ctx context.Context) string
}

// Authorizer is an http.RoundTripper that consults the credential selector
// for every outgoing request and sets the Authorization header accordingly.
// Requests with no selectable token are sent unmodified.
type Authorizer struct {
	base     http.RoundTripper
	selector *auth.Selector
	user     TokenSource
	admin    TokenSource
	logger   *zap.Logger
}

// NewAuthorizer wraps base (http.DefaultTransport when nil).
func NewAuthorizer(base http.RoundTripper, selector *auth.Selector, user, admin TokenSource, logger *zap.Logger) *Authorizer {
	if base == nil {
		base = http.DefaultTransport
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Authorizer{base: base, selector: selector, user: user, admin: admin, logger: logger}
}

// RoundTrip implements http.RoundTripper.
func (a *Authorizer) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	creds := auth.Credentials{
		UserToken:  a.user.AccessToken(ctx),
		AdminToken: a.admin.AccessToken(ctx),
	}

	if tok := a.selector.SelectToken(req.URL.String(), creds); tok != "" {
		// RoundTrippers must not mutate the caller's request
		req = req.Clone(ctx)
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	return a.base.RoundTrip(req)
}
