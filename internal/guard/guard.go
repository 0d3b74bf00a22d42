// Package guard gates navigation to protected routes. A navigation attempt
// ends in exactly one of two states: authorized, or redirected to an entry
// point carrying the originally requested path.
package guard

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/learnhub-portal/internal/session"
)

// Decision is the terminal state of one navigation attempt.
type Decision struct {
	Authorized bool
	RedirectTo string
}

// Request describes one navigation attempt against a user-scoped route.
type Request struct {
	Path string
	// RedirectToSign selects the registration page instead of the login page
	// as the unauthenticated redirect target.
	RedirectToSign bool
}

// UserGuard protects end-user routes with a synchronous session check.
type UserGuard struct {
	sessions  *session.Store
	signPath  string
	loginPath string
}

// NewUserGuard builds the guard around the user session store.
func NewUserGuard(sessions *session.Store, signPath, loginPath string) *UserGuard {
	return &UserGuard{sessions: sessions, signPath: signPath, loginPath: loginPath}
}

// Check evaluates one navigation attempt.
func (g *UserGuard) Check(ctx context.Context, req Request) Decision {
	if g.sessions.Session(ctx).IsAuthenticated {
		return Decision{Authorized: true}
	}
	target := g.loginPath
	if req.RedirectToSign {
		target = g.signPath
	}
	return Decision{RedirectTo: withReturnURL(target, req.Path)}
}

// Middleware adapts the guard to a fiber handler for one route group.
func (g *UserGuard) Middleware(redirectToSign bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := g.Check(c.UserContext(), Request{
			Path:           c.OriginalURL(),
			RedirectToSign: redirectToSign,
		})
		if decision.Authorized {
			return c.Next()
		}
		return c.Redirect(decision.RedirectTo, fiber.StatusFound)
	}
}

// AdminGuard protects back-office routes. It first restores and revalidates
// the persisted admin session, then checks authentication.
type AdminGuard struct {
	sessions  *session.Store
	loginPath string
}

// NewAdminGuard builds the guard around the admin session store.
func NewAdminGuard(sessions *session.Store, loginPath string) *AdminGuard {
	return &AdminGuard{sessions: sessions, loginPath: loginPath}
}

// Check evaluates one navigation attempt. A storage failure counts as
// unauthenticated.
func (g *AdminGuard) Check(ctx context.Context, path string) Decision {
	if err := g.sessions.Restore(ctx); err != nil {
		return Decision{RedirectTo: withReturnURL(g.loginPath, path)}
	}
	if g.sessions.Session(ctx).IsAuthenticated {
		return Decision{Authorized: true}
	}
	return Decision{RedirectTo: withReturnURL(g.loginPath, path)}
}

// Middleware adapts the guard to a fiber handler.
func (g *AdminGuard) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := g.Check(c.UserContext(), c.OriginalURL())
		if decision.Authorized {
			return c.Next()
		}
		return c.Redirect(decision.RedirectTo, fiber.StatusFound)
	}
}

// withReturnURL appends the requested path verbatim so the entry page can
// send the visitor back after a successful login.
func withReturnURL(target, path string) string {
	if path == "" {
		return target
	}
	return target + "?returnUrl=" + path
}
