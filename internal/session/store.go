// Package session owns the per-role credential lifecycle: persistence,
// proactive expiry, and the reactive authenticated signal.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/learnhub-portal/internal/domain"
	"github.com/spec-kit/learnhub-portal/internal/session/storage"
	"github.com/spec-kit/learnhub-portal/internal/token"
)

// Config bundles the dependencies of a Store.
type Config struct {
	Role    domain.Role
	Storage storage.Storage
	Logger  *zap.Logger
	// OnLogout runs after a logout has cleared the credential. The web layer
	// uses it to redirect to the role's entry page when not already there.
	OnLogout func(role domain.Role)
}

// Store manages the single credential of one role. Each role's Store is
// constructed once at process start and owns that role's expiry timer
// exclusively.
type Store struct {
	role      domain.Role
	storage   storage.Storage
	logger    *zap.Logger
	scheduler *Scheduler
	watchers  broadcaster
	onLogout  func(domain.Role)

	// mu orders credential writes against the expiry callback. gen is bumped
	// on every write; a timer callback carrying an older generation must not
	// touch the newer credential. cleared marks the current generation as
	// already logged out.
	mu      sync.Mutex
	gen     uint64
	cleared bool
}

// NewStore builds the store and restores any persisted session for the role.
func NewStore(cfg Config) *Store {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		role:      cfg.Role,
		storage:   cfg.Storage,
		logger:    logger.With(zap.String("role", string(cfg.Role))),
		scheduler: NewScheduler(),
		onLogout:  cfg.OnLogout,
	}
	if err := s.Restore(context.Background()); err != nil {
		s.logger.Warn("session restore failed", zap.Error(err))
	}
	return s
}

// Role identifies which credential this store owns.
func (s *Store) Role() domain.Role {
	return s.role
}

// Token returns the raw persisted token, or empty when absent. Storage
// failures are treated as an absent credential.
func (s *Store) Token(ctx context.Context) string {
	tok, err := s.storage.Load(ctx, s.role)
	if err != nil {
		s.logger.Warn("credential load failed", zap.Error(err))
		return ""
	}
	return tok
}

// AccessToken returns the token only while it is still valid. An expired
// token triggers Logout as a documented side effect and yields empty, so a
// returned token is always usable regardless of whether the proactive timer
// has fired yet.
func (s *Store) AccessToken(ctx context.Context) string {
	tok := s.Token(ctx)
	if tok == "" {
		return ""
	}
	if token.IsExpired(tok) {
		s.logger.Info("token expired on access")
		s.Logout(ctx)
		return ""
	}
	return tok
}

// SetToken persists a freshly issued token and re-arms the expiry timer.
// Writing bumps the credential generation, so both the previous timer and
// any expiry callback already in flight for the replaced token become no-ops.
func (s *Store) SetToken(ctx context.Context, tok string) error {
	s.mu.Lock()
	if err := s.storage.Save(ctx, s.role, tok); err != nil {
		s.mu.Unlock()
		return err
	}
	s.gen++
	s.cleared = false
	gen := s.gen
	s.scheduler.Arm(tok, func() { s.expire(gen) })
	s.mu.Unlock()
	s.watchers.publish(!token.IsExpired(tok))
	return nil
}

// Logout clears the credential, cancels the timer, and publishes the
// unauthenticated state. Each stored credential is cleared at most once:
// repeated calls for the same generation return without touching storage,
// and only a new SetToken re-enables the clear.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	cleared := s.logoutLocked(ctx)
	s.mu.Unlock()
	if cleared {
		s.finishLogout()
	}
}

func (s *Store) logoutLocked(ctx context.Context) bool {
	if s.cleared {
		return false
	}
	s.cleared = true
	if err := s.storage.Delete(ctx, s.role); err != nil {
		s.logger.Warn("credential delete failed", zap.Error(err))
	}
	s.scheduler.Cancel()
	return true
}

func (s *Store) finishLogout() {
	s.watchers.publish(false)
	s.logger.Info("logged out")
	if s.onLogout != nil {
		s.onLogout(s.role)
	}
}

// IsAuthenticated reports whether a non-expired credential is present. Unlike
// AccessToken it has no side effects, for synchronous checks.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	return s.Session(ctx).IsAuthenticated
}

// Session returns a point-in-time snapshot of the role's authentication
// state, including the token's expiry when one is present.
func (s *Store) Session(ctx context.Context) domain.Session {
	sess := domain.Session{Role: s.role}
	tok := s.Token(ctx)
	if tok == "" {
		return sess
	}
	if exp, ok := token.Expiry(tok); ok {
		sess.ExpiresAt = &exp
	}
	sess.IsAuthenticated = !token.IsExpired(tok)
	return sess
}

// Restore revalidates the persisted credential: a live token re-arms the
// expiry timer, an expired one is cleared.
func (s *Store) Restore(ctx context.Context) error {
	tok, err := s.storage.Load(ctx, s.role)
	if err != nil {
		return err
	}
	if tok == "" {
		return nil
	}
	s.mu.Lock()
	s.gen++
	s.cleared = false
	gen := s.gen
	if token.IsExpired(tok) {
		cleared := s.logoutLocked(ctx)
		s.mu.Unlock()
		if cleared {
			s.finishLogout()
		}
		return nil
	}
	s.scheduler.Arm(tok, func() { s.expire(gen) })
	s.mu.Unlock()
	return nil
}

// Subscribe registers a watcher. The current authenticated state is delivered
// immediately, then on every change.
func (s *Store) Subscribe(w Watcher) {
	s.watchers.add(w)
	w(s.IsAuthenticated(context.Background()))
}

// Close tears down the expiry timer at process shutdown.
func (s *Store) Close() {
	s.scheduler.Cancel()
}

// expire runs from the scheduler goroutine. A callback that started before
// its token was replaced carries a stale generation and is discarded here.
func (s *Store) expire(gen uint64) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	cleared := s.logoutLocked(context.Background())
	s.mu.Unlock()
	if !cleared {
		return
	}
	s.logger.Info("session expired")
	s.finishLogout()
}
