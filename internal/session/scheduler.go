package session

import (
	"sync"
	"time"

	"github.com/spec-kit/learnhub-portal/internal/token"
)

// Scheduler arms a one-shot timer at a token's expiry instant so a session is
// invalidated even when the portal sees no traffic. At most one timer is
// outstanding at any time.
type Scheduler struct {
	mu    sync.Mutex
	timer *time.Timer
}

// NewScheduler returns an unarmed scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Arm cancels any pending timer and schedules onExpire once at the token's
// expiry. When the expiry cannot be determined nothing is armed; the lazy
// check in Store.AccessToken remains the safety net.
func (s *Scheduler) Arm(tokenStr string, onExpire func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	exp, ok := token.Expiry(tokenStr)
	if !ok {
		return
	}
	delay := time.Until(exp)
	if delay < 0 {
		delay = 0
	}
	s.timer = time.AfterFunc(delay, onExpire)
}

// Cancel clears any pending timer. Safe to call when none is armed.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Scheduler) stopLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
