package session

import "sync"

// Watcher receives the authenticated state: once immediately on subscribe and
// again on every subsequent change.
type Watcher func(authenticated bool)

// broadcaster is a minimal synchronous publish/subscribe registry.
type broadcaster struct {
	mu       sync.RWMutex
	watchers []Watcher
}

func (b *broadcaster) add(w Watcher) {
	b.mu.Lock()
	b.watchers = append(b.watchers, w)
	b.mu.Unlock()
}

func (b *broadcaster) publish(authenticated bool) {
	b.mu.RLock()
	watchers := append([]Watcher{}, b.watchers...)
	b.mu.RUnlock()

	for _, w := range watchers {
		w(authenticated)
	}
}
