// Package inflight provides a per-key guard for operations that must not
// overlap. The livreur-assignment flow uses it to reject a second assignment
// request for an order whose first request is still waiting on the server.
package inflight

import (
	"sync"
)

// Guard tracks keys with an operation in flight. The zero value is not
// usable; create guards with NewGuard.
type Guard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

// NewGuard creates an empty Guard.
func NewGuard() *Guard {
	return &Guard{
		active: make(map[string]struct{}),
	}
}

// TryAcquire marks the key as in flight. It returns false without blocking
// when the key is already held.
func (g *Guard) TryAcquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, held := g.active[key]; held {
		return false
	}

	g.active[key] = struct{}{}
	return true
}

// Release frees the key. Releasing a key that is not held is a no-op, so
// callers can defer it unconditionally.
func (g *Guard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.active, key)
}
