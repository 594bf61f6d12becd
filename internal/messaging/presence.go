package messaging

import (
	"sync"

	"github.com/google/uuid"
)

// Conn is a live connection handle as the router sees it. Send must be safe
// for concurrent callers.
type Conn interface {
	Send(v any) error
	Close() error
}

// PresenceRegistry is the process-wide map from user identity to their live
// connection. It owns its synchronization; callers never iterate or mutate
// the underlying structure directly.
type PresenceRegistry struct {
	mu    sync.RWMutex
	conns map[uuid.UUID]Conn
}

func NewPresenceRegistry() *PresenceRegistry {
	return &PresenceRegistry{conns: make(map[uuid.UUID]Conn)}
}

// Connect registers a live handle for the user. A reconnect displaces the
// previous handle, which is closed so it cannot silently race the new one.
func (p *PresenceRegistry) Connect(userID uuid.UUID, c Conn) {
	p.mu.Lock()
	prev := p.conns[userID]
	p.conns[userID] = c
	p.mu.Unlock()

	if prev != nil && prev != c {
		_ = prev.Close()
	}
}

// Disconnect removes the user's entry, but only if it still belongs to the
// departing handle; a handle displaced by a reconnect must not evict its
// replacement.
func (p *PresenceRegistry) Disconnect(userID uuid.UUID, c Conn) {
	p.mu.Lock()
	if current, ok := p.conns[userID]; ok && current == c {
		delete(p.conns, userID)
	}
	p.mu.Unlock()
}

func (p *PresenceRegistry) Lookup(userID uuid.UUID) (Conn, bool) {
	p.mu.RLock()
	c, ok := p.conns[userID]
	p.mu.RUnlock()
	return c, ok
}

// Online reports how many users currently hold a live connection.
func (p *PresenceRegistry) Online() int {
	p.mu.RLock()
	n := len(p.conns)
	p.mu.RUnlock()
	return n
}
