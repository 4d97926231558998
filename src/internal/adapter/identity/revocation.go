package identity

import (
	"context"
	"sync"
	"time"
)

// RevocationList remembers revoked assertion ids until the assertion would
// have expired anyway.
type RevocationList interface {
	Revoke(ctx context.Context, id string, until time.Time) error
	IsRevoked(ctx context.Context, id string) (bool, error)
}

type MemoryRevocationList struct {
	mu      sync.Mutex
	now     func() time.Time
	revoked map[string]time.Time
}

func NewMemoryRevocationList() *MemoryRevocationList {
	return &MemoryRevocationList{
		now:     time.Now,
		revoked: make(map[string]time.Time),
	}
}

func (l *MemoryRevocationList) Revoke(_ context.Context, id string, until time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.purge()
	l.revoked[id] = until
	return nil
}

func (l *MemoryRevocationList) IsRevoked(_ context.Context, id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	until, ok := l.revoked[id]
	if !ok {
		return false, nil
	}
	if !l.now().Before(until) {
		delete(l.revoked, id)
		return false, nil
	}
	return true, nil
}

func (l *MemoryRevocationList) purge() {
	now := l.now()
	for id, until := range l.revoked {
		if !now.Before(until) {
			delete(l.revoked, id)
		}
	}
}
