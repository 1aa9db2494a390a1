package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryLedger is the single-process stand-in for Client when redis is unavailable.
type MemoryLedger struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (m *MemoryLedger) Claim(_ context.Context, key string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if expiry, ok := m.entries[key]; ok && now.Before(expiry) {
		return false, nil
	}
	m.entries[key] = now.Add(ttl)

	for k, expiry := range m.entries {
		if !now.Before(expiry) {
			delete(m.entries, k)
		}
	}
	return true, nil
}

func (m *MemoryLedger) Release(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
