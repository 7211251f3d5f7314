package cache

import (
	"sync"
	"time"

	"pickup.app/resolver/model"
)

const DefaultTTL = 5 * time.Minute

// Entry is a cached resolve response and the moment it was computed.
type Entry struct {
	Response model.ResolveResponse
	StoredAt time.Time
}

// Cache memoizes positive resolve responses for a short TTL.
type Cache interface {
	// Get returns the entry only while it is younger than the TTL.
	Get(key string) (Entry, bool)
	Set(key string, resp model.ResolveResponse, now time.Time)
	// Sweep removes entries that expired at now and reports how many were removed.
	Sweep(now time.Time) int
	// Clear removes every entry and reports how many were removed.
	Clear() int
	Len() int
	TTL() time.Duration
}

// Memory is a Cache backed by a map guarded by a RWMutex.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemory creates an in-process cache. A nil clock means time.Now.
func NewMemory(ttl time.Duration, now func() time.Time) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Memory{
		entries: make(map[string]Entry),
		ttl:     ttl,
		now:     now,
	}
}

func (m *Memory) Get(key string) (Entry, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return Entry{}, false
	}
	// expired entries stay until the next sweep
	if m.now().Sub(e.StoredAt) >= m.ttl {
		return Entry{}, false
	}
	return e, true
}

func (m *Memory) Set(key string, resp model.ResolveResponse, now time.Time) {
	// offers are copied so later edits by the caller cannot reach the cached value
	offers := make([]model.OfferView, len(resp.Offers))
	copy(offers, resp.Offers)
	resp.Offers = offers

	m.mu.Lock()
	m.entries[key] = Entry{Response: resp, StoredAt: now}
	m.mu.Unlock()
}

func (m *Memory) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for k, e := range m.entries {
		if now.Sub(e.StoredAt) >= m.ttl {
			delete(m.entries, k)
			removed++
		}
	}
	return removed
}

func (m *Memory) Clear() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.entries)
	m.entries = make(map[string]Entry)
	return n
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Memory) TTL() time.Duration {
	return m.ttl
}
