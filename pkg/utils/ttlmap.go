package utils

import (
	"sync"
	"time"
)

// entry pairs a stored value with its expiry deadline.
type entry[V any] struct {
	value    V
	deadline time.Time
}

// TTLMap is a thread-safe map whose entries expire after a fixed TTL.
// The rate limiter uses it to keep per-client state without growing
// unbounded across idle clients.
type TTLMap[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]entry[V]
	ttl     time.Duration
}

// NewTTLMap creates a TTLMap and starts its background sweeper.
func NewTTLMap[K comparable, V any](ttl time.Duration) *TTLMap[K, V] {
	m := &TTLMap[K, V]{
		entries: make(map[K]entry[V]),
		ttl:     ttl,
	}

	go m.sweep()

	return m
}

// Get returns the value for key and whether it exists and has not expired.
func (m *TTLMap[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[key]
	if !ok || time.Now().After(e.deadline) {
		var zero V
		return zero, false
	}

	return e.value, true
}

// Set stores value under key, resetting its expiry.
func (m *TTLMap[K, V]) Set(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry[V]{value: value, deadline: time.Now().Add(m.ttl)}
}

// Delete removes key from the map.
func (m *TTLMap[K, V]) Delete(key K) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
}

// sweep drops expired entries once per TTL interval.
func (m *TTLMap[K, V]) sweep() {
	ticker := time.NewTicker(m.ttl)
	defer ticker.Stop()

	for range ticker.C {
		m.mu.Lock()

		now := time.Now()
		for key, e := range m.entries {
			if now.After(e.deadline) {
				delete(m.entries, key)
			}
		}

		m.mu.Unlock()
	}
}
