package utils

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLMap(t *testing.T) {
	ttl := 100 * time.Millisecond
	m := NewTTLMap[string, int](ttl)

	t.Run("set and get", func(t *testing.T) {
		m.Set("client1", 123)

		value, ok := m.Get("client1")
		assert.True(t, ok)
		assert.Equal(t, 123, value)
	})

	t.Run("entry expires after the TTL", func(t *testing.T) {
		m.Set("client2", 456)
		time.Sleep(ttl + 50*time.Millisecond)

		_, ok := m.Get("client2")
		assert.False(t, ok)
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		m.Set("client3", 789)
		m.Delete("client3")

		_, ok := m.Get("client3")
		assert.False(t, ok)
	})

	t.Run("missing key", func(t *testing.T) {
		_, ok := m.Get("missing")
		assert.False(t, ok)
	})

	t.Run("set overwrites and resets expiry", func(t *testing.T) {
		m.Set("client4", 111)
		m.Set("client4", 222)

		value, ok := m.Get("client4")
		assert.True(t, ok)
		assert.Equal(t, 222, value)
	})
}

func TestTTLMapConcurrent(t *testing.T) {
	m := NewTTLMap[string, int](100 * time.Millisecond)

	var wg sync.WaitGroup

	wg.Add(2)

	go func() {
		defer wg.Done()

		for i := range 100 {
			m.Set("key", i)
		}
	}()

	go func() {
		defer wg.Done()

		for range 100 {
			m.Get("key")
		}
	}()

	wg.Wait()
}
