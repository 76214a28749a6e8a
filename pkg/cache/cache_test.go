package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStore_SetGet(t *testing.T) {
	s := New(time.Hour)
	s.Set("gist-abc", "value")

	got, ok := s.Get("gist-abc")
	assert.True(t, ok)
	assert.Equal(t, "value", got)
}

func TestStore_MissingKey(t *testing.T) {
	s := New(time.Hour)

	_, ok := s.Get("imgur-missing")
	assert.False(t, ok)
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	s := New(time.Hour)

	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	s.Set("gist-abc", "value")

	clock = clock.Add(30 * time.Minute)
	_, ok := s.Get("gist-abc")
	assert.True(t, ok, "entry should still be live before the TTL")

	clock = clock.Add(31 * time.Minute)
	_, ok = s.Get("gist-abc")
	assert.False(t, ok, "entry should be gone after the TTL")

	// Expired entry was deleted, not just hidden.
	s.mu.Lock()
	_, present := s.entries["gist-abc"]
	s.mu.Unlock()
	assert.False(t, present)
}

func TestStore_LastWriterWins(t *testing.T) {
	s := New(time.Hour)
	s.Set("imgur-a", "first")
	s.Set("imgur-a", "second")

	got, _ := s.Get("imgur-a")
	assert.Equal(t, "second", got)
}

func TestStore_Delete(t *testing.T) {
	s := New(time.Hour)
	s.Set("gist-a", "v")
	s.Delete("gist-a")

	_, ok := s.Get("gist-a")
	assert.False(t, ok)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "gist-abc123", Key("gist", "abc123"))
	assert.Equal(t, "imgur-xyz", Key("imgur", "xyz"))
}
