package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yomu-reader/yomu/pkg/data"
)

// fakeStore is an in-memory ProgressStore recording every save.
type fakeStore struct {
	records map[string]*data.Progress
	saves   int
	failAll bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string]*data.Progress{}}
}

func (f *fakeStore) SaveProgress(p *data.Progress) error {
	if f.failAll {
		return errors.New("storage unavailable")
	}
	f.saves++
	cp := *p
	f.records[p.Key()] = &cp
	return nil
}

func (f *fakeStore) GetProgress(source, sourceID, chapter string) (*data.Progress, error) {
	return f.records[source+":"+sourceID+":"+chapter], nil
}

func pages(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("https://example.com/%02d.png", i+1)
	}
	return out
}

func TestMount_FreshChapterStartsAtPageOne(t *testing.T) {
	s := Mount(newFakeStore(), "gist", "abc", "1", pages(10))

	assert.Equal(t, 1, s.Page())
	assert.Equal(t, 10, s.TotalPages())
	assert.Equal(t, Single, s.Mode())
}

func TestMount_ResumesFromStoredProgress(t *testing.T) {
	store := newFakeStore()
	store.records["gist:abc:1"] = &data.Progress{
		Source: "gist", SourceID: "abc", Chapter: "1", Page: 5, TotalPages: 10,
	}

	s := Mount(store, "gist", "abc", "1", pages(10))
	assert.Equal(t, 5, s.Page())
}

func TestMount_ClampsStaleProgress(t *testing.T) {
	store := newFakeStore()
	store.records["gist:abc:1"] = &data.Progress{
		Source: "gist", SourceID: "abc", Chapter: "1", Page: 5, TotalPages: 10,
	}

	// The chapter shrank since the record was written.
	s := Mount(store, "gist", "abc", "1", pages(3))
	assert.Equal(t, 3, s.Page())
}

func TestMount_DoesNotWriteProgress(t *testing.T) {
	store := newFakeStore()
	Mount(store, "gist", "abc", "1", pages(10))

	assert.Zero(t, store.saves, "mount must only read persisted state")
}

func TestMount_EmptyChapter(t *testing.T) {
	s := Mount(newFakeStore(), "gist", "abc", "1", nil)

	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.TotalPages())
	assert.Empty(t, s.Visible())
	assert.False(t, s.Advance())
	assert.False(t, s.Retreat())
}

func TestAdvance_SingleMode(t *testing.T) {
	s := Mount(newFakeStore(), "gist", "abc", "1", pages(3))

	assert.True(t, s.Advance())
	assert.Equal(t, 2, s.Page())
	assert.True(t, s.Advance())
	assert.Equal(t, 3, s.Page())
	assert.False(t, s.Advance(), "advance past the last page is a no-op")
	assert.Equal(t, 3, s.Page())
}

func TestAdvance_DoubleModeStopsBeforeOverrun(t *testing.T) {
	store := newFakeStore()
	store.records["gist:abc:1"] = &data.Progress{
		Source: "gist", SourceID: "abc", Chapter: "1", Page: 9, TotalPages: 10,
	}
	s := Mount(store, "gist", "abc", "1", pages(10))
	s.ToggleMode()

	// From page 9 of 10 in double mode there is no page 11 to land on.
	assert.False(t, s.Advance())
	assert.Equal(t, 9, s.Page())
	assert.False(t, s.Advance())
	assert.Equal(t, 9, s.Page())
}

func TestRetreat_ClampsToPageOne(t *testing.T) {
	store := newFakeStore()
	store.records["gist:abc:1"] = &data.Progress{
		Source: "gist", SourceID: "abc", Chapter: "1", Page: 2, TotalPages: 10,
	}
	s := Mount(store, "gist", "abc", "1", pages(10))
	s.ToggleMode()

	assert.True(t, s.Retreat())
	assert.Equal(t, 1, s.Page())
	assert.False(t, s.Retreat(), "retreat from page 1 is a no-op")
	assert.Equal(t, 1, s.Page())
}

func TestNavigation_PersistsEachMove(t *testing.T) {
	store := newFakeStore()
	s := Mount(store, "gist", "abc", "4", pages(10))

	s.Advance()
	s.Advance()
	s.Retreat()

	assert.Equal(t, 3, store.saves)
	saved := store.records["gist:abc:4"]
	require.NotNil(t, saved)
	assert.Equal(t, 2, saved.Page)
	assert.Equal(t, 10, saved.TotalPages)
}

func TestNavigation_NoOpDoesNotPersist(t *testing.T) {
	store := newFakeStore()
	s := Mount(store, "gist", "abc", "1", pages(2))

	s.Retreat() // already at page 1
	assert.Zero(t, store.saves)
}

func TestNavigation_StorageFailureIsSwallowed(t *testing.T) {
	store := newFakeStore()
	store.failAll = true
	s := Mount(store, "gist", "abc", "1", pages(5))

	assert.True(t, s.Advance(), "a failed save must not block the move")
	assert.Equal(t, 2, s.Page())
}

func TestToggleMode_KeepsCurrentPage(t *testing.T) {
	s := Mount(newFakeStore(), "gist", "abc", "1", pages(10))
	s.Advance()
	s.Advance()

	s.ToggleMode()
	assert.Equal(t, Double, s.Mode())
	assert.Equal(t, 3, s.Page())

	// The next move uses the new step immediately.
	s.Advance()
	assert.Equal(t, 5, s.Page())
}

func TestVisible_SingleMode(t *testing.T) {
	p := pages(3)
	s := Mount(newFakeStore(), "gist", "abc", "1", p)

	assert.Equal(t, []string{p[0]}, s.Visible())
}

func TestVisible_DoubleMode(t *testing.T) {
	p := pages(3)
	s := Mount(newFakeStore(), "gist", "abc", "1", p)
	s.ToggleMode()

	assert.Equal(t, []string{p[0], p[1]}, s.Visible())

	// On the last page the second slot renders empty, never wraps.
	s.Advance()
	assert.Equal(t, 3, s.Page())
	assert.Equal(t, []string{p[2], ""}, s.Visible())
}

func TestLabel(t *testing.T) {
	store := newFakeStore()
	store.records["gist:abc:1"] = &data.Progress{
		Source: "gist", SourceID: "abc", Chapter: "1", Page: 6, TotalPages: 7,
	}
	s := Mount(store, "gist", "abc", "1", pages(7))

	assert.Equal(t, "6 / 7", s.Label())

	s.ToggleMode()
	assert.Equal(t, "6-7 / 7", s.Label())

	// Last page degrades to the single form even in double mode.
	store.records["gist:abc:1"].Page = 7
	last := Mount(store, "gist", "abc", "1", pages(7))
	last.ToggleMode()
	assert.Equal(t, "7 / 7", last.Label())
}

func TestViewModeStep(t *testing.T) {
	assert.Equal(t, 1, Single.Step())
	assert.Equal(t, 2, Double.Step())
	assert.Equal(t, "single", Single.String())
	assert.Equal(t, "double", Double.String())
}
