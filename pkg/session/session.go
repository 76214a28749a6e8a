package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/yomu-reader/yomu/pkg/data"
)

// ViewMode controls how many page slots render per screen and the navigation
// step size.
type ViewMode int

const (
	Single ViewMode = iota
	Double
)

func (m ViewMode) String() string {
	if m == Double {
		return "double"
	}
	return "single"
}

// Step is the page distance one navigation moves.
func (m ViewMode) Step() int {
	if m == Double {
		return 2
	}
	return 1
}

// ProgressStore is the durable progress record backend. data.Repository
// satisfies it.
type ProgressStore interface {
	SaveProgress(p *data.Progress) error
	GetProgress(source, sourceID, chapter string) (*data.Progress, error)
}

// Session is the reading state for one mounted chapter: a fixed page list,
// the current 1-based page, and the view mode. Navigation is synchronous over
// the in-memory list; persistence is best-effort and never blocks or fails a
// move. A session with zero pages is a valid display state, not an error.
type Session struct {
	source   string
	sourceID string
	chapter  string

	pages []string
	page  int // 1-based; 0 when there are no pages
	mode  ViewMode

	store ProgressStore
	now   func() time.Time
}

// Mount creates a session over an already-resolved page list. If a progress
// record exists for the identity, the stored page seeds the current page,
// clamped into [1, totalPages]; otherwise reading starts at page 1. Mount
// only reads persisted state, it never writes it.
func Mount(store ProgressStore, source, sourceID, chapter string, pages []string) *Session {
	s := &Session{
		source:   source,
		sourceID: sourceID,
		chapter:  chapter,
		pages:    pages,
		mode:     Single,
		store:    store,
		now:      time.Now,
	}

	if len(pages) == 0 {
		return s
	}

	s.page = 1
	if store != nil {
		saved, err := store.GetProgress(source, sourceID, chapter)
		if err != nil {
			slog.Warn("progress lookup failed", "key", source+":"+sourceID+":"+chapter, "err", err)
		} else if saved != nil {
			s.page = clamp(saved.Page, 1, len(pages))
		}
	}
	return s
}

func (s *Session) Page() int { return s.page }

func (s *Session) TotalPages() int { return len(s.pages) }

func (s *Session) Mode() ViewMode { return s.mode }

func (s *Session) Empty() bool { return len(s.pages) == 0 }

func (s *Session) Source() string { return s.source }

func (s *Session) SourceID() string { return s.sourceID }

func (s *Session) Chapter() string { return s.chapter }

// Advance moves forward by the view-mode step. Moving past the last page is a
// no-op, not a wrap and not an error. Returns whether the page changed.
func (s *Session) Advance() bool {
	if s.Empty() {
		return false
	}
	next := s.page + s.mode.Step()
	if next > len(s.pages) {
		return false
	}
	s.page = next
	s.persist()
	return true
}

// Retreat moves backward by the view-mode step, clamped to page 1.
func (s *Session) Retreat() bool {
	if s.Empty() {
		return false
	}
	prev := clamp(s.page-s.mode.Step(), 1, len(s.pages))
	if prev == s.page {
		return false
	}
	s.page = prev
	s.persist()
	return true
}

// ToggleMode flips single/double. The current page is left alone; the next
// navigation simply uses the new step size.
func (s *Session) ToggleMode() {
	if s.mode == Single {
		s.mode = Double
	} else {
		s.mode = Single
	}
}

// Visible returns the page URLs to render. Single mode shows one slot. Double
// mode shows the current page and, when it exists, the next one; past the end
// the second slot is empty rather than wrapped.
func (s *Session) Visible() []string {
	if s.Empty() {
		return nil
	}
	if s.mode == Single {
		return []string{s.pages[s.page-1]}
	}
	slots := []string{s.pages[s.page-1], ""}
	if s.page < len(s.pages) {
		slots[1] = s.pages[s.page]
	}
	return slots
}

// Label is the page-counter text. Double mode reads "{p}-{p+1} / {total}"
// except on the last page, where it degrades to the single form.
func (s *Session) Label() string {
	total := len(s.pages)
	if s.mode == Double && s.page < total {
		return fmt.Sprintf("%d-%d / %d", s.page, s.page+1, total)
	}
	return fmt.Sprintf("%d / %d", s.page, total)
}

// persist overwrites the progress record for this identity. Failures are
// logged and swallowed: navigation must never be blocked by storage.
func (s *Session) persist() {
	if s.store == nil {
		return
	}
	p := &data.Progress{
		Source:     s.source,
		SourceID:   s.sourceID,
		Chapter:    s.chapter,
		Page:       s.page,
		TotalPages: len(s.pages),
		LastRead:   s.now(),
	}
	if err := s.store.SaveProgress(p); err != nil {
		slog.Warn("progress save failed", "key", p.Key(), "err", err)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
