package data

import "time"

// Progress is the durable per-chapter reading position. One record exists per
// (source kind, source id, chapter key) and is overwritten on every page
// change; stale records for removed chapters are harmless.
type Progress struct {
	Source     string // source kind, e.g. "gist" or "imgur"
	SourceID   string
	Chapter    string // chapter key within the source; "" for a bare album
	Page       int    // 1-based
	TotalPages int
	LastRead   time.Time
}

// Key is the composite identity the record is stored under.
func (p *Progress) Key() string {
	return p.Source + ":" + p.SourceID + ":" + p.Chapter
}
