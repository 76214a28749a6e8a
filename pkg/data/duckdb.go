package data

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// InitDuckDB opens (and creates, if needed) the progress database at path and
// makes sure the schema exists.
func InitDuckDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS progress (
			source      VARCHAR NOT NULL,
			source_id   VARCHAR NOT NULL,
			chapter     VARCHAR NOT NULL,
			page        INTEGER NOT NULL,
			total_pages INTEGER NOT NULL,
			last_read   TIMESTAMP NOT NULL,
			PRIMARY KEY (source, source_id, chapter)
		)
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Repository persists reading progress. Writes are independent per key and
// last-writer-wins; there is no read-modify-write cycle to protect.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// SaveProgress overwrites the record for the progress key.
func (r *Repository) SaveProgress(p *Progress) error {
	_, err := r.db.Exec(`
		INSERT OR REPLACE INTO progress (source, source_id, chapter, page, total_pages, last_read)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.Source, p.SourceID, p.Chapter, p.Page, p.TotalPages, p.LastRead,
	)
	return err
}

// GetProgress returns the stored record for an identity, or nil when none
// exists.
func (r *Repository) GetProgress(source, sourceID, chapter string) (*Progress, error) {
	row := r.db.QueryRow(`
		SELECT source, source_id, chapter, page, total_pages, last_read
		FROM progress
		WHERE source = ? AND source_id = ? AND chapter = ?`,
		source, sourceID, chapter,
	)

	p := &Progress{}
	err := row.Scan(&p.Source, &p.SourceID, &p.Chapter, &p.Page, &p.TotalPages, &p.LastRead)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListProgress returns every stored record, most recently read first.
func (r *Repository) ListProgress() ([]*Progress, error) {
	rows, err := r.db.Query(`
		SELECT source, source_id, chapter, page, total_pages, last_read
		FROM progress
		ORDER BY last_read DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*Progress
	for rows.Next() {
		p := &Progress{}
		if err := rows.Scan(&p.Source, &p.SourceID, &p.Chapter, &p.Page, &p.TotalPages, &p.LastRead); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}
