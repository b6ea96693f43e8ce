package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"refdex/internal/bib"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection holding the ephemeral query
// cache. The JSONL file remains the source of truth; the cache is
// rebuilt from it.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		-- Main entries table; id mirrors the entry's position in the
		-- JSONL file (1-based) after a rebuild.
		CREATE TABLE IF NOT EXISTS entries (
			id INTEGER PRIMARY KEY,
			entry_type TEXT NOT NULL,
			doi TEXT,
			title TEXT,
			year TEXT,
			month INTEGER,
			fields_json TEXT NOT NULL
		);

		-- Index for DOI lookups
		CREATE INDEX IF NOT EXISTS idx_entries_doi ON entries(doi) WHERE doi IS NOT NULL AND doi != '';

		-- Full-text search virtual table
		CREATE VIRTUAL TABLE IF NOT EXISTS entries_fts USING fts5(
			title,
			author,
			abstract,
			keywords,
			year
		);
	`

	_, err := db.Exec(schema)
	return err
}

// RebuildFromJSONL clears the database and rebuilds it from a JSONL
// file. Returns the number of entries indexed.
func (d *DB) RebuildFromJSONL(jsonlPath string) (int, error) {
	entries, err := ReadAll(jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("reading JSONL: %w", err)
	}

	if _, err := d.db.Exec("DELETE FROM entries"); err != nil {
		return 0, fmt.Errorf("clearing entries table: %w", err)
	}
	if _, err := d.db.Exec("DELETE FROM entries_fts"); err != nil {
		return 0, fmt.Errorf("clearing entries_fts table: %w", err)
	}

	entryStmt, err := d.db.Prepare(`
		INSERT INTO entries (id, entry_type, doi, title, year, month, fields_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing entries insert: %w", err)
	}
	defer entryStmt.Close()

	ftsStmt, err := d.db.Prepare(`
		INSERT INTO entries_fts (rowid, title, author, abstract, keywords, year)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for i, entry := range entries {
		fieldsJSON, err := json.Marshal(entry.Fields)
		if err != nil {
			return 0, fmt.Errorf("marshaling fields for entry %d: %w", i+1, err)
		}

		id := i + 1
		if _, err := entryStmt.Exec(
			id,
			string(entry.Type),
			entry.Field(bib.FieldDOI),
			entry.Field(bib.FieldTitle),
			entry.Field(bib.FieldYear),
			int(entry.Month),
			string(fieldsJSON),
		); err != nil {
			return 0, fmt.Errorf("inserting entry %d: %w", id, err)
		}

		if _, err := ftsStmt.Exec(
			id,
			entry.Field(bib.FieldTitle),
			entry.Field(bib.FieldAuthor),
			entry.Field(bib.FieldAbstract),
			entry.Field(bib.FieldKeywords),
			entry.Field(bib.FieldYear),
		); err != nil {
			return 0, fmt.Errorf("indexing entry %d: %w", id, err)
		}
	}

	return len(entries), nil
}

// SearchHit pairs a matched entry with its cache id.
type SearchHit struct {
	ID    int
	Entry *bib.Entry
}

// Search runs an FTS5 full-text query over the cached entries, best
// matches first.
func (d *DB) Search(query string, limit int) ([]SearchHit, error) {
	rows, err := d.db.Query(`
		SELECT e.id, e.entry_type, e.month, e.fields_json
		FROM entries_fts f
		JOIN entries e ON e.id = f.rowid
		WHERE entries_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var hits []SearchHit
	for rows.Next() {
		var (
			id         int
			entryType  string
			month      int
			fieldsJSON string
		)
		if err := rows.Scan(&id, &entryType, &month, &fieldsJSON); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		entry := bib.New(bib.EntryType(entryType))
		if err := json.Unmarshal([]byte(fieldsJSON), &entry.Fields); err != nil {
			return nil, fmt.Errorf("parsing fields for entry %d: %w", id, err)
		}
		if m, ok := bib.MonthByNumber(month); ok {
			entry.SetMonth(m)
		}

		hits = append(hits, SearchHit{ID: id, Entry: entry})
	}

	return hits, rows.Err()
}

// Count returns the number of cached entries.
func (d *DB) Count() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&n)
	return n, err
}
