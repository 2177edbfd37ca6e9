// Package storage persists the project's implementation index: every
// function definition discovered during a scan, keyed for fast duplicate
// lookups by the status report.
package storage

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/abdallahsaber065/cpp-helper/pkg/types"
)

// Index is the SQLite-backed cache of discovered definitions.
type Index struct {
	db       *sql.DB
	basePath string
}

// Open opens (creating if needed) the index under basePath/.cpphelper.
func Open(basePath string) (*Index, error) {
	dbPath := filepath.Join(basePath, ".cpphelper", "index.db")

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=10000", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // keep it simple to avoid locks

	idx := &Index{db: db, basePath: basePath}
	if err := idx.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return idx, nil
}

func (idx *Index) createTables() error {
	schema := `
	-- Scanned files
	CREATE TABLE IF NOT EXISTS files (
		path TEXT PRIMARY KEY,
		content_hash TEXT,
		indexed_at INTEGER
	);

	-- Discovered function definitions
	CREATE TABLE IF NOT EXISTS implementations (
		id TEXT PRIMARY KEY,
		path TEXT NOT NULL,
		class TEXT,
		name TEXT NOT NULL,
		signature TEXT,
		line INTEGER,
		indexed_at INTEGER
	);

	CREATE INDEX IF NOT EXISTS impl_lookup ON implementations(class, name);
	CREATE INDEX IF NOT EXISTS impl_path ON implementations(path);
	`
	_, err := idx.db.Exec(schema)
	return err
}

// HashContent returns the content hash used for staleness checks.
func HashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// FileHash returns the stored hash for path, if the file has been scanned.
func (idx *Index) FileHash(path string) (string, bool, error) {
	var hash string
	err := idx.db.QueryRow(`SELECT content_hash FROM files WHERE path = ?`, path).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return hash, true, nil
}

// ReplaceFile records a fresh scan of path: previous implementations for the
// file are dropped and the new set inserted in one transaction.
func (idx *Index) ReplaceFile(path, hash string, impls []types.ImplRecord) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().Unix()

	if _, err := tx.Exec(`DELETE FROM implementations WHERE path = ?`, path); err != nil {
		return err
	}
	if _, err := tx.Exec(
		`INSERT INTO files(path, content_hash, indexed_at) VALUES(?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET content_hash = excluded.content_hash, indexed_at = excluded.indexed_at`,
		path, hash, now,
	); err != nil {
		return err
	}

	for _, im := range impls {
		id := im.ID
		if id == "" {
			id = uuid.New().String()
		}
		if _, err := tx.Exec(
			`INSERT INTO implementations(id, path, class, name, signature, line, indexed_at)
			 VALUES(?, ?, ?, ?, ?, ?, ?)`,
			id, path, im.ClassName, im.Name, im.Signature, im.Line, now,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// HasImplementation reports whether a definition for the function is known.
// className is empty for free functions.
func (idx *Index) HasImplementation(className, name string) (bool, error) {
	var n int
	var err error
	if className != "" {
		err = idx.db.QueryRow(
			`SELECT COUNT(1) FROM implementations WHERE class = ? AND name = ?`,
			className, name,
		).Scan(&n)
	} else {
		err = idx.db.QueryRow(
			`SELECT COUNT(1) FROM implementations WHERE (class IS NULL OR class = '') AND name = ?`,
			name,
		).Scan(&n)
	}
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Stats returns the number of scanned files and known implementations.
func (idx *Index) Stats() (files, impls int, err error) {
	if err = idx.db.QueryRow(`SELECT COUNT(1) FROM files`).Scan(&files); err != nil {
		return 0, 0, err
	}
	if err = idx.db.QueryRow(`SELECT COUNT(1) FROM implementations`).Scan(&impls); err != nil {
		return 0, 0, err
	}
	return files, impls, nil
}

// Close closes the underlying database.
func (idx *Index) Close() error {
	return idx.db.Close()
}
