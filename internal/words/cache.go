// internal/words/cache.go
//
// SQLite-backed dictionary cache.
// Responsibilities:
//   - Opening the cache database with safe defaults (WAL, busy timeout).
//   - Applying the embedded migrations (idempotent, recorded in _migrations).
//   - Storing and reading back a loaded answers/allowed pair, tagged with
//     the key of the source that produced it.
//
// The cache only holds word lists; game state never touches it.

package words

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/gabble/assets"
)

// Cache persists word lists in a sqlite database.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (and creates if missing) the cache at dsn and migrates it.
func OpenCache(dsn string) (*Cache, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, fmt.Errorf("words cache: %w", err)
	}
	if err := migrate(db, assets.Migrations()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("words cache: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the database handle.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Load returns the cached lists in lexical order; both are empty when the
// cache has never been filled.
func (c *Cache) Load(ctx context.Context) (answers, allowed []string, err error) {
	rows, err := c.db.QueryContext(ctx, `SELECT word, is_answer FROM words ORDER BY word`)
	if err != nil {
		return nil, nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var w string
		var isAnswer bool
		if err := rows.Scan(&w, &isAnswer); err != nil {
			return nil, nil, err
		}
		allowed = append(allowed, w)
		if isAnswer {
			answers = append(answers, w)
		}
	}
	return answers, allowed, rows.Err()
}

// SourceKey returns the key recorded by the last Store, or "" when the
// cache has never been filled.
func (c *Cache) SourceKey(ctx context.Context) (string, error) {
	var key string
	err := c.db.QueryRowContext(ctx, `SELECT value FROM cache_meta WHERE name = 'source'`).Scan(&key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query cache source: %w", err)
	}
	return key, nil
}

// Store replaces the cached lists and the source key inside a single transaction.
func (c *Cache) Store(ctx context.Context, sourceKey string, answers, allowed []string) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM words`); err != nil {
		return fmt.Errorf("clear words: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO words (word, is_answer) VALUES (?, ?)
	                                     ON CONFLICT(word) DO UPDATE SET is_answer = MAX(is_answer, excluded.is_answer)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, w := range clean(answers) {
		if _, err := stmt.ExecContext(ctx, w, 1); err != nil {
			return fmt.Errorf("insert %s: %w", w, err)
		}
	}
	for _, w := range clean(allowed) {
		if _, err := stmt.ExecContext(ctx, w, 0); err != nil {
			return fmt.Errorf("insert %s: %w", w, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO cache_meta (name, value) VALUES ('source', ?)
	                                  ON CONFLICT(name) DO UPDATE SET value = excluded.value`, sourceKey); err != nil {
		return fmt.Errorf("record cache source: %w", err)
	}
	return tx.Commit()
}

// CachedSource serves lists from Cache when it was filled by the same
// source (see SourceKey) and otherwise loads them from Source and refills
// the cache.
type CachedSource struct {
	Cache  *Cache
	Source Source
}

// Load implements Source.
func (s CachedSource) Load(ctx context.Context) ([]string, []string, error) {
	key := sourceKey(s.Source)
	cachedKey, err := s.Cache.SourceKey(ctx)
	if err != nil {
		return nil, nil, err
	}
	if cachedKey == key {
		answers, allowed, err := s.Cache.Load(ctx)
		if err != nil {
			return nil, nil, err
		}
		if len(answers) > 0 {
			log.Debug().Str("source", key).Int("words", len(allowed)).Msg("dictionary served from cache")
			return answers, allowed, nil
		}
	} else if cachedKey != "" {
		log.Info().Str("cached", cachedKey).Str("source", key).Msg("word source changed, refilling cache")
	}

	answers, allowed, err := s.Source.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := s.Cache.Store(ctx, key, answers, allowed); err != nil {
		// Lists are still usable without the cache.
		log.Warn().Err(err).Msg("store dictionary cache")
	}
	return answers, allowed, nil
}

// openDB opens (and creates if missing) a SQLite database file.
//
//   - Ensures parent directory exists for relative DSNs (e.g. ./data/words.db).
//   - Configures busy timeout and WAL journaling.
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", dsn, err)
	}
	return db, nil
}

// migrate applies *.sql files from fsys in lexical order.
//
//   - Uses a _migrations table to track applied files.
//   - Each file runs inside its own transaction.
func migrate(db *sql.DB, fsys fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	var files []string
	if err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := fs.ReadFile(fsys, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Debug().Str("migration", f).Msg("applied")
	}
	return nil
}
