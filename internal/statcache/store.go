// Package statcache persists per-path stat results in a SQLite database,
// so repeated `seqscan stat` runs over an unchanged directory tree skip
// re-aggregating members whose modification time hasn't changed. The
// detection engine (internal/sequence, internal/browse) stays stateless;
// only this optional CLI-level cache persists anything.
package statcache

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/harrison/seqscan/internal/browse"
	"github.com/harrison/seqscan/internal/filelock"
)

//go:embed schema.sql
var schemaSQL string

// Store wraps a SQLite database of cached browse.Stat results keyed by
// (path, mtime).
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens the stat cache database at dbPath, initializing
// its schema.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open stat cache: %w", err)
	}

	pragmas := []string{
		"PRAGMA busy_timeout=5000", // must be first
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if err := execWithRetry(db, pragma, 5, 10*time.Millisecond); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// execWithRetry retries a SQL statement with exponential backoff when
// SQLite reports the database is locked by another process.
func execWithRetry(db *sql.DB, query string, maxRetries int, baseDelay time.Duration) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if _, err := db.Exec(query); err == nil {
			return nil
		} else if !strings.Contains(err.Error(), "database is locked") {
			return err
		} else {
			lastErr = err
		}
		time.Sleep(baseDelay * time.Duration(1<<attempt))
	}
	return lastErr
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the cached Stat for path if one was recorded at exactly
// mtime. A changed mtime is a cache miss, not an error.
func (s *Store) Get(path string, mtime time.Time) (browse.Stat, bool, error) {
	row := s.db.QueryRow(`
		SELECT mtime_unix, mtime_nsec, size, nlink, acc_unix, acc_nsec,
		       cre_unix, cre_nsec, dev, ino, uid, gid, blocks
		FROM stat_cache WHERE path = ?`, path)

	var mtimeUnix, mtimeNsec, accUnix, accNsec, creUnix, creNsec int64
	var st browse.Stat
	err := row.Scan(&mtimeUnix, &mtimeNsec, &st.Size, &st.NLink, &accUnix, &accNsec,
		&creUnix, &creNsec, &st.Dev, &st.Ino, &st.UID, &st.GID, &st.Blocks)
	if err == sql.ErrNoRows {
		return browse.Stat{}, false, nil
	}
	if err != nil {
		return browse.Stat{}, false, fmt.Errorf("query stat cache: %w", err)
	}

	cached := time.Unix(mtimeUnix, mtimeNsec)
	if !cached.Equal(mtime) {
		return browse.Stat{}, false, nil
	}

	st.ModTime = cached
	st.AccTime = time.Unix(accUnix, accNsec)
	st.CreTime = time.Unix(creUnix, creNsec)
	return st, true, nil
}

// Put records st for path, coordinating with other seqscan processes
// sharing this cache file via an exclusive flock, in the same
// lock-then-write idiom internal/filelock applies to plain file writes.
func (s *Store) Put(path string, st browse.Stat) error {
	if s.path != ":memory:" {
		lock := filelock.NewFileLock(s.path + ".lock")
		if err := lock.Lock(); err != nil {
			return fmt.Errorf("lock stat cache: %w", err)
		}
		defer lock.Unlock()
	}

	_, err := s.db.Exec(`
		INSERT INTO stat_cache (path, mtime_unix, mtime_nsec, size, nlink,
			acc_unix, acc_nsec, cre_unix, cre_nsec, dev, ino, uid, gid, blocks)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			mtime_unix = excluded.mtime_unix, mtime_nsec = excluded.mtime_nsec,
			size = excluded.size, nlink = excluded.nlink,
			acc_unix = excluded.acc_unix, acc_nsec = excluded.acc_nsec,
			cre_unix = excluded.cre_unix, cre_nsec = excluded.cre_nsec,
			dev = excluded.dev, ino = excluded.ino, uid = excluded.uid,
			gid = excluded.gid, blocks = excluded.blocks`,
		path, st.ModTime.Unix(), st.ModTime.UnixNano()%1e9, st.Size, st.NLink,
		st.AccTime.Unix(), st.AccTime.UnixNano()%1e9,
		st.CreTime.Unix(), st.CreTime.UnixNano()%1e9,
		st.Dev, st.Ino, st.UID, st.GID, st.Blocks)
	if err != nil {
		return fmt.Errorf("write stat cache: %w", err)
	}
	return nil
}
