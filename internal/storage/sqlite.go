package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLite is the durable Store implementation. All blobs live in a
// single kv table so the file stays a plain key-value surface.
type SQLite struct {
	db     *sql.DB
	dbPath string
	log    *zap.Logger
	mu     sync.RWMutex
}

// OpenSQLite creates or opens the store file at path, initializing
// the schema on first run and verifying the connection before
// returning.
func OpenSQLite(path string, log *zap.Logger) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to verify store: %w", err)
	}

	s := &SQLite{db: db, dbPath: path, log: log}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLite) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		k          TEXT PRIMARY KEY,
		v          BLOB NOT NULL,
		updated_at DATETIME NOT NULL
	);`
	_, err := s.db.Exec(schema)
	return err
}

// Load returns the blob under key, or ok=false when absent.
func (s *SQLite) Load(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var blob []byte
	err := s.db.QueryRow("SELECT v FROM kv WHERE k = ?", key).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %q: %w", key, err)
	}
	return blob, true, nil
}

// Save upserts the blob under key.
func (s *SQLite) Save(key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT INTO kv (k, v, updated_at) VALUES (?, ?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v, updated_at = excluded.updated_at",
		key, blob, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	s.log.Debug("blob saved", zap.String("key", key), zap.Int("bytes", len(blob)))
	return nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Path returns the store file path.
func (s *SQLite) Path() string {
	return s.dbPath
}
