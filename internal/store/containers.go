// Package store persists named stacks and queues in SQLite so that separate
// kata invocations can push and pop against the same container.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"kata/internal/collections"
	"kata/internal/logging"

	_ "modernc.org/sqlite"
)

// Kind identifies the container type stored under a name.
type Kind string

const (
	KindStack Kind = "stack"
	KindQueue Kind = "queue"
)

var (
	// ErrKindMismatch is returned when a name is reused for another container kind.
	ErrKindMismatch = errors.New("container kind mismatch")

	// ErrNotFound is returned when dropping a container that does not exist.
	ErrNotFound = errors.New("container not found")
)

// Info summarizes a stored container.
type Info struct {
	Name string
	Kind Kind
	Len  int
}

// Store is a SQLite-backed container store.
type Store struct {
	db     *sql.DB
	mu     sync.Mutex
	dbPath string
}

// Open creates or opens the store at path, creating parent directories and
// the schema as needed.
func Open(path string) (*Store, error) {
	timer := logging.StartTimer(logging.CategoryStore, "store.Open")
	defer timer.Stop()

	if path == "" {
		return nil, fmt.Errorf("database path required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logging.StoreError("Failed to create directory for %s: %v", path, err)
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Writers take the lock at BEGIN so a read-modify-write cannot interleave
	// with another process; busy_timeout makes the loser wait instead of fail.
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		logging.StoreError("Failed to ping container database: %v", err)
		return nil, fmt.Errorf("failed to verify database connection: %w", err)
	}

	s := &Store{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	logging.Store("Container store opened at %s", path)
	return s, nil
}

// initialize creates the required tables.
func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS containers (
		name TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS container_items (
		name TEXT NOT NULL,
		position INTEGER NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (name, position)
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create container tables: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string { return s.dbPath }

// LoadStack returns the stack stored under name. Unknown names load empty.
func (s *Store) LoadStack(ctx context.Context, name string) (*collections.Stack[string], error) {
	values, err := s.load(ctx, name, KindStack)
	if err != nil {
		return nil, err
	}
	return stackOf(values), nil
}

// SaveStack replaces the stored contents of name with st.
func (s *Store) SaveStack(ctx context.Context, name string, st *collections.Stack[string]) error {
	return s.update(ctx, name, KindStack, func([]string) ([]string, error) {
		return st.Values(), nil
	})
}

// UpdateStack loads the stack stored under name, applies fn and saves the
// result inside one write transaction. Nothing is saved when fn fails.
func (s *Store) UpdateStack(ctx context.Context, name string, fn func(*collections.Stack[string]) error) error {
	return s.update(ctx, name, KindStack, func(values []string) ([]string, error) {
		st := stackOf(values)
		if err := fn(st); err != nil {
			return nil, err
		}
		return st.Values(), nil
	})
}

// LoadQueue returns the queue stored under name. Unknown names load empty.
func (s *Store) LoadQueue(ctx context.Context, name string) (*collections.Queue[string], error) {
	values, err := s.load(ctx, name, KindQueue)
	if err != nil {
		return nil, err
	}
	return queueOf(values), nil
}

// SaveQueue replaces the stored contents of name with q.
func (s *Store) SaveQueue(ctx context.Context, name string, q *collections.Queue[string]) error {
	return s.update(ctx, name, KindQueue, func([]string) ([]string, error) {
		return q.Values(), nil
	})
}

// UpdateQueue is the queue counterpart of UpdateStack.
func (s *Store) UpdateQueue(ctx context.Context, name string, fn func(*collections.Queue[string]) error) error {
	return s.update(ctx, name, KindQueue, func(values []string) ([]string, error) {
		q := queueOf(values)
		if err := fn(q); err != nil {
			return nil, err
		}
		return q.Values(), nil
	})
}

func stackOf(values []string) *collections.Stack[string] {
	st := collections.NewStack[string]()
	for _, v := range values {
		st.Push(v)
	}
	return st
}

func queueOf(values []string) *collections.Queue[string] {
	q := collections.NewQueue[string]()
	for _, v := range values {
		q.Enqueue(v)
	}
	return q
}

func (s *Store) load(ctx context.Context, name string, kind Kind) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := checkKind(ctx, s.db, name, kind); err != nil {
		return nil, err
	}
	values, err := readItems(ctx, s.db, name, kind)
	if err != nil {
		return nil, err
	}

	logging.StoreDebug("Loaded %s %q with %d items", kind, name, len(values))
	return values, nil
}

// update runs a read-modify-write of one container in a single transaction.
// The DSN opens it with BEGIN IMMEDIATE, which serializes writers across
// processes sharing the database file.
func (s *Store) update(ctx context.Context, name string, kind Kind, mutate func([]string) ([]string, error)) error {
	if name == "" {
		return fmt.Errorf("container name required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := checkKind(ctx, tx, name, kind); err != nil {
		return err
	}

	current, err := readItems(ctx, tx, name, kind)
	if err != nil {
		return err
	}
	values, err := mutate(current)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO containers (name, kind) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET updated_at = CURRENT_TIMESTAMP`,
		name, string(kind)); err != nil {
		return fmt.Errorf("failed to upsert %s %q: %w", kind, name, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM container_items WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to clear %s %q: %w", kind, name, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO container_items (name, position, value) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, v := range values {
		if _, err := stmt.ExecContext(ctx, name, i, v); err != nil {
			return fmt.Errorf("failed to store item %d of %s %q: %w", i, kind, name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s %q: %w", kind, name, err)
	}

	logging.StoreDebug("Saved %s %q with %d items", kind, name, len(values))
	return nil
}

// List returns every stored container ordered by name.
func (s *Store) List(ctx context.Context) ([]Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.name, c.kind, COUNT(i.position)
		FROM containers c
		LEFT JOIN container_items i ON i.name = c.name
		GROUP BY c.name, c.kind
		ORDER BY c.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}
	defer rows.Close()

	var out []Info
	for rows.Next() {
		var info Info
		var kind string
		if err := rows.Scan(&info.Name, &kind, &info.Len); err != nil {
			return nil, fmt.Errorf("failed to scan container: %w", err)
		}
		info.Kind = Kind(kind)
		out = append(out, info)
	}
	return out, rows.Err()
}

// Drop deletes the container stored under name.
func (s *Store) Drop(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM containers WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to drop %q: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("drop %q: %w", name, ErrNotFound)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM container_items WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to drop items of %q: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	logging.Store("Dropped container %q", name)
	return nil
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func readItems(ctx context.Context, q querier, name string, kind Kind) ([]string, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT value FROM container_items WHERE name = ? ORDER BY position`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s %q: %w", kind, name, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan %s %q: %w", kind, name, err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func checkKind(ctx context.Context, q querier, name string, want Kind) error {
	var got string
	err := q.QueryRowContext(ctx, `SELECT kind FROM containers WHERE name = ?`, name).Scan(&got)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read kind of %q: %w", name, err)
	}
	if Kind(got) != want {
		return fmt.Errorf("%q is a %s, not a %s: %w", name, got, want, ErrKindMismatch)
	}
	return nil
}
