package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// DefaultSnapshotKeep is how many snapshots per namespace are retained.
const DefaultSnapshotKeep = 5

const snapshotsTable = "snapshots"

// Snapshot is one saved blob of a namespace. IDs grow with every save
// across all namespaces.
type Snapshot struct {
	ID        int64
	Namespace string
	Timestamp time.Time
	Data      []byte
}

// SQLiteBackend stores every save as a new snapshot row and prunes old
// rows per namespace.
type SQLiteBackend struct {
	db   *sql.DB
	keep int
	now  func() time.Time
}

var _ Backend = (*SQLiteBackend)(nil)

// OpenSQLite opens the database at dsn, applies the pragmas and creates
// the schema. keep <= 0 uses DefaultSnapshotKeep.
func OpenSQLite(dsn string, keep int) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Single-user game: one connection keeps in-memory databases coherent.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if keep <= 0 {
		keep = DefaultSnapshotKeep
	}
	return &SQLiteBackend{db: db, keep: keep, now: time.Now}, nil
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			namespace TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			data BLOB NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS snapshots_namespace_id ON snapshots (namespace, id)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// DB returns the underlying *sql.DB for raw queries.
func (b *SQLiteBackend) DB() *sql.DB {
	return b.db
}

// Load returns the data of the newest snapshot in ns.
func (b *SQLiteBackend) Load(ctx context.Context, ns string) ([]byte, error) {
	snap, err := b.Latest(ctx, ns)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, ErrNotFound
	}
	return snap.Data, nil
}

// Save appends a snapshot to ns and prunes the namespace.
func (b *SQLiteBackend) Save(ctx context.Context, ns string, data []byte) error {
	query, args := builder().Insert(snapshotsTable).
		Columns("namespace", "timestamp", "data").
		Values(ns, b.now().UnixMilli(), data).
		Query()
	if _, err := b.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	return b.Prune(ctx, ns, b.keep)
}

// Latest returns the newest snapshot in ns, or nil if none exist.
func (b *SQLiteBackend) Latest(ctx context.Context, ns string) (*Snapshot, error) {
	query, args := builder().Select("id", "namespace", "timestamp", "data").
		From(entsql.Table(snapshotsTable)).
		Where(entsql.EQ("namespace", ns)).
		OrderBy(entsql.Desc("id")).
		Limit(1).
		Query()

	var (
		snap Snapshot
		ts   int64
	)
	err := b.db.QueryRowContext(ctx, query, args...).Scan(&snap.ID, &snap.Namespace, &ts, &snap.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	snap.Timestamp = time.UnixMilli(ts)
	return &snap, nil
}

// Prune deletes all but the keep most recent snapshots of ns.
func (b *SQLiteBackend) Prune(ctx context.Context, ns string, keep int) error {
	query, args := builder().Select("id").
		From(entsql.Table(snapshotsTable)).
		Where(entsql.EQ("namespace", ns)).
		OrderBy(entsql.Desc("id")).
		Limit(1).
		Offset(keep).
		Query()

	// The newest row past the kept window; none means nothing to prune.
	var threshold int64
	err := b.db.QueryRowContext(ctx, query, args...).Scan(&threshold)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}

	query, args = builder().Delete(snapshotsTable).
		Where(entsql.And(entsql.EQ("namespace", ns), entsql.LTE("id", threshold))).
		Query()
	if _, err := b.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// Count returns the number of snapshots stored for ns.
func (b *SQLiteBackend) Count(ctx context.Context, ns string) (int, error) {
	query, args := builder().Select(entsql.Count("*")).
		From(entsql.Table(snapshotsTable)).
		Where(entsql.EQ("namespace", ns)).
		Query()

	var n int
	if err := b.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count snapshots: %w", err)
	}
	return n, nil
}

// Close closes the database connection.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

// DefaultDBPath resolves the database file path in priority order:
// 1. PHONIX_DB environment variable
// 2. $XDG_DATA_HOME/phonix/phonix.db
// 3. ~/.local/share/phonix/phonix.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("PHONIX_DB"); p != "" {
		return p, ensureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "phonix", "phonix.db")
	return p, ensureDir(p)
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
