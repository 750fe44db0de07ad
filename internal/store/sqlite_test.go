package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

func openTestBackend(t *testing.T) *SQLiteBackend {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	b, err := OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name), 5)
	if err != nil {
		t.Fatalf("open test backend: %v", err)
	}
	t.Cleanup(func() { b.Close() })
	return b
}

func TestPragmasApplied(t *testing.T) {
	b := openTestBackend(t)
	db := b.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is checked in TestFileBackedPersistence.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTable(t *testing.T) {
	b := openTestBackend(t)

	var name string
	err := b.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}

func TestSQLiteLoadEmpty(t *testing.T) {
	b := openTestBackend(t)
	_, err := b.Load(context.Background(), NamespaceSession)
	if err != ErrNotFound {
		t.Fatalf("Load on empty backend = %v, want ErrNotFound", err)
	}
}

func TestSQLiteSaveAndLoad(t *testing.T) {
	b := openTestBackend(t)
	ctx := context.Background()

	if err := b.Save(ctx, NamespaceSession, []byte(`{"xp":1}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := b.Save(ctx, NamespaceSession, []byte(`{"xp":2}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := b.Save(ctx, NamespaceBadges, []byte(`{"totalCorrect":9}`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := b.Load(ctx, NamespaceSession)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"xp":2}` {
		t.Errorf("session = %s, want newest blob", got)
	}

	got, err = b.Load(ctx, NamespaceBadges)
	if err != nil {
		t.Fatalf("load badges: %v", err)
	}
	if string(got) != `{"totalCorrect":9}` {
		t.Errorf("badges = %s", got)
	}
}

func TestSQLiteIDsSpanNamespaces(t *testing.T) {
	b := openTestBackend(t)
	ctx := context.Background()

	b.Save(ctx, NamespaceSession, []byte("a"))
	b.Save(ctx, NamespaceBadges, []byte("b"))
	b.Save(ctx, NamespaceSession, []byte("c"))

	s, _ := b.Latest(ctx, NamespaceSession)
	bd, _ := b.Latest(ctx, NamespaceBadges)
	if s.ID != 3 || bd.ID != 2 {
		t.Errorf("ids = session %d, badges %d; want 3, 2", s.ID, bd.ID)
	}
	if string(s.Data) != "c" {
		t.Errorf("latest session = %s, want c", s.Data)
	}
}

func TestSQLiteNoSequenceTable(t *testing.T) {
	b := openTestBackend(t)

	var n int
	err := b.DB().QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='global_sequence'",
	).Scan(&n)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if n != 0 {
		t.Errorf("global_sequence table exists; snapshots are ordered by id")
	}
}

func TestSQLitePrunesToKeep(t *testing.T) {
	b := openTestBackend(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		if err := b.Save(ctx, NamespaceSession, []byte(fmt.Sprintf("%d", i))); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	b.Save(ctx, NamespaceBadges, []byte("x"))

	count, err := b.Count(ctx, NamespaceSession)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	got, _ := b.Load(ctx, NamespaceSession)
	if string(got) != "6" {
		t.Errorf("latest = %s, want 6", got)
	}

	if n, _ := b.Count(ctx, NamespaceBadges); n != 1 {
		t.Errorf("badges snapshots = %d, want 1 (pruning is per namespace)", n)
	}
}

func TestSQLitePruneWithFewerThanKeep(t *testing.T) {
	b := openTestBackend(t)
	ctx := context.Background()

	b.Save(ctx, NamespaceSession, []byte("1"))
	b.Save(ctx, NamespaceSession, []byte("2"))

	if err := b.Prune(ctx, NamespaceSession, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n, _ := b.Count(ctx, NamespaceSession); n != 2 {
		t.Errorf("remaining snapshots = %d, want 2", n)
	}
}

func TestSQLitePruneKeepsNewestAfterRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phonix.db")
	ctx := context.Background()

	b, err := OpenSQLite(path, 2)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for _, v := range []string{"1", "2", "3"} {
		b.Save(ctx, NamespaceSession, []byte(v))
	}
	b.Close()

	b2, err := OpenSQLite(path, 2)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer b2.Close()
	if err := b2.Save(ctx, NamespaceSession, []byte("4")); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, _ := b2.Load(ctx, NamespaceSession)
	if string(got) != "4" {
		t.Errorf("latest = %s, want 4", got)
	}
	if n, _ := b2.Count(ctx, NamespaceSession); n != 2 {
		t.Errorf("remaining snapshots = %d, want 2", n)
	}
}

func TestFileBackedPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phonix.db")
	ctx := context.Background()

	b, err := OpenSQLite(path, 0)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	var mode string
	if err := b.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}

	s := Open(ctx, b, DefaultState(), nil)
	if err := s.Set(KeyXP, 120); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	b2, err := OpenSQLite(path, 0)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer b2.Close()
	s2 := Open(ctx, b2, DefaultState(), nil)
	if got := s2.Int(KeyXP); got != 120 {
		t.Errorf("xp after reopen = %d, want 120", got)
	}
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "sub", "x.db")
	t.Setenv("PHONIX_DB", want)
	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != want {
		t.Errorf("DefaultDBPath() = %q, want %q", got, want)
	}
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PHONIX_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if want := filepath.Join(dir, "phonix", "phonix.db"); got != want {
		t.Errorf("DefaultDBPath() = %q, want %q", got, want)
	}
}
