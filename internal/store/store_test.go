package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kanaz/internal/kana"
	"github.com/abhisek/kanaz/internal/selection"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func tempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "kanaz.db")
}

func TestOpenClose(t *testing.T) {
	s, err := Open(tempDBPath(t))
	require.NoError(t, err)
	require.NotNil(t, s.DB())
	require.NoError(t, s.Close())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t, tempDBPath(t))
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
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

func TestMigrationIsIdempotent(t *testing.T) {
	path := tempDBPath(t)
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s = openTestStore(t, path)
	var n int
	err = s.DB().QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'settings'`).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestKVGetMissing(t *testing.T) {
	repo := openTestStore(t, tempDBPath(t)).KVRepo()

	v, ok, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestKVPutOverwrites(t *testing.T) {
	repo := openTestStore(t, tempDBPath(t)).KVRepo()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "k", []byte(`["a"]`)))
	require.NoError(t, repo.Put(ctx, "k", []byte(`["a","ka"]`)))

	v, ok, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `["a","ka"]`, string(v))

	var rows int
	require.NoError(t, openRowCount(ctx, repo, &rows))
	assert.Equal(t, 1, rows)
}

func openRowCount(ctx context.Context, r *KVRepo, n *int) error {
	return r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM settings`).Scan(n)
}

func TestKVDelete(t *testing.T) {
	repo := openTestStore(t, tempDBPath(t)).KVRepo()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "k", []byte(`[]`)))
	require.NoError(t, repo.Delete(ctx, "k"))
	require.NoError(t, repo.Delete(ctx, "k"))

	_, ok, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSelectionSurvivesReopen(t *testing.T) {
	path := tempDBPath(t)
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	sel := selection.New(kana.Default(), s.KVRepo())
	require.NoError(t, sel.Load(ctx))
	require.NoError(t, sel.Add(ctx, "shi", "a"))
	require.NoError(t, sel.Toggle(ctx, "n"))
	want := sel.IDs()
	require.NoError(t, s.Close())

	s = openTestStore(t, path)
	reloaded := selection.New(kana.Default(), s.KVRepo())
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, want, reloaded.IDs())
}

func TestKVPutError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewKVRepo(db)
	repo.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	mock.ExpectExec("INSERT INTO .settings.").
		WithArgs("selectedKana", `["ka"]`, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)).
		WillReturnError(errors.New("disk I/O error"))

	err = repo.Put(context.Background(), "selectedKana", []byte(`["ka"]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selectedKana")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVGetError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT .value. FROM .settings.").
		WithArgs("selectedKana").
		WillReturnError(errors.New("database is locked"))

	_, ok, err := NewKVRepo(db).Get(context.Background(), "selectedKana")
	require.Error(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVGetWithMock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT .value. FROM .settings.").
		WithArgs("selectedKana").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`["mi"]`)))

	v, ok, err := NewKVRepo(db).Get(context.Background(), "selectedKana")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["mi"]`, string(v))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectionRollsBackOnStoreFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT .value. FROM .settings.").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`["a"]`)))
	mock.ExpectExec("INSERT INTO .settings.").
		WillReturnError(errors.New("read-only database"))

	sel := selection.New(kana.Default(), NewKVRepo(db))
	ctx := context.Background()
	require.NoError(t, sel.Load(ctx))
	require.Error(t, sel.Toggle(ctx, "ka"))
	assert.Equal(t, []string{"a"}, sel.IDs())
	assert.NoError(t, mock.ExpectationsWereMet())
}
