package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// KVRepo stores small JSON values under string keys in the settings table.
type KVRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewKVRepo creates a KVRepo over db. The settings table must already exist.
func NewKVRepo(db *sql.DB) *KVRepo {
	return &KVRepo{db: db, now: time.Now}
}

// Get returns the value stored under key and whether it exists.
func (r *KVRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(columnValue).
		From(entsql.Table(settingsTable)).
		Where(entsql.EQ(columnKey, key)).
		Query()

	var value []byte
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("query setting %q: %w", key, err)
	}
	return value, true, nil
}

// Put inserts or overwrites the value stored under key.
func (r *KVRepo) Put(ctx context.Context, key string, value []byte) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(settingsTable).
		Columns(columnKey, columnValue, columnUpdatedAt).
		Values(key, string(value), r.now().UTC()).
		OnConflict(
			entsql.ConflictColumns(columnKey),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save setting %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (r *KVRepo) Delete(ctx context.Context, key string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(settingsTable).
		Where(entsql.EQ(columnKey, key)).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete setting %q: %w", key, err)
	}
	return nil
}
