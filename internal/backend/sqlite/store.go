// Package sqlite implements the todo store contract on an embedded
// single-file SQLite database. No server, no credentials: the database
// lives wherever the config points and is created on first use.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"todosh/internal/logging"
	"todosh/internal/store"
)

//go:embed schema.sql
var schemaSQL string

// Store is a store.Store backed by a local SQLite file.
type Store struct {
	db     *sql.DB
	policy store.EmptyPolicy
	log    zerolog.Logger
}

var _ store.Store = (*Store)(nil)

// Open opens the database at path, creating the file and applying the
// schema if needed, and returns a ready Store. policy decides whether an
// empty list is reported as store.ErrNotFound or as an empty result.
func Open(path string, policy store.EmptyPolicy) (*Store, error) {
	if path == "" {
		return nil, errors.New("sqlite: database path is empty")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	log := logging.Component("sqlite")
	log.Debug().Str("path", path).Stringer("empty_policy", policy).Msg("store opened")

	return &Store{db: db, policy: policy, log: log}, nil
}

// AddItem inserts a new todo in Todo status.
func (s *Store) AddItem(ctx context.Context, title, content string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO todos (title, content) VALUES (?, ?)`,
		title, content)
	if err != nil {
		return fmt.Errorf("add item: %w", err)
	}
	return nil
}

// ListItems returns every todo in insertion order. Under the
// EmptyIsError policy an empty table is reported as store.ErrNotFound.
func (s *Store) ListItems(ctx context.Context) ([]store.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, content, status FROM todos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []store.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("list items: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if len(items) == 0 && s.policy == store.EmptyIsError {
		return nil, store.ErrNotFound
	}
	return items, nil
}

// FindByTitle returns the oldest todo whose title matches exactly.
// Titles are compared case-sensitively. A miss is (zero, false, nil).
func (s *Store) FindByTitle(ctx context.Context, title string) (store.Item, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, content, status FROM todos WHERE title = ? ORDER BY id LIMIT 1`,
		title)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Item{}, false, nil
	}
	if err != nil {
		return store.Item{}, false, fmt.Errorf("find by title: %w", err)
	}
	return item, true, nil
}

// CompleteItem marks the oldest matching todo as Done. The title is
// resolved to a row id first so the update targets exactly one row, and
// the reported affected-row count is verified afterwards.
func (s *Store) CompleteItem(ctx context.Context, title string) error {
	item, ok, err := s.FindByTitle(ctx, title)
	if err != nil {
		return err
	}
	if !ok {
		return store.ErrNotFound
	}
	id, err := strconv.ParseInt(item.ID, 10, 64)
	if err != nil {
		return fmt.Errorf("complete item: bad row id %q: %w", item.ID, err)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE todos SET status = ? WHERE id = ?`,
		string(store.StatusDone), id)
	if err != nil {
		return fmt.Errorf("complete item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("complete item: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// RemoveItem deletes the oldest matching todo. Removing a title that
// does not exist is not an error.
func (s *Store) RemoveItem(ctx context.Context, title string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM todos
		 WHERE id = (SELECT id FROM todos WHERE title = ? ORDER BY id LIMIT 1)`,
		title)
	if err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(sc scanner) (store.Item, error) {
	var (
		id      int64
		title   string
		content sql.NullString
		status  string
	)
	if err := sc.Scan(&id, &title, &content, &status); err != nil {
		return store.Item{}, err
	}
	st, err := store.ParseStatus(status)
	if err != nil {
		return store.Item{}, err
	}
	return store.Item{
		ID:      strconv.FormatInt(id, 10),
		Title:   title,
		Content: content.String,
		Status:  st,
	}, nil
}
