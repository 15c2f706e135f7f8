// Package store defines the backend-agnostic contract for todo storage.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is reported when a title or id lookup matches nothing, and by
// ListItems on an empty store when the backend runs with EmptyIsError.
var ErrNotFound = errors.New("todo not found")

// EmptyPolicy names what ListItems reports for a store holding no items.
// It is a constructor choice, not a backend accident: the sqlite backend
// defaults to EmptyIsError, the gtasks backend to EmptyIsOK.
type EmptyPolicy int

const (
	// EmptyIsError makes ListItems report ErrNotFound when the store is empty.
	EmptyIsError EmptyPolicy = iota

	// EmptyIsOK makes ListItems report an empty slice and no error.
	EmptyIsOK
)

func (p EmptyPolicy) String() string {
	switch p {
	case EmptyIsError:
		return "empty-is-error"
	case EmptyIsOK:
		return "empty-is-ok"
	default:
		return "unknown"
	}
}

// Store is the operation set every backend implements.
// Titles are the lookup key for CompleteItem and RemoveItem; they are not
// unique, and a lookup resolves to the first match in the backend's native
// order. Matching is exact and case-sensitive in all backends.
type Store interface {
	// AddItem creates a new item with StatusTodo. Duplicate titles are
	// permitted; no uniqueness check is made.
	AddItem(ctx context.Context, title, content string) error

	// ListItems returns all items, completed ones included, in the
	// backend's native order. An empty store is reported according to the
	// backend's EmptyPolicy.
	ListItems(ctx context.Context) ([]Item, error)

	// FindByTitle returns the first item whose title matches exactly.
	// A miss is (zero Item, false, nil); the error is reserved for backend
	// failures.
	FindByTitle(ctx context.Context, title string) (Item, bool, error)

	// CompleteItem sets the first matching item's status to StatusDone.
	// Completing an already-done item re-sends the same update and is not
	// an error. Returns ErrNotFound when no title matches.
	CompleteItem(ctx context.Context, title string) error

	// RemoveItem deletes the first matching item. The sqlite backend
	// succeeds silently when nothing matched; the gtasks backend returns
	// ErrNotFound in that case.
	RemoveItem(ctx context.Context, title string) error

	// Close releases backend resources.
	Close() error
}
