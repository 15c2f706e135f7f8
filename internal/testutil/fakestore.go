// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"todosh/internal/store"
)

// FakeStore is an in-memory implementation of store.Store for testing.
// Lookup misses behave like the remote backend: complete and remove on
// an absent title report store.ErrNotFound.
type FakeStore struct {
	mu     sync.Mutex
	items  []store.Item
	nextID int
	policy store.EmptyPolicy

	// Error injection for testing
	AddErr      error
	ListErr     error
	CompleteErr error
	RemoveErr   error
}

var _ store.Store = (*FakeStore)(nil)

// NewFakeStore creates an empty FakeStore that reports empty lists as
// an empty result.
func NewFakeStore() *FakeStore {
	return &FakeStore{policy: store.EmptyIsOK}
}

// SetPolicy changes the empty-list policy.
func (f *FakeStore) SetPolicy(p store.EmptyPolicy) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.policy = p
}

// Seed inserts items directly, assigning IDs and defaulting status to
// Todo where unset.
func (f *FakeStore) Seed(items ...store.Item) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range items {
		f.nextID++
		if item.ID == "" {
			item.ID = fmt.Sprintf("item-%d", f.nextID)
		}
		if item.Status == "" {
			item.Status = store.StatusTodo
		}
		f.items = append(f.items, item)
	}
}

// Items returns a copy of the stored items in insertion order.
func (f *FakeStore) Items() []store.Item {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.Item, len(f.items))
	copy(out, f.items)
	return out
}

// AddItem implements store.Store.
func (f *FakeStore) AddItem(ctx context.Context, title, content string) error {
	if f.AddErr != nil {
		return f.AddErr
	}
	f.Seed(store.Item{Title: title, Content: content})
	return nil
}

// ListItems implements store.Store.
func (f *FakeStore) ListItems(ctx context.Context) ([]store.Item, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	items := f.Items()
	f.mu.Lock()
	policy := f.policy
	f.mu.Unlock()
	if len(items) == 0 && policy == store.EmptyIsError {
		return nil, store.ErrNotFound
	}
	return items, nil
}

// FindByTitle implements store.Store.
func (f *FakeStore) FindByTitle(ctx context.Context, title string) (store.Item, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.Title == title {
			return item, true, nil
		}
	}
	return store.Item{}, false, nil
}

// CompleteItem implements store.Store.
func (f *FakeStore) CompleteItem(ctx context.Context, title string) error {
	if f.CompleteErr != nil {
		return f.CompleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, item := range f.items {
		if item.Title == title {
			f.items[i].Status = store.StatusDone
			return nil
		}
	}
	return store.ErrNotFound
}

// RemoveItem implements store.Store.
func (f *FakeStore) RemoveItem(ctx context.Context, title string) error {
	if f.RemoveErr != nil {
		return f.RemoveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, item := range f.items {
		if item.Title == title {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// Close implements store.Store.
func (f *FakeStore) Close() error {
	return nil
}
