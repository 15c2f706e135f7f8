package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todosh/internal/store"
)

func openTestStore(t *testing.T, policy store.EmptyPolicy) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todos.db")
	s, err := Open(path, policy)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("", store.EmptyIsError)
	require.Error(t, err)
}

func TestAddAndList(t *testing.T) {
	s, _ := openTestStore(t, store.EmptyIsError)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, "Groceries", "buy milk and eggs"))
	require.NoError(t, s.AddItem(ctx, "Taxes", ""))

	items, err := s.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "Groceries", items[0].Title)
	assert.Equal(t, "buy milk and eggs", items[0].Content)
	assert.Equal(t, store.StatusTodo, items[0].Status)
	assert.Empty(t, items[0].Due)

	assert.Equal(t, "2", items[1].ID)
	assert.Equal(t, "Taxes", items[1].Title)
	assert.Empty(t, items[1].Content)
}

func TestListEmpty(t *testing.T) {
	t.Run("policy error", func(t *testing.T) {
		s, _ := openTestStore(t, store.EmptyIsError)
		_, err := s.ListItems(context.Background())
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("policy ok", func(t *testing.T) {
		s, _ := openTestStore(t, store.EmptyIsOK)
		items, err := s.ListItems(context.Background())
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestFindByTitle(t *testing.T) {
	s, _ := openTestStore(t, store.EmptyIsError)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, "Groceries", "first"))
	require.NoError(t, s.AddItem(ctx, "Groceries", "second"))

	item, ok, err := s.FindByTitle(ctx, "Groceries")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1", item.ID, "duplicate titles resolve to the oldest row")
	assert.Equal(t, "first", item.Content)

	_, ok, err = s.FindByTitle(ctx, "groceries")
	require.NoError(t, err)
	assert.False(t, ok, "title match is case-sensitive")

	_, ok, err = s.FindByTitle(ctx, "No such")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompleteItem(t *testing.T) {
	s, _ := openTestStore(t, store.EmptyIsError)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, "Groceries", "buy milk"))
	require.NoError(t, s.AddItem(ctx, "Groceries", "again"))

	require.NoError(t, s.CompleteItem(ctx, "Groceries"))

	items, err := s.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, store.StatusDone, items[0].Status, "only the oldest duplicate is completed")
	assert.Equal(t, store.StatusTodo, items[1].Status)

	// Completing an already-done item is a no-op, not an error.
	require.NoError(t, s.CompleteItem(ctx, "Groceries"))

	err = s.CompleteItem(ctx, "No such")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRemoveItem(t *testing.T) {
	s, _ := openTestStore(t, store.EmptyIsError)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, "Groceries", "first"))
	require.NoError(t, s.AddItem(ctx, "Groceries", "second"))
	require.NoError(t, s.AddItem(ctx, "Taxes", ""))

	require.NoError(t, s.RemoveItem(ctx, "Groceries"))

	items, err := s.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[0].ID, "only the oldest duplicate is removed")
	assert.Equal(t, "second", items[0].Content)

	// Removing a missing title is silent.
	require.NoError(t, s.RemoveItem(ctx, "No such"))

	items, err = s.ListItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestReopenKeepsData(t *testing.T) {
	s, path := openTestStore(t, store.EmptyIsError)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, "Groceries", "buy milk"))
	require.NoError(t, s.CompleteItem(ctx, "Groceries"))
	require.NoError(t, s.Close())

	reopened, err := Open(path, store.EmptyIsError)
	require.NoError(t, err)
	defer reopened.Close()

	items, err := reopened.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, store.StatusDone, items[0].Status)
}
