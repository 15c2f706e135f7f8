package gtasks

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"todosh/internal/logging"
	"todosh/internal/store"
)

const (
	statusNeedsAction = "needsAction"
	statusCompleted   = "completed"
)

// Config carries the settings the remote store needs.
type Config struct {
	// ListName is the display title of the task list that holds the
	// todos. The list is found by exact title match and created on
	// first use if absent.
	ListName string

	// Policy decides how an empty list is reported.
	Policy store.EmptyPolicy
}

// Store is a store.Store backed by a single Google Tasks list.
//
// The list is resolved lazily on the first operation and its ID cached.
// If the list disappears between calls the cache is dropped and the
// operation retried against a fresh resolution.
type Store struct {
	client *client
	cfg    Config
	log    zerolog.Logger

	listID string
}

var _ store.Store = (*Store)(nil)

// New creates a Store that authenticates every request through creds.
func New(ctx context.Context, creds *Credentials, cfg Config) (*Store, error) {
	httpClient := oauth2.NewClient(ctx, creds.TokenSource)
	return NewWithOptions(ctx, cfg, option.WithHTTPClient(httpClient))
}

// NewWithOptions creates a Store with explicit client options, which
// lets tests point it at a fake API server.
func NewWithOptions(ctx context.Context, cfg Config, opts ...option.ClientOption) (*Store, error) {
	cl, err := newClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &Store{
		client: cl,
		cfg:    cfg,
		log:    logging.Component("gtasks"),
	}, nil
}

// AddItem inserts a new open task into the configured list.
func (s *Store) AddItem(ctx context.Context, title, content string) error {
	return s.run(ctx, func(listID string) error {
		_, err := s.client.insertTask(ctx, listID, &tasks.Task{
			Title:  title,
			Notes:  content,
			Status: statusNeedsAction,
		})
		return err
	})
}

// ListItems returns every task in the configured list in API order.
// Under the EmptyIsError policy an empty list is store.ErrNotFound.
func (s *Store) ListItems(ctx context.Context) ([]store.Item, error) {
	items, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 && s.cfg.Policy == store.EmptyIsError {
		return nil, store.ErrNotFound
	}
	return items, nil
}

// FindByTitle returns the first task whose title matches exactly.
// A miss is (zero, false, nil).
func (s *Store) FindByTitle(ctx context.Context, title string) (store.Item, bool, error) {
	items, err := s.fetchAll(ctx)
	if err != nil {
		return store.Item{}, false, err
	}
	for _, item := range items {
		if item.Title == title {
			return item, true, nil
		}
	}
	return store.Item{}, false, nil
}

// CompleteItem marks the first matching task as completed. The update
// replaces the task wholesale, so the due date and notes ride along
// unchanged.
func (s *Store) CompleteItem(ctx context.Context, title string) error {
	item, ok, err := s.FindByTitle(ctx, title)
	if err != nil {
		return err
	}
	if !ok {
		return store.ErrNotFound
	}

	return s.run(ctx, func(listID string) error {
		_, err := s.client.updateTask(ctx, listID, taskFromItem(item, store.StatusDone))
		return err
	})
}

// RemoveItem deletes the first matching task. A missing title is
// store.ErrNotFound.
func (s *Store) RemoveItem(ctx context.Context, title string) error {
	item, ok, err := s.FindByTitle(ctx, title)
	if err != nil {
		return err
	}
	if !ok {
		return store.ErrNotFound
	}

	return s.run(ctx, func(listID string) error {
		return s.client.deleteTask(ctx, listID, item.ID)
	})
}

// Close is a no-op; the store holds no local resources.
func (s *Store) Close() error {
	return nil
}

func (s *Store) fetchAll(ctx context.Context) ([]store.Item, error) {
	var items []store.Item
	err := s.run(ctx, func(listID string) error {
		raw, err := s.client.listTasks(ctx, listID)
		if err != nil {
			return err
		}
		items = items[:0]
		for _, task := range raw {
			items = append(items, itemFromTask(task))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// run resolves the list, then executes op against it. When op fails with
// not-found while working against a cached list ID, the cache is dropped
// and op retried once against a fresh resolution.
func (s *Store) run(ctx context.Context, op func(listID string) error) error {
	listID, cached, err := s.ensureList(ctx)
	if err != nil {
		return err
	}

	err = op(listID)
	if cached && errors.Is(err, store.ErrNotFound) {
		s.log.Debug().Str("list_id", listID).Msg("cached list rejected, re-resolving")
		s.listID = ""
		listID, _, rerr := s.ensureList(ctx)
		if rerr != nil {
			return rerr
		}
		err = op(listID)
	}
	return err
}

// ensureList returns the ID of the configured list, resolving or
// creating it on first use. cached reports whether the ID came from a
// previous call rather than a fresh lookup.
func (s *Store) ensureList(ctx context.Context) (listID string, cached bool, err error) {
	if s.listID != "" {
		return s.listID, true, nil
	}

	lists, err := s.client.listTaskLists(ctx)
	if err != nil {
		return "", false, err
	}
	for _, list := range lists {
		if list.Title == s.cfg.ListName {
			s.listID = list.Id
			s.log.Debug().Str("list_id", list.Id).Str("title", list.Title).Msg("list resolved")
			return s.listID, false, nil
		}
	}

	created, err := s.client.insertTaskList(ctx, s.cfg.ListName)
	if err != nil {
		return "", false, err
	}
	s.listID = created.Id
	s.log.Info().Str("list_id", created.Id).Str("title", s.cfg.ListName).Msg("list created")
	return s.listID, false, nil
}

// itemFromTask maps an API task onto the store model. "completed" maps
// to Done; every other remote status reads as Todo. The due date is
// carried verbatim.
func itemFromTask(task *tasks.Task) store.Item {
	status := store.StatusTodo
	if task.Status == statusCompleted {
		status = store.StatusDone
	}
	return store.Item{
		ID:      task.Id,
		Title:   task.Title,
		Content: task.Notes,
		Status:  status,
		Due:     task.Due,
	}
}

// taskFromItem rebuilds the full API resource for an update, with the
// status swapped to the given value.
func taskFromItem(item store.Item, status store.Status) *tasks.Task {
	api := statusNeedsAction
	if status == store.StatusDone {
		api = statusCompleted
	}
	return &tasks.Task{
		Id:     item.ID,
		Title:  item.Title,
		Notes:  item.Content,
		Status: api,
		Due:    item.Due,
	}
}
