// Package gtasks implements the todo store contract on the Google Tasks
// API. Commands never touch the Google SDK directly; everything goes
// through the Store in this package.
package gtasks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"todosh/internal/store"
)

const (
	// PageSize is the number of tasks requested per call.
	PageSize = 100

	// APITimeout is the timeout for API calls.
	APITimeout = 5 * time.Second

	// Scope is the OAuth scope for Google Tasks.
	Scope = "https://www.googleapis.com/auth/tasks"
)

// client wraps the generated Tasks service with per-call timeouts and
// error mapping.
type client struct {
	svc *tasks.Service
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*client, error) {
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create tasks service: %w", err)
	}
	return &client{svc: svc}, nil
}

// listTaskLists returns the first page of the user's task lists.
func (c *client) listTaskLists(ctx context.Context) ([]*tasks.TaskList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	resp, err := c.svc.Tasklists.List().MaxResults(PageSize).Context(ctx).Do()
	if err != nil {
		return nil, wrapError(err)
	}
	return resp.Items, nil
}

// insertTaskList creates a new task list with the given title.
func (c *client) insertTaskList(ctx context.Context, title string) (*tasks.TaskList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	list, err := c.svc.Tasklists.Insert(&tasks.TaskList{Title: title}).Context(ctx).Do()
	if err != nil {
		return nil, wrapError(err)
	}
	return list, nil
}

// listTasks returns the first page of tasks in a list, completed ones
// included. A response without items is an empty list, not an error.
func (c *client) listTasks(ctx context.Context, listID string) ([]*tasks.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	resp, err := c.svc.Tasks.List(listID).
		MaxResults(PageSize).
		ShowCompleted(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapError(err)
	}
	return resp.Items, nil
}

// insertTask creates a task in the given list.
func (c *client) insertTask(ctx context.Context, listID string, task *tasks.Task) (*tasks.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	created, err := c.svc.Tasks.Insert(listID, task).Context(ctx).Do()
	if err != nil {
		return nil, wrapError(err)
	}
	return created, nil
}

// updateTask replaces a task wholesale. The task must carry every field
// that should survive, including its Id.
func (c *client) updateTask(ctx context.Context, listID string, task *tasks.Task) (*tasks.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	updated, err := c.svc.Tasks.Update(listID, task.Id, task).Context(ctx).Do()
	if err != nil {
		return nil, wrapError(err)
	}
	return updated, nil
}

// deleteTask deletes a task.
func (c *client) deleteTask(ctx context.Context, listID, taskID string) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	if err := c.svc.Tasks.Delete(listID, taskID).Context(ctx).Do(); err != nil {
		return wrapError(err)
	}
	return nil
}

// wrapError maps API failures onto store errors and user-readable hints.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return errors.New("request timed out")
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return errors.New("token expired or revoked (delete token.json and rerun)")
		case http.StatusNotFound:
			return store.ErrNotFound
		}
	}

	return err
}
