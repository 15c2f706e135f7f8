package store

import "fmt"

// Status is the lifecycle state of an item. The values are the strings the
// sqlite backend persists; the gtasks backend maps them onto the service's
// needsAction/completed vocabulary.
type Status string

const (
	StatusTodo Status = "Todo"

	// StatusInProgress is representable and persisted, but no shell
	// command sets it. The remote service has no equivalent; writes
	// collapse it to needsAction.
	StatusInProgress Status = "InProgress"

	StatusDone Status = "Done"
)

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// ParseStatus converts a stored string into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid status %q", raw)
	}
	return s, nil
}

// Item is a single todo entry.
type Item struct {
	// ID identifies the item within its backend: the row id rendered as a
	// string for the sqlite backend, the service-assigned opaque id for
	// the gtasks backend.
	ID string

	// Title is the human-facing lookup key. Required, not unique.
	Title string

	// Content is free text. Optional.
	Content string

	Status Status

	// Due is an opaque date-time string passed through exactly as the
	// backend stored it. It is never parsed or reformatted; an empty
	// string means no due date.
	Due string
}

// Done reports whether the item has been completed.
func (i Item) Done() bool {
	return i.Status == StatusDone
}
