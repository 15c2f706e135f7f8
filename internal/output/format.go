// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todosh/internal/store"
)

const (
	// ListHeader is the line that opens the list frame.
	ListHeader = "--- TODO List ---"

	// ListFooter is the line that closes the list frame.
	ListFooter = "-----------------"

	// NoDueDate is shown for items without a due date.
	NoDueDate = "No due date"
)

// FormatItem formats a single todo line.
// Format: "[X] {TITLE}: {CONTENT} (Due: {DUE})" with a space in the
// brackets for items that are still open.
func FormatItem(w io.Writer, item store.Item) {
	box := " "
	if item.Done() {
		box = "X"
	}
	due := item.Due
	if due == "" {
		due = NoDueDate
	}
	fmt.Fprintf(w, "[%s] %s: %s (Due: %s)\n", box, normalizeTitle(item.Title), flatten(item.Content), due)
}

// FormatList formats the framed list, header and footer included.
// An empty slice still prints the frame.
func FormatList(w io.Writer, items []store.Item) {
	fmt.Fprintln(w, ListHeader)
	for _, item := range items {
		FormatItem(w, item)
	}
	fmt.Fprintln(w, ListFooter)
}

// normalizeTitle normalizes a title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = flatten(title)
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

// flatten keeps a field on one line so it cannot break the frame.
func flatten(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
