package output

import (
	"bytes"
	"testing"

	"todosh/internal/store"
)

func TestFormatItem(t *testing.T) {
	tests := []struct {
		name string
		item store.Item
		want string
	}{
		{
			name: "open item with due date",
			item: store.Item{Title: "Groceries", Content: "buy milk", Due: "2026-03-04T00:00:00.000Z"},
			want: "[ ] Groceries: buy milk (Due: 2026-03-04T00:00:00.000Z)\n",
		},
		{
			name: "done item without due date",
			item: store.Item{Title: "Taxes", Content: "file them", Status: store.StatusDone},
			want: "[X] Taxes: file them (Due: No due date)\n",
		},
		{
			name: "empty content keeps its slot",
			item: store.Item{Title: "Taxes"},
			want: "[ ] Taxes:  (Due: No due date)\n",
		},
		{
			name: "empty title becomes untitled",
			item: store.Item{Title: "   ", Content: "c"},
			want: "[ ] (untitled): c (Due: No due date)\n",
		},
		{
			name: "newlines cannot break the frame",
			item: store.Item{Title: "a\nb", Content: "c\r\nd"},
			want: "[ ] a b: c  d (Due: No due date)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			FormatItem(&buf, tt.item)
			if got := buf.String(); got != tt.want {
				t.Errorf("FormatItem() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatList(t *testing.T) {
	var buf bytes.Buffer
	FormatList(&buf, []store.Item{
		{Title: "Groceries", Content: "buy milk"},
		{Title: "Taxes", Status: store.StatusDone},
	})

	want := "--- TODO List ---\n" +
		"[ ] Groceries: buy milk (Due: No due date)\n" +
		"[X] Taxes:  (Due: No due date)\n" +
		"-----------------\n"
	if got := buf.String(); got != want {
		t.Errorf("FormatList() = %q, want %q", got, want)
	}
}

func TestFormatListEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatList(&buf, nil)

	want := "--- TODO List ---\n-----------------\n"
	if got := buf.String(); got != want {
		t.Errorf("FormatList() = %q, want %q", got, want)
	}
}
