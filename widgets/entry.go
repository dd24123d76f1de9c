package widgets

import (
	"github.com/google/uuid"

	"github.com/rosterui/roster/core"
)

// Entry is the item implementation shared by the widgets in this package.
// Disabled and Hidden are host-mutable; after changing either, call the
// owning widget's Refresh so the engine rebuilds its member list.
type Entry struct {
	id    string
	label string

	Disabled bool
	Hidden   bool

	selected  bool
	focusable bool
	focused   bool
}

// NewEntry creates an enabled entry with a generated id.
func NewEntry(label string) *Entry {
	return &Entry{id: uuid.NewString(), label: label}
}

// NewEntryWithID creates an entry with a caller-chosen id (a record id from
// the store, typically).
func NewEntryWithID(id, label string) *Entry {
	return &Entry{id: id, label: label}
}

func (e *Entry) ID() string    { return e.id }
func (e *Entry) Label() string { return e.label }

func (e *Entry) Enabled() bool { return !e.Disabled && !e.Hidden }

func (e *Entry) SetSelected(v bool)  { e.selected = v }
func (e *Entry) SetFocusable(v bool) { e.focusable = v }
func (e *Entry) Focus()              { e.focused = true }

// Selected reports the visual selection marker.
func (e *Entry) Selected() bool { return e.selected }

// Focusable reports tab-reachability; exactly one entry per widget holds it.
func (e *Entry) Focusable() bool { return e.focusable }

// SetLabel renames the entry. No refresh needed; labels are read on demand.
func (e *Entry) SetLabel(label string) { e.label = label }

func entryItems(entries []*Entry) []core.Item {
	items := make([]core.Item, len(entries))
	for i, e := range entries {
		items[i] = e
	}
	return items
}
