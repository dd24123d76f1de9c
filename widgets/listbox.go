package widgets

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rosterui/roster/core"
)

// ErrNoEntries is returned by widget constructors handed an empty entry set.
// A widget without members is a configuration defect and fails fast.
var ErrNoEntries = errors.New("widget requires at least one entry")

// ListBoxConfig configures a ListBox.
type ListBoxConfig struct {
	Title       string
	Multiselect bool
	// Cycling wraps keyboard navigation past either end.
	Cycling bool
	// Height is the number of visible rows; zero means show everything.
	Height int
	// SearchTimeout overrides the type-ahead reset delay (tests mostly).
	SearchTimeout int // milliseconds; zero = default
}

// ListBox is a vertical selection list. Type-ahead search is always on.
type ListBox struct {
	cfg     ListBoxConfig
	engine  *core.Engine
	entries []*Entry
	offset  int
}

// NewListBox builds a listbox over entries. At least one entry is required.
func NewListBox(cfg ListBoxConfig, entries []*Entry) (*ListBox, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	engineCfg := core.Config{
		Multiselectable: cfg.Multiselect,
		FocusCycling:    cfg.Cycling,
		SearchEnabled:   true,
	}
	if cfg.SearchTimeout > 0 {
		engineCfg.SearchTimeout = time.Duration(cfg.SearchTimeout) * time.Millisecond
	}
	l := &ListBox{
		cfg:     cfg,
		engine:  core.NewEngine(engineCfg),
		entries: append([]*Entry(nil), entries...),
	}
	l.Refresh()
	return l, nil
}

// Engine exposes the selection engine for observers and programmatic control.
func (l *ListBox) Engine() *core.Engine { return l.engine }

// Entries returns the full entry set, members and non-members alike.
func (l *ListBox) Entries() []*Entry { return append([]*Entry(nil), l.entries...) }

// SetEntries replaces the entry set and refreshes the engine.
func (l *ListBox) SetEntries(entries []*Entry) {
	l.entries = append([]*Entry(nil), entries...)
	l.Refresh()
}

// Refresh rebuilds the engine member list after entry flags changed.
func (l *ListBox) Refresh() {
	l.engine.Refresh(entryItems(l.entries))
	l.ensureCursorInWindow()
}

// HandleKey feeds a key press to the engine and reports whether it was
// consumed.
func (l *ListBox) HandleKey(msg tea.KeyMsg) bool {
	handled := l.engine.SelectWithKeyboard(KeyEventFrom(msg))
	if handled {
		l.ensureCursorInWindow()
	}
	return handled
}

// HandleMouse resolves a mouse press against the rendered rows and feeds it
// to the engine. line is the zero-based row within the widget's view.
func (l *ListBox) HandleMouse(line int, msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	if l.cfg.Title != "" {
		line-- // first rendered row is the title
	}
	members := l.engine.Items()
	idx := l.offset + line
	if line < 0 || idx < 0 || idx >= len(members) {
		return false
	}
	handled := l.engine.SelectWithMouse(MouseEventFor(members[idx], msg))
	if handled {
		l.ensureCursorInWindow()
	}
	return handled
}

// Close releases the engine's pending type-ahead reset.
func (l *ListBox) Close() { l.engine.Close() }

// ensureCursorInWindow scrolls the visible window so the focus cursor stays
// in view.
func (l *ListBox) ensureCursorInWindow() {
	height := l.visibleRows()
	members := l.engine.Items()
	if l.offset > len(members)-height {
		l.offset = len(members) - height
	}
	if l.offset < 0 {
		l.offset = 0
	}
	focused := l.engine.Focused()
	if focused == nil {
		return
	}
	idx := -1
	for i, it := range members {
		if it.ID() == focused.ID() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	if idx < l.offset {
		l.offset = idx
	} else if idx >= l.offset+height {
		l.offset = idx - height + 1
	}
}

func (l *ListBox) visibleRows() int {
	if l.cfg.Height > 0 {
		return l.cfg.Height
	}
	return len(l.engine.Items())
}

// View renders the visible window.
func (l *ListBox) View(width int) string {
	members := l.engine.Items()
	focused := l.engine.Focused()
	height := l.visibleRows()

	var b strings.Builder
	if l.cfg.Title != "" {
		b.WriteString(styleTitle.Render(l.cfg.Title))
		b.WriteString("\n")
	}
	end := l.offset + height
	if end > len(members) {
		end = len(members)
	}
	for i := l.offset; i < end; i++ {
		entry := members[i].(*Entry)
		marker := "  "
		if entry.Selected() {
			marker = "✓ "
		}
		line := truncate(marker+entry.Label(), width)
		switch {
		case focused != nil && focused.ID() == entry.ID():
			line = styleFocused.Render(line)
		case entry.Selected():
			line = styleSelected.Render(line)
		default:
			line = styleItem.Render(line)
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
