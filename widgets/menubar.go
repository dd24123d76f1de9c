package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/rosterui/roster/core"
)

// MenuBar is a horizontal single-select menu. Left/Right walk the entries
// with wrap-around; Enter activates.
type MenuBar struct {
	engine     *core.Engine
	entries    []*Entry
	onActivate []func(*Entry)
}

// NewMenuBar builds a menu bar over entries. At least one entry is required.
func NewMenuBar(entries []*Entry) (*MenuBar, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	m := &MenuBar{
		engine: core.NewEngine(core.Config{
			FocusCycling:  true,
			SearchEnabled: true,
		}),
		entries: append([]*Entry(nil), entries...),
	}
	m.Refresh()
	return m, nil
}

func (m *MenuBar) Engine() *core.Engine { return m.engine }

// OnActivate registers a callback fired when Enter activates an entry.
func (m *MenuBar) OnActivate(fn func(*Entry)) {
	if fn != nil {
		m.onActivate = append(m.onActivate, fn)
	}
}

// Refresh rebuilds the engine member list after entry flags changed.
func (m *MenuBar) Refresh() {
	m.engine.Refresh(entryItems(m.entries))
}

// HandleKey feeds a key press to the bar. Up/Down are left for the host (a
// bar usually opens a drop-down menu below the focused entry).
func (m *MenuBar) HandleKey(msg tea.KeyMsg) bool {
	ev := KeyEventFrom(msg)
	switch ev.Key {
	case "enter":
		focused := m.engine.Focused()
		if focused == nil {
			return false
		}
		for _, fn := range m.onActivate {
			fn(focused.(*Entry))
		}
		return true
	case "up", "down":
		return false
	}
	return m.engine.SelectWithKeyboard(ev)
}

// Close releases the engine's pending type-ahead reset.
func (m *MenuBar) Close() { m.engine.Close() }

// View renders the entries on one line.
func (m *MenuBar) View(width int) string {
	focused := m.engine.Focused()

	parts := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		if entry.Hidden {
			continue
		}
		label := " " + entry.Label() + " "
		switch {
		case entry.Disabled:
			parts = append(parts, styleDisabled.Render(label))
		case focused != nil && focused.ID() == entry.ID():
			parts = append(parts, styleFocused.Render(label))
		case entry.Selected():
			parts = append(parts, styleSelected.Render(label))
		default:
			parts = append(parts, styleItem.Render(label))
		}
	}
	line := strings.Join(parts, " ")
	if width > 0 {
		line = ansi.Truncate(line, width, "…")
	}
	return line
}
