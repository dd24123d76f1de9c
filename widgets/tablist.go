package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/rosterui/roster/core"
)

// TabList is a horizontal single-select strip where selection follows focus:
// arrowing onto a tab selects it. Navigation cycles.
type TabList struct {
	engine  *core.Engine
	entries []*Entry
}

// NewTabList builds a tab list and selects the first tab.
func NewTabList(entries []*Entry) (*TabList, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	t := &TabList{
		engine:  core.NewEngine(core.Config{FocusCycling: true}),
		entries: append([]*Entry(nil), entries...),
	}
	t.Refresh()
	members := t.engine.Items()
	if len(members) > 0 {
		_ = t.engine.SetFocus(members[0])
		_ = t.engine.Select(members[0])
	}
	return t, nil
}

func (t *TabList) Engine() *core.Engine { return t.engine }

// Refresh rebuilds the engine member list after entry flags changed.
func (t *TabList) Refresh() {
	t.engine.Refresh(entryItems(t.entries))
}

// Active returns the selected tab, or nil when every tab was pruned.
func (t *TabList) Active() *Entry {
	sel := t.engine.Selected()
	if len(sel) == 0 {
		return nil
	}
	return sel[0].(*Entry)
}

// ActiveIndex returns the member index of the selected tab, or -1.
func (t *TabList) ActiveIndex() int {
	active := t.Active()
	if active == nil {
		return -1
	}
	for i, it := range t.engine.Items() {
		if it.ID() == active.ID() {
			return i
		}
	}
	return -1
}

// HandleKey feeds a key press to the tab list.
func (t *TabList) HandleKey(msg tea.KeyMsg) bool {
	return t.engine.SelectWithKeyboard(KeyEventFrom(msg))
}

// ClickTab feeds a mouse press on a tab to the engine.
func (t *TabList) ClickTab(entry *Entry, msg tea.MouseMsg) bool {
	return t.engine.SelectWithMouse(MouseEventFor(entry, msg))
}

// Close releases engine resources.
func (t *TabList) Close() { t.engine.Close() }

// View renders the tabs on one line.
func (t *TabList) View(width int) string {
	focused := t.engine.Focused()

	parts := make([]string, 0, len(t.entries))
	for _, entry := range t.entries {
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
	line := strings.Join(parts, "│")
	if width > 0 {
		line = ansi.Truncate(line, width, "…")
	}
	return line
}
