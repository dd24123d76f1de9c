package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rosterui/roster/core"
)

// MenuConfig configures a Menu or a MenuBar.
type MenuConfig struct {
	Title string
}

// Menu is a single-select vertical menu. Navigation cycles; Enter activates
// the focused item; Space marks it (menuitemcheckbox behavior). Separators
// are disabled entries and never become engine members.
type Menu struct {
	cfg        MenuConfig
	engine     *core.Engine
	entries    []*Entry
	onActivate []func(*Entry)
}

// Separator returns a disabled divider entry.
func Separator() *Entry {
	e := NewEntry("──")
	e.Disabled = true
	return e
}

// NewMenu builds a menu over entries. At least one entry is required.
func NewMenu(cfg MenuConfig, entries []*Entry) (*Menu, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	m := &Menu{
		cfg: cfg,
		engine: core.NewEngine(core.Config{
			FocusCycling:  true,
			SearchEnabled: true,
		}),
		entries: append([]*Entry(nil), entries...),
	}
	m.Refresh()
	return m, nil
}

func (m *Menu) Engine() *core.Engine { return m.engine }

func (m *Menu) Entries() []*Entry { return append([]*Entry(nil), m.entries...) }

// OnActivate registers a callback fired when Enter activates an item.
func (m *Menu) OnActivate(fn func(*Entry)) {
	if fn != nil {
		m.onActivate = append(m.onActivate, fn)
	}
}

// Refresh rebuilds the engine member list after entry flags changed.
func (m *Menu) Refresh() {
	m.engine.Refresh(entryItems(m.entries))
}

// HandleKey feeds a key press to the menu.
func (m *Menu) HandleKey(msg tea.KeyMsg) bool {
	ev := KeyEventFrom(msg)
	if ev.Key == "enter" {
		focused := m.engine.Focused()
		if focused == nil {
			return false
		}
		for _, fn := range m.onActivate {
			fn(focused.(*Entry))
		}
		return true
	}
	return m.engine.SelectWithKeyboard(ev)
}

// Activate resolves a mouse press on entry and fires activation.
func (m *Menu) Activate(entry *Entry, msg tea.MouseMsg) bool {
	if !m.engine.SelectWithMouse(MouseEventFor(entry, msg)) {
		return false
	}
	for _, fn := range m.onActivate {
		fn(entry)
	}
	return true
}

// Close releases the engine's pending type-ahead reset.
func (m *Menu) Close() { m.engine.Close() }

// View renders the menu vertically; separators render as rules.
func (m *Menu) View(width int) string {
	focused := m.engine.Focused()

	var b strings.Builder
	if m.cfg.Title != "" {
		b.WriteString(styleTitle.Render(m.cfg.Title))
		b.WriteString("\n")
	}
	for i, entry := range m.entries {
		if entry.Hidden {
			continue
		}
		var line string
		switch {
		case entry.Disabled:
			line = styleDisabled.Render(truncate("  "+entry.Label(), width))
		case focused != nil && focused.ID() == entry.ID():
			line = styleFocused.Render(truncate("▸ "+entry.Label(), width))
		case entry.Selected():
			line = styleSelected.Render(truncate("✓ "+entry.Label(), width))
		default:
			line = styleItem.Render(truncate("  "+entry.Label(), width))
		}
		b.WriteString(line)
		if i < len(m.entries)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
