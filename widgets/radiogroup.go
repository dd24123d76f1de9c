package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rosterui/roster/core"
)

// RadioGroup is a vertical single-select group. Arrows move and select with
// wrap-around, matching radio semantics where focus and the checked state
// travel together.
type RadioGroup struct {
	cfg     ListBoxConfig
	engine  *core.Engine
	entries []*Entry
}

// NewRadioGroup builds a radio group over entries.
func NewRadioGroup(title string, entries []*Entry) (*RadioGroup, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	r := &RadioGroup{
		cfg:     ListBoxConfig{Title: title},
		engine:  core.NewEngine(core.Config{FocusCycling: true}),
		entries: append([]*Entry(nil), entries...),
	}
	r.Refresh()
	return r, nil
}

func (r *RadioGroup) Engine() *core.Engine { return r.engine }

// Refresh rebuilds the engine member list after entry flags changed.
func (r *RadioGroup) Refresh() {
	r.engine.Refresh(entryItems(r.entries))
}

// Checked returns the selected radio, or nil.
func (r *RadioGroup) Checked() *Entry {
	sel := r.engine.Selected()
	if len(sel) == 0 {
		return nil
	}
	return sel[0].(*Entry)
}

// HandleKey feeds a key press to the group.
func (r *RadioGroup) HandleKey(msg tea.KeyMsg) bool {
	return r.engine.SelectWithKeyboard(KeyEventFrom(msg))
}

// ClickRadio feeds a mouse press on a radio to the engine.
func (r *RadioGroup) ClickRadio(entry *Entry, msg tea.MouseMsg) bool {
	return r.engine.SelectWithMouse(MouseEventFor(entry, msg))
}

// Close releases engine resources.
func (r *RadioGroup) Close() { r.engine.Close() }

// View renders the radios vertically with ◉/○ markers.
func (r *RadioGroup) View(width int) string {
	focused := r.engine.Focused()

	var b strings.Builder
	if r.cfg.Title != "" {
		b.WriteString(styleTitle.Render(r.cfg.Title))
		b.WriteString("\n")
	}
	lines := make([]string, 0, len(r.entries))
	for _, entry := range r.entries {
		if entry.Hidden {
			continue
		}
		marker := "○ "
		if entry.Selected() {
			marker = "◉ "
		}
		line := truncate(marker+entry.Label(), width)
		switch {
		case entry.Disabled:
			line = styleDisabled.Render(line)
		case focused != nil && focused.ID() == entry.ID():
			line = styleFocused.Render(line)
		case entry.Selected():
			line = styleSelected.Render(line)
		default:
			line = styleItem.Render(line)
		}
		lines = append(lines, line)
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}
