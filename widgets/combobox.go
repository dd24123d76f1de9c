package widgets

import (
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rosterui/roster/core"
)

// ComboBox pairs a one-line text input with a dropdown option list. Typing
// filters the options by case-insensitive prefix; when nothing matches, the
// closest option by edit distance is surfaced as a suggestion instead.
type ComboBox struct {
	title   string
	options []*Entry
	list    *ListBox

	input      string
	open       bool
	suggestion string
}

// NewComboBox builds a combo box over options.
func NewComboBox(title string, options []*Entry) (*ComboBox, error) {
	list, err := NewListBox(ListBoxConfig{Height: 8}, options)
	if err != nil {
		return nil, err
	}
	return &ComboBox{
		title:   title,
		options: append([]*Entry(nil), options...),
		list:    list,
	}, nil
}

func (c *ComboBox) Engine() *core.Engine { return c.list.Engine() }
func (c *ComboBox) Open() bool           { return c.open }
func (c *ComboBox) Input() string        { return c.input }

// Suggestion returns the closest option label when the current input
// matches no option prefix, or "" otherwise.
func (c *ComboBox) Suggestion() string { return c.suggestion }

// Value returns the committed selection, or nil.
func (c *ComboBox) Value() *Entry {
	sel := c.list.Engine().Selected()
	if len(sel) == 0 {
		return nil
	}
	return sel[0].(*Entry)
}

// HandleKey feeds a key press to the combo box.
func (c *ComboBox) HandleKey(msg tea.KeyMsg) bool {
	ev := KeyEventFrom(msg)
	switch ev.Key {
	case "esc":
		if !c.open {
			return false
		}
		c.open = false
		return true
	case "enter":
		return c.commit()
	case "backspace":
		if c.input == "" {
			return false
		}
		runes := []rune(c.input)
		c.input = string(runes[:len(runes)-1])
		c.filter()
		return true
	case "up", "down", "pgup", "pgdown", "home", "end":
		if !c.open {
			c.open = true
		}
		return c.list.HandleKey(msg)
	}
	if r := []rune(ev.Key); len(r) == 1 && !ev.Ctrl && !ev.Alt {
		c.input += ev.Key
		c.open = true
		c.filter()
		return true
	}
	if ev.Key == "space" && !ev.Ctrl && !ev.Alt {
		c.input += " "
		c.open = true
		c.filter()
		return true
	}
	return false
}

// commit adopts the focused option into the input and closes the dropdown.
func (c *ComboBox) commit() bool {
	if !c.open {
		return false
	}
	focused := c.list.Engine().Focused()
	if focused != nil {
		if err := c.list.Engine().Select(focused); err == nil {
			c.input = focused.Label()
		}
	}
	c.open = false
	c.suggestion = ""
	return true
}

// filter hides options that do not share the input prefix and refreshes the
// dropdown. An input that matches nothing keeps the full list visible and
// computes the nearest label as a suggestion.
func (c *ComboBox) filter() {
	prefix := strings.ToLower(c.input)
	matched := 0
	for _, opt := range c.options {
		hit := prefix == "" || strings.HasPrefix(strings.ToLower(opt.Label()), prefix)
		opt.Hidden = !hit
		if hit {
			matched++
		}
	}
	c.suggestion = ""
	if matched == 0 && prefix != "" {
		for _, opt := range c.options {
			opt.Hidden = false
		}
		c.suggestion = c.closest(prefix)
	}
	c.list.Refresh()
}

// closest returns the option label with the smallest edit distance to input.
func (c *ComboBox) closest(input string) string {
	best := ""
	bestDist := -1
	for _, opt := range c.options {
		d := levenshtein.ComputeDistance(input, strings.ToLower(opt.Label()))
		if bestDist < 0 || d < bestDist {
			best = opt.Label()
			bestDist = d
		}
	}
	return best
}

// Close releases engine resources.
func (c *ComboBox) Close() { c.list.Close() }

// View renders the input line and, when open, the dropdown below it.
func (c *ComboBox) View(width int) string {
	var b strings.Builder
	if c.title != "" {
		b.WriteString(styleTitle.Render(c.title))
		b.WriteString("\n")
	}
	b.WriteString(styleFocused.Render(truncate("> "+c.input+"█", width)))
	if c.suggestion != "" {
		b.WriteString("\n")
		b.WriteString(styleHint.Render(truncate("did you mean "+c.suggestion+"?", width)))
	}
	if c.open {
		b.WriteString("\n")
		b.WriteString(c.list.View(width))
	}
	return b.String()
}
