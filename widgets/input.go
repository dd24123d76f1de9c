package widgets

import (
	"strings"
	"unicode"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rosterui/roster/core"
)

// KeyEventFrom translates a Bubble Tea key message into the engine's logical
// key event. Modifier prefixes ("ctrl+", "alt+", "shift+") become flags; an
// upper-case rune implies shift; the space rune becomes "space".
func KeyEventFrom(msg tea.KeyMsg) core.KeyEvent {
	name := msg.String()

	var ev core.KeyEvent
	for {
		switch {
		case strings.HasPrefix(name, "ctrl+"):
			ev.Ctrl = true
			name = strings.TrimPrefix(name, "ctrl+")
		case strings.HasPrefix(name, "alt+"):
			ev.Alt = true
			name = strings.TrimPrefix(name, "alt+")
		case strings.HasPrefix(name, "shift+"):
			ev.Shift = true
			name = strings.TrimPrefix(name, "shift+")
		default:
			if name == " " {
				name = "space"
			}
			if utf8.RuneCountInString(name) == 1 {
				r, _ := utf8.DecodeRuneInString(name)
				if unicode.IsUpper(r) {
					ev.Shift = true
				}
			}
			ev.Key = name
			return ev
		}
	}
}

// MouseEventFor pairs a resolved target item with the modifier and button
// state of a Bubble Tea mouse message.
func MouseEventFor(target core.Item, msg tea.MouseMsg) core.MouseEvent {
	ev := core.MouseEvent{
		Target: target,
		Shift:  msg.Shift,
		Ctrl:   msg.Ctrl,
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		ev.Button = core.MouseButtonPrimary
	case tea.MouseButtonMiddle:
		ev.Button = core.MouseButtonMiddle
	default:
		ev.Button = core.MouseButtonSecondary
	}
	return ev
}
