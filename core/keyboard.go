package core

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SelectWithKeyboard applies a logical key press and reports whether the
// engine consumed it. Tab is never consumed so native focus traversal can
// proceed; Alt alone consumes the event without touching state. Ctrl
// generally means "move focus only"; Ctrl+A (select all) is the exception.
func (e *Engine) SelectWithKeyboard(ev KeyEvent) bool {
	if e == nil {
		return false
	}
	key := strings.ToLower(strings.TrimSpace(ev.Key))
	if key == "tab" {
		return false
	}
	if ev.Alt {
		return true
	}
	if len(e.items) == 0 {
		return false
	}

	switch key {
	case "space", " ":
		e.keySpace(ev)
	case "home", "pgup", "pageup":
		e.keyEdge(ev, 0)
	case "end", "pgdown", "pagedown":
		e.keyEdge(ev, len(e.items)-1)
	case "up", "left":
		e.keyArrow(ev, -1)
	case "down", "right":
		e.keyArrow(ev, +1)
	default:
		if ev.Ctrl && key == "a" {
			e.keySelectAll()
			return true
		}
		if e.cfg.SearchEnabled && !ev.Ctrl {
			if r, ok := printableRune(ev.Key); ok {
				e.searchKey(r, ev.Shift)
				return true
			}
		}
		return false
	}
	return true
}

// keySpace toggles the focused item on a multiselect widget, or makes it the
// sole selection otherwise. With no cursor yet, the tab-reachable first item
// stands in for it.
func (e *Engine) keySpace(ev KeyEvent) {
	if ev.Ctrl {
		return
	}
	target := e.focused
	if target == nil {
		target = e.items[0]
	}
	e.focusTo(target)

	if !e.cfg.Multiselectable {
		e.apply([]Item{target})
		return
	}
	if idx := indexByID(e.selected, target); idx >= 0 {
		next := append(e.Selected()[:idx], e.selected[idx+1:]...)
		e.apply(next)
		return
	}
	e.apply(append(e.Selected(), target))
}

// keyEdge handles Home/PageUp (edge 0) and End/PageDown (last index). The
// shift range runs from the first-selected anchor to the edge, ordered in
// the direction of travel.
func (e *Engine) keyEdge(ev KeyEvent, edge int) {
	target := e.items[edge]
	e.focusTo(target)
	if ev.Ctrl {
		return
	}
	if ev.Shift && e.cfg.Multiselectable && len(e.selected) > 0 {
		anchor := e.indexOf(e.selected[0])
		e.apply(e.rangeBetween(anchor, edge))
		return
	}
	e.apply([]Item{target})
}

// keyArrow moves the cursor one step, wrapping only under FocusCycling.
// Shift on a multiselect widget grows or shrinks a rubber-band range: the
// range extends from the previous cursor when the new cursor is outside the
// selection, and pops its last element when the movement folds back in.
func (e *Engine) keyArrow(ev KeyEvent, delta int) {
	last := len(e.items) - 1
	f := e.focusedIndex()

	var next int
	switch {
	case f < 0:
		// No cursor yet: enter the list at the near end.
		if delta > 0 {
			next = 0
		} else {
			next = last
		}
	default:
		next = f + delta
		if next < 0 {
			if e.cfg.FocusCycling {
				next = last
			} else {
				next = f
			}
		} else if next > last {
			if e.cfg.FocusCycling {
				next = 0
			} else {
				next = f
			}
		}
	}

	prev := e.focused
	target := e.items[next]
	e.focusTo(target)
	if ev.Ctrl {
		return
	}

	if ev.Shift && e.cfg.Multiselectable && f >= 0 {
		if next == f {
			return
		}
		sel := e.Selected()
		if indexByID(sel, target) >= 0 {
			e.apply(sel[:len(sel)-1])
			return
		}
		if prev != nil && indexByID(sel, prev) < 0 {
			sel = append(sel, prev)
		}
		e.apply(append(sel, target))
		return
	}
	e.apply([]Item{target})
}

// keySelectAll focuses the first item and, on a multiselect widget, selects
// every current member.
func (e *Engine) keySelectAll() {
	e.focusTo(e.items[0])
	if !e.cfg.Multiselectable {
		return
	}
	e.apply(e.Items())
}

func printableRune(key string) (rune, bool) {
	if utf8.RuneCountInString(key) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(key)
	if !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return 0, false
	}
	return r, true
}
