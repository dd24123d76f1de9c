package core

// SelectWithMouse applies a primary-button press to the selection and the
// focus cursor. It reports whether the event changed (or re-applied) state.
//
// Rules, in priority order:
//  1. shift on a multiselect widget extends a contiguous range from the first
//     currently-selected item to the target, ordered in the click direction;
//  2. ctrl on a multiselect widget toggles the target in or out of the
//     selection (single-select ignores the modifier);
//  3. otherwise the target becomes the sole selection.
//
// The focus cursor lands on the last element of the resulting selection, or
// on the target itself when the selection ends up empty.
func (e *Engine) SelectWithMouse(ev MouseEvent) bool {
	if e == nil || ev.Button != MouseButtonPrimary {
		return false
	}
	target := ev.Target
	idx := e.indexOf(target)
	if idx < 0 {
		return false
	}

	switch {
	case ev.Shift && e.cfg.Multiselectable && len(e.selected) > 0:
		anchor := e.indexOf(e.selected[0])
		next := e.rangeBetween(anchor, idx)
		e.focusTo(next[len(next)-1])
		e.apply(next)

	case ev.Ctrl && e.cfg.Multiselectable:
		var next []Item
		if indexByID(e.selected, target) >= 0 {
			next = make([]Item, 0, len(e.selected)-1)
			for _, it := range e.selected {
				if !sameItem(it, target) {
					next = append(next, it)
				}
			}
		} else {
			next = append(e.Selected(), target)
		}
		if len(next) > 0 {
			e.focusTo(next[len(next)-1])
		} else {
			e.focusTo(target)
		}
		e.apply(next)

	default:
		e.focusTo(target)
		e.apply([]Item{target})
	}
	return true
}
