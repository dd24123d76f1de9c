package core

import "testing"

func click(e *Engine, it Item) bool {
	return e.SelectWithMouse(MouseEvent{Target: it})
}

func shiftClick(e *Engine, it Item) bool {
	return e.SelectWithMouse(MouseEvent{Target: it, Shift: true})
}

func ctrlClick(e *Engine, it Item) bool {
	return e.SelectWithMouse(MouseEvent{Target: it, Ctrl: true})
}

func TestMouseClickSelectsSingleton(t *testing.T) {
	e, items := newTestEngine(Config{Multiselectable: true}, "a", "b", "c", "d")

	click(e, items[0])
	wantSelection(t, e, "a")
	wantFocus(t, e, "a")
	if !items[0].selected {
		t.Fatalf("clicked item should carry the selected marker")
	}
}

func TestMouseShiftClickSelectsAscendingRange(t *testing.T) {
	e, items := newTestEngine(Config{Multiselectable: true}, "a", "b", "c", "d")

	click(e, items[0])
	shiftClick(e, items[2])

	wantSelection(t, e, "a", "b", "c")
	wantFocus(t, e, "c")
}

func TestMouseShiftClickSelectsDescendingRange(t *testing.T) {
	e, items := newTestEngine(Config{Multiselectable: true}, "a", "b", "c", "d")

	click(e, items[3])
	shiftClick(e, items[1])

	// The range is returned in click direction: from the anchor down to the
	// target.
	wantSelection(t, e, "d", "c", "b")
	wantFocus(t, e, "b")
}

func TestMouseCtrlClickTogglesMembership(t *testing.T) {
	e, items := newTestEngine(Config{Multiselectable: true}, "a", "b", "c", "d")

	click(e, items[0])
	shiftClick(e, items[2])
	ctrlClick(e, items[0])

	wantSelection(t, e, "b", "c")
	wantFocus(t, e, "c")

	ctrlClick(e, items[3])
	wantSelection(t, e, "b", "c", "d")
	wantFocus(t, e, "d")
}

func TestMouseCtrlClickRemovingLastKeepsFocusOnTarget(t *testing.T) {
	e, items := newTestEngine(Config{Multiselectable: true}, "a", "b")

	click(e, items[0])
	ctrlClick(e, items[0])

	wantSelection(t, e)
	wantFocus(t, e, "a")
}

func TestMouseCtrlClickSingleSelectFallsThrough(t *testing.T) {
	e, items := newTestEngine(Config{}, "a", "b")

	click(e, items[0])
	ctrlClick(e, items[1])

	wantSelection(t, e, "b")
	wantFocus(t, e, "b")
}

func TestMouseShiftClickWithoutAnchorSelectsTarget(t *testing.T) {
	e, items := newTestEngine(Config{Multiselectable: true}, "a", "b", "c")

	shiftClick(e, items[2])
	wantSelection(t, e, "c")
	wantFocus(t, e, "c")
}

func TestMouseIgnoresNonMembersAndOtherButtons(t *testing.T) {
	e, items := newTestEngine(Config{Multiselectable: true}, "a", "b")
	click(e, items[0])

	foreign := &testItem{id: "x", label: "x"}
	if e.SelectWithMouse(MouseEvent{Target: foreign}) {
		t.Fatalf("non-member click should not be handled")
	}
	if e.SelectWithMouse(MouseEvent{Target: items[1], Button: MouseButtonSecondary}) {
		t.Fatalf("secondary button should not be handled")
	}
	wantSelection(t, e, "a")
}

func TestMouseShiftRangeIsAlwaysContiguous(t *testing.T) {
	e, items := newTestEngine(Config{Multiselectable: true}, "a", "b", "c", "d", "e")

	for anchor := range items {
		for target := range items {
			_ = e.Select() // reset
			click(e, items[anchor])
			shiftClick(e, items[target])

			sel := e.Selected()
			want := anchor - target
			if want < 0 {
				want = -want
			}
			if len(sel) != want+1 {
				t.Fatalf("anchor %d target %d: range size = %d, want %d", anchor, target, len(sel), want+1)
			}
			if indexByID(sel, items[anchor]) < 0 || indexByID(sel, items[target]) < 0 {
				t.Fatalf("anchor %d target %d: range misses an endpoint", anchor, target)
			}
			lo, hi := anchor, target
			if lo > hi {
				lo, hi = hi, lo
			}
			for _, it := range sel {
				idx := e.indexOf(it)
				if idx < lo || idx > hi {
					t.Fatalf("anchor %d target %d: %q outside range", anchor, target, it.Label())
				}
			}
		}
	}
}

// Scenario from the listbox contract: click A, shift-click C, ctrl-click A.
func TestMouseClickShiftCtrlScenario(t *testing.T) {
	e, items := newTestEngine(Config{Multiselectable: true}, "A", "B", "C", "D")

	click(e, items[0])
	wantSelection(t, e, "A")
	wantFocus(t, e, "A")

	shiftClick(e, items[2])
	wantSelection(t, e, "A", "B", "C")
	wantFocus(t, e, "C")

	ctrlClick(e, items[0])
	wantSelection(t, e, "B", "C")
	wantFocus(t, e, "C")
}
