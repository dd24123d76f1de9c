package core

import (
	"testing"
	"time"
)

type testItem struct {
	id        string
	label     string
	disabled  bool
	hidden    bool
	selected  bool
	focusable bool
	focusHits int
}

func (it *testItem) ID() string          { return it.id }
func (it *testItem) Enabled() bool       { return !it.disabled && !it.hidden }
func (it *testItem) Label() string       { return it.label }
func (it *testItem) SetSelected(v bool)  { it.selected = v }
func (it *testItem) SetFocusable(v bool) { it.focusable = v }
func (it *testItem) Focus()              { it.focusHits++ }

func newTestEngine(cfg Config, labels ...string) (*Engine, []*testItem) {
	items := make([]*testItem, len(labels))
	candidates := make([]Item, len(labels))
	for i, l := range labels {
		items[i] = &testItem{id: l, label: l}
		candidates[i] = items[i]
	}
	e := NewEngine(cfg)
	e.Refresh(candidates)
	return e, items
}

func refresh(e *Engine, items []*testItem) {
	candidates := make([]Item, len(items))
	for i := range items {
		candidates[i] = items[i]
	}
	e.Refresh(candidates)
}

func selectedLabels(e *Engine) []string {
	sel := e.Selected()
	out := make([]string, len(sel))
	for i, it := range sel {
		out[i] = it.Label()
	}
	return out
}

func wantSelection(t *testing.T, e *Engine, want ...string) {
	t.Helper()
	got := selectedLabels(e)
	if len(got) != len(want) {
		t.Fatalf("selection = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("selection = %v, want %v", got, want)
		}
	}
}

func wantFocus(t *testing.T, e *Engine, label string) {
	t.Helper()
	f := e.Focused()
	if label == "" {
		if f != nil {
			t.Fatalf("focus = %q, want none", f.Label())
		}
		return
	}
	if f == nil {
		t.Fatalf("focus = none, want %q", label)
	}
	if f.Label() != label {
		t.Fatalf("focus = %q, want %q", f.Label(), label)
	}
}

// manualScheduler lets tests fire or cancel the pending reset by hand.
type manualScheduler struct {
	pending   func()
	lastDelay time.Duration
	cancelled int
}

func (s *manualScheduler) After(d time.Duration, fn func()) func() {
	s.pending = fn
	s.lastDelay = d
	return func() {
		s.pending = nil
		s.cancelled++
	}
}

func (s *manualScheduler) fire() {
	if s.pending != nil {
		fn := s.pending
		s.pending = nil
		fn()
	}
}

func TestRefreshFiltersDisabledAndHidden(t *testing.T) {
	e, items := newTestEngine(Config{Multiselectable: true}, "a", "b", "c", "d")
	items[1].disabled = true
	items[3].hidden = true
	refresh(e, items)

	got := e.Items()
	if len(got) != 2 {
		t.Fatalf("members = %d, want 2", len(got))
	}
	if got[0].Label() != "a" || got[1].Label() != "c" {
		t.Fatalf("members = [%s %s], want [a c]", got[0].Label(), got[1].Label())
	}
}

func TestRefreshPrunesSelectionAndFocus(t *testing.T) {
	e, items := newTestEngine(Config{Multiselectable: true}, "a", "b", "c")
	if err := e.Select(items[0], items[1]); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := e.SetFocus(items[1]); err != nil {
		t.Fatalf("focus: %v", err)
	}

	items[1].disabled = true
	refresh(e, items)

	wantSelection(t, e, "a")
	wantFocus(t, e, "")
	if items[1].selected {
		t.Fatalf("pruned item should have its marker cleared")
	}
}

func TestRefreshEmitsNoNotifications(t *testing.T) {
	e, items := newTestEngine(Config{Multiselectable: true}, "a", "b")
	_ = e.Select(items[0])

	var selEvents, focusEvents int
	e.OnSelected(func(SelectedEvent) { selEvents++ })
	e.OnFocus(func(FocusEvent) { focusEvents++ })

	items[0].disabled = true
	refresh(e, items)

	if selEvents != 0 || focusEvents != 0 {
		t.Fatalf("refresh notified (%d selected, %d focus), want silence", selEvents, focusEvents)
	}
}

func TestExactlyOneFocusableItem(t *testing.T) {
	e, items := newTestEngine(Config{}, "a", "b", "c")

	countFocusable := func() (int, string) {
		n, label := 0, ""
		for _, it := range items {
			if it.focusable {
				n++
				label = it.label
			}
		}
		return n, label
	}

	if n, label := countFocusable(); n != 1 || label != "a" {
		t.Fatalf("focusable = %d (%s), want first item only", n, label)
	}

	if err := e.SetFocus(items[2]); err != nil {
		t.Fatalf("focus: %v", err)
	}
	if n, label := countFocusable(); n != 1 || label != "c" {
		t.Fatalf("focusable = %d (%s), want focused item only", n, label)
	}

	if err := e.SetFocus(nil); err != nil {
		t.Fatalf("clear focus: %v", err)
	}
	if n, label := countFocusable(); n != 1 || label != "a" {
		t.Fatalf("focusable = %d (%s), want first item after focus cleared", n, label)
	}
}

func TestSelectRejectsForeignItem(t *testing.T) {
	e, _ := newTestEngine(Config{}, "a", "b")
	foreign := &testItem{id: "x", label: "x"}

	var events int
	e.OnSelected(func(SelectedEvent) { events++ })

	if err := e.Select(foreign); err != ErrNotMember {
		t.Fatalf("err = %v, want ErrNotMember", err)
	}
	if events != 0 {
		t.Fatalf("rejected select should not notify")
	}
	if foreign.selected {
		t.Fatalf("foreign item must never be marked selected")
	}
}

func TestSelectSingleModeRejectsMultiple(t *testing.T) {
	e, items := newTestEngine(Config{}, "a", "b")
	if err := e.Select(items[0], items[1]); err != ErrSingleSelect {
		t.Fatalf("err = %v, want ErrSingleSelect", err)
	}
}

func TestSelectedEventFiresEvenWhenUnchanged(t *testing.T) {
	e, items := newTestEngine(Config{}, "a", "b")

	var events []SelectedEvent
	e.OnSelected(func(ev SelectedEvent) { events = append(events, ev) })

	if err := e.Select(items[0]); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := e.Select(items[0]); err != nil {
		t.Fatalf("reselect: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("events = %d, want 2 (notification is unconditional)", len(events))
	}
	last := events[1]
	if len(last.Previous) != 1 || last.Previous[0].Label() != "a" {
		t.Fatalf("previous = %v, want [a]", last.Previous)
	}
	if len(last.IDs) != 1 || last.IDs[0] != "a" || last.Labels[0] != "a" {
		t.Fatalf("ids/labels = %v/%v, want [a]/[a]", last.IDs, last.Labels)
	}
}

func TestFocusEventCarriesOldAndNew(t *testing.T) {
	e, items := newTestEngine(Config{}, "a", "b")

	var events []FocusEvent
	e.OnFocus(func(ev FocusEvent) { events = append(events, ev) })

	_ = e.SetFocus(items[0])
	_ = e.SetFocus(items[1])

	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[1].Old.Label() != "a" || events[1].New.Label() != "b" {
		t.Fatalf("event = %v -> %v, want a -> b", events[1].Old, events[1].New)
	}
	if items[1].focusHits != 1 {
		t.Fatalf("visual focus requests = %d, want 1", items[1].focusHits)
	}
}
