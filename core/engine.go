package core

import (
	"errors"
	"sync"
)

// ErrNotMember is returned when an item passed to a programmatic mutator is
// not part of the current member list.
var ErrNotMember = errors.New("item is not a member of the widget")

// ErrSingleSelect is returned when a multi-item selection is requested on a
// single-select engine.
var ErrSingleSelect = errors.New("widget is not multiselectable")

// Engine owns the member list, the ordered selection, and the focus cursor of
// one composite widget, and turns logical mouse/keyboard events into state
// changes. Each concrete widget embeds one Engine and delegates to it.
//
// The engine is single-owner and synchronous; only the type-ahead reset task
// runs deferred, and it is cancelled on Close.
type Engine struct {
	cfg      Config
	items    []Item
	selected []Item
	focused  Item

	onSelected []func(SelectedEvent)
	onFocus    []func(FocusEvent)

	searchMu    sync.Mutex
	searchBuf   string
	cancelReset func()
	sched       Scheduler
}

// NewEngine creates an engine with no members. Hosts call Refresh to supply
// the member list.
func NewEngine(cfg Config) *Engine {
	if cfg.SearchTimeout <= 0 {
		cfg.SearchTimeout = DefaultSearchTimeout
	}
	return &Engine{cfg: cfg, sched: timerScheduler{}}
}

// SetScheduler swaps the type-ahead reset scheduler. Tests use this to drive
// buffer expiry by hand. Nil restores the timer-backed default.
func (e *Engine) SetScheduler(s Scheduler) {
	if s == nil {
		s = timerScheduler{}
	}
	e.sched = s
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Items returns the current member list in order.
func (e *Engine) Items() []Item {
	if e == nil {
		return nil
	}
	return append([]Item(nil), e.items...)
}

// Selected returns the ordered selection.
func (e *Engine) Selected() []Item {
	if e == nil {
		return nil
	}
	return append([]Item(nil), e.selected...)
}

// Focused returns the focus cursor, or nil when no item holds logical focus.
func (e *Engine) Focused() Item {
	if e == nil {
		return nil
	}
	return e.focused
}

// OnSelected registers a listener for selection notifications.
func (e *Engine) OnSelected(fn func(SelectedEvent)) {
	if fn != nil {
		e.onSelected = append(e.onSelected, fn)
	}
}

// OnFocus registers a listener for focus notifications.
func (e *Engine) OnFocus(fn func(FocusEvent)) {
	if fn != nil {
		e.onFocus = append(e.onFocus, fn)
	}
}

// Refresh rebuilds the member list from candidates, keeping only items that
// pass the configured filter and preserving their relative order. Items that
// drop out of the list are pruned from the selection (their marker cleared);
// a pruned focus cursor becomes nil. Pruning emits no notifications: it is a
// structural echo, not a user operation.
func (e *Engine) Refresh(candidates []Item) {
	filter := e.cfg.Filter
	if filter == nil {
		filter = func(it Item) bool { return it.Enabled() }
	}

	items := make([]Item, 0, len(candidates))
	for _, it := range candidates {
		if it == nil || !filter(it) {
			continue
		}
		items = append(items, it)
	}
	e.items = items

	kept := e.selected[:0:0]
	for _, it := range e.selected {
		if e.indexOf(it) >= 0 {
			kept = append(kept, it)
		} else {
			it.SetSelected(false)
		}
	}
	e.selected = kept

	if e.focused != nil && e.indexOf(e.focused) < 0 {
		e.focused = nil
	}
	e.syncFocusable()
}

// Select replaces the selection programmatically. Every item must be a
// current member, and a single-select engine accepts at most one item.
func (e *Engine) Select(items ...Item) error {
	if !e.cfg.Multiselectable && len(items) > 1 {
		return ErrSingleSelect
	}
	for _, it := range items {
		if e.indexOf(it) < 0 {
			return ErrNotMember
		}
	}
	e.apply(items)
	return nil
}

// SetFocus moves the focus cursor programmatically. Nil clears it.
func (e *Engine) SetFocus(it Item) error {
	if it != nil && e.indexOf(it) < 0 {
		return ErrNotMember
	}
	e.applyFocus(it)
	return nil
}

// Close cancels the pending type-ahead reset, if any. The reset callback will
// not fire after Close returns.
func (e *Engine) Close() {
	e.searchMu.Lock()
	defer e.searchMu.Unlock()
	if e.cancelReset != nil {
		e.cancelReset()
		e.cancelReset = nil
	}
	e.searchBuf = ""
}

// apply installs a new selection: diff against the old one, toggle the
// visual markers on the difference, then notify. The notification fires even
// when the new selection equals the old one; downstream consumers treat it
// as a re-render signal.
func (e *Engine) apply(next []Item) {
	prev := e.selected
	e.selected = append([]Item(nil), next...)

	for _, it := range prev {
		if indexByID(next, it) < 0 {
			it.SetSelected(false)
		}
	}
	for _, it := range next {
		if indexByID(prev, it) < 0 {
			it.SetSelected(true)
		}
	}

	ev := SelectedEvent{
		Previous: append([]Item(nil), prev...),
		Items:    append([]Item(nil), next...),
		IDs:      make([]string, len(next)),
		Labels:   make([]string, len(next)),
	}
	for i, it := range next {
		ev.IDs[i] = it.ID()
		ev.Labels[i] = it.Label()
	}
	for _, fn := range e.onSelected {
		fn(ev)
	}
}

// applyFocus moves the focus cursor and re-asserts the invariant that exactly
// one member is tab-reachable: the cursor, or the first member when the
// cursor is nil.
func (e *Engine) applyFocus(next Item) {
	old := e.focused
	e.focused = next
	e.syncFocusable()
	if next != nil {
		next.Focus()
	}
	ev := FocusEvent{Old: old, New: next}
	for _, fn := range e.onFocus {
		fn(ev)
	}
}

// focusTo calls applyFocus only when the cursor actually moves.
func (e *Engine) focusTo(next Item) {
	if sameItem(e.focused, next) {
		return
	}
	e.applyFocus(next)
}

func (e *Engine) syncFocusable() {
	reachable := e.focused
	if reachable == nil && len(e.items) > 0 {
		reachable = e.items[0]
	}
	for _, it := range e.items {
		it.SetFocusable(sameItem(it, reachable))
	}
}

func (e *Engine) indexOf(it Item) int {
	return indexByID(e.items, it)
}

func (e *Engine) focusedIndex() int {
	if e.focused == nil {
		return -1
	}
	return e.indexOf(e.focused)
}

// rangeBetween returns the members from index a to index b inclusive, ordered
// in the direction of travel: ascending when a <= b, descending otherwise.
func (e *Engine) rangeBetween(a, b int) []Item {
	if a <= b {
		out := make([]Item, 0, b-a+1)
		for i := a; i <= b; i++ {
			out = append(out, e.items[i])
		}
		return out
	}
	out := make([]Item, 0, a-b+1)
	for i := a; i >= b; i-- {
		out = append(out, e.items[i])
	}
	return out
}

func indexByID(items []Item, it Item) int {
	if it == nil {
		return -1
	}
	id := it.ID()
	for i, m := range items {
		if m.ID() == id {
			return i
		}
	}
	return -1
}

func sameItem(a, b Item) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}
