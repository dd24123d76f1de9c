package core

import (
	"strings"
	"time"
)

// Scheduler defers a single callback. The returned cancel function must
// prevent the callback from firing when invoked before the deadline.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

type timerScheduler struct{}

func (timerScheduler) After(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// searchKey appends one printable character to the type-ahead buffer and
// moves the cursor to the first member whose label starts with the buffer,
// scanning circularly from the item after the cursor and stopping before
// revisiting it. The buffer accumulates until the inactivity timeout fires;
// every keystroke cancels and restarts the timeout.
func (e *Engine) searchKey(r rune, shift bool) {
	e.searchMu.Lock()
	e.searchBuf += string(r)
	pattern := strings.ToLower(e.searchBuf)
	if e.cancelReset != nil {
		e.cancelReset()
	}
	e.cancelReset = e.sched.After(e.cfg.SearchTimeout, e.resetSearchBuffer)
	e.searchMu.Unlock()

	f := e.focusedIndex()
	match := -1
	start := f + 1
	for k := 0; k < len(e.items); k++ {
		i := (start + k) % len(e.items)
		if i == f {
			break
		}
		if strings.HasPrefix(strings.ToLower(e.items[i].Label()), pattern) {
			match = i
			break
		}
	}
	if match < 0 {
		return
	}

	target := e.items[match]
	e.focusTo(target)
	if shift && e.cfg.Multiselectable && f >= 0 {
		e.apply(e.rangeBetween(f, match))
		return
	}
	e.apply([]Item{target})
}

// SearchBuffer exposes the accumulated type-ahead buffer. Mostly useful to
// hosts that surface it (a combobox input) and to tests.
func (e *Engine) SearchBuffer() string {
	if e == nil {
		return ""
	}
	e.searchMu.Lock()
	defer e.searchMu.Unlock()
	return e.searchBuf
}

func (e *Engine) resetSearchBuffer() {
	e.searchMu.Lock()
	defer e.searchMu.Unlock()
	e.searchBuf = ""
	e.cancelReset = nil
}
