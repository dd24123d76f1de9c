package core

import "time"

// Item is the handle a host widget supplies for each of its members. The
// engine never creates or destroys items; it only reads them and toggles
// their selected/focusable markers. IDs must be unique within one widget.
type Item interface {
	ID() string
	Enabled() bool
	Label() string
	SetSelected(bool)
	SetFocusable(bool)
	Focus()
}

// Config is the immutable per-widget engine configuration.
type Config struct {
	// Multiselectable allows more than one item in the selection at once.
	Multiselectable bool
	// FocusCycling wraps keyboard navigation past either end of the list.
	FocusCycling bool
	// SearchEnabled routes printable keys into type-ahead search.
	SearchEnabled bool
	// Filter decides which candidates become engine members. Nil means
	// Item.Enabled.
	Filter func(Item) bool
	// SearchTimeout is the type-ahead buffer inactivity reset. Zero means
	// DefaultSearchTimeout.
	SearchTimeout time.Duration
}

// DefaultSearchTimeout is how long the type-ahead buffer survives without a
// further keystroke.
const DefaultSearchTimeout = 1500 * time.Millisecond

// MouseButton identifies the pressed mouse button.
type MouseButton int

const (
	MouseButtonPrimary MouseButton = iota
	MouseButtonSecondary
	MouseButtonMiddle
)

// MouseEvent is a primary-button press delivered to the engine. Target must
// be a current member; anything else is a no-op.
type MouseEvent struct {
	Target Item
	Button MouseButton
	Shift  bool
	Ctrl   bool
}

// KeyEvent is a logical key press. Key holds a normalized key name ("up",
// "home", "space", "a", ...) rather than a raw code; modifier state travels
// in the flags.
type KeyEvent struct {
	Key   string
	Shift bool
	Ctrl  bool
	Alt   bool
}

// SelectedEvent reports a selection change. It fires once per operation,
// including operations that rebuild an identical selection.
type SelectedEvent struct {
	Previous []Item
	Items    []Item
	IDs      []string
	Labels   []string
}

// FocusEvent reports a focus cursor move. New may be nil when focus was
// cleared.
type FocusEvent struct {
	Old Item
	New Item
}
