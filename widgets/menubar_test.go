package widgets

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMenuBarLeftRightNavigation(t *testing.T) {
	entries := entrySet("File", "Edit", "View")
	m, err := NewMenuBar(entries)
	if err != nil {
		t.Fatalf("NewMenuBar: %v", err)
	}
	defer m.Close()

	m.HandleKey(keyPress(tea.KeyRight))
	m.HandleKey(keyPress(tea.KeyRight))
	if got := m.Engine().Focused().Label(); got != "Edit" {
		t.Fatalf("focused = %q, want Edit", got)
	}
	m.HandleKey(keyPress(tea.KeyLeft))
	m.HandleKey(keyPress(tea.KeyLeft))
	if got := m.Engine().Focused().Label(); got != "View" {
		t.Fatalf("left past the start should wrap to View, got %q", got)
	}
}

func TestMenuBarLeavesVerticalKeysToHost(t *testing.T) {
	m, err := NewMenuBar(entrySet("File", "Edit"))
	if err != nil {
		t.Fatalf("NewMenuBar: %v", err)
	}
	defer m.Close()

	if m.HandleKey(keyPress(tea.KeyDown)) {
		t.Fatalf("down must be left for the host drop-down")
	}
	if m.HandleKey(keyPress(tea.KeyUp)) {
		t.Fatalf("up must be left for the host drop-down")
	}
}

func TestMenuBarEnterActivates(t *testing.T) {
	entries := entrySet("File", "Edit")
	m, err := NewMenuBar(entries)
	if err != nil {
		t.Fatalf("NewMenuBar: %v", err)
	}
	defer m.Close()

	var fired []string
	m.OnActivate(func(e *Entry) { fired = append(fired, e.Label()) })

	m.HandleKey(keyPress(tea.KeyRight))
	if !m.HandleKey(keyPress(tea.KeyEnter)) {
		t.Fatalf("enter should be consumed with a focused entry")
	}
	if !equalStrings(fired, []string{"File"}) {
		t.Fatalf("activated = %v, want [File]", fired)
	}
}
