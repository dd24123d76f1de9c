package widgets

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRadioGroupArrowMovesCheck(t *testing.T) {
	entries := entrySet("small", "medium", "large")
	r, err := NewRadioGroup("Size", entries)
	if err != nil {
		t.Fatalf("NewRadioGroup: %v", err)
	}
	defer r.Close()

	if got := r.Checked(); got != nil {
		t.Fatalf("no radio should start checked, got %v", got)
	}

	r.HandleKey(keyPress(tea.KeyDown))
	r.HandleKey(keyPress(tea.KeyDown))
	if got := r.Checked(); got == nil || got.Label() != "medium" {
		t.Fatalf("checked = %v, want medium", got)
	}
	if entries[0].Selected() {
		t.Fatalf("only one radio may be checked")
	}
}

func TestRadioGroupCycles(t *testing.T) {
	entries := entrySet("small", "medium", "large")
	r, err := NewRadioGroup("Size", entries)
	if err != nil {
		t.Fatalf("NewRadioGroup: %v", err)
	}
	defer r.Close()

	r.HandleKey(keyPress(tea.KeyUp))
	if got := r.Checked().Label(); got != "large" {
		t.Fatalf("up from nowhere should land on the last radio, got %q", got)
	}
	r.HandleKey(keyPress(tea.KeyDown))
	if got := r.Checked().Label(); got != "small" {
		t.Fatalf("down past the end should wrap, got %q", got)
	}
}

func TestRadioGroupSpaceChecksFocused(t *testing.T) {
	entries := entrySet("small", "medium")
	r, err := NewRadioGroup("Size", entries)
	if err != nil {
		t.Fatalf("NewRadioGroup: %v", err)
	}
	defer r.Close()

	// Space with no cursor targets the first member.
	if !r.HandleKey(keyPress(tea.KeySpace)) {
		t.Fatalf("space should be consumed")
	}
	if got := r.Checked().Label(); got != "small" {
		t.Fatalf("checked = %q, want small", got)
	}
}

func TestRadioGroupClick(t *testing.T) {
	entries := entrySet("small", "medium")
	r, err := NewRadioGroup("Size", entries)
	if err != nil {
		t.Fatalf("NewRadioGroup: %v", err)
	}
	defer r.Close()

	r.ClickRadio(entries[1], leftClick())
	if got := r.Checked().Label(); got != "medium" {
		t.Fatalf("checked = %q, want medium", got)
	}
}
