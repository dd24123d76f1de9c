package widgets

import (
	tea "github.com/charmbracelet/bubbletea"
)

func keyPress(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runePress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func leftClick() tea.MouseMsg {
	return tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func ctrlLeftClick() tea.MouseMsg {
	m := leftClick()
	m.Ctrl = true
	return m
}

func shiftLeftClick() tea.MouseMsg {
	m := leftClick()
	m.Shift = true
	return m
}

func entrySet(labels ...string) []*Entry {
	out := make([]*Entry, len(labels))
	for i, l := range labels {
		out[i] = NewEntryWithID(l, l)
	}
	return out
}

func selectedLabelsOf(entries []*Entry) []string {
	var out []string
	for _, e := range entries {
		if e.Selected() {
			out = append(out, e.Label())
		}
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
