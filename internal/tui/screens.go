package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rosterui/roster/core"
	"github.com/rosterui/roster/widgets"
)

// demoScreen is one tab of the gallery: a widget plus the key routing it
// needs. Screens never consume Tab, so the gallery can always switch demos.
type demoScreen struct {
	title  string
	hint   string
	handle func(tea.KeyMsg) bool
	view   func(width int) string
	close  func()
}

func (d *demoScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		d.handle(key)
	}
	return d, nil, false
}

func (d *demoScreen) View(width, height int) string {
	body := d.view(width)
	if d.hint != "" {
		body += "\n\n" + d.hint
	}
	return body
}

func (d *demoScreen) Title() string { return d.title }

func (d *demoScreen) Close() {
	if d.close != nil {
		d.close()
	}
}

func newListBoxDemo(entries []*widgets.Entry, cycling bool, timeoutMS int) (*demoScreen, *core.Engine, error) {
	lb, err := widgets.NewListBox(widgets.ListBoxConfig{
		Title:         "Fruits",
		Multiselect:   true,
		Cycling:       cycling,
		Height:        10,
		SearchTimeout: timeoutMS,
	}, entries)
	if err != nil {
		return nil, nil, err
	}
	return &demoScreen{
		title:  "listbox",
		hint:   "arrows move, shift extends, ctrl+a selects all, type to search",
		handle: lb.HandleKey,
		view:   lb.View,
		close:  lb.Close,
	}, lb.Engine(), nil
}

func newMenuDemo(entries []*widgets.Entry, onPick func(*widgets.Entry)) (*demoScreen, *core.Engine, error) {
	menu, err := widgets.NewMenu(widgets.MenuConfig{Title: "File"}, entries)
	if err != nil {
		return nil, nil, err
	}
	menu.OnActivate(onPick)
	return &demoScreen{
		title:  "menu",
		hint:   "arrows cycle, enter activates, type to search",
		handle: menu.HandleKey,
		view:   menu.View,
		close:  menu.Close,
	}, menu.Engine(), nil
}

func newGridDemo(rows []*widgets.GridRow) (*demoScreen, *core.Engine, error) {
	grid, err := widgets.NewGrid(widgets.GridConfig{
		Title:       "Collections",
		Multiselect: true,
		Height:      10,
	}, []widgets.Column{
		{Title: "Name", Width: 18},
		{Title: "Kind", Width: 12},
		{Title: "Rows", Width: 6},
	}, rows)
	if err != nil {
		return nil, nil, err
	}
	return &demoScreen{
		title:  "grid",
		hint:   "up/down select rows, left/right move the cell cursor",
		handle: grid.HandleKey,
		view:   grid.View,
		close:  grid.Close,
	}, grid.Engine(), nil
}

func newTreeDemo() (*demoScreen, *core.Engine, error) {
	roots := []*widgets.TreeNode{
		widgets.NewTreeNode("documents",
			widgets.NewTreeNode("reports",
				widgets.NewTreeNode("q1.pdf"),
				widgets.NewTreeNode("q2.pdf")),
			widgets.NewTreeNode("invoices")),
		widgets.NewTreeNode("music",
			widgets.NewTreeNode("albums")),
		widgets.NewTreeNode("notes.txt"),
	}
	tree, err := widgets.NewTree(widgets.TreeConfig{Title: "Files", Multiselect: true}, roots)
	if err != nil {
		return nil, nil, err
	}
	return &demoScreen{
		title:  "tree",
		hint:   "right expands, left collapses, collapsing prunes hidden selections",
		handle: tree.HandleKey,
		view:   tree.View,
		close:  tree.Close,
	}, tree.Engine(), nil
}

func newRadioDemo(entries []*widgets.Entry) (*demoScreen, *core.Engine, error) {
	radios, err := widgets.NewRadioGroup("Size", entries)
	if err != nil {
		return nil, nil, err
	}
	return &demoScreen{
		title:  "radios",
		hint:   "arrows move the check, space checks the focused radio",
		handle: radios.HandleKey,
		view:   radios.View,
		close:  radios.Close,
	}, radios.Engine(), nil
}

func newComboDemo(entries []*widgets.Entry) (*demoScreen, *core.Engine, error) {
	combo, err := widgets.NewComboBox("Language", entries)
	if err != nil {
		return nil, nil, err
	}
	return &demoScreen{
		title:  "combo",
		hint:   "type to filter, enter commits, esc closes",
		handle: combo.HandleKey,
		view:   combo.View,
		close:  combo.Close,
	}, combo.Engine(), nil
}

// helpScreen is pushed on top of the gallery; esc pops it.
type helpScreen struct{}

func (h helpScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "?":
			return h, nil, true
		}
	}
	return h, nil, false
}

func (h helpScreen) View(width, height int) string {
	lines := []string{
		"roster gallery",
		"",
		"tab / shift+tab   switch widget demo",
		"?                 toggle this help",
		"ctrl+c            quit",
		"",
		"Every demo drives the same selection engine. Events from all",
		"widgets flow through one bus; watch the status bar.",
		"",
		"esc to close",
	}
	return strings.Join(lines, "\n")
}

func (h helpScreen) Title() string { return "help" }

func describeSelection(widget string, ev core.SelectedEvent) string {
	if len(ev.Labels) == 0 {
		return fmt.Sprintf("%s: selection cleared", widget)
	}
	return fmt.Sprintf("%s: selected %s", widget, strings.Join(ev.Labels, ", "))
}
