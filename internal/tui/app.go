package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rosterui/roster/core"
	"github.com/rosterui/roster/core/bus"
	"github.com/rosterui/roster/internal/config"
	"github.com/rosterui/roster/internal/database/repository"
	"github.com/rosterui/roster/widgets"
)

// Repos bundles the persistence the gallery reads its demo data from.
type Repos struct {
	Collections *repository.CollectionRepo
	Records     *repository.RecordRepo
}

// galleryData is everything the demos need, loaded in one command.
type galleryData struct {
	collections []repository.Collection
	records     map[string][]repository.Record // collection name -> rows
}

// App is the gallery's Bubble Tea model. It owns the tab strip, the demo
// screens, the overlay stack, and the event bus all widgets publish to.
type App struct {
	ctx   context.Context
	cfg   config.Config
	repos Repos
	bus   *bus.Bus

	tabs    *widgets.TabList
	demos   []*demoScreen
	overlay core.ScreenStack

	status    string
	statusErr bool
	width     int
	height    int
	loaded    bool
}

func New(ctx context.Context, cfg config.Config, repos Repos) *App {
	a := &App{
		ctx:   ctx,
		cfg:   cfg,
		repos: repos,
		bus:   bus.New(),
	}
	a.bus.Subscribe(bus.Wildcard, func(ev bus.Event) {
		if text, ok := ev.Payload.(string); ok {
			a.status = text
			a.statusErr = false
		}
	})
	return a
}

// Bus exposes the gallery's event bus, mainly for tests and embedders.
func (a *App) Bus() *bus.Bus { return a.bus }

func (a *App) Init() tea.Cmd {
	return a.loadData()
}

func (a *App) loadData() tea.Cmd {
	return func() tea.Msg {
		cols, err := a.repos.Collections.List(a.ctx)
		if err != nil {
			return core.DataLoadedMsg{Key: "gallery", Err: err}
		}
		data := galleryData{collections: cols, records: make(map[string][]repository.Record, len(cols))}
		for _, col := range cols {
			recs, err := a.repos.Records.ListByCollection(a.ctx, col.ID)
			if err != nil {
				return core.DataLoadedMsg{Key: "gallery", Err: err}
			}
			data.records[col.Name] = recs
		}
		return core.DataLoadedMsg{Key: "gallery", Data: data}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case core.DataLoadedMsg:
		if m.Err != nil {
			a.status = "load failed: " + m.Err.Error()
			a.statusErr = true
			return a, nil
		}
		if data, ok := m.Data.(galleryData); ok {
			if err := a.buildDemos(data); err != nil {
				a.status = "gallery setup failed: " + err.Error()
				a.statusErr = true
				return a, nil
			}
			a.loaded = true
			a.status = fmt.Sprintf("loaded %d collections", len(data.collections))
		}
	case core.StatusMsg:
		a.status = m.Text
		a.statusErr = m.IsErr
	case core.TabSwitchMsg:
		a.switchTab(m.Index)
	case core.PushScreenMsg:
		a.overlay.Push(m.Screen)
	case core.PopScreenMsg:
		a.overlay.Pop()
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		a.closeAll()
		return a, tea.Quit
	}

	if top := a.overlay.Top(); top != nil {
		next, cmd, pop := top.Update(m)
		if pop {
			a.overlay.Pop()
		} else {
			a.overlay.Pop()
			a.overlay.Push(next)
		}
		return a, cmd
	}

	if !a.loaded {
		return a, nil
	}

	switch m.String() {
	case "?":
		a.overlay.Push(helpScreen{})
		return a, nil
	case "tab":
		a.switchTab(a.tabs.ActiveIndex() + 1)
		return a, nil
	case "shift+tab":
		a.switchTab(a.tabs.ActiveIndex() - 1)
		return a, nil
	}

	if demo := a.activeDemo(); demo != nil {
		demo.handle(m)
	}
	return a, nil
}

// switchTab activates the demo at index, wrapping at either end.
func (a *App) switchTab(index int) {
	members := a.tabs.Engine().Items()
	if len(members) == 0 {
		return
	}
	index = ((index % len(members)) + len(members)) % len(members)
	_ = a.tabs.Engine().SetFocus(members[index])
	_ = a.tabs.Engine().Select(members[index])
}

func (a *App) activeDemo() *demoScreen {
	idx := a.tabs.ActiveIndex()
	if idx < 0 || idx >= len(a.demos) {
		return nil
	}
	return a.demos[idx]
}

// buildDemos constructs one demo per widget, feeding each from its seeded
// collection and republishing every engine notification on the bus.
func (a *App) buildDemos(data galleryData) error {
	cycling := a.cfg.UI.FocusCycling
	timeoutMS := a.cfg.UI.SearchTimeoutMS

	listDemo, listEngine, err := newListBoxDemo(recordEntries(data.records["fruits"]), cycling, timeoutMS)
	if err != nil {
		return err
	}

	menuDemo, menuEngine, err := newMenuDemo(recordEntries(data.records["file actions"]), func(e *widgets.Entry) {
		a.bus.Publish("menu.activated", fmt.Sprintf("menu: activated %s", e.Label()))
	})
	if err != nil {
		return err
	}

	gridRows := make([]*widgets.GridRow, 0, len(data.collections))
	for _, col := range data.collections {
		row := widgets.NewGridRow(col.Name, col.Kind, fmt.Sprintf("%d", len(data.records[col.Name])))
		gridRows = append(gridRows, row)
	}
	gridDemo, gridEngine, err := newGridDemo(gridRows)
	if err != nil {
		return err
	}

	treeDemo, treeEngine, err := newTreeDemo()
	if err != nil {
		return err
	}

	radioDemo, radioEngine, err := newRadioDemo(recordEntries(data.records["sizes"]))
	if err != nil {
		return err
	}

	comboDemo, comboEngine, err := newComboDemo(recordEntries(data.records["languages"]))
	if err != nil {
		return err
	}

	a.demos = []*demoScreen{listDemo, menuDemo, gridDemo, treeDemo, radioDemo, comboDemo}
	engines := []*core.Engine{listEngine, menuEngine, gridEngine, treeEngine, radioEngine, comboEngine}
	for i, engine := range engines {
		name := a.demos[i].title
		engine.OnSelected(func(ev core.SelectedEvent) {
			a.bus.Publish(bus.Topic(name+".selected"), describeSelection(name, ev))
		})
	}

	tabEntries := make([]*widgets.Entry, len(a.demos))
	for i, d := range a.demos {
		tabEntries[i] = widgets.NewEntryWithID("tab:"+d.title, d.title)
	}
	tabs, err := widgets.NewTabList(tabEntries)
	if err != nil {
		return err
	}
	a.tabs = tabs
	return nil
}

func (a *App) closeAll() {
	for _, d := range a.demos {
		d.Close()
	}
	if a.tabs != nil {
		a.tabs.Close()
	}
}

var (
	statusStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
)

func (a *App) View() string {
	if !a.loaded {
		if a.statusErr {
			return errorStyle.Render(a.status)
		}
		return "loading collections..."
	}

	width := a.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(a.tabs.View(width))
	b.WriteString("\n\n")

	if top := a.overlay.Top(); top != nil {
		b.WriteString(top.View(width, a.height))
	} else if demo := a.activeDemo(); demo != nil {
		b.WriteString(demo.View(width, a.height))
	}

	if a.cfg.UI.StatusBar {
		b.WriteString("\n\n")
		if a.statusErr {
			b.WriteString(errorStyle.Render(a.status))
		} else {
			b.WriteString(statusStyle.Render(a.status))
		}
	}
	return b.String()
}

// recordEntries converts stored records into widget entries, carrying the
// disabled and hidden flags through.
func recordEntries(recs []repository.Record) []*widgets.Entry {
	out := make([]*widgets.Entry, 0, len(recs))
	for _, rec := range recs {
		e := widgets.NewEntryWithID(rec.ID, rec.Label)
		e.Disabled = rec.Disabled
		e.Hidden = rec.Hidden
		out = append(out, e)
	}
	return out
}
