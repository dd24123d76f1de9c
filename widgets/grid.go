package widgets

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rosterui/roster/core"
)

// ErrNoColumns is returned when a grid is built without column definitions.
var ErrNoColumns = errors.New("grid requires at least one column")

// Column defines one grid column.
type Column struct {
	Title string
	Width int
}

// GridRow is one selectable row. Its engine label, the type-ahead target,
// is the primary (first) cell.
type GridRow struct {
	*Entry
	Cells []string
}

// NewGridRow builds a row from its cells.
func NewGridRow(cells ...string) *GridRow {
	label := ""
	if len(cells) > 0 {
		label = cells[0]
	}
	return &GridRow{Entry: NewEntry(label), Cells: cells}
}

// GridConfig configures a Grid.
type GridConfig struct {
	Title       string
	Multiselect bool
	Height      int // visible rows; zero means show everything
}

// Grid is a row-selection data grid. Up/Down (and Home/End, type-ahead,
// Space, Ctrl+A) drive the selection engine over rows; Left/Right move a
// grid-local column cursor that never touches selection.
type Grid struct {
	cfg     GridConfig
	engine  *core.Engine
	columns []Column
	rows    []*GridRow
	col     int
	offset  int
}

// NewGrid builds a grid. Columns and at least one row are required.
func NewGrid(cfg GridConfig, columns []Column, rows []*GridRow) (*Grid, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	if len(rows) == 0 {
		return nil, ErrNoEntries
	}
	g := &Grid{
		cfg: cfg,
		engine: core.NewEngine(core.Config{
			Multiselectable: cfg.Multiselect,
			SearchEnabled:   true,
		}),
		columns: append([]Column(nil), columns...),
		rows:    append([]*GridRow(nil), rows...),
	}
	g.Refresh()
	return g, nil
}

func (g *Grid) Engine() *core.Engine { return g.engine }

func (g *Grid) Rows() []*GridRow { return append([]*GridRow(nil), g.rows...) }

// Column returns the current column cursor.
func (g *Grid) Column() int { return g.col }

// Refresh rebuilds the engine member list after row flags changed.
func (g *Grid) Refresh() {
	items := make([]core.Item, len(g.rows))
	for i, r := range g.rows {
		items[i] = r
	}
	g.engine.Refresh(items)
	g.ensureCursorInWindow()
}

// HandleKey feeds a key press to the grid. Left/Right move the column
// cursor; everything else goes to the engine over rows.
func (g *Grid) HandleKey(msg tea.KeyMsg) bool {
	ev := KeyEventFrom(msg)
	switch ev.Key {
	case "left":
		if g.col > 0 {
			g.col--
		}
		return true
	case "right":
		if g.col < len(g.columns)-1 {
			g.col++
		}
		return true
	}
	handled := g.engine.SelectWithKeyboard(ev)
	if handled {
		g.ensureCursorInWindow()
	}
	return handled
}

// ClickRow feeds a mouse press on the given member row to the engine.
func (g *Grid) ClickRow(row *GridRow, msg tea.MouseMsg) bool {
	handled := g.engine.SelectWithMouse(MouseEventFor(row, msg))
	if handled {
		g.ensureCursorInWindow()
	}
	return handled
}

// Close releases the engine's pending type-ahead reset.
func (g *Grid) Close() { g.engine.Close() }

func (g *Grid) visibleRows() int {
	if g.cfg.Height > 0 {
		return g.cfg.Height
	}
	return len(g.engine.Items())
}

func (g *Grid) ensureCursorInWindow() {
	height := g.visibleRows()
	members := g.engine.Items()
	if g.offset > len(members)-height {
		g.offset = len(members) - height
	}
	if g.offset < 0 {
		g.offset = 0
	}
	focused := g.engine.Focused()
	if focused == nil {
		return
	}
	for i, it := range members {
		if it.ID() != focused.ID() {
			continue
		}
		if i < g.offset {
			g.offset = i
		} else if i >= g.offset+height {
			g.offset = i - height + 1
		}
		return
	}
}

// View renders the header and the visible row window.
func (g *Grid) View(width int) string {
	members := g.engine.Items()
	focused := g.engine.Focused()

	var b strings.Builder
	if g.cfg.Title != "" {
		b.WriteString(styleTitle.Render(g.cfg.Title))
		b.WriteString("\n")
	}

	header := make([]string, len(g.columns))
	for i, c := range g.columns {
		title := padRight(truncate(c.Title, c.Width), c.Width)
		if i == g.col {
			title = styleTitle.Render(title)
		} else {
			title = styleHint.Render(title)
		}
		header[i] = title
	}
	b.WriteString(truncate(strings.Join(header, " "), width))
	b.WriteString("\n")

	end := g.offset + g.visibleRows()
	if end > len(members) {
		end = len(members)
	}
	for i := g.offset; i < end; i++ {
		row := members[i].(*GridRow)
		cells := make([]string, len(g.columns))
		for c := range g.columns {
			cell := ""
			if c < len(row.Cells) {
				cell = row.Cells[c]
			}
			cells[c] = padRight(truncate(cell, g.columns[c].Width), g.columns[c].Width)
		}
		line := strings.Join(cells, " ")
		marker := "  "
		if row.Selected() {
			marker = "✓ "
		}
		line = truncate(marker+line, width)
		switch {
		case focused != nil && focused.ID() == row.ID():
			line = styleFocused.Render(line)
		case row.Selected():
			line = styleSelected.Render(line)
		default:
			line = styleItem.Render(line)
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
