package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rosterui/roster/core"
)

// TreeNode is one node of a Tree. Collapsed nodes keep their descendants out
// of the engine's member list entirely.
type TreeNode struct {
	*Entry
	Children []*TreeNode
	Expanded bool
}

// NewTreeNode builds a node with the given children.
func NewTreeNode(label string, children ...*TreeNode) *TreeNode {
	return &TreeNode{Entry: NewEntry(label), Children: children}
}

// TreeConfig configures a Tree.
type TreeConfig struct {
	Title       string
	Multiselect bool
}

// Tree is an expandable hierarchy. The engine navigates the depth-first
// flattening of the visible nodes, so Down from an expanded node lands on
// its first child for free. Right expands, Left collapses; both otherwise
// fall through to the engine.
type Tree struct {
	cfg    TreeConfig
	engine *core.Engine
	roots  []*TreeNode
}

// NewTree builds a tree. At least one root is required.
func NewTree(cfg TreeConfig, roots []*TreeNode) (*Tree, error) {
	if len(roots) == 0 {
		return nil, ErrNoEntries
	}
	t := &Tree{
		cfg: cfg,
		engine: core.NewEngine(core.Config{
			Multiselectable: cfg.Multiselect,
			SearchEnabled:   true,
		}),
		roots: append([]*TreeNode(nil), roots...),
	}
	t.Refresh()
	return t, nil
}

func (t *Tree) Engine() *core.Engine { return t.engine }

func (t *Tree) Roots() []*TreeNode { return append([]*TreeNode(nil), t.roots...) }

// Refresh re-flattens the visible nodes into the engine's candidate list.
// Call after expanding, collapsing, or flag changes.
func (t *Tree) Refresh() {
	var items []core.Item
	var walk func(nodes []*TreeNode)
	walk = func(nodes []*TreeNode) {
		for _, n := range nodes {
			items = append(items, n)
			if n.Expanded {
				walk(n.Children)
			}
		}
	}
	walk(t.roots)
	t.engine.Refresh(items)
}

// Visible returns the flattened visible nodes in document order.
func (t *Tree) Visible() []*TreeNode {
	members := t.engine.Items()
	out := make([]*TreeNode, len(members))
	for i, it := range members {
		out[i] = it.(*TreeNode)
	}
	return out
}

// Expand opens a node and refreshes.
func (t *Tree) Expand(n *TreeNode) {
	if len(n.Children) == 0 || n.Expanded {
		return
	}
	n.Expanded = true
	t.Refresh()
}

// Collapse closes a node and refreshes. Selected or focused descendants are
// pruned by the engine as they leave the member list.
func (t *Tree) Collapse(n *TreeNode) {
	if !n.Expanded {
		return
	}
	n.Expanded = false
	t.Refresh()
}

// HandleKey feeds a key press to the tree.
func (t *Tree) HandleKey(msg tea.KeyMsg) bool {
	ev := KeyEventFrom(msg)
	focused, _ := t.engine.Focused().(*TreeNode)
	switch ev.Key {
	case "right":
		if focused != nil && len(focused.Children) > 0 && !focused.Expanded {
			t.Expand(focused)
			return true
		}
	case "left":
		if focused != nil && focused.Expanded {
			t.Collapse(focused)
			return true
		}
	}
	return t.engine.SelectWithKeyboard(ev)
}

// ClickNode feeds a mouse press on a visible node to the engine.
func (t *Tree) ClickNode(n *TreeNode, msg tea.MouseMsg) bool {
	return t.engine.SelectWithMouse(MouseEventFor(n, msg))
}

// Close releases the engine's pending type-ahead reset.
func (t *Tree) Close() { t.engine.Close() }

// View renders the visible nodes with indentation and expansion glyphs.
func (t *Tree) View(width int) string {
	focused := t.engine.Focused()

	var b strings.Builder
	if t.cfg.Title != "" {
		b.WriteString(styleTitle.Render(t.cfg.Title))
		b.WriteString("\n")
	}

	first := true
	var walk func(nodes []*TreeNode, depth int)
	walk = func(nodes []*TreeNode, depth int) {
		for _, n := range nodes {
			if n.Hidden {
				continue
			}
			glyph := "  "
			if len(n.Children) > 0 {
				if n.Expanded {
					glyph = "▾ "
				} else {
					glyph = "▸ "
				}
			}
			marker := "  "
			if n.Selected() {
				marker = "✓ "
			}
			line := truncate(strings.Repeat("  ", depth)+glyph+marker+n.Label(), width)
			switch {
			case n.Disabled:
				line = styleDisabled.Render(line)
			case focused != nil && focused.ID() == n.ID():
				line = styleFocused.Render(line)
			case n.Selected():
				line = styleSelected.Render(line)
			default:
				line = styleItem.Render(line)
			}
			if !first {
				b.WriteString("\n")
			}
			first = false
			b.WriteString(line)
			if n.Expanded {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(t.roots, 0)
	return b.String()
}
