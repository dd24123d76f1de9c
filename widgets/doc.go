// Package widgets provides the composite-role widgets: listbox, menu,
// menubar, grid, tree, tablist, radiogroup, and combobox.
//
// Every widget embeds one core.Engine and delegates selection, focus, and
// keyboard navigation to it; the widget itself owns only role-specific
// concerns (layout, expansion state, column cursors, text input). Structural
// changes (entries added, removed, disabled, or hidden) must be followed by
// a Refresh call; nothing here observes mutations implicitly.
package widgets
