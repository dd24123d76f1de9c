package widgets

import "github.com/mattn/go-runewidth"

// truncate cuts a plain (unstyled) string to the given cell width, appending
// an ellipsis when anything was dropped. Non-positive widths disable cutting.
func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, width-1, "") + "…"
}

// padRight pads a plain string with spaces up to the given cell width.
func padRight(s string, width int) string {
	for runewidth.StringWidth(s) < width {
		s += " "
	}
	return s
}
