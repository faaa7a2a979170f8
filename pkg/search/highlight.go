package search

import "github.com/fatih/color"

// highlighter wraps the matched span of a line in red.
type highlighter struct {
	c       *color.Color
	enabled bool
}

func newHighlighter(enabled bool) *highlighter {
	c := color.New(color.FgRed, color.Bold)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return &highlighter{c: c, enabled: enabled}
}

// apply wraps the first match span, given as a [start, end) byte range.
// Only the one span returned by the match is wrapped, never every
// occurrence of the matched text.
func (h *highlighter) apply(line string, loc []int) string {
	if !h.enabled || len(loc) < 2 || loc[0] == loc[1] {
		return line
	}
	return line[:loc[0]] + h.c.Sprint(line[loc[0]:loc[1]]) + line[loc[1]:]
}
