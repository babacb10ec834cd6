package gallery

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// canvas is a fixed-size screen of styled lines that blocks are composited
// onto. Later placements cover earlier ones cell for cell.
type canvas struct {
	w, h  int
	lines []string
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, lines: make([]string, h)}
	blank := strings.Repeat(" ", w)
	for i := range c.lines {
		c.lines[i] = blank
	}
	return c
}

// place draws block with its top-left corner at (x, y), clipped to the
// canvas.
func (c *canvas) place(x, y int, block string) {
	c.placeClipped(x, y, block, 0, c.h)
}

// placeClipped is place limited to rows [top, bottom).
func (c *canvas) placeClipped(x, y int, block string, top, bottom int) {
	top = max(top, 0)
	bottom = min(bottom, c.h)

	fg := strings.Split(block, "\n")
	fgW := 0
	for _, ln := range fg {
		fgW = max(fgW, ansi.StringWidth(ln))
	}
	if fgW == 0 {
		return
	}

	skip := 0
	if x < 0 {
		skip = -x
		x = 0
	}
	visW := min(fgW-skip, c.w-x)
	if visW <= 0 {
		return
	}

	for i, ln := range fg {
		row := y + i
		if row < top || row >= bottom {
			continue
		}
		if n := ansi.StringWidth(ln); n < fgW {
			ln += strings.Repeat(" ", fgW-n)
		}
		ln = ansi.Cut(ln, skip, skip+visW)

		bg := c.lines[row]
		c.lines[row] = ansi.Cut(bg, 0, x) + ln + ansi.Cut(bg, x+visW, c.w)
	}
}

// String joins the canvas rows.
func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// fit pads or truncates s to exactly w cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	n := ansi.StringWidth(s)
	if n > w {
		return ansi.Truncate(s, w, "…")
	}
	return s + strings.Repeat(" ", w-n)
}
