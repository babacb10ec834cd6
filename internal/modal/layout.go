package modal

import (
	"github.com/marcus/artside/internal/transition"
	"github.com/marcus/artside/internal/viewport"
)

// Rect is a screen rectangle in cells.
type Rect struct {
	X, Y, W, H int
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether the cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Bounds converts r for the transition engine.
func (r Rect) Bounds() transition.Bounds {
	return transition.Bounds{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)}
}

// Layout is where each part of the overlay goes for one screen size.
type Layout struct {
	Mode     viewport.Mode
	Backdrop Rect
	Panel    Rect
	Image    Rect
	Info     Rect
	Close    Rect
	Previous Rect
	Next     Rect
	// Radius is the corner rounding of the panel, 0 for square.
	Radius float64
}

const (
	buttonW = 3
	buttonH = 1

	// compactImagePercent is the share of the screen height the image takes
	// in the stacked layout.
	compactImagePercent = 50

	expandedMaxPanelW   = 144
	expandedPanelHPct   = 90
	expandedImagePct    = 65
	expandedInfoOverlap = 6
	expandedInfoDrop    = 4
	expandedMargin      = 4
)

// LayoutFor computes the overlay geometry for a screen of w x h cells. Both
// modes present the same session; switching modes only moves rectangles.
func LayoutFor(mode viewport.Mode, w, h int) Layout {
	w = max(w, 2*buttonW+2)
	h = max(h, 4)
	if mode == viewport.ModeCompact {
		return compactLayout(w, h)
	}
	return expandedLayout(w, h)
}

// compactLayout stacks the image over the info panel across the full screen.
// The arrows sit on the image and the close button is pinned to the screen.
func compactLayout(w, h int) Layout {
	screen := Rect{X: 0, Y: 0, W: w, H: h}
	panel := Rect{X: 1, Y: 0, W: w - 2, H: h - 1}
	imageH := max(panel.H*compactImagePercent/100, 1)
	image := Rect{X: panel.X, Y: panel.Y, W: panel.W, H: imageH}
	midY := image.Y + imageH/2

	return Layout{
		Mode:     viewport.ModeCompact,
		Backdrop: screen,
		Panel:    panel,
		Image:    image,
		Info:     Rect{X: panel.X, Y: image.Bottom(), W: panel.W, H: panel.H - imageH},
		Close:    Rect{X: w - buttonW - 1, Y: 1, W: buttonW, H: buttonH},
		Previous: Rect{X: image.X + 1, Y: midY, W: buttonW, H: buttonH},
		Next:     Rect{X: image.Right() - buttonW - 1, Y: midY, W: buttonW, H: buttonH},
	}
}

// expandedLayout places the image column on the left with the info card
// overlapping its right edge and dropped slightly. The arrows sit at the
// screen edges and the close button is pinned to the panel corner.
func expandedLayout(w, h int) Layout {
	screen := Rect{X: 0, Y: 0, W: w, H: h}

	panelW := min(w-2*(expandedMargin+buttonW), expandedMaxPanelW)
	panelW = max(panelW, 10)
	panelH := max(h*expandedPanelHPct/100, 4)
	panel := Rect{X: (w - panelW) / 2, Y: (h - panelH) / 2, W: panelW, H: panelH}

	imageW := panelW * expandedImagePct / 100
	drop := min(expandedInfoDrop, panelH/4)
	image := Rect{X: panel.X, Y: panel.Y, W: imageW, H: panelH - drop}

	infoX := image.Right() - min(expandedInfoOverlap, imageW/4)
	info := Rect{X: infoX, Y: panel.Y + drop, W: panel.Right() - infoX, H: panelH - drop}

	midY := h / 2
	return Layout{
		Mode:     viewport.ModeExpanded,
		Backdrop: screen,
		Panel:    panel,
		Image:    image,
		Info:     info,
		Close:    Rect{X: panel.Right() - buttonW - 1, Y: panel.Y + drop + 1, W: buttonW, H: buttonH},
		Previous: Rect{X: 1, Y: midY, W: buttonW, H: buttonH},
		Next:     Rect{X: w - buttonW - 1, Y: midY, W: buttonW, H: buttonH},
		Radius:   2,
	}
}

// Snapshot returns the keyed elements the overlay shows for artwork id.
func (l Layout) Snapshot(id int) transition.Snapshot {
	s := transition.Snapshot{}
	s.Put(transition.ContainerKey(id), l.Panel.Bounds(), l.Radius)
	s.Put(transition.ImageKey(id), l.Image.Bounds(), l.Radius)
	return s
}

// Regions returns the overlay hit regions in registration order, lowest
// priority first. Arrow regions are omitted when navigation is not wired.
func (l Layout) Regions(navigation bool) []Region {
	regions := []Region{
		{ID: RegionBackdrop, Rect: l.Backdrop},
		{ID: RegionPanel, Rect: l.Panel},
		{ID: RegionClose, Rect: l.Close},
	}
	if navigation {
		regions = append(regions,
			Region{ID: RegionPrevious, Rect: l.Previous},
			Region{ID: RegionNext, Rect: l.Next},
		)
	}
	return regions
}

// Region pairs a hit region id with its rectangle.
type Region struct {
	ID   string
	Rect Rect
}

// Navigation reports whether the arrow intents are wired.
func (c *Controller) Navigation() bool { return c.navigation }
