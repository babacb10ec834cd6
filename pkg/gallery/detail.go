package gallery

import (
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/artside/internal/assets"
	"github.com/marcus/artside/internal/modal"
	"github.com/marcus/artside/internal/models"
	"github.com/marcus/artside/internal/transition"
	"github.com/marcus/artside/internal/viewport"
)

// visibleOpacity is the cutoff below which a fading element is not drawn.
// Cells have no alpha, so a crossfade becomes a swap at the midpoint.
const visibleOpacity = 0.5

const infoDividerW = 16

// overlayActive reports whether the overlay layer has anything to draw.
func (m Model) overlayActive(now time.Time) bool {
	return m.ctrl.State() != modal.StateClosed || m.stage.engine.Animating(now)
}

// liftedCards returns the artworks the overlay currently draws, so the grid
// leaves their cards empty.
func liftedCards(frame transition.Snapshot) map[int]bool {
	lifted := map[int]bool{}
	for k := range frame {
		if id, ok := k.ArtworkID(); ok {
			lifted[id] = true
		}
	}
	return lifted
}

func (m Model) layout() modal.Layout {
	return modal.LayoutFor(m.classifier.Mode(), m.width, m.height)
}

// renderFrame draws the shared elements of an animation frame: containers
// first, images on top.
func (m Model) renderFrame(c *canvas, frame transition.Snapshot) {
	keys := frame.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		return !keys[i].IsImage() && keys[j].IsImage()
	})

	fitMode := assets.FitCover
	if m.ctrl.IsOpen() && m.classifier.Mode() == viewport.ModeCompact {
		fitMode = assets.FitContain
	}

	for _, k := range keys {
		el := frame[k]
		if el.Opacity < visibleOpacity {
			continue
		}
		x, y, w, h := el.Bounds.Round()
		if w < 2 || h < 1 {
			continue
		}
		if !k.IsImage() {
			if h >= 2 {
				c.place(x, y, m.panelBox(w, h, el.Radius))
			}
			continue
		}
		id, _ := k.ArtworkID()
		a, ok := m.catalog.ByID(id)
		if !ok {
			continue
		}
		if m.store == nil {
			c.place(x, y, assets.NeutralFill(w, h, m.styles.Palette.Bg))
			continue
		}
		c.place(x, y, m.store.Render(a.Image, w, h, fitMode, m.styles.Palette.Bg))
	}
}

// panelBox is an empty bordered rectangle of w x h cells.
func (m Model) panelBox(w, h int, radius float64) string {
	border := lipgloss.NormalBorder()
	if radius >= 1 {
		border = lipgloss.RoundedBorder()
	}
	return m.styles.Panel.
		Border(border).
		Width(w - 2).
		Height(h - 2).
		Render("")
}

// renderChrome draws the parts of the overlay that are not shared with the
// grid: the info block once the panel has settled, and the buttons.
func (m Model) renderChrome(c *canvas, l modal.Layout, a models.Artwork, settled bool) {
	if settled && l.Info.W > 4 && l.Info.H > 2 {
		c.place(l.Info.X, l.Info.Y, m.renderInfo(a, l.Info.W, l.Info.H))
	}

	hover := m.mouse.HoverRegion()
	button := func(r modal.Rect, region, label string) {
		st := m.styles.Button
		if hover == region {
			st = m.styles.ButtonHover
		}
		c.place(r.X, r.Y, st.Render(fit(" "+label, r.W)))
	}
	button(l.Close, modal.RegionClose, "✕")
	if m.ctrl.Navigation() && m.catalog.Len() > 1 {
		button(l.Previous, modal.RegionPrevious, "‹")
		button(l.Next, modal.RegionNext, "›")
	}
}

// renderInfo is the text block beside or under the image: type badge,
// title, artist and year, a short divider and the description.
func (m Model) renderInfo(a models.Artwork, w, h int) string {
	st := m.styles
	innerW := max(w-4, 1)
	innerH := max(h-2, 1)

	badge := strings.Join(strings.Split(strings.ToUpper(string(a.Type)), ""), " ")
	lines := []string{
		st.Badge.Render(badge),
		"",
		st.DetailTitle.Render(a.Title),
		st.DetailMeta.Render(a.Artist + "  •  " + a.Year),
		"",
		st.Divider.Render(strings.Repeat("─", min(infoDividerW, innerW))),
		"",
	}
	desc := lipgloss.NewStyle().Width(innerW).Render(a.Description)
	for _, ln := range strings.Split(desc, "\n") {
		lines = append(lines, st.Body.Render(ln))
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for i, ln := range lines {
		lines[i] = fit(ln, innerW)
	}

	return st.Panel.
		Padding(0, 1).
		Width(innerW + 2).
		Height(innerH).
		Render(strings.Join(lines, "\n"))
}

// renderOverlay draws the backdrop layer: the animated shared elements and,
// while an artwork is open, its chrome.
func (m Model) renderOverlay(c *canvas, now time.Time, frame transition.Snapshot) {
	m.renderFrame(c, frame)

	if !m.ctrl.IsOpen() {
		return
	}
	a, ok := m.ctrl.Current()
	if !ok {
		return
	}
	settled := !m.stage.engine.Animating(now)
	m.renderChrome(c, m.layout(), a, settled)
}
