package gallery

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/artside/internal/assets"
	"github.com/marcus/artside/internal/modal"
	"github.com/marcus/artside/internal/models"
	"github.com/marcus/artside/internal/transition"
	"github.com/marcus/artside/internal/viewport"
	"github.com/marcus/artside/pkg/gallery/mouse"
)

const (
	headerHeight = 3 // eyebrow, title, rule
	footerHeight = 1

	gridMargin    = 2
	colGap        = 3
	rowGap        = 1
	captionHeight = 3
	minImageH     = 3
	minCardW      = 12

	// oddOffset drops every second card in multi-column grids.
	oddOffset = 2

	// largeWidth is the logical width from which three columns fit.
	largeWidth = 1024

	// scrolledThreshold is how far the page must scroll before the header
	// switches to its scrolled styling.
	scrolledThreshold = 2

	cardRadius = 1

	entryDuration = 800 * time.Millisecond
	entryStagger  = 100 * time.Millisecond
	entryRise     = 3

	cardRegionPrefix = "card:"
)

// gridLayout is the card geometry for one screen size. Card rectangles are in
// content coordinates: row 0 is the first row under the header, before
// scrolling.
type gridLayout struct {
	Cols     int
	CardW    int
	CardH    int
	ImageH   int
	Cards    []modal.Rect
	ContentH int
}

// columnsFor picks 1, 2 or 3 columns for a screen cols wide.
func columnsFor(c *viewport.Classifier, cols int) int {
	if c.IsCompactWidth(c.LogicalWidth(cols)) {
		return 1
	}
	if c.LogicalWidth(cols) >= largeWidth {
		return 3
	}
	return 2
}

func computeGrid(c *viewport.Classifier, width, height, n int) gridLayout {
	cols := columnsFor(c, width)
	cardW := (width - 2*gridMargin - colGap*(cols-1)) / cols
	if cardW < minCardW {
		cardW = minCardW
	}

	// Cards are 3:4 portrait; a cell is about twice as tall as it is wide.
	innerW := cardW - 2
	imageH := innerW * 2 / 3
	viewH := height - headerHeight - footerHeight
	if maxImage := viewH - captionHeight - 2 - oddOffset; imageH > maxImage {
		imageH = maxImage
	}
	if imageH < minImageH {
		imageH = minImageH
	}
	cardH := imageH + captionHeight + 2

	g := gridLayout{Cols: cols, CardW: cardW, CardH: cardH, ImageH: imageH}
	for i := range n {
		r, col := i/cols, i%cols
		rect := modal.Rect{
			X: gridMargin + col*(cardW+colGap),
			Y: r * (cardH + rowGap),
			W: cardW,
			H: cardH,
		}
		if cols > 1 && i%2 == 1 {
			rect.Y += oddOffset
		}
		g.Cards = append(g.Cards, rect)
		g.ContentH = max(g.ContentH, rect.Bottom())
	}
	return g
}

// imageRect is the picture area inside a card.
func (g gridLayout) imageRect(card modal.Rect) modal.Rect {
	return modal.Rect{X: card.X + 1, Y: card.Y + 1, W: card.W - 2, H: g.ImageH}
}

func (m Model) viewHeight() int {
	return max(m.height-headerHeight-footerHeight, 0)
}

func (m Model) grid() gridLayout {
	return computeGrid(m.classifier, m.width, m.height, m.catalog.Len())
}

func (m Model) maxScroll() int {
	return max(m.grid().ContentH-m.viewHeight(), 0)
}

// toScreen moves a content rectangle to screen rows.
func (m Model) toScreen(r modal.Rect) modal.Rect {
	r.Y += headerHeight - m.scroll
	return r
}

// homeSnapshot is the shared-element snapshot of artwork id resting in its
// grid card.
func (m Model) homeSnapshot(id int) transition.Snapshot {
	s := transition.Snapshot{}
	idx, ok := m.catalog.IndexOf(id)
	if !ok {
		return s
	}
	g := m.grid()
	card := g.Cards[idx]
	s.Put(transition.ContainerKey(id), m.toScreen(card).Bounds(), cardRadius)
	s.Put(transition.ImageKey(id), m.toScreen(g.imageRect(card)).Bounds(), cardRadius)
	return s
}

// scrollBy moves the page. It is ignored while the overlay holds the scroll
// lock.
func (m *Model) scrollBy(delta int) {
	if m.ctrl.Scroll().Suspended() {
		return
	}
	m.scroll = min(max(m.scroll+delta, 0), m.maxScroll())
}

func (m *Model) scrollTo(offset int) {
	m.scrollBy(offset - m.scroll)
}

// moveFocus moves the keyboard cursor by delta cards and scrolls it into
// view.
func (m *Model) moveFocus(delta int) {
	n := m.catalog.Len()
	if !m.focusShown {
		m.focusShown = true
		return
	}
	m.focus = min(max(m.focus+delta, 0), n-1)
	m.ensureFocusVisible()
}

func (m *Model) ensureFocusVisible() {
	g := m.grid()
	if m.focus < 0 || m.focus >= len(g.Cards) {
		return
	}
	card := g.Cards[m.focus]
	viewH := m.viewHeight()
	switch {
	case card.Y < m.scroll:
		m.scrollTo(card.Y)
	case card.Bottom() > m.scroll+viewH:
		m.scrollTo(card.Bottom() - viewH)
	}
}

// entryProgress is how far card idx is through its staggered entrance.
func (m Model) entryProgress(idx int, now time.Time) float64 {
	if m.stage.entryStart.IsZero() {
		return 1
	}
	elapsed := now.Sub(m.stage.entryStart) - time.Duration(idx)*entryStagger
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= entryDuration {
		return 1
	}
	return transition.EaseOutCubic(float64(elapsed) / float64(entryDuration))
}

func (m Model) entryRunning(now time.Time) bool {
	if m.stage.entryStart.IsZero() {
		return false
	}
	last := time.Duration(m.catalog.Len()-1)*entryStagger + entryDuration
	return now.Sub(m.stage.entryStart) < last
}

// registerCards adds a hit region per visible card.
func (m Model) registerCards(hits *mouse.HitMap) {
	g := m.grid()
	top, bottom := headerHeight, headerHeight+m.viewHeight()
	for i, card := range g.Cards {
		r := m.toScreen(card)
		y0, y1 := max(r.Y, top), min(r.Bottom(), bottom)
		if y1 <= y0 {
			continue
		}
		a := m.catalog.At(i)
		hits.AddRect(cardRegionPrefix+fmt.Sprint(a.ID), r.X, y0, r.W, y1-y0, a.ID)
	}
}

// renderHeader draws the collection heading. It stays pinned while the
// grid scrolls beneath it.
func (m Model) renderHeader(c *canvas) {
	st := m.styles
	scrolled := m.scroll > scrolledThreshold
	inner := max(m.width-2*gridMargin, 1)

	icon := m.themes.Current().Icon()
	eyebrow := st.Eyebrow.Render("CURRENT COLLECTION")
	c.place(gridMargin, 0, fit(eyebrow, inner-2)+st.Counter.Render(icon))

	title := st.Title.Render("Featured Works")
	if scrolled {
		title = st.TitleScrolled.Render("Featured Works")
	}
	line := title
	if !m.classifier.Compact() {
		counter := st.Counter.Render(fmt.Sprintf("%02d — %02d", 1, m.catalog.Len()))
		line = fit(title, inner-lipgloss.Width(counter)) + counter
	}
	c.place(gridMargin, 1, line)

	rule := st.Rule
	if scrolled {
		rule = st.RuleScrolled
	}
	c.place(gridMargin, 2, rule.Render(strings.Repeat("─", inner)))
}

// renderGrid draws every visible card. Cards listed in lifted are skipped
// because the overlay is drawing them elsewhere. dim renders the page behind
// the backdrop.
func (m Model) renderGrid(c *canvas, now time.Time, lifted map[int]bool, dim bool) {
	g := m.grid()
	top, bottom := headerHeight, headerHeight+m.viewHeight()
	hover := m.mouse.HoverRegion()

	for i, card := range g.Cards {
		a := m.catalog.At(i)
		if lifted[a.ID] {
			continue
		}
		p := m.entryProgress(i, now)
		if p <= 0 {
			continue
		}
		r := m.toScreen(card)
		r.Y += int((1 - p) * entryRise)
		if r.Bottom() <= top || r.Y >= bottom {
			continue
		}
		focused := m.focusShown && m.focus == i && !dim
		hovered := hover == cardRegionPrefix+fmt.Sprint(a.ID) && !dim
		c.placeClipped(r.X, r.Y, m.renderCard(a, g, focused || hovered, dim), top, bottom)
	}
}

func (m Model) renderCard(a models.Artwork, g gridLayout, highlighted, dim bool) string {
	st := m.styles
	innerW := g.CardW - 2

	var image string
	if dim || m.store == nil {
		fill := st.Palette.Bg
		if dim {
			fill = st.Palette.Backdrop
		}
		image = assets.NeutralFill(innerW, g.ImageH, fill)
	} else {
		image = m.store.Render(a.Image, innerW, g.ImageH, assets.FitCover, st.Palette.Bg)
	}

	kind, title, meta := st.CardType, st.CardTitle, st.CardMeta
	if dim {
		kind, title, meta = st.DimText, st.DimText, st.DimText
	}
	caption := []string{
		fit(kind.Render(strings.ToUpper(string(a.Type))), innerW),
		fit(title.Render(a.Title), innerW),
		fit(meta.Render(a.Artist+" · "+a.Year), innerW),
	}

	box := st.Card
	if highlighted {
		box = st.CardFocused
	}
	if dim {
		box = box.BorderForeground(st.Palette.Muted)
	}
	return box.Render(image + "\n" + strings.Join(caption, "\n"))
}
