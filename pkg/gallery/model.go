// Package gallery is the interactive artwork browser: a scrolling card grid
// and a detail overlay that grows out of the activated card and shrinks back
// into it on close.
package gallery

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/artside/internal/assets"
	"github.com/marcus/artside/internal/modal"
	"github.com/marcus/artside/internal/models"
	"github.com/marcus/artside/internal/theme"
	"github.com/marcus/artside/internal/transition"
	"github.com/marcus/artside/internal/viewport"
	"github.com/marcus/artside/pkg/gallery/mouse"
)

const (
	frameInterval  = time.Second / 60
	statusTimeout  = 3 * time.Second
	swipeThreshold = 4
	wheelStep      = 3
)

// ActivateMsg asks for an artwork to be opened. The grid sends it on a card
// click or Enter; it carries everything the overlay needs.
type ActivateMsg struct {
	ArtworkID int
}

type timerMsg struct {
	pending modal.Pending
}

type frameMsg time.Time

type preloadMsg struct {
	missing int
	err     error
}

type clearStatusMsg struct {
	seq int
}

// TickFunc schedules fn to run after d. tea.Tick outside of tests.
type TickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Catalog *models.Catalog
	// Store renders artwork images. Without one, images are neutral fills.
	Store      *assets.Store
	Classifier *viewport.Classifier
	Controller []modal.Option
	Logger     *slog.Logger

	// OpenID, when non-zero, opens that artwork as soon as the program starts.
	OpenID int
	// SkipIntro disables the staggered card entrance.
	SkipIntro bool

	Now  func() time.Time
	Tick TickFunc
}

// stage is the animation state shared by every copy of the Model.
type stage struct {
	engine     *transition.Engine
	lastState  modal.State
	framing    bool
	entryStart time.Time
	statusSeq  int
}

// Model is the gallery program.
type Model struct {
	ctrl       *modal.Controller
	catalog    *models.Catalog
	classifier *viewport.Classifier
	store      *assets.Store
	themes     *theme.Provider
	mouse      *mouse.Handler
	stage      *stage
	logger     *slog.Logger
	ctx        context.Context
	now        func() time.Time
	tick       TickFunc

	styles Styles
	keys   Keymap
	help   help.Model

	openID    int
	skipIntro bool

	width, height int
	scroll        int
	focus         int
	focusShown    bool
	status        string
}

// New builds the gallery. ctx must carry a theme provider.
func New(ctx context.Context, opts Options) (Model, error) {
	themes, err := theme.FromContext(ctx)
	if err != nil {
		return Model{}, err
	}
	if opts.Catalog == nil {
		return Model{}, models.ErrEmptyCatalog
	}
	if opts.OpenID != 0 && !opts.Catalog.Contains(opts.OpenID) {
		return Model{}, fmt.Errorf("artwork %d: %w", opts.OpenID, modal.ErrNotInCatalog)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	classifier := opts.Classifier
	if classifier == nil {
		classifier = viewport.New(viewport.DefaultThreshold, viewport.DefaultCellWidth)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	tick := opts.Tick
	if tick == nil {
		tick = tea.Tick
	}

	ctrlOpts := append([]modal.Option{modal.WithLogger(logger)}, opts.Controller...)
	ctrl := modal.NewController(opts.Catalog, ctrlOpts...)

	// A mode switch moves every hit region, so a gesture or hover begun in
	// the old layout is dropped. The session itself is untouched.
	pointer := mouse.NewHandler()
	pointer.ClickSlop = swipeThreshold - 1
	classifier.Subscribe(func(compact bool) {
		pointer.Cancel()
		logger.Debug("viewport mode", "compact", compact, "session", ctrl.Session().ID.String())
	})

	return Model{
		ctrl:       ctrl,
		catalog:    opts.Catalog,
		classifier: classifier,
		store:      opts.Store,
		themes:     themes,
		mouse:      pointer,
		stage: &stage{
			engine:    transition.NewEngine(transition.DefaultDuration, transition.EaseOutCubic),
			lastState: modal.StateClosed,
		},
		logger:    logger.With("component", "gallery"),
		ctx:       ctx,
		now:       now,
		tick:      tick,
		styles:    NewStyles(themes.Current()),
		keys:      DefaultKeymap(),
		help:      help.New(),
		openID:    opts.OpenID,
		skipIntro: opts.SkipIntro,
	}, nil
}

// Controller exposes the overlay controller.
func (m Model) Controller() *modal.Controller { return m.ctrl }

// Scroll returns the page scroll offset in rows.
func (m Model) Scroll() int { return m.scroll }

// Focus returns the index of the keyboard-focused card.
func (m Model) Focus() int { return m.focus }

// Init starts asset preloading and the initial open, if any.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, m.preload())
	}
	if m.openID != 0 {
		cmds = append(cmds, activate(m.openID))
	}
	return tea.Batch(cmds...)
}

// Update handles a message and re-registers the hit regions for the
// resulting frame.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.refreshHitMap()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.classifier.Observe(msg.Width)
		if !m.ctrl.Scroll().Suspended() {
			m.scroll = min(m.scroll, m.maxScroll())
		}
		if m.stage.entryStart.IsZero() && !m.skipIntro {
			m.stage.entryStart = m.now()
		}
		return m, m.sync()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case ActivateMsg:
		_ = m.ctrl.Open(msg.ArtworkID)
		return m, m.sync()

	case timerMsg:
		m.ctrl.Fire(msg.pending)
		return m, m.sync()

	case frameMsg:
		if m.animating(m.now()) {
			return m, m.frame()
		}
		m.stage.framing = false
		return m, nil

	case preloadMsg:
		if msg.err != nil {
			m.logger.Warn("asset preload failed", "err", msg.err)
			return m, nil
		}
		if msg.missing > 0 {
			m.logger.Info("artwork images missing", "count", msg.missing)
			return m, m.setStatus(fmt.Sprintf("%d image(s) missing", msg.missing))
		}
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.logger.Warn("copy failed", "err", msg.err)
			return m, m.setStatus("copy failed: " + msg.err.Error())
		}
		return m, m.setStatus("copied " + msg.what)

	case clearStatusMsg:
		if msg.seq == m.stage.statusSeq {
			m.status = ""
		}
		return m, nil
	}
	return m, nil
}

func activate(id int) tea.Cmd {
	return func() tea.Msg { return ActivateMsg{ArtworkID: id} }
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.ctrl.HandleKey(msg) {
		return m, m.sync()
	}

	switch {
	case key.Matches(msg, m.keys.Theme):
		t := m.themes.Toggle()
		m.styles = NewStyles(t)
		m.logger.Debug("theme", "theme", string(t))
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		if a, ok := m.copyTarget(); ok {
			return m, copyArtwork(a)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// The overlay covers the page; nothing below it reacts.
	if m.ctrl.IsOpen() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-m.grid().Cols)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(m.grid().Cols)
	case key.Matches(msg, m.keys.Activate):
		m.focusShown = true
		return m, activate(m.catalog.At(m.focus).ID)
	case key.Matches(msg, m.keys.ScrollUp):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.ScrollDown):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.viewHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.viewHeight())
	case key.Matches(msg, m.keys.Top):
		m.scrollTo(0)
	case key.Matches(msg, m.keys.Bottom):
		m.scrollTo(m.maxScroll())
	}
	return m, nil
}

// copyTarget is the open artwork, else the focused card.
func (m Model) copyTarget() (models.Artwork, bool) {
	if m.ctrl.IsOpen() {
		return m.ctrl.Current()
	}
	if m.focusShown {
		return m.catalog.At(m.focus), true
	}
	return models.Artwork{}, false
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	action := m.mouse.HandleMouse(msg)

	switch action.Type {
	case mouse.ActionScrollUp:
		m.scrollBy(-wheelStep)
	case mouse.ActionScrollDown:
		m.scrollBy(wheelStep)
	case mouse.ActionClick:
		if action.Region == nil {
			return m, nil
		}
		if m.ctrl.HandleClick(action.Region.ID) {
			return m, m.sync()
		}
		if id, ok := action.Region.Data.(int); ok {
			return m, activate(id)
		}
	case mouse.ActionDragEnd:
		return m, m.swipe(action)
	}
	return m, nil
}

// swipe turns a horizontal drag across the open panel into navigation:
// dragging left shows the next artwork, dragging right the previous one.
func (m *Model) swipe(a mouse.Action) tea.Cmd {
	if !m.ctrl.IsOpen() || !m.ctrl.Navigation() {
		return nil
	}
	if a.Region == nil || a.Region.ID != modal.RegionPanel {
		return nil
	}
	dx, dy := abs(a.DragDX), abs(a.DragDY)
	if dx < swipeThreshold || dx <= dy {
		return nil
	}
	if a.DragDX < 0 {
		_ = m.ctrl.Next()
	} else {
		_ = m.ctrl.Previous()
	}
	return m.sync()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// sync schedules the controller's timers and commits the overlay snapshot
// for the current session state, starting the frame loop if anything moves.
func (m *Model) sync() tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range m.ctrl.TakePending() {
		cmds = append(cmds, m.tick(p.After, func(time.Time) tea.Msg {
			return timerMsg{pending: p}
		}))
	}
	if m.width == 0 || m.height == 0 {
		return tea.Batch(cmds...)
	}

	now := m.now()
	st := m.stage
	if target, id, ok := m.target(); ok {
		if m.ctrl.IsOpen() && !st.lastState.IsVisible() {
			m.seedFromCard(id, now)
		}
		prev := st.engine.Active()
		if tr := st.engine.Commit(target, now); tr != nil && tr != prev {
			plan := tr.Plan()
			m.logger.Debug("transition",
				"state", string(m.ctrl.State()),
				"morphs", len(plan.Morphs), "enters", len(plan.Enters), "exits", len(plan.Exits))
		}
	}
	st.lastState = m.ctrl.State()

	if m.animating(now) && !st.framing {
		st.framing = true
		cmds = append(cmds, m.frame())
	}
	return tea.Batch(cmds...)
}

// seedFromCard makes an artwork that is being opened grow out of its grid
// card. When the overlay is still animating, such as a close being
// superseded, the card joins the running frame so the exits continue.
func (m Model) seedFromCard(id int, now time.Time) {
	engine := m.stage.engine
	if !engine.Animating(now) {
		engine.Reset(m.homeSnapshot(id))
		return
	}
	if _, onScreen := engine.Frame(now)[transition.ContainerKey(id)]; onScreen {
		return
	}
	engine.Seed(m.homeSnapshot(id))
}

// target is the snapshot the overlay should settle into: the open layout
// while the artwork is shown, its grid card while it closes.
func (m Model) target() (transition.Snapshot, int, bool) {
	id, ok := m.ctrl.Session().Current()
	if !ok {
		return nil, 0, false
	}
	if m.ctrl.IsOpen() {
		return m.layout().Snapshot(id), id, true
	}
	return m.homeSnapshot(id), id, true
}

func (m Model) animating(now time.Time) bool {
	return m.stage.engine.Animating(now) || m.entryRunning(now)
}

func (m Model) frame() tea.Cmd {
	return m.tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.status = text
	m.stage.statusSeq++
	seq := m.stage.statusSeq
	return m.tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m Model) preload() tea.Cmd {
	store, c, ctx := m.store, m.catalog, m.ctx
	return func() tea.Msg {
		missing, err := store.Preload(ctx, c)
		return preloadMsg{missing: missing, err: err}
	}
}

// refreshHitMap registers the clickable regions of the frame about to be
// drawn. While the overlay is open its backdrop covers the whole screen, so
// cards are unreachable.
func (m Model) refreshHitMap() {
	m.mouse.Clear()
	if m.width == 0 || m.height == 0 {
		return
	}
	if m.ctrl.IsOpen() {
		for _, r := range m.layout().Regions(m.ctrl.Navigation()) {
			m.mouse.HitMap.AddRect(r.ID, r.Rect.X, r.Rect.Y, r.Rect.W, r.Rect.H, nil)
		}
		return
	}
	m.registerCards(m.mouse.HitMap)
}

// View renders the page, then the overlay on top of it.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	now := m.now()
	c := newCanvas(m.width, m.height)
	m.renderHeader(c)

	var frame transition.Snapshot
	overlay := m.overlayActive(now)
	if overlay {
		frame = m.stage.engine.Frame(now)
	}
	dim := m.ctrl.State() != modal.StateClosed
	m.renderGrid(c, now, liftedCards(frame), dim)
	if overlay {
		m.renderOverlay(c, now, frame)
	}

	footer := m.renderFooter()
	c.place(0, m.height-lipgloss.Height(footer), footer)
	return c.String()
}

func (m Model) renderFooter() string {
	var km help.KeyMap = m.keys
	if m.ctrl.IsOpen() {
		km = overlayHelp{page: m.keys, overlay: m.ctrl.Keymap(), navigation: m.ctrl.Navigation()}
	}
	line := " " + m.help.View(km)
	if m.status == "" {
		return line
	}
	status := m.styles.Status.Render(m.status)
	return fit(line, m.width-lipgloss.Width(status)-1) + status
}
