// Package modal implements the artwork detail overlay: which artwork is open,
// sequential navigation through the catalog, the two-phase close, the page
// scroll lock and the keyboard and pointer bindings that only exist while the
// overlay is open.
package modal

import (
	"io"
	"log/slog"
	"time"

	"github.com/marcus/artside/internal/models"
)

const (
	// CloseFinalizeDelay is how long the closing artwork stays referenced so
	// the exit animation can still draw it.
	CloseFinalizeDelay = 300 * time.Millisecond
	// EnterDuration is the detail panel's entry animation.
	EnterDuration = 400 * time.Millisecond
)

// TimerKind identifies what a Pending timer completes.
type TimerKind int

const (
	TimerEntered TimerKind = iota
	TimerFinalize
)

func (k TimerKind) String() string {
	if k == TimerFinalize {
		return "finalize"
	}
	return "entered"
}

// Pending is a one-shot deferred callback the host must schedule and hand
// back through Fire once After has elapsed. A Pending whose generation has
// been superseded is ignored.
type Pending struct {
	Gen   uint64
	Kind  TimerKind
	After time.Duration
}

// EventKind describes a session change.
type EventKind string

const (
	EventOpened    EventKind = "opened"
	EventEntered   EventKind = "entered"
	EventSwapped   EventKind = "swapped"
	EventClosing   EventKind = "closing"
	EventFinalized EventKind = "finalized"
	EventReopened  EventKind = "reopened"
)

// Event is delivered to observers after every session change.
type Event struct {
	Kind      EventKind
	From      State
	To        State
	ArtworkID int
}

// ScrollState is the read-only view of the page scroll lock.
type ScrollState interface {
	Suspended() bool
}

type scrollLock struct {
	held bool
}

func (l *scrollLock) Suspended() bool { return l.held }

// Controller owns the Session and the scroll lock. It is not safe for
// concurrent use; all calls come from the UI event loop.
type Controller struct {
	catalog    *models.Catalog
	session    *Session
	scroll     scrollLock
	keys       *keyScope
	keymap     Keymap
	navigation bool
	strict     bool
	closeDelay time.Duration
	enterDelay time.Duration
	logger     *slog.Logger
	observers  []func(Event)
	pending    []Pending
}

// Option configures a Controller.
type Option func(*Controller)

// WithStrict makes precondition violations panic instead of being ignored.
func WithStrict(strict bool) Option {
	return func(c *Controller) { c.strict = strict }
}

// WithLogger sets the logger used for state changes and violations.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCloseDelay overrides CloseFinalizeDelay.
func WithCloseDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.closeDelay = d
		}
	}
}

// WithKeymap overrides the default key bindings.
func WithKeymap(k Keymap) Option {
	return func(c *Controller) { c.keymap = k }
}

// WithoutNavigation leaves the arrow keys and arrow buttons unbound.
func WithoutNavigation() Option {
	return func(c *Controller) { c.navigation = false }
}

// NewController creates a controller over catalog with a closed session.
func NewController(catalog *models.Catalog, opts ...Option) *Controller {
	c := &Controller{
		catalog:    catalog,
		session:    newSession(),
		keymap:     DefaultKeymap(),
		navigation: true,
		closeDelay: CloseFinalizeDelay,
		enterDelay: EnterDuration,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("session", c.session.ID.String())
	return c
}

// Session returns the controller's session for reading.
func (c *Controller) Session() *Session { return c.session }

// Scroll returns the page scroll lock state.
func (c *Controller) Scroll() ScrollState { return &c.scroll }

// Catalog returns the catalog navigation runs over.
func (c *Controller) Catalog() *models.Catalog { return c.catalog }

// IsOpen reports whether the overlay is opening or open.
func (c *Controller) IsOpen() bool { return c.session.IsOpen() }

// State returns the overlay state.
func (c *Controller) State() State { return c.session.State }

// Current returns the artwork on screen, including during the close window.
func (c *Controller) Current() (models.Artwork, bool) {
	id, ok := c.session.Current()
	if !ok {
		return models.Artwork{}, false
	}
	return c.catalog.ByID(id)
}

// NextArtwork returns the artwork Next would show.
func (c *Controller) NextArtwork() (models.Artwork, bool) {
	id, ok := c.session.Current()
	if !ok {
		return models.Artwork{}, false
	}
	return c.catalog.NextOf(id)
}

// PreviousArtwork returns the artwork Previous would show.
func (c *Controller) PreviousArtwork() (models.Artwork, bool) {
	id, ok := c.session.Current()
	if !ok {
		return models.Artwork{}, false
	}
	return c.catalog.PrevOf(id)
}

// OnChange registers an observer for session events.
func (c *Controller) OnChange(fn func(Event)) {
	c.observers = append(c.observers, fn)
}

// TakePending returns and clears the timers requested since the last call.
func (c *Controller) TakePending() []Pending {
	p := c.pending
	c.pending = nil
	return p
}

// Open shows artwork id. Opening the artwork that is already open is a no-op;
// opening a different one while open swaps it in place. Opening during the
// close window cancels the pending finalize.
func (c *Controller) Open(id int) error {
	if !c.catalog.Contains(id) {
		return c.violation(&InvariantError{Op: "open", ArtworkID: id, Err: ErrNotInCatalog})
	}

	s := c.session
	cur, hasCur := s.Current()
	switch s.State {
	case StateOpening, StateOpen:
		if hasCur && cur == id {
			return nil
		}
		s.setCurrent(id)
		c.emit(Event{Kind: EventSwapped, From: s.State, To: s.State, ArtworkID: id})
		return nil
	}

	from := s.State
	to, _ := Next(from, TriggerOpen)
	s.State = to
	s.gen++
	s.setCurrent(id)
	c.scroll.held = true
	c.installKeys()
	c.schedule(TimerEntered, c.enterDelay)

	kind := EventOpened
	if from == StateClosing {
		kind = EventReopened
	}
	c.emit(Event{Kind: kind, From: from, To: to, ArtworkID: id})
	return nil
}

// Close hides the overlay. IsOpen turns false immediately; the artwork
// reference and the scroll lock are released CloseFinalizeDelay later.
func (c *Controller) Close() error {
	s := c.session
	from := s.State
	to, ok := Next(from, TriggerClose)
	if !ok {
		return nil
	}
	s.State = to
	s.gen++
	c.releaseKeys()
	c.schedule(TimerFinalize, c.closeDelay)

	id, _ := s.Current()
	c.emit(Event{Kind: EventClosing, From: from, To: to, ArtworkID: id})
	return nil
}

// Next advances to the following artwork, wrapping to the first.
func (c *Controller) Next() error {
	return c.step("next", c.catalog.NextOf)
}

// Previous goes back to the preceding artwork, wrapping to the last.
func (c *Controller) Previous() error {
	return c.step("previous", c.catalog.PrevOf)
}

func (c *Controller) step(op string, neighbour func(int) (models.Artwork, bool)) error {
	id, ok := c.session.Current()
	if !c.session.IsOpen() || !ok {
		return c.violation(&InvariantError{Op: op, Err: ErrNotOpen})
	}
	if c.catalog.Len() == 1 {
		return nil
	}
	next, _ := neighbour(id)
	c.session.setCurrent(next.ID)
	c.emit(Event{Kind: EventSwapped, From: c.session.State, To: c.session.State, ArtworkID: next.ID})
	return nil
}

// Fire completes a timer previously returned by TakePending. Stale timers
// from a superseded open or close are dropped.
func (c *Controller) Fire(p Pending) {
	s := c.session
	if p.Gen != s.gen {
		c.logger.Debug("drop stale timer", "kind", p.Kind.String(), "gen", p.Gen, "current_gen", s.gen)
		return
	}

	switch p.Kind {
	case TimerEntered:
		to, ok := Next(s.State, TriggerEntered)
		if !ok {
			return
		}
		from := s.State
		s.State = to
		id, _ := s.Current()
		c.emit(Event{Kind: EventEntered, From: from, To: to, ArtworkID: id})

	case TimerFinalize:
		to, ok := Next(s.State, TriggerFinalize)
		if !ok {
			return
		}
		from := s.State
		id, _ := s.Current()
		s.State = to
		s.clearCurrent()
		c.scroll.held = false
		c.emit(Event{Kind: EventFinalized, From: from, To: to, ArtworkID: id})
	}
}

func (c *Controller) schedule(kind TimerKind, after time.Duration) {
	c.pending = append(c.pending, Pending{Gen: c.session.gen, Kind: kind, After: after})
}

func (c *Controller) violation(err *InvariantError) error {
	if c.strict {
		panic(err)
	}
	c.logger.Warn("modal invariant violated", "op", err.Op, "artwork", err.ArtworkID, "err", err.Err)
	return err
}

func (c *Controller) emit(ev Event) {
	c.logger.Debug("modal "+string(ev.Kind), "from", ev.From, "to", ev.To, "artwork", ev.ArtworkID)
	for _, fn := range c.observers {
		fn(ev)
	}
}
