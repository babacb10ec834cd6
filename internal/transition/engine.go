// Package transition animates elements that share a correlation key between
// two layouts, so an artwork card appears to grow into the detail view and
// shrink back instead of being swapped out.
package transition

import (
	"math"
	"time"
)

const (
	// DefaultDuration matches the detail panel's entry animation.
	DefaultDuration = 400 * time.Millisecond

	// enterRise is how many rows an entering element slides up while fading in.
	enterRise = 1.0

	epsilon = 0.01
)

// Transition is one running interpolation between two snapshots.
type Transition struct {
	plan     Plan
	from     Snapshot
	to       Snapshot
	start    time.Time
	duration time.Duration
	easing   EasingFunc
}

// Plan returns the key classification the transition was built from.
func (t *Transition) Plan() Plan { return t.plan }

// Progress returns the un-eased time progress in [0, 1].
func (t *Transition) Progress(now time.Time) float64 {
	if t.duration <= 0 {
		return 1
	}
	return clamp01(float64(now.Sub(t.start)) / float64(t.duration))
}

// Done reports whether the transition has reached its end state.
func (t *Transition) Done(now time.Time) bool {
	return t.Progress(now) >= 1
}

// Frame returns every element's visual state at now. Exiting elements stay
// in the frame until they are fully transparent.
func (t *Transition) Frame(now time.Time) Snapshot {
	if t.Done(now) {
		return t.to.clone()
	}
	p := t.easing(t.Progress(now))

	out := make(Snapshot, len(t.plan.Morphs)+len(t.plan.Enters)+len(t.plan.Exits))
	for _, k := range t.plan.Morphs {
		a, b := t.from[k], t.to[k]
		out[k] = Element{
			Bounds:  lerpBounds(a.Bounds, b.Bounds, p),
			Radius:  lerp(a.Radius, b.Radius, p),
			Opacity: lerp(a.Opacity, b.Opacity, p),
		}
	}
	for _, k := range t.plan.Enters {
		b := t.to[k]
		bounds := b.Bounds
		bounds.Y += enterRise * (1 - p)
		out[k] = Element{Bounds: bounds, Radius: b.Radius, Opacity: b.Opacity * p}
	}
	for _, k := range t.plan.Exits {
		a := t.from[k]
		if op := a.Opacity * (1 - p); op > epsilon {
			out[k] = Element{Bounds: a.Bounds, Radius: a.Radius, Opacity: op}
		}
	}
	return out
}

// Engine keeps the last committed layout and the transition toward it.
type Engine struct {
	duration time.Duration
	easing   EasingFunc

	committed Snapshot
	active    *Transition
	// seed holds elements placed by Seed for the next Commit to start from.
	seed Snapshot
}

// NewEngine creates an engine. A nil easing selects EaseOutCubic.
func NewEngine(duration time.Duration, easing EasingFunc) *Engine {
	if easing == nil {
		easing = EaseOutCubic
	}
	return &Engine{
		duration:  duration,
		easing:    easing,
		committed: Snapshot{},
	}
}

// Commit makes next the target layout. If a transition is still running the
// new one starts from its current frame, so interrupted animations stay
// continuous. Committing the layout that is already the target changes
// nothing: the running transition, or nil when idle, is returned as is.
func (e *Engine) Commit(next Snapshot, now time.Time) *Transition {
	running := e.active != nil && !e.active.Done(now)
	if sameSnapshot(e.committed, next) && len(e.seed) == 0 {
		if !running {
			e.active = nil
			return nil
		}
		return e.active
	}

	from := e.committed
	if running {
		from = e.active.Frame(now)
	}
	if len(e.seed) > 0 {
		from = from.clone()
		for k, el := range e.seed {
			if _, ok := from[k]; !ok {
				from[k] = el
			}
		}
		e.seed = nil
	}
	if sameSnapshot(from, next) {
		e.committed = next.clone()
		e.active = nil
		return nil
	}
	t := &Transition{
		plan:     Diff(from, next),
		from:     from.clone(),
		to:       next.clone(),
		start:    now,
		duration: e.duration,
		easing:   e.easing,
	}
	e.committed = t.to
	e.active = t
	return t
}

// Seed places the elements of s on screen for the next Commit to start from,
// so they morph instead of fading in. Keys already on screen keep their
// current state and running exits are not dropped.
func (e *Engine) Seed(s Snapshot) {
	if e.seed == nil {
		e.seed = Snapshot{}
	}
	for k, el := range s {
		e.seed[k] = el
	}
}

// Reset replaces the committed layout without animating.
func (e *Engine) Reset(s Snapshot) {
	e.committed = s.clone()
	e.active = nil
	e.seed = nil
}

// Frame returns the visual state at now.
func (e *Engine) Frame(now time.Time) Snapshot {
	if e.active == nil {
		return e.committed.clone()
	}
	if e.active.Done(now) {
		e.active = nil
		return e.committed.clone()
	}
	return e.active.Frame(now)
}

// Animating reports whether a transition is still in progress at now.
func (e *Engine) Animating(now time.Time) bool {
	return e.active != nil && !e.active.Done(now)
}

// Active returns the running transition, or nil.
func (e *Engine) Active() *Transition { return e.active }

// Committed returns a copy of the target layout.
func (e *Engine) Committed() Snapshot { return e.committed.clone() }

func sameSnapshot(a, b Snapshot) bool {
	if len(a) != len(b) {
		return false
	}
	for k, ea := range a {
		eb, ok := b[k]
		if !ok || !sameElement(ea, eb) {
			return false
		}
	}
	return true
}

func sameElement(a, b Element) bool {
	return near(a.Bounds.X, b.Bounds.X) && near(a.Bounds.Y, b.Bounds.Y) &&
		near(a.Bounds.W, b.Bounds.W) && near(a.Bounds.H, b.Bounds.H) &&
		near(a.Radius, b.Radius) && near(a.Opacity, b.Opacity)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}
