// Package viewport classifies the display width into compact and expanded layouts.
package viewport

import "sync"

const (
	// DefaultThreshold is the widest logical width still treated as compact.
	DefaultThreshold = 768
	// DefaultCellWidth is the number of logical pixels one terminal column stands for.
	DefaultCellWidth = 8
)

// Mode is the layout presentation selected for the current width.
type Mode int

const (
	ModeExpanded Mode = iota
	ModeCompact
)

func (m Mode) String() string {
	if m == ModeCompact {
		return "compact"
	}
	return "expanded"
}

// Classifier reports whether the current display width calls for the compact
// layout and notifies subscribers when that answer changes.
type Classifier struct {
	threshold int
	cellWidth int

	mu       sync.Mutex
	observed bool
	compact  bool
	width    int
	nextSub  int
	subs     map[int]func(compact bool)
}

// New creates a classifier. Non-positive arguments fall back to the defaults.
func New(threshold, cellWidth int) *Classifier {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	return &Classifier{
		threshold: threshold,
		cellWidth: cellWidth,
		subs:      make(map[int]func(bool)),
	}
}

// IsCompactWidth reports whether a logical pixel width selects compact mode.
func (c *Classifier) IsCompactWidth(px int) bool {
	return px <= c.threshold
}

// LogicalWidth converts a column count into logical pixels.
func (c *Classifier) LogicalWidth(cols int) int {
	return cols * c.cellWidth
}

// Observe records a new terminal width in columns. The first observation
// always reports changed.
func (c *Classifier) Observe(cols int) (compact, changed bool) {
	compact = c.IsCompactWidth(c.LogicalWidth(cols))

	c.mu.Lock()
	changed = !c.observed || compact != c.compact
	c.observed = true
	c.compact = compact
	c.width = cols
	var notify []func(bool)
	if changed {
		for _, fn := range c.subs {
			notify = append(notify, fn)
		}
	}
	c.mu.Unlock()

	for _, fn := range notify {
		fn(compact)
	}
	return compact, changed
}

// Compact returns the most recent classification. Before any observation the
// expanded layout is assumed.
func (c *Classifier) Compact() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.compact
}

// Mode returns the most recent classification as a Mode.
func (c *Classifier) Mode() Mode {
	if c.Compact() {
		return ModeCompact
	}
	return ModeExpanded
}

// Width returns the last observed column count.
func (c *Classifier) Width() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width
}

// Subscribe registers fn to be called whenever the classification changes.
// The returned function removes the subscription.
func (c *Classifier) Subscribe(fn func(compact bool)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}
