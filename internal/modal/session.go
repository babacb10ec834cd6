package modal

import "github.com/oklog/ulid/v2"

// Session is the single overlay state of one running gallery. It is created
// closed and only changed through the Controller.
type Session struct {
	ID         ulid.ULID
	State      State
	current    int
	hasCurrent bool
	gen        uint64
}

func newSession() *Session {
	return &Session{ID: ulid.Make(), State: StateClosed}
}

// IsOpen reports whether the overlay is opening or open. It turns false the
// moment close is requested, while the artwork is kept for the exit animation.
func (s *Session) IsOpen() bool { return s.State.IsVisible() }

// Current returns the artwork id on screen, if any.
func (s *Session) Current() (int, bool) {
	return s.current, s.hasCurrent
}

func (s *Session) setCurrent(id int) {
	s.current = id
	s.hasCurrent = true
}

func (s *Session) clearCurrent() {
	s.current = 0
	s.hasCurrent = false
}
