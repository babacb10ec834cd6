package modal

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Keymap holds the overlay's key bindings.
type Keymap struct {
	Close    key.Binding
	Next     key.Binding
	Previous key.Binding
}

// DefaultKeymap binds Escape, the arrow keys and their vim equivalents.
func DefaultKeymap() Keymap {
	return Keymap{
		Close: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "close"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Close}
}

// FullHelp implements help.KeyMap.
func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// keyScope is the set of handlers live while the overlay is open. A nil
// handler means the intent is not wired.
type keyScope struct {
	close    func() error
	next     func() error
	previous func() error
}

func (c *Controller) installKeys() {
	if c.keys != nil {
		return
	}
	scope := &keyScope{close: c.Close}
	if c.navigation {
		scope.next = c.Next
		scope.previous = c.Previous
	}
	c.keys = scope
}

func (c *Controller) releaseKeys() {
	c.keys = nil
}

// KeysInstalled reports whether the overlay key handlers are registered.
func (c *Controller) KeysInstalled() bool { return c.keys != nil }

// Keymap returns the active bindings, for help rendering.
func (c *Controller) Keymap() Keymap { return c.keymap }

// HandleKey runs the overlay binding matching msg. It reports false when the
// overlay holds no key scope or the key is not bound, so the caller can route
// the key elsewhere.
func (c *Controller) HandleKey(msg tea.KeyMsg) bool {
	scope := c.keys
	if scope == nil {
		return false
	}
	switch {
	case key.Matches(msg, c.keymap.Close):
		_ = scope.close()
		return true
	case key.Matches(msg, c.keymap.Next):
		if scope.next == nil {
			return false
		}
		_ = scope.next()
		return true
	case key.Matches(msg, c.keymap.Previous):
		if scope.previous == nil {
			return false
		}
		_ = scope.previous()
		return true
	}
	return false
}
