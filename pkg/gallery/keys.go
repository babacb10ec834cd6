package gallery

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/marcus/artside/internal/modal"
)

// Keymap holds the page bindings that apply while no artwork is open.
type Keymap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Activate   key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Theme      key.Binding
	Copy       key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeymap returns the standard page bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev card")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next card")),
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "card above")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "card below")),
		Activate:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "view")),
		ScrollUp:   key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "scroll down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Top:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy credit")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Left, k.Right, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Activate},
		{k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Theme, k.Copy, k.Help, k.Quit},
	}
}

// overlayHelp lists the bindings live while an artwork is open.
type overlayHelp struct {
	page       Keymap
	overlay    modal.Keymap
	navigation bool
}

func (o overlayHelp) ShortHelp() []key.Binding {
	var b []key.Binding
	if o.navigation {
		b = append(b, o.overlay.Previous, o.overlay.Next)
	}
	return append(b, o.overlay.Close, o.page.Theme, o.page.Copy)
}

func (o overlayHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{o.ShortHelp()}
}
