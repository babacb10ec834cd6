// Package theme holds the four gallery color themes and the provider that
// scopes the current choice to a running program.
package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme names one of the gallery palettes.
type Theme string

const (
	Golden   Theme = "golden"
	Tropical Theme = "tropical"
	Nature   Theme = "nature"
	Noir     Theme = "noir"
)

// All returns the themes in toggle order.
func All() []Theme {
	return []Theme{Golden, Tropical, Nature, Noir}
}

// Parse converts a name into a Theme.
func Parse(s string) (Theme, error) {
	for _, t := range All() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown theme %q (want golden, tropical, nature or noir)", s)
}

// Next returns the theme that follows t in toggle order, wrapping back to golden.
func (t Theme) Next() Theme {
	switch t {
	case Golden:
		return Tropical
	case Tropical:
		return Nature
	case Nature:
		return Noir
	default:
		return Golden
	}
}

// Icon is a one-glyph marker for the header toggle.
func (t Theme) Icon() string {
	switch t {
	case Tropical:
		return "✿"
	case Nature:
		return "❦"
	case Noir:
		return "☾"
	default:
		return "☀"
	}
}

// Palette is the set of semantic colors a theme maps to.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Highlight lipgloss.Color
	Bg        lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Backdrop  lipgloss.Color
}

var palettes = map[Theme]Palette{
	Golden: {
		Primary:   lipgloss.Color("#B25F56"),
		Secondary: lipgloss.Color("#F9AF72"),
		Accent:    lipgloss.Color("#6494E8"),
		Highlight: lipgloss.Color("#ECBB51"),
		Bg:        lipgloss.Color("#FFF5E6"),
		Text:      lipgloss.Color("#3D2B24"),
		Muted:     lipgloss.Color("#8A7467"),
		Backdrop:  lipgloss.Color("#1A1411"),
	},
	Tropical: {
		Primary:   lipgloss.Color("#E4572E"),
		Secondary: lipgloss.Color("#17BEBB"),
		Accent:    lipgloss.Color("#00B4D8"),
		Highlight: lipgloss.Color("#FFC914"),
		Bg:        lipgloss.Color("#FFF9F2"),
		Text:      lipgloss.Color("#2E282A"),
		Muted:     lipgloss.Color("#6C6A67"),
		Backdrop:  lipgloss.Color("#10181A"),
	},
	Nature: {
		Primary:   lipgloss.Color("#4A7C59"),
		Secondary: lipgloss.Color("#A7C4A0"),
		Accent:    lipgloss.Color("#8FB8DE"),
		Highlight: lipgloss.Color("#D9B44A"),
		Bg:        lipgloss.Color("#F4F1E8"),
		Text:      lipgloss.Color("#263A29"),
		Muted:     lipgloss.Color("#6B7A6E"),
		Backdrop:  lipgloss.Color("#0F1A12"),
	},
	Noir: {
		Primary:   lipgloss.Color("#E0E0E0"),
		Secondary: lipgloss.Color("#9E9E9E"),
		Accent:    lipgloss.Color("#C0A062"),
		Highlight: lipgloss.Color("#FFFFFF"),
		Bg:        lipgloss.Color("#121212"),
		Text:      lipgloss.Color("#EDEDED"),
		Muted:     lipgloss.Color("#8C8C8C"),
		Backdrop:  lipgloss.Color("#000000"),
	},
}

// Palette returns the colors for t. Unknown themes get the golden palette.
func (t Theme) Palette() Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[Golden]
}

// ErrNoProvider is returned when theme state is requested outside a provider scope.
var ErrNoProvider = errors.New("theme: used outside of a Provider")

// Provider owns the current theme for one program instance.
type Provider struct {
	mu      sync.RWMutex
	current Theme
}

// NewProvider creates a provider starting at initial (golden when empty).
func NewProvider(initial Theme) *Provider {
	if initial == "" {
		initial = Golden
	}
	return &Provider{current: initial}
}

// Current returns the active theme.
func (p *Provider) Current() Theme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Toggle advances to the next theme and returns it.
func (p *Provider) Toggle() Theme {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = p.current.Next()
	return p.current
}

type providerKey struct{}

// WithProvider returns a context carrying p.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, providerKey{}, p)
}

// FromContext returns the provider installed on ctx.
func FromContext(ctx context.Context) (*Provider, error) {
	p, ok := ctx.Value(providerKey{}).(*Provider)
	if !ok || p == nil {
		return nil, ErrNoProvider
	}
	return p, nil
}

// MustFrom is FromContext for call sites where a missing provider is a wiring bug.
func MustFrom(ctx context.Context) *Provider {
	p, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return p
}
