package gallery

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/artside/internal/theme"
)

// Styles maps a theme palette onto the gallery's visual elements. Rebuilt
// whenever the theme toggles.
type Styles struct {
	Palette theme.Palette

	// Header
	Eyebrow       lipgloss.Style
	Title         lipgloss.Style
	TitleScrolled lipgloss.Style
	Counter       lipgloss.Style
	Rule          lipgloss.Style
	RuleScrolled  lipgloss.Style

	// Cards
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	CardType    lipgloss.Style
	CardTitle   lipgloss.Style
	CardMeta    lipgloss.Style
	DimText     lipgloss.Style

	// Detail overlay
	Panel       lipgloss.Style
	Badge       lipgloss.Style
	DetailTitle lipgloss.Style
	DetailMeta  lipgloss.Style
	Divider     lipgloss.Style
	Body        lipgloss.Style
	Button      lipgloss.Style
	ButtonHover lipgloss.Style

	Status lipgloss.Style
}

// NewStyles builds the styles for t.
func NewStyles(t theme.Theme) Styles {
	p := t.Palette()
	return Styles{
		Palette: p,

		Eyebrow: lipgloss.NewStyle().
			Foreground(p.Highlight).
			Bold(true),
		Title: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		TitleScrolled: lipgloss.NewStyle().
			Foreground(p.Bg).
			Background(p.Primary).
			Bold(true).
			Padding(0, 1),
		Counter: lipgloss.NewStyle().Foreground(p.Muted),
		Rule:    lipgloss.NewStyle().Foreground(p.Secondary),
		RuleScrolled: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Secondary),
		CardFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Highlight),
		CardType: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		CardTitle: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),
		CardMeta: lipgloss.NewStyle().Foreground(p.Muted),
		DimText:  lipgloss.NewStyle().Foreground(p.Muted).Faint(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary),
		Badge: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		DetailTitle: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		DetailMeta: lipgloss.NewStyle().Foreground(p.Muted),
		Divider:    lipgloss.NewStyle().Foreground(p.Primary),
		Body:       lipgloss.NewStyle().Foreground(p.Text),
		Button: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),
		ButtonHover: lipgloss.NewStyle().
			Foreground(p.Bg).
			Background(p.Primary).
			Bold(true),

		Status: lipgloss.NewStyle().
			Foreground(p.Accent).
			Italic(true),
	}
}
