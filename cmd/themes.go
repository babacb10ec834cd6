package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/artside/internal/theme"
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the color themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		writeThemes(cmd.OutOrStdout(), theme.Theme(cfg.Theme))
		return nil
	},
}

// writeThemes prints one line per theme with a swatch of its palette,
// marking current.
func writeThemes(w io.Writer, current theme.Theme) {
	for _, t := range theme.All() {
		p := t.Palette()
		var swatch strings.Builder
		for _, c := range []lipgloss.Color{p.Primary, p.Secondary, p.Accent, p.Highlight} {
			swatch.WriteString(lipgloss.NewStyle().Background(c).Render("  "))
		}
		mark := " "
		if t == current {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %s %-9s %s\n", mark, t.Icon(), t, swatch.String())
	}
}
