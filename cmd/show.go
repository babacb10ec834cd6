package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/marcus/artside/internal/catalog"
	"github.com/marcus/artside/internal/output"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	defaultShowWidth = 80
	maxShowWidth     = 120
)

var showCmd = &cobra.Command{
	Use:   "show <id|query>",
	Short: "Print an artwork's details",
	Long: `Print an artwork's details. The argument is an artwork id or a fuzzy
match against titles and artists.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		query := strings.Join(args, " ")
		a, ok := catalog.Find(c, query)
		if !ok {
			err := fmt.Errorf("no artwork matches %q", query)
			output.Error("%v", err)
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return output.JSON(cmd.OutOrStdout(), a)
		}

		out, err := renderMarkdown(catalog.Markdown(a), terminalWidth())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

// terminalWidth is the stdout width, capped for readability.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultShowWidth
	}
	return min(w, maxShowWidth)
}

func renderMarkdown(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

func init() {
	showCmd.Flags().Bool("json", false, "print the artwork as JSON")
}
