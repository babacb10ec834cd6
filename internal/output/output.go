// Package output formats command-line results: styled status lines, the
// catalog table and tree, and JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/artside/internal/models"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

// Error prints a formatted error to stderr.
func Error(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("Error:")+" "+fmt.Sprintf(format, args...))
}

// Success prints a formatted confirmation to stdout.
func Success(format string, args ...any) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Muted renders s in the secondary text color.
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table renders the catalog as aligned columns. Titles longer than titleW
// are truncated.
func Table(c *models.Catalog, titleW int) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-4s %-*s %-10s %s", "ID", titleW, "TITLE", "TYPE", "ARTIST")))
	sb.WriteString("\n")
	for _, a := range c.All() {
		title := ansi.Truncate(a.Title, titleW, "…")
		sb.WriteString(fmt.Sprintf("%-4d %-*s %-10s %s %s\n",
			a.ID, titleW, title, a.Type, a.Artist, Muted(a.Year)))
	}
	return sb.String()
}
