package catalog

import (
	"fmt"
	"strings"

	"github.com/marcus/artside/internal/models"
)

// Markdown formats an artwork as a markdown card, used by the show command
// and the copy binding.
func Markdown(a models.Artwork) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n", a.Title))
	sb.WriteString(fmt.Sprintf("**%s** · %s\n", a.Artist, a.Year))
	sb.WriteString(fmt.Sprintf("**Type:** %s | **ID:** `%d`\n", a.Type, a.ID))

	if a.Description != "" {
		sb.WriteString("\n")
		sb.WriteString(a.Description)
		sb.WriteString("\n")
	}

	return sb.String()
}

// Credit is the one-line attribution for an artwork.
func Credit(a models.Artwork) string {
	return fmt.Sprintf("%q by %s (%s)", a.Title, a.Artist, a.Year)
}
