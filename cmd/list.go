package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/marcus/artside/internal/catalog"
	"github.com/marcus/artside/internal/models"
	"github.com/marcus/artside/internal/output"
	"github.com/spf13/cobra"
)

const listTitleWidth = 24

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the artworks in the catalog",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		format := "table"
		for _, f := range []string{"yaml", "json", "tree"} {
			if on, _ := cmd.Flags().GetBool(f); on {
				format = f
			}
		}
		return writeList(cmd.OutOrStdout(), c, format)
	},
}

// writeList prints the catalog as a table, a type tree, JSON, or YAML that
// can be fed back through --catalog.
func writeList(w io.Writer, c *models.Catalog, format string) error {
	switch format {
	case "yaml":
		data, err := catalog.Marshal("", c)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "json":
		return output.JSON(w, c.All())
	case "tree":
		lines := output.RenderTreeLines(output.CatalogTree(c), output.TreeRenderOptions{ShowDetail: true})
		_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
		return err
	default:
		_, err := fmt.Fprint(w, output.Table(c, listTitleWidth))
		return err
	}
}

func init() {
	listCmd.Flags().Bool("yaml", false, "print the catalog as YAML")
	listCmd.Flags().Bool("json", false, "print the catalog as JSON")
	listCmd.Flags().Bool("tree", false, "group artworks by type")
	listCmd.MarkFlagsMutuallyExclusive("yaml", "json", "tree")
}
