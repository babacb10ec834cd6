package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/marcus/artside/internal/catalog"
	"github.com/marcus/artside/internal/models"
	"github.com/marcus/artside/internal/output"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open [id|query]",
	Short: "Start the gallery with an artwork open",
	Long: `Start the gallery with an artwork already open. Without an argument,
or with --pick, choose the artwork from a list first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		pick, _ := cmd.Flags().GetBool("pick")
		var a models.Artwork
		if pick || len(args) == 0 {
			a, err = pickArtwork(c)
			if err != nil {
				return err
			}
		} else {
			query := strings.Join(args, " ")
			var ok bool
			if a, ok = catalog.Find(c, query); !ok {
				err := fmt.Errorf("no artwork matches %q", query)
				output.Error("%v", err)
				return err
			}
		}
		return runGallery(cmd.Context(), a.ID)
	},
}

func artworkOptions(c *models.Catalog) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, c.Len())
	for _, a := range c.All() {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s · %s (%s)", a.Title, a.Artist, a.Year), a.ID))
	}
	return opts
}

// pickArtwork asks which artwork to open.
func pickArtwork(c *models.Catalog) (models.Artwork, error) {
	id := c.At(0).ID
	err := huh.NewSelect[int]().
		Title("Open which artwork?").
		Options(artworkOptions(c)...).
		Value(&id).
		Run()
	if err != nil {
		return models.Artwork{}, err
	}
	a, _ := c.ByID(id)
	return a, nil
}

func init() {
	openCmd.Flags().Bool("pick", false, "choose the artwork from a list")
}
