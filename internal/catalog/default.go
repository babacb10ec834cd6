package catalog

import "github.com/marcus/artside/internal/models"

// defaultArtworks is the built-in exhibition shown when no catalog file is configured.
var defaultArtworks = []models.Artwork{
	{
		ID:          1,
		Title:       "Ukiyo-e Wave",
		Artist:      "AI Generated",
		Year:        "2026",
		Color:       "#F9AF72",
		Type:        models.TypeWarmth,
		Gradient:    "linear-gradient(135deg, #FFF5E6 0%, #F9AF72 100%)",
		Image:       "gallery/artwork-1.png",
		Description: "A woodblock print paying homage to Hokusai's *The Great Wave off Kanagawa*. Its bold lines, flat colors, and print-like texture represent another iconic form of Eastern art.",
	},
	{
		ID:          2,
		Title:       "Impressionist Garden",
		Artist:      "AI Generated",
		Year:        "2025",
		Color:       "#ECBB51",
		Type:        models.TypeLight,
		Gradient:    "radial-gradient(circle at 50% 50%, #ECBB51 0%, #FFF9F2 80%)",
		Image:       "gallery/artwork-2.png",
		Description: "A garden and farmhouse in the style of Monet. It emphasizes the play of light and shadow, capturing fleeting moments of color.",
	},
	{
		ID:          3,
		Title:       "Minimalist Vessel",
		Artist:      "AI Generated",
		Year:        "2025",
		Color:       "#B25F56",
		Type:        models.TypeWarmth,
		Gradient:    "conic-gradient(from 180deg, #FFF5E6 0%, #B25F56 60%, #FFF5E6 100%)",
		Image:       "gallery/artwork-3.png",
		Description: "A still life that uses a clean background and soft lighting to highlight the form of a single modern vase, embodying the minimalist philosophy of *less is more*.",
	},
	{
		ID:          4,
		Title:       "Public Sculpture",
		Artist:      "AI Generated",
		Year:        "2024",
		Color:       "#6494E8",
		Type:        models.TypeShimmer,
		Gradient:    "linear-gradient(to top, #FFF9F2 0%, #6494E8 100%)",
		Image:       "gallery/artwork-4.png",
		Description: "A contemporary public sculpture that brings modern art into shared spaces. The large-scale metal and glass installation combines geometric and fluid elements, interacting with its surroundings through reflection.",
	},
	{
		ID:          5,
		Title:       "Pop Art Robots",
		Artist:      "AI Generated",
		Year:        "2026",
		Color:       "#ECBB51",
		Type:        models.TypeLight,
		Gradient:    "repeating-linear-gradient(45deg, #FFF9F2, #FFF9F2 10px, #ECBB51 10px, #ECBB51 11px)",
		Image:       "gallery/artwork-5.png",
		Description: "A screen print with strong Pop Art influences. The repeated robot heads paired with vibrant contrasting colors pay tribute to artists like Andy Warhol.",
	},
	{
		ID:          6,
		Title:       "Waterfall Panorama",
		Artist:      "AI Generated",
		Year:        "2025",
		Color:       "#F9AF72",
		Type:        models.TypeWarmth,
		Gradient:    "radial-gradient(circle at 30% 70%, #F9AF72 0%, #B25F56 80%)",
		Image:       "gallery/artwork-6.png",
		Description: "A grand waterfall mural that expands an ink wash scene into a spectacular panorama, the culmination of the whole nature narrative.",
	},
}

// Default returns the built-in six-piece catalog.
func Default() *models.Catalog {
	c, err := models.NewCatalog(defaultArtworks)
	if err != nil {
		panic("catalog: invalid built-in catalog: " + err.Error())
	}
	return c
}
