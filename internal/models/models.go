package models

import "fmt"

// ArtworkType is a categorical tag shown on cards and in the detail panel.
type ArtworkType string

const (
	TypeWarmth  ArtworkType = "warmth"
	TypeLight   ArtworkType = "light"
	TypeShimmer ArtworkType = "shimmer"
)

// IsValidType checks if an artwork type is one of the known tags
func IsValidType(t ArtworkType) bool {
	switch t {
	case TypeWarmth, TypeLight, TypeShimmer:
		return true
	}
	return false
}

// Artwork is a single catalog entry. Values are treated as immutable once
// they are part of a Catalog.
type Artwork struct {
	ID          int         `yaml:"id" json:"id"`
	Title       string      `yaml:"title" json:"title"`
	Artist      string      `yaml:"artist" json:"artist"`
	Year        string      `yaml:"year" json:"year"`
	Type        ArtworkType `yaml:"type" json:"type"`
	Image       string      `yaml:"image" json:"image"`
	Description string      `yaml:"description" json:"description"`
	Color       string      `yaml:"color" json:"color,omitempty"`
	Gradient    string      `yaml:"gradient" json:"gradient,omitempty"`
}

func (a Artwork) String() string {
	return fmt.Sprintf("%d:%s", a.ID, a.Title)
}
