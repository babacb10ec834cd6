// Package catalog loads and searches the artwork collection.
package catalog

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/marcus/artside/internal/models"
	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"
)

// File is the on-disk YAML layout of a catalog.
type File struct {
	Title    string           `yaml:"title"`
	Artworks []models.Artwork `yaml:"artworks"`
}

// ValidationError collects every problem found in a catalog file.
type ValidationError struct {
	Path     string
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return fmt.Sprintf("catalog %s: %s", e.Path, e.Problems[0])
	}
	return fmt.Sprintf("catalog %s: %d problems: %s", e.Path, len(e.Problems), strings.Join(e.Problems, "; "))
}

func (e *ValidationError) add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// Validate checks the invariants the modal navigation relies on: a non-empty
// list with unique positive ids and known type tags.
func Validate(path string, items []models.Artwork) error {
	verr := &ValidationError{Path: path}
	if len(items) == 0 {
		verr.add("no artworks")
	}
	seen := make(map[int]bool, len(items))
	for i, a := range items {
		if a.ID <= 0 {
			verr.add("entry %d: id must be positive, got %d", i, a.ID)
		}
		if seen[a.ID] {
			verr.add("entry %d: duplicate id %d", i, a.ID)
		}
		seen[a.ID] = true
		if !models.IsValidType(a.Type) {
			verr.add("entry %d: unknown type %q", i, a.Type)
		}
		if strings.TrimSpace(a.Title) == "" {
			verr.add("entry %d: empty title", i)
		}
	}
	if len(verr.Problems) > 0 {
		return verr
	}
	return nil
}

// Parse decodes a YAML catalog document.
func Parse(path string, data []byte) (*models.Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if err := Validate(path, f.Artworks); err != nil {
		return nil, err
	}
	return models.NewCatalog(f.Artworks)
}

// LoadFile reads a YAML catalog from disk.
func LoadFile(path string) (*models.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(path, data)
}

// Load returns the catalog at path, or the built-in one when path is empty.
func Load(path string) (*models.Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// Marshal encodes a catalog back to YAML (used by `list --yaml`).
func Marshal(title string, c *models.Catalog) ([]byte, error) {
	return yaml.Marshal(File{Title: title, Artworks: c.All()})
}

type searchSource []models.Artwork

func (s searchSource) String(i int) string { return s[i].Title + " " + s[i].Artist }
func (s searchSource) Len() int            { return len(s) }

// Find resolves a user query to an artwork. A numeric query is matched
// against ids first; anything else is fuzzy-matched against title and artist.
func Find(c *models.Catalog, query string) (models.Artwork, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.Artwork{}, false
	}
	if id, err := strconv.Atoi(query); err == nil {
		if a, ok := c.ByID(id); ok {
			return a, true
		}
	}
	items := searchSource(c.All())
	matches := fuzzy.FindFrom(query, items)
	if len(matches) == 0 {
		return models.Artwork{}, false
	}
	return items[matches[0].Index], true
}
