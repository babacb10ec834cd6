package models

import (
	"errors"
	"strconv"
)

// ErrEmptyCatalog is returned when a catalog is built with no entries.
var ErrEmptyCatalog = errors.New("catalog is empty")

// Catalog is an ordered, non-empty sequence of artworks with unique ids.
// Navigation order is the slice order and never changes after construction.
type Catalog struct {
	items []Artwork
	index map[int]int
}

// NewCatalog builds a catalog from items, preserving their order.
func NewCatalog(items []Artwork) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		items: make([]Artwork, len(items)),
		index: make(map[int]int, len(items)),
	}
	copy(c.items, items)
	for i, a := range c.items {
		if _, dup := c.index[a.ID]; dup {
			return nil, &DuplicateIDError{ID: a.ID}
		}
		c.index[a.ID] = i
	}
	return c, nil
}

// DuplicateIDError reports two catalog entries sharing an id.
type DuplicateIDError struct {
	ID int
}

func (e *DuplicateIDError) Error() string {
	return "duplicate artwork id " + strconv.Itoa(e.ID)
}

// Len returns the number of artworks.
func (c *Catalog) Len() int { return len(c.items) }

// At returns the artwork at position i.
func (c *Catalog) At(i int) Artwork { return c.items[i] }

// All returns a copy of the ordered artworks.
func (c *Catalog) All() []Artwork {
	out := make([]Artwork, len(c.items))
	copy(out, c.items)
	return out
}

// IndexOf returns the position of id in the catalog.
func (c *Catalog) IndexOf(id int) (int, bool) {
	i, ok := c.index[id]
	return i, ok
}

// Contains reports whether id is part of the catalog.
func (c *Catalog) Contains(id int) bool {
	_, ok := c.index[id]
	return ok
}

// ByID looks up an artwork by id.
func (c *Catalog) ByID(id int) (Artwork, bool) {
	i, ok := c.index[id]
	if !ok {
		return Artwork{}, false
	}
	return c.items[i], true
}

// NextOf returns the artwork after id, wrapping from the last entry to the first.
func (c *Catalog) NextOf(id int) (Artwork, bool) {
	i, ok := c.index[id]
	if !ok {
		return Artwork{}, false
	}
	return c.items[(i+1)%len(c.items)], true
}

// PrevOf returns the artwork before id, wrapping from the first entry to the last.
func (c *Catalog) PrevOf(id int) (Artwork, bool) {
	i, ok := c.index[id]
	if !ok {
		return Artwork{}, false
	}
	n := len(c.items)
	return c.items[(i-1+n)%n], true
}
