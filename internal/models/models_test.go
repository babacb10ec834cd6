package models

import (
	"errors"
	"testing"
)

func sampleItems(n int) []Artwork {
	items := make([]Artwork, n)
	for i := range items {
		items[i] = Artwork{ID: i + 1, Title: "Work", Type: TypeWarmth}
	}
	return items
}

func TestIsValidType(t *testing.T) {
	for _, typ := range []ArtworkType{TypeWarmth, TypeLight, TypeShimmer} {
		if !IsValidType(typ) {
			t.Errorf("Expected %q to be valid type", typ)
		}
	}
	for _, typ := range []ArtworkType{"", "dark", "Warmth"} {
		if IsValidType(typ) {
			t.Errorf("Expected %q to be invalid type", typ)
		}
	}
}

func TestNewCatalogRejectsEmpty(t *testing.T) {
	_, err := NewCatalog(nil)
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("NewCatalog(nil) err = %v, want ErrEmptyCatalog", err)
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	_, err := NewCatalog([]Artwork{{ID: 1}, {ID: 2}, {ID: 1}})
	var dup *DuplicateIDError
	if !errors.As(err, &dup) {
		t.Fatalf("err = %v, want *DuplicateIDError", err)
	}
	if dup.ID != 1 {
		t.Errorf("dup.ID = %d, want 1", dup.ID)
	}
}

func TestCatalogWrap(t *testing.T) {
	c, err := NewCatalog(sampleItems(6))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		id       int
		wantNext int
		wantPrev int
	}{
		{1, 2, 6},
		{3, 4, 2},
		{6, 1, 5},
	}
	for _, tt := range tests {
		next, ok := c.NextOf(tt.id)
		if !ok || next.ID != tt.wantNext {
			t.Errorf("NextOf(%d) = %d, want %d", tt.id, next.ID, tt.wantNext)
		}
		prev, ok := c.PrevOf(tt.id)
		if !ok || prev.ID != tt.wantPrev {
			t.Errorf("PrevOf(%d) = %d, want %d", tt.id, prev.ID, tt.wantPrev)
		}
	}

	if _, ok := c.NextOf(99); ok {
		t.Error("NextOf(99) should report missing id")
	}
}

func TestCatalogSingleEntryWrapsToItself(t *testing.T) {
	c, err := NewCatalog(sampleItems(1))
	if err != nil {
		t.Fatal(err)
	}
	next, _ := c.NextOf(1)
	prev, _ := c.PrevOf(1)
	if next.ID != 1 || prev.ID != 1 {
		t.Errorf("single entry next/prev = %d/%d, want 1/1", next.ID, prev.ID)
	}
}

func TestCatalogAllIsCopy(t *testing.T) {
	c, _ := NewCatalog(sampleItems(2))
	all := c.All()
	all[0].Title = "mutated"
	if c.At(0).Title == "mutated" {
		t.Error("All() must not expose internal storage")
	}
}
