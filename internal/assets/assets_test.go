package assets

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/artside/internal/models"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("setup: mkdir failed: %v", err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: 120, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("setup: create failed: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("setup: encode failed: %v", err)
	}
}

func TestLoadAndRender(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "gallery", "a.png"), 16, 16)
	s := NewStore(dir, nil)

	if _, err := s.Load("/gallery/a.png"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	out := s.Render("/gallery/a.png", 12, 5, FitCover, lipgloss.Color("#777777"))
	if w := lipgloss.Width(out); w != 12 {
		t.Errorf("rendered width = %d, want 12", w)
	}
	if h := lipgloss.Height(out); h != 5 {
		t.Errorf("rendered height = %d, want 5", h)
	}

	again := s.Render("/gallery/a.png", 12, 5, FitCover, lipgloss.Color("#777777"))
	if again != out {
		t.Error("repeated render should come from the cache")
	}

	contain := s.Render("/gallery/a.png", 20, 4, FitContain, lipgloss.Color("#777777"))
	if lipgloss.Width(contain) != 20 || lipgloss.Height(contain) != 4 {
		t.Errorf("contain render is %dx%d, want 20x4", lipgloss.Width(contain), lipgloss.Height(contain))
	}
}

func TestRenderCacheIsBounded(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 8, 8)
	s := NewStore(dir, nil)
	fill := lipgloss.Color("#777777")

	// A morph draws the image at a new size every frame.
	for w := 1; w <= renderCacheSize+40; w++ {
		s.Render("a.png", w, 2, FitCover, fill)
	}
	if got := s.rendered.Len(); got != renderCacheSize {
		t.Errorf("cached renders = %d, want %d", got, renderCacheSize)
	}
	if _, ok := s.rendered.Get(renderKey{ref: "a.png", w: 1, h: 2, fit: FitCover, fill: string(fill)}); ok {
		t.Error("oldest render should have been evicted")
	}
	last := renderKey{ref: "a.png", w: renderCacheSize + 40, h: 2, fit: FitCover, fill: string(fill)}
	if _, ok := s.rendered.Get(last); !ok {
		t.Error("latest render should still be cached")
	}
}

func TestMissingAssetFallsBackToFill(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	_, err := s.Load("gallery/missing.png")
	var merr *MissingAssetError
	if !errors.As(err, &merr) {
		t.Fatalf("err = %v, want *MissingAssetError", err)
	}
	if merr.Ref != "gallery/missing.png" {
		t.Errorf("Ref = %q", merr.Ref)
	}

	out := s.Render("gallery/missing.png", 8, 3, FitCover, lipgloss.Color("#444444"))
	want := NeutralFill(8, 3, lipgloss.Color("#444444"))
	if out != want {
		t.Error("missing asset should render as a neutral fill")
	}
}

func TestRenderZeroSize(t *testing.T) {
	s := NewStore(t.TempDir(), nil)
	if out := s.Render("x.png", 0, 3, FitCover, lipgloss.Color("#000000")); out != "" {
		t.Errorf("zero width render = %q, want empty", out)
	}
}

func TestPreloadCountsMissing(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "one.png"), 4, 4)
	writePNG(t, filepath.Join(dir, "two.png"), 4, 4)

	c, err := models.NewCatalog([]models.Artwork{
		{ID: 1, Image: "one.png"},
		{ID: 2, Image: "two.png"},
		{ID: 3, Image: "three.png"},
	})
	if err != nil {
		t.Fatal(err)
	}

	s := NewStore(dir, nil)
	missing, err := s.Preload(context.Background(), c)
	if err != nil {
		t.Fatalf("Preload failed: %v", err)
	}
	if missing != 1 {
		t.Errorf("missing = %d, want 1", missing)
	}
}

func TestPreloadCancelled(t *testing.T) {
	c, _ := models.NewCatalog([]models.Artwork{{ID: 1, Image: "a.png"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewStore(t.TempDir(), nil).Preload(ctx, c); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
