// Package assets loads artwork images and renders them as terminal cells.
package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
	"github.com/golang/groupcache/lru"
	"github.com/marcus/artside/internal/models"
	"golang.org/x/sync/errgroup"

	_ "golang.org/x/image/webp"
)

// preloadLimit bounds concurrent image decodes.
const preloadLimit = 4

// renderCacheSize caps the rendered blocks kept. Animation frames render at
// many transient sizes; the least recently drawn are evicted first.
const renderCacheSize = 128

// MissingAssetError reports an image reference that could not be loaded.
type MissingAssetError struct {
	Ref  string
	Path string
	Err  error
}

func (e *MissingAssetError) Error() string {
	return fmt.Sprintf("asset %s (%s): %v", e.Ref, e.Path, e.Err)
}

func (e *MissingAssetError) Unwrap() error { return e.Err }

// Fit selects how an image is scaled into its box.
type Fit int

const (
	// FitCover fills the box and crops the overflow.
	FitCover Fit = iota
	// FitContain shows the whole image and letterboxes the rest.
	FitContain
)

type renderKey struct {
	ref  string
	w, h int
	fit  Fit
	fill string
}

// Store caches decoded images and their rendered cell strings. It is safe
// for concurrent use.
type Store struct {
	dir    string
	logger *slog.Logger

	mu       sync.Mutex
	images   map[string]image.Image
	failures map[string]error
	rendered *lru.Cache
}

// NewStore creates a store resolving image references against dir.
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		dir:      dir,
		logger:   logger,
		images:   make(map[string]image.Image),
		failures: make(map[string]error),
		rendered: lru.New(renderCacheSize),
	}
}

// Path resolves an artwork image reference to a file path.
func (s *Store) Path(ref string) string {
	if filepath.IsAbs(ref) {
		if _, err := os.Stat(ref); err == nil {
			return ref
		}
	}
	return filepath.Join(s.dir, filepath.FromSlash(strings.TrimPrefix(ref, "/")))
}

// Load returns the decoded image for ref. Failures are remembered so a
// missing file is only looked up once.
func (s *Store) Load(ref string) (image.Image, error) {
	s.mu.Lock()
	if img, ok := s.images[ref]; ok {
		s.mu.Unlock()
		return img, nil
	}
	if err, ok := s.failures[ref]; ok {
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	path := s.Path(ref)
	img, err := imaging.Open(path, imaging.AutoOrientation(true))

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		merr := &MissingAssetError{Ref: ref, Path: path, Err: err}
		s.failures[ref] = merr
		return nil, merr
	}
	s.images[ref] = img
	return img, nil
}

// Preload decodes every artwork image concurrently. Missing images are
// logged and counted, never returned as an error; only cancellation is.
func (s *Store) Preload(ctx context.Context, c *models.Catalog) (missing int, err error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(preloadLimit)

	var mu sync.Mutex
	for _, a := range c.All() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := s.Load(a.Image); err != nil {
				var merr *MissingAssetError
				if errors.As(err, &merr) {
					s.logger.Warn("artwork image unavailable", "artwork", a.ID, "path", merr.Path, "err", merr.Err)
					mu.Lock()
					missing++
					mu.Unlock()
				}
			}
			return nil
		})
	}
	err = g.Wait()
	return missing, err
}

// Render draws ref into a w x h cell box using half-block characters, two
// image rows per terminal row. A missing image renders as a neutral fill of
// the same size so layout and navigation are unaffected.
func (s *Store) Render(ref string, w, h int, fit Fit, fill lipgloss.Color) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	key := renderKey{ref: ref, w: w, h: h, fit: fit, fill: string(fill)}

	s.mu.Lock()
	if out, ok := s.rendered.Get(key); ok {
		s.mu.Unlock()
		return out.(string)
	}
	s.mu.Unlock()

	var out string
	img, err := s.Load(ref)
	if err != nil {
		out = NeutralFill(w, h, fill)
	} else {
		out = halfBlocks(scale(img, w, h*2, fit), w, h, fill)
	}

	s.mu.Lock()
	s.rendered.Add(key, out)
	s.mu.Unlock()
	return out
}

// NeutralFill renders a solid w x h block.
func NeutralFill(w, h int, fill lipgloss.Color) string {
	row := lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", w))
	rows := make([]string, h)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func scale(img image.Image, w, h int, fit Fit) *image.NRGBA {
	if fit == FitContain {
		return imaging.Fit(img, w, h, imaging.Lanczos)
	}
	return imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
}

// halfBlocks renders img centred in a w x h cell box. Cells outside the
// image take the fill color.
func halfBlocks(img *image.NRGBA, w, h int, fill lipgloss.Color) string {
	b := img.Bounds()
	offX := (w - b.Dx()) / 2
	offY := (h*2 - b.Dy()) / 2

	pixel := func(x, y int) (color.NRGBA, bool) {
		ix, iy := x-offX, y-offY
		if ix < 0 || iy < 0 || ix >= b.Dx() || iy >= b.Dy() {
			return color.NRGBA{}, false
		}
		return img.NRGBAAt(b.Min.X+ix, b.Min.Y+iy), true
	}

	var sb strings.Builder
	for row := 0; row < h; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < w; col++ {
			top, okTop := pixel(col, row*2)
			bottom, okBottom := pixel(col, row*2+1)
			style := lipgloss.NewStyle().Foreground(fill).Background(fill)
			if okTop {
				style = style.Foreground(hex(top))
			}
			if okBottom {
				style = style.Background(hex(bottom))
			}
			sb.WriteString(style.Render("▀"))
		}
	}
	return sb.String()
}

func hex(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
