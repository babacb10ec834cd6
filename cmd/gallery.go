package cmd

import (
	"context"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/artside/internal/assets"
	"github.com/marcus/artside/internal/catalog"
	"github.com/marcus/artside/internal/modal"
	"github.com/marcus/artside/internal/models"
	"github.com/marcus/artside/internal/theme"
	"github.com/marcus/artside/internal/viewport"
	"github.com/marcus/artside/pkg/gallery"
)

func loadCatalog() (*models.Catalog, error) {
	return catalog.Load(cfg.CatalogPath)
}

// assetDir resolves the configured asset directory against the base dir.
func assetDir() string {
	if filepath.IsAbs(cfg.AssetDir) {
		return cfg.AssetDir
	}
	return filepath.Join(getBaseDir(), cfg.AssetDir)
}

func controllerOptions() []modal.Option {
	opts := []modal.Option{
		modal.WithStrict(cfg.Strict),
		modal.WithCloseDelay(cfg.CloseDelay()),
	}
	if cfg.DisableArrows {
		opts = append(opts, modal.WithoutNavigation())
	}
	return opts
}

// runGallery starts the full-screen gallery. A non-zero openID starts with
// that artwork open.
func runGallery(ctx context.Context, openID int) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}
	t, err := theme.Parse(cfg.Theme)
	if err != nil {
		return err
	}
	ctx = theme.WithProvider(ctx, theme.NewProvider(t))

	m, err := gallery.New(ctx, gallery.Options{
		Catalog:    c,
		Store:      assets.NewStore(assetDir(), logger),
		Classifier: viewport.New(cfg.CompactThreshold, cfg.CellWidth),
		Controller: controllerOptions(),
		Logger:     logger,
		OpenID:     openID,
		SkipIntro:  openID != 0,
	})
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if !cfg.DisableMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	logger.Info("gallery start", "artworks", c.Len(), "theme", string(t), "open", openID)
	_, err = tea.NewProgram(m, opts...).Run()
	logger.Info("gallery exit", "err", err)
	return err
}
