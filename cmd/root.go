package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/marcus/artside/internal/config"
	"github.com/spf13/cobra"
)

var (
	version string
	baseDir string

	cfg       = config.Defaults()
	logger    = slog.New(slog.NewJSONHandler(io.Discard, nil))
	logCloser io.Closer
)

// Persistent flags. They override the config file and ARTSIDE_* variables
// only when set explicitly.
var (
	flagCatalog string
	flagAssets  string
	flagLogFile string
	flagStrict  bool
	flagNoMouse bool
	flagTheme   themeValue
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "artside",
	Short: "Browse an art collection in the terminal",
	Long: `artside - a gallery of artworks for the terminal.

Cards open into a detail view that grows out of the card and shrinks back
into it on close. Arrow keys or swipes move through the collection.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGallery(cmd.Context(), 0)
	},
}

// Execute runs the root command
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	f := rootCmd.PersistentFlags()
	f.StringVar(&flagCatalog, "catalog", "", "YAML catalog file (default: built-in collection)")
	f.StringVar(&flagAssets, "assets", "", "directory artwork image paths are resolved against")
	f.Var(&flagTheme, "theme", "start theme: golden, tropical, nature or noir")
	f.BoolVar(&flagStrict, "strict", false, "panic on overlay misuse instead of ignoring it")
	f.BoolVar(&flagNoMouse, "no-mouse", false, "disable mouse input")
	f.StringVar(&flagLogFile, "log-file", "", "append JSON logs to this file")

	rootCmd.AddCommand(listCmd, showCmd, openCmd, themesCmd, versionCmd)
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the directory the config file is looked up in
func getBaseDir() string {
	return baseDir
}

// setup resolves the settings in increasing precedence: defaults, the
// config file, .env and ARTSIDE_* variables, then explicit flags.
func setup(cmd *cobra.Command) error {
	_ = godotenv.Load()

	c, err := config.Load(getBaseDir())
	if err != nil {
		return err
	}
	if err := c.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}
	applyFlags(cmd, c)
	cfg = c

	l, closer, err := newLogger(c.LogFile, c.LogLevel)
	if err != nil {
		return err
	}
	logger, logCloser = l, closer
	return nil
}

func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("catalog") {
		c.CatalogPath = flagCatalog
	}
	if flags.Changed("assets") {
		c.AssetDir = flagAssets
	}
	if flags.Changed("theme") {
		c.Theme = flagTheme.String()
	}
	if flags.Changed("strict") {
		c.Strict = flagStrict
	}
	if flags.Changed("no-mouse") {
		c.DisableMouse = flagNoMouse
	}
	if flags.Changed("log-file") {
		c.LogFile = flagLogFile
	}
}
