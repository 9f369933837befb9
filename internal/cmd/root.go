package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"bennypowers.dev/swatchnorm/internal/config"
	"bennypowers.dev/swatchnorm/internal/log"
	"bennypowers.dev/swatchnorm/internal/normalize"
	"github.com/spf13/cobra"
)

// Confirmation is printed once the swatch page has been rewritten
const Confirmation = "✅ Mobile color picker optimization complete!"

// App carries what every command needs
type App struct {
	// Dir is the working directory the target page and config resolve against
	Dir    string
	Stdout io.Writer
	Stderr io.Writer

	Config *config.Config
}

// NewRootCommand builds the swatchnorm command tree
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "swatchnorm",
		Short: "Strip extra inline styles from color picker swatches",
		Long: "Rewrites " + config.DefaultTarget + " in place so that every color-option\n" +
			"swatch keeps only its background declaration.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.normalize()
		},
	}

	root.SetOut(app.Stdout)
	root.SetErr(app.Stderr)
	root.AddCommand(newCheckCommand(app))
	root.AddCommand(newVersionCommand(app))
	return root
}

func (app *App) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(app.Dir)
	if err != nil {
		// Only check reads its settings from the config file; a broken file
		// never blocks the bare rewrite or version
		if cmd.Name() == "check" {
			return err
		}
		log.Warn("Ignoring config: %v", err)
		cfg = config.Default()
	}
	app.Config = cfg

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn("%v, using warn", err)
	}
	log.SetLevel(level)
	return nil
}

func (app *App) normalize() error {
	path := filepath.Join(app.Dir, filepath.FromSlash(config.DefaultTarget))
	result, err := normalize.NormalizeFile(path)
	if err != nil {
		return err
	}

	log.Info("Normalized %d swatches", len(result.Swatches))
	fmt.Fprintln(app.Stdout, Confirmation)
	return nil
}

// Execute runs swatchnorm in the process working directory
func Execute() {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	app := &App{Dir: dir, Stdout: os.Stdout, Stderr: os.Stderr}
	if err := NewRootCommand(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
