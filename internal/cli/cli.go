package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/comiccon2025/comicpage/internal/config"
	"github.com/comiccon2025/comicpage/pkg/buildinfo"
	"github.com/comiccon2025/comicpage/pkg/cache"
	"github.com/comiccon2025/comicpage/pkg/observability"
	"github.com/comiccon2025/comicpage/pkg/pipeline"
	"github.com/comiccon2025/comicpage/pkg/scene"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "comicpage"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Comicpage renders the Digital Forensics comic page",
		Long: `Comicpage renders a scrolling comic of full-viewport scene panels with a
process graph, a spectral panel and a resize-driven pulse grid, either to
files or from a small HTTP server.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (TOML)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.scenesCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.pulseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())
	registerFlagCompletions(root)

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cc, err := c.newCache(noCache || c.Config.NoCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(cc, nil, c.Logger)
	r.TTL = c.Config.CacheTTL
	return r, nil
}

func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if c.Config.RedisURL != "" {
		c.Logger.Debug("using redis cache")
		return cache.NewRedisCache(c.Config.RedisURL)
	}
	return cache.NewFileCache(c.Config.CacheDir)
}

// loadDocument reads path, falling back to the configured catalog and then
// to the built-in issue.
func (c *CLI) loadDocument(ctx context.Context, path string) (*scene.Document, error) {
	if path == "" {
		path = c.Config.Catalog
	}
	start := time.Now()
	source := path
	var (
		doc *scene.Document
		err error
	)
	if path == "" {
		source = "built-in"
		doc = scene.DefaultDocument()
	} else {
		doc, err = scene.Load(path)
	}

	scenes := 0
	if doc != nil {
		scenes = doc.Catalog.Len()
	}
	observability.Pipeline().OnLoadComplete(ctx, source, scenes, time.Since(start), err)
	return doc, err
}
