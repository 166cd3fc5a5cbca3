package cli

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comiccon2025/comicpage/pkg/pipeline"
	"github.com/comiccon2025/comicpage/pkg/render/pulse"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	catalog  string // catalog file; empty means the configured or built-in one
	output   string // output file (single format) or base path
	formats  string // comma-separated formats
	style    string // process graph style: "simple" or "handdrawn"
	seed     uint64
	viewport string // pre-rendered pulse viewport, WxH
	title    string
	endpoint string // resize endpoint baked into the page
	noNav    bool
	noCache  bool
	refresh  bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [catalog]",
		Short: "Render the comic page and its panels to files",
		Long: `Render the comic page and its panels to files.

Formats: html (default), svg (process graph), spectral (spectral panel),
dot, png and json (manifest). With several formats, -o is a base path and
each file gets the format's extension.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.catalog = args[0]
			}
			c.applyRenderDefaults(cmd, &opts)
			return c.runRender(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple); - for stdout")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", pipeline.FormatHTML, "output format(s): "+strings.Join(pipeline.AllFormats, ", ")+" (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", "", "process graph style: simple, handdrawn")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for the hand-drawn style and the pulse grid")
	cmd.Flags().StringVar(&opts.viewport, "viewport", "", "pre-render the pulse grid for WIDTHxHEIGHT")
	cmd.Flags().StringVar(&opts.title, "title", "", "page title")
	cmd.Flags().StringVar(&opts.endpoint, "resize-endpoint", "", "URL the page polls for pulse cells on resize")
	cmd.Flags().BoolVar(&opts.noNav, "no-nav", false, "leave out the scene navigation")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

// applyRenderDefaults fills unset flags from the config.
func (c *CLI) applyRenderDefaults(cmd *cobra.Command, opts *renderOpts) {
	if !cmd.Flags().Changed("style") && opts.style == "" {
		opts.style = c.Config.Style
	}
	if !cmd.Flags().Changed("seed") && opts.seed == 0 {
		opts.seed = c.Config.Seed
	}
	if !cmd.Flags().Changed("viewport") && opts.viewport == "" {
		opts.viewport = c.Config.Viewport
	}
	if !cmd.Flags().Changed("resize-endpoint") && opts.endpoint == "" {
		opts.endpoint = c.Config.ResizeEndpoint
	}
}

// pipelineOptions converts the flags into pipeline options.
func (o *renderOpts) pipelineOptions() (pipeline.Options, error) {
	opts := pipeline.Options{
		Formats:        pipeline.ParseFormats(o.formats),
		Style:          o.style,
		Seed:           o.seed,
		Title:          o.title,
		ResizeEndpoint: o.endpoint,
		NoNav:          o.noNav,
		Refresh:        o.refresh,
	}
	if o.viewport != "" {
		vp, err := pulse.ParseViewport(o.viewport)
		if err != nil {
			return opts, err
		}
		opts.Viewport = &vp
	}
	return opts, opts.ValidateAndSetDefaults()
}

func (c *CLI) runRender(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	popts, err := opts.pipelineOptions()
	if err != nil {
		return err
	}
	doc, err := c.loadDocument(ctx, opts.catalog)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	var spin *Spinner
	if opts.output != "-" && !c.verbose {
		spin = newSpinnerWithContext(ctx, "Rendering "+strings.Join(popts.Formats, ", "))
		spin.Start()
	}
	result, err := runner.Execute(ctx, doc, popts)
	if spin != nil {
		if err != nil && !spin.Cancelled() {
			spin.StopWithError("Render failed")
		} else {
			spin.Stop()
		}
	}
	if err != nil {
		return err
	}

	if opts.output == "-" {
		if len(popts.Formats) != 1 {
			return fmt.Errorf("stdout output needs exactly one format, got %d", len(popts.Formats))
		}
		_, err := os.Stdout.Write(result.Artifacts[popts.Formats[0]])
		return err
	}

	paths := outputPaths(opts.output, opts.catalog, popts.Formats)
	for _, format := range popts.Formats {
		if err := writeFile(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
		printFile(paths[format])
	}
	printStats(result.Stats, result.CacheInfo.AllHit(popts.Formats))
	prog.done(fmt.Sprintf("Rendered %d file(s)", len(popts.Formats)))
	return nil
}

// outputPaths maps each format to its file. A single format writes to output
// as given; several formats share output (or the catalog name) as a base.
func outputPaths(output, catalog string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, catalog)
	for _, f := range formats {
		paths[f] = base + pipeline.Extensions[f]
	}
	return paths
}

// basePath strips a known extension from output, or derives a base from the
// catalog file name.
func basePath(output, catalog string) string {
	if output == "" {
		if catalog == "" {
			return appName
		}
		return strings.TrimSuffix(catalog, filepath.Ext(catalog))
	}
	exts := slices.Collect(maps.Values(pipeline.Extensions))
	// longest first so ".spectral.svg" wins over ".svg"
	slices.SortFunc(exts, func(a, b string) int { return len(b) - len(a) })
	for _, ext := range exts {
		if strings.HasSuffix(output, ext) {
			return strings.TrimSuffix(output, ext)
		}
	}
	return output
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
