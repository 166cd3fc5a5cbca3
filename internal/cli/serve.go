package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/comiccon2025/comicpage/internal/api"
)

const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		catalog string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the comic page over HTTP",
		Long: `Serve the comic page over HTTP.

The page is rendered without pulse cells and fetches them from /api/pulse
whenever the browser window is resized.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Addr
			}
			return c.runServe(cmd.Context(), addr, catalog, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&catalog, "catalog", "", "catalog file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, catalog string, noCache bool) error {
	logger := loggerFromContext(ctx)

	doc, err := c.loadDocument(ctx, catalog)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	vp, err := c.Config.DefaultViewport()
	if err != nil {
		return err
	}
	srv := api.NewServer(runner, doc, api.Options{
		Style:    c.Config.Style,
		Seed:     c.Config.Seed,
		Viewport: vp,
	}, logger)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	hs := &http.Server{
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	printSuccess("Serving %d scene(s)", doc.Catalog.Len())
	printNextStep("Open", "http://"+ln.Addr().String()+"/")

	errc := make(chan error, 1)
	go func() { errc <- hs.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := hs.Shutdown(sctx); err != nil {
			return err
		}
		return ctx.Err()
	}
}
