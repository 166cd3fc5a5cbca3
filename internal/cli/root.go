package cli

import (
	"github.com/spf13/cobra"

	"github.com/comiccon2025/comicpage/internal/config"
	"github.com/comiccon2025/comicpage/pkg/observability"
)

// setup runs before every command: it loads the config, picks the log level
// and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	level := LogInfo
	if lvl, err := parseLevel(cfg.LogLevel); err == nil {
		level = lvl
	}
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	if level == LogDebug {
		observability.NewLogHooks(c.Logger).Install()
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}
