package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestCLI(t *testing.T) *CLI {
	t.Helper()
	t.Setenv("COMICPAGE_CACHE_DIR", t.TempDir())
	return New(io.Discard, LogInfo)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newTestCLI(t).RootCommand()

	want := []string{"render", "serve", "scenes", "catalog", "pulse", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newTestCLI(t).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "comicpage") {
		t.Errorf("version output = %q", out.String())
	}
}

func TestSetupLoadsConfig(t *testing.T) {
	c := newTestCLI(t)
	path := filepath.Join(t.TempDir(), "comicpage.toml")
	if err := os.WriteFile(path, []byte("style = \"handdrawn\"\nseed = 5\nlog_level = \"debug\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	root := c.RootCommand()
	root.SetArgs([]string{"--config", path, "cache", "path"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.Config.Style != "handdrawn" || c.Config.Seed != 5 {
		t.Errorf("config = %+v", c.Config)
	}
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("log level = %v", c.Logger.GetLevel())
	}
}

func TestSetupRejectsBadConfig(t *testing.T) {
	c := newTestCLI(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("style = \"crayon\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	root := c.RootCommand()
	root.SetArgs([]string{"--config", path, "cache", "path"})
	root.SetErr(io.Discard)
	if err := root.Execute(); err == nil {
		t.Error("bad config should fail")
	}
}
