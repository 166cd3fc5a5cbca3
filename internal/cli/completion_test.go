package cli

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestCompletionScripts(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			root := newTestCLI(t).RootCommand()
			var out bytes.Buffer
			root.SetOut(&out)
			root.SetArgs([]string{"completion", shell})
			if err := root.Execute(); err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if !strings.Contains(out.String(), "comicpage") {
				t.Errorf("%s script does not mention comicpage", shell)
			}
		})
	}
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	root := newTestCLI(t).RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"completion", "tcsh"})
	if err := root.Execute(); err == nil {
		t.Error("expected an error for an unsupported shell")
	}
}

func TestCompleteFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"html", "svg", "spectral", "dot", "png", "json"}},
		{"s", []string{"svg", "spectral"}},
		{"html,", []string{"html,svg", "html,spectral", "html,dot", "html,png", "html,json"}},
		{"html,svg,p", []string{"html,svg,png"}},
		{"x", nil},
	}
	for _, tt := range tests {
		got, directive := completeFormats(nil, nil, tt.in)
		if !slices.Equal(got, tt.want) {
			t.Errorf("completeFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if directive&cobra.ShellCompDirectiveNoFileComp == 0 {
			t.Errorf("completeFormats(%q) should disable file completion", tt.in)
		}
	}
}

func TestFlagCompletionsRegistered(t *testing.T) {
	root := newTestCLI(t).RootCommand()
	render, _, err := root.Find([]string{"render"})
	if err != nil {
		t.Fatal(err)
	}
	for _, flag := range []string{"format", "style", "viewport"} {
		if _, ok := render.GetFlagCompletionFunc(flag); !ok {
			t.Errorf("render --%s has no completion", flag)
		}
	}
}
