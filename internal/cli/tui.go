package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/comiccon2025/comicpage/pkg/pipeline"
	"github.com/comiccon2025/comicpage/pkg/render/pulse"
)

// A terminal character stands for this many pixels of the page.
const (
	charWidth  = 8
	charHeight = 16

	frameInterval = 100 * time.Millisecond
)

var pulseStyles = map[pulse.Variant]lipgloss.Style{
	pulse.Orange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	pulse.Cyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	pulse.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
}

// =============================================================================
// pulseModel - live pulse grid preview
// =============================================================================

type frameMsg time.Time

// pulseModel previews the pulse layer. Window size events are published to
// a broadcaster the layer is mounted on, so the layer alone owns the cells.
type pulseModel struct {
	layer   *pulse.Layer
	source  *pulse.Broadcaster
	release func()

	cols, rows int
	start, now time.Time
}

func newPulseModel(cfg pulse.Config, seed uint64) *pulseModel {
	m := &pulseModel{
		layer:  pulse.NewLayer(cfg, seed),
		source: &pulse.Broadcaster{},
		start:  time.Now(),
	}
	m.now = m.start
	m.release = m.layer.Mount(m.source)
	return m
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *pulseModel) Init() tea.Cmd {
	return tick()
}

func (m *pulseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.release()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = max(msg.Height-2, 0)
		m.source.Publish(pulse.Viewport{
			Width:  float64(m.cols * charWidth),
			Height: float64(m.rows * charHeight),
		})
	case frameMsg:
		m.now = time.Time(msg)
		return m, tick()
	}
	return m, nil
}

func (m *pulseModel) View() string {
	var b strings.Builder

	cells := m.layer.Cells()
	vp := "-"
	if v := m.layer.Viewport(); v != nil {
		vp = v.String()
	}
	b.WriteString(StyleTitle.Render("pulse"))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  gen %d · %s · %d cells · q quit", m.layer.Generation(), vp, len(cells))))
	b.WriteString("\n\n")

	if m.cols <= 0 || m.rows <= 0 {
		return b.String()
	}

	grid := make([][]string, m.rows)
	for r := range grid {
		grid[r] = make([]string, m.cols)
	}
	elapsed := m.now.Sub(m.start).Seconds()
	for _, c := range cells {
		col := int(c.Left / charWidth)
		row := int(c.Top / charHeight)
		if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
			continue
		}
		glyph := "·"
		if lit(c, elapsed) {
			glyph = "■"
		}
		grid[row][col] = pulseStyles[c.Variant].Render(glyph)
	}

	for r, line := range grid {
		for _, g := range line {
			if g == "" {
				g = " "
			}
			b.WriteString(g)
		}
		if r < len(grid)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// lit reports whether c is in the bright half of its blink at t seconds.
func lit(c pulse.Cell, t float64) bool {
	if c.Duration <= 0 || t < c.Delay {
		return false
	}
	phase := math.Mod(t-c.Delay, c.Duration) / c.Duration
	return phase < 0.5
}

// =============================================================================
// pulse command
// =============================================================================

func (c *CLI) pulseCommand() *cobra.Command {
	var (
		viewport string
		seed     uint64
		catalog  string
	)

	cmd := &cobra.Command{
		Use:   "pulse",
		Short: "Preview the pulse grid",
		Long: `Preview the pulse grid in the terminal. The grid is regenerated whenever
the terminal is resized.

With --viewport the cells for that size are printed as JSON instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = c.Config.Seed
			}
			doc, err := c.loadDocument(cmd.Context(), catalog)
			if err != nil {
				return err
			}
			if viewport != "" {
				vp, err := pulse.ParseViewport(viewport)
				if err != nil {
					return err
				}
				return writePulseJSON(os.Stdout, pipeline.Pulse(doc, seed, &vp), seed, vp)
			}
			return runPulseTUI(cmd.Context(), newPulseModel(doc.PulseConfig, seed))
		},
	}

	cmd.Flags().StringVar(&viewport, "viewport", "", "print cells for WIDTHxHEIGHT as JSON")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "pulse seed")
	cmd.Flags().StringVar(&catalog, "catalog", "", "catalog file")

	return cmd
}

func writePulseJSON(w io.Writer, cells []pulse.Cell, seed uint64, vp pulse.Viewport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(pipeline.PulseFrame{
		Generation: strconv.FormatUint(seed, 10),
		Viewport:   &vp,
		Cells:      pipeline.PulseCells(cells),
	})
}

func runPulseTUI(ctx context.Context, m *pulseModel) error {
	defer m.release()
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
