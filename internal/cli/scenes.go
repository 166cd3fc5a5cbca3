package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/comiccon2025/comicpage/pkg/scene"
)

// scenesCommand lists the scenes of a catalog.
func (c *CLI) scenesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes [catalog]",
		Short: "List the scenes of a catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			doc, err := c.loadDocument(cmd.Context(), path)
			if err != nil {
				return err
			}
			fmt.Println(scenesTable(doc.Catalog))
			return nil
		},
	}
}

// scenesTable renders one row per scene in reading order.
func scenesTable(cat *scene.Catalog) string {
	var rows [][]string
	for s := range cat.All() {
		rows = append(rows, []string{s.Label, s.ID, s.Title, s.Decor().String(), s.Fragment()})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "ID", "Title", "Decor", "Anchor").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 1:
				return StyleHighlight
			case col >= 3:
				return StyleDim
			}
			return StyleValue
		})
	return t.Render()
}

// catalogCommand groups the catalog file helpers.
func (c *CLI) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Write or check catalog files",
	}
	cmd.AddCommand(c.catalogInitCommand())
	cmd.AddCommand(c.catalogCheckCommand())
	return cmd
}

// catalogInitCommand writes the built-in document as a starting point.
func (c *CLI) catalogInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init <file>",
		Short: "Write the built-in issue as an editable catalog (.toml, .yaml or .json)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return initCatalog(cmd.Context(), args[0], force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func initCatalog(ctx context.Context, path string, force bool) error {
	format, err := scene.FormatFromPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	data, err := scene.DefaultDocument().Encode(format)
	if err != nil {
		return err
	}
	if err := writeFile(path, data); err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("catalog written", "path", path, "format", format, "bytes", len(data))
	printSuccess("Wrote %s catalog", strings.ToUpper(string(format)))
	printFile(path)
	return nil
}

// catalogCheckCommand validates catalog files.
func (c *CLI) catalogCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate catalog files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				doc, err := c.loadDocument(cmd.Context(), path)
				if err != nil {
					printError("%s: %v", path, err)
					failed++
					continue
				}
				l := doc.GraphLayout()
				printSuccess("%s", path)
				printKeyValue("scenes", fmt.Sprint(doc.Catalog.Len()))
				printKeyValue("graph", fmt.Sprintf("%d nodes, %d edges", len(l.Capsules), len(l.Segments)))
				if l.Dropped > 0 {
					printWarning("%d edge(s) reference unknown nodes", l.Dropped)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d catalog(s) invalid", failed, len(args))
			}
			return nil
		},
	}
}
