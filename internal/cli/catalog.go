package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/rocket/pkg/errors"
	"github.com/matzehuels/rocket/pkg/parts"
)

// Catalog output formats.
const (
	catalogTable = "table"
	catalogDOT   = "dot"
	catalogSVG   = "svg"
)

// catalogOpts holds the flags of the catalog command.
type catalogOpts struct {
	format string // "table", "dot" or "svg"
	output string // output file; stdout when empty
}

// catalogCommand creates the catalog command, which lists the parts a
// rocket is built from or draws their stacking graph.
func (c *CLI) catalogCommand(build *buildOpts) *cobra.Command {
	opts := catalogOpts{format: catalogTable}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the parts rockets are assembled from",
		Long: `List the parts rockets are assembled from.

The table format shows every part with its category, bottom connector width,
height and selection weight. The dot and svg formats draw the stacking graph:
an edge from a to b means b may be placed directly beneath a.`,
		Example: `  rocket catalog
  rocket catalog --parts my-parts.toml
  rocket catalog -f svg -o parts.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(build.config)
			if err != nil {
				return err
			}
			path := build.parts
			if cfg.Parts != nil && !cmd.Flags().Changed("parts") {
				path = *cfg.Parts
			}
			cat, err := loadCatalog(path)
			if err != nil {
				return err
			}
			return c.runCatalog(cmd, cat, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: table (default), dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func (c *CLI) runCatalog(cmd *cobra.Command, cat *parts.Catalog, opts catalogOpts) error {
	logger := loggerFromContext(cmd.Context())

	var data []byte
	switch opts.format {
	case catalogTable:
		data = []byte(catalogTableView(cat) + "\n")
	case catalogDOT:
		data = []byte(parts.ToDOT(cat))
	case catalogSVG:
		prog := newProgress(logger)
		svg, err := parts.RenderSVG(cmd.Context(), parts.ToDOT(cat))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "render part graph")
		}
		prog.done("Rendered part graph")
		data = svg
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s, %s, %s)",
			opts.format, catalogTable, catalogDOT, catalogSVG)
	}

	out, err := openOutput(cmd.OutOrStdout(), opts.output)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "open output %s", opts.output)
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	if opts.output != "" {
		printInfo(cmd.ErrOrStderr(), "Wrote %s parts to %s",
			StyleNumber.Render(strconv.Itoa(cat.Len())), StyleValue.Render(opts.output))
	}
	return nil
}

// catalogTableView renders the catalog as a bordered table.
func catalogTableView(cat *parts.Catalog) string {
	rows := make([][]string, 0, cat.Len())
	for _, p := range cat.Parts() {
		rows = append(rows, []string{
			p.ID,
			p.Category.String(),
			strconv.Itoa(p.Connector),
			strconv.Itoa(p.Height),
			strconv.Itoa(p.Weight),
			p.Shape,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		BorderRow(true).
		Headers("ID", "Category", "Connector", "Height", "Weight", "Shape").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return styleHeader.Padding(0, 1)
			case col >= 2 && col <= 4:
				return base.Inherit(StyleNumber).Align(lipgloss.Right)
			}
			return base
		})

	return t.Render() + "\n" + StyleDim.Render(fmt.Sprintf("  %d parts", cat.Len()))
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a writer for path, or w when path is empty.
func openOutput(w io.Writer, path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{w}, nil
	}
	return os.Create(path)
}
