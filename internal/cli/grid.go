package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/qrlabels/pkg/layout"
	"github.com/matzehuels/qrlabels/pkg/pipeline"
)

// gridCommand creates the grid command, a dry run that reports the page
// grid and page count of a run without rendering anything.
func (c *CLI) gridCommand() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "grid [SPEC]",
		Short: "Show the page grid and page count without rendering",
		Long: `Show how labels would be tiled: the grid of label cells per page, the
number of cells each code occupies and the number of pages.

Nothing is generated or written.`,
		Example: `  qrlabels grid 40x3@1.25
  qrlabels grid --count 12 --repeat 5 --fill --include-cut-lines`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.resolveOptions(cmd, args, &flags)
			if err != nil {
				return err
			}
			preview, err := pipeline.NewRunner(c.Logger).Plan(opts)
			if err != nil {
				return err
			}
			printPreview(preview, opts)
			return nil
		},
	}

	addLayoutFlags(cmd, &flags)
	return cmd
}

func printPreview(p *pipeline.Preview, opts pipeline.Options) {
	size := p.Geometry.LabelSize
	printSuccess("Page grid")
	printKeyValue("Label", fmt.Sprintf("%.2fin (%d dots)", float64(size)/layout.DPI, size))
	printKeyValue("Grid", fmt.Sprintf("%d columns x %d rows", p.Grid.Columns, p.Grid.Rows))
	printKeyValue("Per page", fmt.Sprint(p.Grid.Capacity()))
	printKeyValue("Copies", fmt.Sprintf("%d per code", p.Copies))
	printSummary(p.Count, p.Placements, p.Pages)

	if opts.Fill && p.Copies > opts.Repeat {
		printDetail("--fill pads each code from %d to %d copies", opts.Repeat, p.Copies)
	}
}
