package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/collage/pkg/layout"
	"github.com/matzehuels/collage/pkg/pipeline"
)

// planCommand creates the plan command, which prints the layout a run
// would produce without decoding pixels or writing files.
func (c *CLI) planCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "plan [flags]",
		Short: "Show the grid and placements without writing collages",
		Long: `Plan reads only the image headers, computes the layout of every page and
prints it. Nothing is decoded or written. Use --json for machine-readable
output including every cell and placement rectangle.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.resolveConfig(cmd)
			if err != nil {
				return err
			}
			plan, err := newRunner(cmd.Context()).Plan(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(plan)
			}
			printPlan(plan)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the plan as JSON")
	return cmd
}

// printPlan renders a human-readable plan on stdout.
func printPlan(p *pipeline.Plan) {
	printKeyValue("canvas", p.Canvas.String())
	printKeyValue("pages", fmt.Sprint(len(p.Pages)))
	for _, page := range p.Pages {
		printNewline()
		fmt.Fprintln(stdout, StyleTitle.Render(fmt.Sprintf("Page %d", page.Page))+" "+StyleDim.Render(page.Name))
		printKeyValue("grid", page.Layout.Grid.String())
		printKeyValue("cell", cellSize(page.Layout))
		for i, pl := range page.Layout.Placements {
			line := fmt.Sprintf("%-24s %s -> %s", page.Images[i].Name, page.Images[i].Size, pl.Content)
			if pl.Rotated {
				line += " (rotated)"
			}
			printDetail("%s", line)
		}
	}
	if len(p.Skipped) > 0 {
		printNewline()
		printWarning("%d unreadable %s would be skipped", len(p.Skipped), plural(len(p.Skipped), "file", "files"))
		for _, s := range p.Skipped {
			printDetail("%s: %s", s.Path, s.Error)
		}
	}
}

// cellSize describes the base cell of l; the last row and column may be a
// few pixels larger.
func cellSize(l *layout.Layout) string {
	if len(l.Cells) == 0 {
		return "-"
	}
	return l.Cells[0].Box.Size().String()
}
