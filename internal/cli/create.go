package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/collage/pkg/pipeline"
)

// runCreate builds and writes the collages for the resolved configuration.
func (c *CLI) runCreate(cmd *cobra.Command, _ []string) error {
	cfg, err := c.resolveConfig(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	prog := newProgress(loggerFromContext(ctx))

	var spinner *Spinner
	if c.showSpinner() {
		spinner = newSpinnerWithContext(ctx, fmt.Sprintf("Scanning %s...", cfg.Input))
		spinner.Start()
		defer withSpinnerHooks(spinner)()
	}

	result, err := newRunner(ctx).Execute(ctx, cfg)
	if spinner != nil {
		if err != nil {
			spinner.StopWithError("Collage failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}

	prog.done("finished", "images", result.Stats.Images, "collages", len(result.Pages), "skipped", len(result.Skipped))
	printResult(result)
	return nil
}

// showSpinner reports whether progress animation makes sense: stderr must
// be a terminal and debug logging must be off, since log lines would tear
// the spinner line.
func (c *CLI) showSpinner() bool {
	if c.Logger.GetLevel() <= LogDebug {
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printResult summarizes a finished run on stdout.
func printResult(r *pipeline.Result) {
	printSuccess("Wrote %d %s", len(r.Pages), plural(len(r.Pages), "collage", "collages"))
	for _, p := range r.Pages {
		printFile(p.Path)
	}
	printStats(r.Stats)
	if n := len(r.Skipped); n > 0 {
		printWarning("Skipped %d unreadable %s", n, plural(n, "file", "files"))
		for _, f := range r.Skipped {
			printDetail("%s", f.Path)
		}
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
