// Package cli implements the collage command-line interface.
//
// The root command builds collages from a folder of images; subcommands
// preview the layout and print the effective configuration. The CLI is
// built using cobra, and logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - collage: Compose and write collages (the root command)
//   - plan: Print grids and placements without decoding or writing anything
//   - config: Print the effective configuration as TOML
//   - completion: Generate shell completion scripts
//
// # Flags
//
// Every collage setting is a persistent flag on the root command, so plan
// and config accept the same flags as a real run. Because -h is --height,
// help is available as --help only.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to the pipeline runner.
//
// # Example
//
//	import "github.com/matzehuels/collage/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to w at level, stamping each line with
// a wall-clock time such as "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress measures one command run.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level, appending the elapsed time as "duration".
//
//	finished images=24 collages=2 skipped=0 duration=1.234s
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "duration", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx for loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
