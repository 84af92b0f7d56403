package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/collage/pkg/buildinfo"
	"github.com/matzehuels/collage/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "collage"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// flags holds the values bound to the collage flags of the root command.
	flags *collageFlags
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command itself builds the collages.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName + " [flags]",
		Short: "Collage arranges a folder of images into grid collages",
		Long: `Collage arranges a folder of images into one or more grid-layout collages.

The grid shape is chosen from the image count and the canvas aspect ratio.
Each image is scaled into its cell (letterboxed or center-cropped), and an
optional info strip with the date and layout summary is appended below.

Settings come from built-in defaults, then an optional TOML file (--config),
then any flags given on the command line.`,
		Example: `  collage -f ~/Pictures/trip -w 3000 -h 2000 -P 10
  collage -f photos --per-page 12 --fit fill --captions -i
  collage plan -f photos --json`,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.runCreate,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// -h is --height, so help gets a long flag only. Defining it before
	// execution stops cobra from adding its own -h shorthand.
	root.PersistentFlags().Bool("help", false, "help for "+appName)
	c.flags = bindCollageFlags(root.PersistentFlags())
	registerFlagCompletions(root)

	// Register all subcommands
	root.AddCommand(c.planCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner that logs through the logger carried
// by ctx.
func newRunner(ctx context.Context) *pipeline.Runner {
	return pipeline.NewRunner(loggerFromContext(ctx))
}
