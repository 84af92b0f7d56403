package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/collage/pkg/buildinfo"
	"github.com/matzehuels/collage/pkg/config"
)

// configCommand creates the config command, which prints the effective
// configuration as TOML. The output can be saved and passed back with --config.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config [flags]",
		Short: "Print the effective configuration as TOML",
		Long: `Config resolves defaults, the --config file and any flags exactly as a run
would, and prints the result as TOML:

  collage config -w 3000 -h 2000 --fit fill > collage.toml
  collage --config collage.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.resolveConfig(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "# %s %s\n", appName, buildinfo.Short())
			return config.Encode(stdout, cfg)
		},
	}
}
