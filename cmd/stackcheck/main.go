// Command stackcheck validates a Docker Compose configuration for a
// self-hosted Matrix/Synapse deployment.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matrix-docker/stackcheck/pkg/cli"
	"github.com/matrix-docker/stackcheck/pkg/console"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "stackcheck",
	Short: "Validate Docker Compose configuration for a self-hosted Matrix stack",
	Long: `stackcheck runs an ordered suite of checks against the docker-compose.yml
of a Matrix/Synapse deployment: file shape, required services, Synapse
ports, volumes, networks, env files, and a best-effort validation through
the docker CLI.

Invoked with no arguments it validates docker-compose.yml in the current
directory and exits 0 only when every hard check passes.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunValidate(cli.DefaultValidateConfig())
	},
}

func init() {
	rootCmd.AddCommand(
		cli.NewValidateCommand(),
		cli.NewWatchCommand(),
		cli.NewVersionCommand(version),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		os.Exit(1)
	}
}
