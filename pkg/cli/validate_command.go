package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matrix-docker/stackcheck/pkg/checks"
	"github.com/matrix-docker/stackcheck/pkg/console"
	"github.com/matrix-docker/stackcheck/pkg/logger"
)

var validateLog = logger.New("cli:validate")

// ValidateConfig holds configuration for validate command execution.
type ValidateConfig struct {
	File      string
	DockerBin string
	Verbose   bool
}

// DefaultValidateConfig returns the configuration used when the tool is
// invoked with no arguments: validate docker-compose.yml in the current
// working directory.
func DefaultValidateConfig() ValidateConfig {
	return ValidateConfig{
		File:      checks.DefaultComposeFile,
		DockerBin: checks.DefaultDockerBin,
	}
}

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the compose configuration for a Matrix deployment",
		Long: `Run the full check suite against a Docker Compose file for a self-hosted
Matrix/Synapse stack.

Hard checks (compose file present and parsable, synapse service defined,
networks configured) set a non-zero exit code when they fail. Everything
else (optional services, Synapse ports, volumes, env files, live docker
validation) only warns.

Examples:
  stackcheck validate
  stackcheck validate --file deploy/docker-compose.yml
  stackcheck validate --docker-bin podman`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			dockerBin, _ := cmd.Flags().GetString("docker-bin")
			verbose, _ := cmd.Flags().GetBool("verbose")

			return RunValidate(ValidateConfig{
				File:      file,
				DockerBin: dockerBin,
				Verbose:   verbose,
			})
		},
	}

	cmd.Flags().StringP("file", "f", checks.DefaultComposeFile, "Path to the compose file")
	cmd.Flags().String("docker-bin", checks.DefaultDockerBin, "Container CLI used for live config validation")
	cmd.Flags().BoolP("verbose", "v", false, "Print per-check progress")

	return cmd
}

// RunValidate executes the check suite and returns an error iff at least one
// hard check failed.
func RunValidate(config ValidateConfig) error {
	validateLog.Printf("Validating compose file: file=%s, dockerBin=%s", config.File, config.DockerBin)

	fmt.Fprintln(os.Stdout, console.FormatInfoMessage("Running Matrix stack configuration checks..."))
	fmt.Fprintln(os.Stdout, "")

	summary := checks.RunAll(context.Background(), &checks.Options{
		ComposeFile: config.File,
		DockerBin:   config.DockerBin,
		Verbose:     config.Verbose,
		Out:         os.Stdout,
	})

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d checks failed", summary.Failed, summary.Total)
	}
	return nil
}
