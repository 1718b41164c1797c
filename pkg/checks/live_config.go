package checks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/matrix-docker/stackcheck/pkg/console"
	"github.com/matrix-docker/stackcheck/pkg/logger"
)

var liveConfigLog = logger.New("checks:live_config")

// checkLiveConfig asks the container CLI itself to validate the compose
// configuration. The validating environment may have no container runtime at
// all, so every outcome of the subprocess is observational: a non-zero exit,
// a missing binary, and a timeout each produce a warning line, and the check
// always returns nil.
func checkLiveConfig(ctx context.Context, opts *Options) error {
	ctx, cancel := context.WithTimeout(ctx, opts.LiveTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, opts.DockerBin, "compose", "config")
	cmd.Dir = filepath.Dir(opts.ComposeFile)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	liveConfigLog.Printf("Running %s compose config (timeout=%s)", opts.DockerBin, opts.LiveTimeout)
	err := cmd.Run()

	switch {
	case err == nil:
		fmt.Fprintln(opts.Out, console.FormatSuccessMessage(fmt.Sprintf("%s compose config is valid", opts.DockerBin)))
	case errors.Is(err, exec.ErrNotFound):
		fmt.Fprintln(opts.Out, console.FormatWarningMessage(fmt.Sprintf("%s not available, skipping compose config check", opts.DockerBin)))
	case ctx.Err() != nil:
		fmt.Fprintln(opts.Out, console.FormatWarningMessage(fmt.Sprintf("%s compose config timed out", opts.DockerBin)))
	default:
		diag := strings.TrimSpace(stderr.String())
		if diag == "" {
			diag = err.Error()
		}
		fmt.Fprintln(opts.Out, console.FormatWarningMessage(fmt.Sprintf("%s compose config had warnings: %s", opts.DockerBin, diag)))
	}

	return nil
}
