package checks

import (
	"context"
	"fmt"
	"strings"

	"github.com/matrix-docker/stackcheck/pkg/console"
	"github.com/matrix-docker/stackcheck/pkg/logger"
)

var runnerLog = logger.New("checks:runner")

// Summary aggregates the outcome of one check run. A check that only warned
// counts as passed; only hard failures count against the exit code.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// ExitCode maps the summary to a process exit code.
func (s Summary) ExitCode() int {
	if s.Failed > 0 {
		return 1
	}
	return 0
}

// Run executes the checks strictly in order, isolating each check's outcome
// from the others: no failure stops a later check. Hard failures (violations)
// are printed with a failure marker and counted; any other error means the
// check itself could not run and is printed as a warning without affecting
// the verdict. A summary block is printed after the last check.
func Run(ctx context.Context, suite []Check, opts *Options) Summary {
	opts = opts.withDefaults()
	runnerLog.Printf("Running %d checks against %s", len(suite), opts.ComposeFile)

	summary := Summary{Total: len(suite)}
	for _, check := range suite {
		if opts.Verbose {
			fmt.Fprintln(opts.Out, console.FormatVerboseMessage(fmt.Sprintf("running check: %s", check.Name)))
		}

		err := check.Run(ctx, opts)
		switch {
		case err == nil:
			// The check printed its own detail lines.
		case IsViolation(err):
			runnerLog.Printf("Check failed: %s: %v", check.Name, err)
			fmt.Fprintln(opts.Out, console.FormatErrorMessage(fmt.Sprintf("%s: %v", check.Name, err)))
			summary.Failed++
		default:
			runnerLog.Printf("Check could not run: %s: %v", check.Name, err)
			fmt.Fprintln(opts.Out, console.FormatWarningMessage(fmt.Sprintf("%s: %v", check.Name, err)))
		}
	}
	summary.Passed = summary.Total - summary.Failed

	fmt.Fprintln(opts.Out, "")
	fmt.Fprintln(opts.Out, strings.Repeat("=", 50))
	fmt.Fprintln(opts.Out, console.FormatCountMessage("Checks run", summary.Total))
	fmt.Fprintln(opts.Out, console.FormatCountMessage("Passed", summary.Passed))
	fmt.Fprintln(opts.Out, console.FormatCountMessage("Failed", summary.Failed))

	return summary
}

// RunAll executes the full suite with the given options.
func RunAll(ctx context.Context, opts *Options) Summary {
	return Run(ctx, All(), opts)
}
