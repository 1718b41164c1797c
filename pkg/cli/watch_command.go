package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/matrix-docker/stackcheck/pkg/checks"
	"github.com/matrix-docker/stackcheck/pkg/console"
	"github.com/matrix-docker/stackcheck/pkg/logger"
)

var watchLog = logger.New("cli:watch")

// watchDebounce coalesces the burst of filesystem events editors produce for
// a single save into one re-run.
const watchDebounce = 200 * time.Millisecond

// WatchConfig holds configuration for watch command execution.
type WatchConfig struct {
	File      string
	DockerBin string
	Verbose   bool
}

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run validation whenever the compose file changes",
		Long: `Watch the compose file and re-run the full check suite on every change.

Runs until interrupted. The exit code reflects the most recent run: non-zero
if its hard checks failed.

Examples:
  stackcheck watch
  stackcheck watch --file deploy/docker-compose.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			dockerBin, _ := cmd.Flags().GetString("docker-bin")
			verbose, _ := cmd.Flags().GetBool("verbose")

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runWatch(ctx, WatchConfig{
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

// runWatch validates once, then re-validates on every change to the compose
// file until ctx is cancelled.
func runWatch(ctx context.Context, config WatchConfig) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating filesystem watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save,
	// which would silently drop a watch on the file itself.
	dir := filepath.Dir(config.File)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	watchLog.Printf("Watching %s for changes to %s", dir, filepath.Base(config.File))

	run := func() checks.Summary {
		return checks.RunAll(ctx, &checks.Options{
			ComposeFile: config.File,
			DockerBin:   config.DockerBin,
			Verbose:     config.Verbose,
			Out:         os.Stdout,
		})
	}

	last := run()

	var debounce *time.Timer
	var debounceC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if last.Failed > 0 {
				return fmt.Errorf("%d of %d checks failed", last.Failed, last.Total)
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !shouldRerun(event, config.File) {
				continue
			}
			watchLog.Printf("Change detected: %s (%s)", event.Name, event.Op)
			if debounce == nil {
				debounce = time.NewTimer(watchDebounce)
				debounceC = debounce.C
			} else {
				debounce.Reset(watchDebounce)
			}

		case <-debounceC:
			fmt.Fprintln(os.Stdout, "")
			fmt.Fprintln(os.Stdout, console.FormatInfoMessage(fmt.Sprintf("%s changed, re-running checks...", config.File)))
			fmt.Fprintln(os.Stdout, "")
			last = run()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, console.FormatWarningMessage(fmt.Sprintf("watch error: %v", err)))
		}
	}
}

// shouldRerun reports whether a filesystem event concerns the watched compose
// file in a way that warrants re-validation.
func shouldRerun(event fsnotify.Event, file string) bool {
	if filepath.Base(event.Name) != filepath.Base(file) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}
