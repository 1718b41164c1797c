package checks

import (
	"io"
	"os"
	"time"
)

// Defaults for check execution.
const (
	// DefaultComposeFile is the compose file checked when none is given.
	DefaultComposeFile = "docker-compose.yml"

	// DefaultDockerBin is the container CLI used for live config validation.
	DefaultDockerBin = "docker"

	// DefaultLiveTimeout caps the live config validation subprocess.
	DefaultLiveTimeout = 30 * time.Second
)

// Options configures a check run. The zero value is usable: every field
// falls back to its default.
type Options struct {
	// ComposeFile is the path to the compose file under validation.
	ComposeFile string

	// DockerBin is the container CLI binary invoked as `<bin> compose config`.
	DockerBin string

	// LiveTimeout bounds the live config validation subprocess.
	LiveTimeout time.Duration

	// Out receives the human-readable check output.
	Out io.Writer

	// Verbose enables per-check progress lines.
	Verbose bool
}

// withDefaults returns a copy of o with unset fields defaulted.
func (o *Options) withDefaults() *Options {
	out := *o
	if out.ComposeFile == "" {
		out.ComposeFile = DefaultComposeFile
	}
	if out.DockerBin == "" {
		out.DockerBin = DefaultDockerBin
	}
	if out.LiveTimeout == 0 {
		out.LiveTimeout = DefaultLiveTimeout
	}
	if out.Out == nil {
		out.Out = os.Stdout
	}
	return &out
}
