// Package checks implements the ordered validation suite for a Matrix/Synapse
// Docker Compose deployment.
//
// Each check is independent and re-reads the compose document from disk, so
// no state is shared between checks. A check reports detail lines itself and
// signals its overall outcome through its return value: nil for pass, a
// *Violation for a hard failure, and any other error for a tolerated anomaly
// that is surfaced as a warning.
package checks

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/matrix-docker/stackcheck/pkg/compose"
	"github.com/matrix-docker/stackcheck/pkg/console"
	"github.com/matrix-docker/stackcheck/pkg/fileutil"
)

// requiredServices are the service identifiers expected in the deployment.
// Only synapse is essential; the others warn when absent.
var requiredServices = []string{"synapse", "postgres", "redis"}

// persistentServices are the services expected to mount volumes.
var persistentServices = []string{"synapse", "postgres"}

// requiredPorts are the Synapse client and federation ports.
var requiredPorts = []string{"8008", "8448"}

// envFileCandidates are the environment file paths probed relative to the
// compose file's directory.
var envFileCandidates = []string{
	".env.example",
	"synapse/.env.example",
	"postgres/.env.example",
}

// Check is one named validation step.
type Check struct {
	Name string
	Run  func(ctx context.Context, opts *Options) error
}

// All returns the full check suite in execution order.
func All() []Check {
	return []Check{
		{Name: "compose file", Run: checkComposeFile},
		{Name: "compose schema", Run: checkComposeSchema},
		{Name: "matrix services", Run: checkMatrixServices},
		{Name: "docker compose config", Run: checkLiveConfig},
		{Name: "port configuration", Run: checkPortConfiguration},
		{Name: "volumes", Run: checkVolumes},
		{Name: "networks", Run: checkNetworks},
		{Name: "environment files", Run: checkEnvFiles},
	}
}

// checkComposeFile verifies the compose file exists, parses, and defines
// services.
func checkComposeFile(_ context.Context, opts *Options) error {
	if !fileutil.FileExists(opts.ComposeFile) {
		return violationf("%w: %s", ErrComposeFileMissing, opts.ComposeFile)
	}

	doc, err := compose.Load(opts.ComposeFile)
	if err != nil {
		return violationf("%w: %v", ErrMalformedDocument, err)
	}
	if !doc.HasServices() {
		return violationf("%w: no services defined in %s", ErrMalformedDocument, opts.ComposeFile)
	}

	fmt.Fprintln(opts.Out, console.FormatSuccessMessage(fmt.Sprintf("%s exists and is valid", opts.ComposeFile)))
	return nil
}

// checkMatrixServices verifies the expected Matrix services are defined.
// Missing postgres/redis only warn; a deployment without synapse is invalid.
func checkMatrixServices(_ context.Context, opts *Options) error {
	doc, err := compose.Load(opts.ComposeFile)
	if err != nil {
		return err
	}

	for _, name := range requiredServices {
		if !serviceDefined(doc, name) {
			fmt.Fprintln(opts.Out, console.FormatWarningMessage(fmt.Sprintf("service %s not found (may be optional)", name)))
		}
	}

	if !synapseDefined(doc) {
		return violationf("%w in %s", ErrSynapseMissing, opts.ComposeFile)
	}

	fmt.Fprintln(opts.Out, console.FormatSuccessMessage("Matrix services are defined"))
	return nil
}

// serviceDefined reports whether a service exists under its exact name or
// its underscore-to-hyphen variant.
func serviceDefined(doc *compose.Document, name string) bool {
	if _, ok := doc.Services[name]; ok {
		return true
	}
	_, ok := doc.Services[strings.ReplaceAll(name, "_", "-")]
	return ok
}

// synapseDefined scans service identifiers case-insensitively so naming
// variants like matrix-synapse are accepted.
func synapseDefined(doc *compose.Document) bool {
	for name := range doc.Services {
		if strings.Contains(strings.ToLower(name), "synapse") {
			return true
		}
	}
	return false
}

// checkPortConfiguration reports whether the Synapse client and federation
// ports appear anywhere in the combined port mappings. This is a substring
// match over the stringified sequence, not a structured port parse, so a
// port embedded in another number can false-positive. Never fails.
func checkPortConfiguration(_ context.Context, opts *Options) error {
	doc, err := compose.Load(opts.ComposeFile)
	if err != nil {
		return err
	}

	combined := fmt.Sprint(doc.CollectPorts())
	for _, port := range requiredPorts {
		if strings.Contains(combined, port) {
			fmt.Fprintln(opts.Out, console.FormatSuccessMessage(fmt.Sprintf("port %s (Synapse) is configured", port)))
		} else {
			fmt.Fprintln(opts.Out, console.FormatWarningMessage(fmt.Sprintf("port %s (Synapse) not found", port)))
		}
	}

	fmt.Fprintln(opts.Out, console.FormatSuccessMessage("port configuration checked"))
	return nil
}

// checkVolumes reports whether the stateful services mount volumes. Never
// fails; a service without volumes just loses data on container removal.
func checkVolumes(_ context.Context, opts *Options) error {
	doc, err := compose.Load(opts.ComposeFile)
	if err != nil {
		return err
	}

	for _, name := range persistentServices {
		svc, ok := doc.Services[name]
		if !ok {
			continue
		}
		if len(svc.Volumes) > 0 {
			fmt.Fprintln(opts.Out, console.FormatSuccessMessage(fmt.Sprintf("%s has %d volume(s) defined", name, len(svc.Volumes))))
		} else {
			fmt.Fprintln(opts.Out, console.FormatWarningMessage(fmt.Sprintf("%s has no volumes defined", name)))
		}
	}

	return nil
}

// checkNetworks verifies at least one network is defined.
func checkNetworks(_ context.Context, opts *Options) error {
	doc, err := compose.Load(opts.ComposeFile)
	if err != nil {
		return err
	}

	if len(doc.Networks) == 0 {
		return violationf("%w in %s", ErrNoNetworks, opts.ComposeFile)
	}

	fmt.Fprintln(opts.Out, console.FormatSuccessMessage(fmt.Sprintf("%d network(s) configured", len(doc.Networks))))
	return nil
}

// checkEnvFiles reports which example environment files exist next to the
// compose file. Never fails.
func checkEnvFiles(_ context.Context, opts *Options) error {
	dir := filepath.Dir(opts.ComposeFile)

	found := 0
	for _, rel := range envFileCandidates {
		if fileutil.FileExists(filepath.Join(dir, rel)) {
			fmt.Fprintln(opts.Out, console.FormatSuccessMessage(fmt.Sprintf("%s exists", rel)))
			found++
		}
	}

	if found == 0 {
		fmt.Fprintln(opts.Out, console.FormatWarningMessage("no .env.example files found"))
	}
	return nil
}
