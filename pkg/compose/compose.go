// Package compose loads and models Docker Compose configuration documents.
//
// The model is deliberately loose: a compose file in the wild carries many
// keys this tool does not inspect, and ports/volumes entries may be strings
// or mappings depending on the author's syntax choice. Only the shapes the
// checks rely on are typed.
package compose

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/matrix-docker/stackcheck/pkg/logger"
)

var composeLog = logger.New("compose:load")

// ErrEmptyDocument is returned when the compose file parses to no document.
var ErrEmptyDocument = errors.New("compose document is empty")

// Service is a single named container workload definition.
type Service struct {
	Image   string `yaml:"image,omitempty"`
	Ports   []any  `yaml:"ports,omitempty"`
	Volumes []any  `yaml:"volumes,omitempty"`
}

// Document is a parsed compose file. Only the keys the validator inspects
// are decoded; the raw mapping is retained so callers can distinguish an
// absent key from an empty one.
type Document struct {
	Services map[string]Service `yaml:"services"`
	Networks map[string]any     `yaml:"networks"`

	raw map[string]any
}

// Load reads and parses a compose file from disk. Every caller re-reads the
// file; there is no cached parse shared between checks.
func Load(path string) (*Document, error) {
	composeLog.Printf("Loading compose file: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyDocument)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	doc.raw = raw

	composeLog.Printf("Loaded compose file: services=%d, networks=%d", len(doc.Services), len(doc.Networks))
	return &doc, nil
}

// HasServices reports whether the document carries a top-level services key,
// even an empty one.
func (d *Document) HasServices() bool {
	_, ok := d.raw["services"]
	return ok
}

// Raw returns the full decoded document mapping.
func (d *Document) Raw() map[string]any {
	return d.raw
}

// ServiceNames returns the service identifiers in sorted order.
func (d *Document) ServiceNames() []string {
	names := make([]string, 0, len(d.Services))
	for name := range d.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CollectPorts gathers every service's port entries, in sorted service-name
// order, into one combined sequence.
func (d *Document) CollectPorts() []any {
	var ports []any
	for _, name := range d.ServiceNames() {
		ports = append(ports, d.Services[name].Ports...)
	}
	return ports
}
