//go:build !integration

package cli

import (
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatchCommand_Flags(t *testing.T) {
	cmd := NewWatchCommand()

	file, err := cmd.Flags().GetString("file")
	require.NoError(t, err)
	assert.Equal(t, "docker-compose.yml", file)

	dockerBin, err := cmd.Flags().GetString("docker-bin")
	require.NoError(t, err)
	assert.Equal(t, "docker", dockerBin)
}

func TestShouldRerun(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		file  string
		want  bool
	}{
		{
			name:  "write to watched file",
			event: fsnotify.Event{Name: "/deploy/docker-compose.yml", Op: fsnotify.Write},
			file:  "/deploy/docker-compose.yml",
			want:  true,
		},
		{
			name:  "editor save via rename",
			event: fsnotify.Event{Name: "docker-compose.yml", Op: fsnotify.Rename},
			file:  "docker-compose.yml",
			want:  true,
		},
		{
			name:  "atomic replace via create",
			event: fsnotify.Event{Name: "docker-compose.yml", Op: fsnotify.Create},
			file:  "docker-compose.yml",
			want:  true,
		},
		{
			name:  "removal still triggers a run to report the failure",
			event: fsnotify.Event{Name: "docker-compose.yml", Op: fsnotify.Remove},
			file:  "docker-compose.yml",
			want:  true,
		},
		{
			name:  "unrelated file in same directory",
			event: fsnotify.Event{Name: "/deploy/.env.example", Op: fsnotify.Write},
			file:  "/deploy/docker-compose.yml",
			want:  false,
		},
		{
			name:  "chmod alone does not rerun",
			event: fsnotify.Event{Name: "docker-compose.yml", Op: fsnotify.Chmod},
			file:  "docker-compose.yml",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldRerun(tt.event, tt.file))
		})
	}
}
