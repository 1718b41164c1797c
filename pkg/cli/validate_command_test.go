//go:build !integration

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidateCommand_Flags(t *testing.T) {
	cmd := NewValidateCommand()

	file, err := cmd.Flags().GetString("file")
	require.NoError(t, err)
	assert.Equal(t, "docker-compose.yml", file)

	dockerBin, err := cmd.Flags().GetString("docker-bin")
	require.NoError(t, err)
	assert.Equal(t, "docker", dockerBin)

	verbose, err := cmd.Flags().GetBool("verbose")
	require.NoError(t, err)
	assert.False(t, verbose)
}

func TestDefaultValidateConfig(t *testing.T) {
	config := DefaultValidateConfig()
	assert.Equal(t, "docker-compose.yml", config.File)
	assert.Equal(t, "docker", config.DockerBin)
	assert.False(t, config.Verbose)
}

func TestRunValidate_ValidStack(t *testing.T) {
	file := filepath.Join(t.TempDir(), "docker-compose.yml")
	require.NoError(t, os.WriteFile(file, []byte(`
services:
  synapse:
    ports: ["8008:8008"]
networks:
  default: {}
`), 0o644))

	err := RunValidate(ValidateConfig{File: file, DockerBin: "stackcheck-no-such-binary"})
	assert.NoError(t, err)
}

func TestRunValidate_MissingFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "docker-compose.yml")

	err := RunValidate(ValidateConfig{File: file, DockerBin: "stackcheck-no-such-binary"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checks failed")
}

func TestRunValidate_HardFailuresCounted(t *testing.T) {
	file := filepath.Join(t.TempDir(), "docker-compose.yml")
	require.NoError(t, os.WriteFile(file, []byte("services: {}\nnetworks: {}\n"), 0o644))

	err := RunValidate(ValidateConfig{File: file, DockerBin: "stackcheck-no-such-binary"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of")
}
