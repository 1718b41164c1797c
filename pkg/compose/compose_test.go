//go:build !integration

package compose

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docker-compose.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidDocument(t *testing.T) {
	path := writeFile(t, `
services:
  synapse:
    image: matrixdotorg/synapse:latest
    ports:
      - "8008:8008"
      - "8448:8448"
    volumes:
      - ./synapse:/data
  postgres:
    image: postgres:16
    volumes:
      - pgdata:/var/lib/postgresql/data
networks:
  backend: {}
`)

	doc, err := Load(path)
	require.NoError(t, err)

	assert.True(t, doc.HasServices())
	assert.Len(t, doc.Services, 2)
	assert.Equal(t, "matrixdotorg/synapse:latest", doc.Services["synapse"].Image)
	assert.Len(t, doc.Services["synapse"].Ports, 2)
	assert.Len(t, doc.Services["postgres"].Volumes, 1)
	assert.Len(t, doc.Networks, 1)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "docker-compose.yml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_EmptyDocument(t *testing.T) {
	path := writeFile(t, "")
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestLoad_NotAMapping(t *testing.T) {
	path := writeFile(t, "- one\n- two\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_LongSyntaxPorts(t *testing.T) {
	// Port entries may be strings or mappings; both must survive decoding.
	path := writeFile(t, `
services:
  synapse:
    ports:
      - "8008:8008"
      - target: 8448
        published: 8448
`)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.Services["synapse"].Ports, 2)
}

func TestHasServices_AbsentKey(t *testing.T) {
	path := writeFile(t, "networks:\n  default: {}\n")

	doc, err := Load(path)
	require.NoError(t, err)
	assert.False(t, doc.HasServices())
}

func TestHasServices_EmptyMapping(t *testing.T) {
	path := writeFile(t, "services: {}\n")

	doc, err := Load(path)
	require.NoError(t, err)
	assert.True(t, doc.HasServices(), "An empty services mapping still counts as present")
}

func TestServiceNames_Sorted(t *testing.T) {
	path := writeFile(t, `
services:
  redis: {}
  postgres: {}
  synapse: {}
`)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"postgres", "redis", "synapse"}, doc.ServiceNames())
}

func TestCollectPorts_StableOrder(t *testing.T) {
	path := writeFile(t, `
services:
  synapse:
    ports: ["8008:8008"]
  coturn:
    ports: ["3478:3478"]
`)

	doc, err := Load(path)
	require.NoError(t, err)

	// coturn sorts before synapse.
	assert.Equal(t, "[3478:3478 8008:8008]", fmt.Sprint(doc.CollectPorts()))
}
