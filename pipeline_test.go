package hypersink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sink = "pigeon"

	_, err := Build(cfg)
	require.Error(t, err)
}

func TestBuildDirectPipeline(t *testing.T) {
	registry := NewRegistry()

	cfg := DefaultConfig()
	cfg.Sink = SinkNull

	pipeline, err := Build(cfg, WithRegistry(registry))
	require.NoError(t, err)

	assert.Equal(t, 1, registry.Len())

	require.NoError(t, pipeline.Target().Receive(&Event{Message: "gone"}))
	require.NoError(t, pipeline.Flush(), "flush is a no-op without a buffer")

	require.NoError(t, pipeline.Close())
	assert.Equal(t, 0, registry.Len())
}

func TestBuildBufferedFilePipeline(t *testing.T) {
	registry := NewRegistry()
	path := filepath.Join(t.TempDir(), "app.log")

	cfg := DefaultConfig()
	cfg.Sink = SinkFile
	cfg.FilePath = path
	cfg.Buffered = true
	cfg.BufferCapacity = 256

	pipeline, err := Build(cfg, WithRegistry(registry))
	require.NoError(t, err)

	// Inner and outer targets are both live.
	assert.Equal(t, 2, registry.Len())

	target := pipeline.Target()
	require.NoError(t, target.Receive(&Event{Level: InfoLevel, Message: "first"}))
	require.NoError(t, target.Receive(&Event{Level: InfoLevel, Message: "second"}))

	assert.NoFileExists(t, path, "records must sit in the buffer until a flush")

	require.NoError(t, pipeline.Flush())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "INFO: first\nINFO: second\n", string(content))

	require.NoError(t, target.Receive(&Event{Level: InfoLevel, Message: "third"}))
	require.NoError(t, pipeline.Close())

	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "INFO: first\nINFO: second\nINFO: third\n", string(content))

	assert.Equal(t, 0, registry.Len())
}

func TestBuildStdoutPipeline(t *testing.T) {
	registry := NewRegistry()

	cfg := DefaultConfig()
	cfg.Sink = SinkStdout
	cfg.ColorMode = ColorModeNever

	pipeline, err := Build(cfg, WithRegistry(registry))
	require.NoError(t, err)

	require.NoError(t, pipeline.Close())
}

func TestBuildFilePipelineRequiresPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sink = SinkFile

	_, err := Build(cfg)
	require.Error(t, err)
}
