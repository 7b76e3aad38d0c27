package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	require.Equal(t, DefaultAddr, cfg.Addr)
	require.Equal(t, DefaultEngine, cfg.Engine)
	require.Equal(t, DefaultMaxBytes, cfg.MaxBytes)
	require.Equal(t, DefaultQueueCapacity, cfg.QueueCapacity)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SCRIBED_ADDR", ":9090")
	t.Setenv("SCRIBED_ENGINE", "parakeet")
	t.Setenv("SCRIBED_MODEL_PATH", "/models/parakeet")
	t.Setenv("SCRIBED_MAX_BYTES", "1024")
	t.Setenv("SCRIBED_QUEUE_CAPACITY", "3")

	cfg := Load()
	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, "parakeet", cfg.Engine)
	require.Equal(t, "/models/parakeet", cfg.ModelPath)
	require.Equal(t, 1024, cfg.MaxBytes)
	require.Equal(t, 3, cfg.QueueCapacity)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := Config{Addr: DefaultAddr, Engine: "whisper", ModelPath: "/m.bin", MaxBytes: 1, QueueCapacity: 1}
	require.NoError(t, valid.Validate())

	noModel := valid
	noModel.ModelPath = ""
	require.Error(t, noModel.Validate())

	badBytes := valid
	badBytes.MaxBytes = 0
	require.Error(t, badBytes.Validate())

	badQueue := valid
	badQueue.QueueCapacity = -1
	require.Error(t, badQueue.Validate())
}
