package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfigUsesBuildDefaults(t *testing.T) {
	cfg := NewConfig("a.bin", true)
	require.Equal(t, DefaultBlockSize, cfg.BlockSize)
	require.Equal(t, MaxFileSize, cfg.MaxSize)
	require.True(t, cfg.Force)
	require.Equal(t, "a.bin", cfg.Path)
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsInvalidValues(t *testing.T) {
	tests := []Config{
		{Path: "a", BlockSize: 0, MaxSize: MaxFileSize},
		{Path: "a", BlockSize: -1, MaxSize: MaxFileSize},
		{Path: "a", BlockSize: DefaultBlockSize, MaxSize: 0},
		{Path: "a", BlockSize: DefaultBlockSize, MaxSize: -5},
	}

	for _, cfg := range tests {
		require.Error(t, cfg.Validate(), "config %+v", cfg)
	}
}

func TestWithDefaultsFillsZeroValues(t *testing.T) {
	cfg := Config{Path: "a"}.withDefaults()
	require.Equal(t, DefaultBlockSize, cfg.BlockSize)
	require.Equal(t, MaxFileSize, cfg.MaxSize)

	cfg = Config{Path: "a", BlockSize: 512, MaxSize: 10}.withDefaults()
	require.Equal(t, 512, cfg.BlockSize)
	require.Equal(t, int64(10), cfg.MaxSize)
}
