package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("json format emits structured records", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, err := NewConfig(Config{LogFormat: "json"})
		require.NoError(t, err)

		newLogger(cfg, out).Info("hello")
		assert.Contains(t, out.String(), `"msg":"hello"`)
	})

	t.Run("debug level is honored", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, err := NewConfig(Config{LogLevel: "debug"})
		require.NoError(t, err)

		newLogger(cfg, out).Debug("whisper")
		assert.Contains(t, out.String(), "whisper")
	})

	t.Run("info level drops debug records", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, err := NewConfig(Config{})
		require.NoError(t, err)

		newLogger(cfg, out).Debug("whisper")
		assert.Empty(t, out.String())
	})
}

func TestNewConfig_LogVocabulary(t *testing.T) {
	t.Run("empty values get defaults", func(t *testing.T) {
		cfg, err := NewConfig(Config{})
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
	})

	t.Run("unknown level is rejected, not defaulted", func(t *testing.T) {
		_, err := NewConfig(Config{LogLevel: "verbose"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log-level")
	})

	t.Run("unknown format is rejected", func(t *testing.T) {
		_, err := NewConfig(Config{LogFormat: "xml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log-format")
	})
}
