package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "sequence", configBaseName)
	assert.Equal(t, "sequence.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "levels", levelsFlagName)
	assert.Equal(t, "no-builtin", noBuiltinFlagName)
	assert.Equal(t, "levels.files", levelFilesKey)
	assert.Equal(t, "validate.parallel", validateParallelKey)
	assert.Equal(t, 4, defaultValidateParallel)
	assert.Equal(t, "SEQUENCE", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	viper.Reset()
	setConfigDefaults()
	t.Cleanup(func() {
		viper.Reset()
		setConfigDefaults()
	})

	assert.Equal(t, currentConfigVersion, viper.GetInt(configVersionKey))
	assert.False(t, viper.GetBool(noBuiltinKey))
	assert.Equal(t, defaultValidateParallel, viper.GetInt(validateParallelKey))
	assert.Equal(t, defaultLogFilename, viper.GetString(logFilenameKey))
	assert.Empty(t, viper.GetStringSlice(levelFilesKey))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"8", slog.LevelError},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.input, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger_WritesToFile(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "sequence.log")
	configureLogger(logPath, true)

	require.NotNil(t, globalLogger)
	slog.Debug("debug line", "key", "value")

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "debug line")
}
