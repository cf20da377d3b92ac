package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/GlebRadaev/tennisclub/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name           string
		config         *config.Config
		expectedError  bool
		expectedLogLvl zapcore.Level
	}{
		{
			name:           "Valid log level info",
			config:         &config.Config{LogLvl: "info"},
			expectedLogLvl: zapcore.InfoLevel,
		},
		{
			name:           "Valid log level warn",
			config:         &config.Config{LogLvl: "warn", LogOutput: "stderr"},
			expectedLogLvl: zapcore.WarnLevel,
		},
		{
			name:           "Valid log level debug with json",
			config:         &config.Config{LogLvl: "debug", LogFormat: "json"},
			expectedLogLvl: zapcore.DebugLevel,
		},
		{
			name:          "Invalid log level",
			config:        &config.Config{LogLvl: "invalid"},
			expectedError: true,
		},
		{
			name:          "Invalid log format",
			config:        &config.Config{LogLvl: "info", LogFormat: "xml"},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(tt.config)

			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, zap.L().Core().Enabled(tt.expectedLogLvl))
			if tt.expectedLogLvl > zapcore.DebugLevel {
				assert.False(t, zap.L().Core().Enabled(tt.expectedLogLvl-1))
			}
		})
	}
}

func TestBuild_JSONFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "club.log")

	l, err := Build(&config.Config{LogLvl: "info", LogFormat: "json", LogOutput: path})
	require.NoError(t, err)
	l.Info("debit applied", zap.Int("subscription_id", 7))
	require.NoError(t, l.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(raw, &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "debit applied", entry["msg"])
	assert.Equal(t, "tennisclub", entry["service"])
	assert.Equal(t, float64(7), entry["subscription_id"])
	assert.Contains(t, entry, "caller")
}
