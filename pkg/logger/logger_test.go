package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-system/pkg/config"
)

func TestNewLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log := NewLogger(config.LogConfig{Level: "info", FilePath: path, MaxSizeMB: 1})

	log.Info("проверка записи")
	log.Debug("отладка не попадает в info")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "проверка записи")
	assert.NotContains(t, string(data), "отладка не попадает")
}
