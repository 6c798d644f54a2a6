package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		logger, err := New(env, "debug")
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}

	_, err := New("development", "loud")
	assert.Error(t, err)
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puissance4.log")
	logger, err := NewFile(path, "info")
	require.NoError(t, err)

	logger.Info("table created")
	logger.Debug("not written")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "table created")
	assert.NotContains(t, string(data), "not written")
}
