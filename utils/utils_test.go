package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFindEntryPoint(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.html"), []byte("<html></html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "INDEX.HTML"), []byte("<html></html>"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "index.htm"), 0o755))

	entry, err := FindEntryPoint(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "INDEX.HTML"), entry)
}

func TestFindEntryPointMissing(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "bundle.js"), nil, 0o644))

	_, err := FindEntryPoint(root)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = FindEntryPoint(filepath.Join(root, "nope"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("debug")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))

	_, err = NewLogger("loud")
	assert.Error(t, err)
}
