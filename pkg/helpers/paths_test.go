package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ApplaunchProject/applaunch-core/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaths(t *testing.T) {
	t.Parallel()

	assert.Equal(t, config.AppName, filepath.Base(ConfigDir()))
	assert.Equal(t, config.AppName, filepath.Base(DataDir()))
	assert.Equal(t, config.AppName, filepath.Base(TempDir()))
}

func TestEnsureDirectories(t *testing.T) {
	t.Parallel()

	require.NoError(t, EnsureDirectories())

	for _, dir := range []string{ConfigDir(), DataDir(), TempDir()} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
