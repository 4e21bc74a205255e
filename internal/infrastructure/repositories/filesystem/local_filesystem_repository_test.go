//go:build unit

package filesystem_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/rootbuild/internal/infrastructure/repositories/filesystem"
)

func TestLocalFileSystemRepository(t *testing.T) {
	t.Parallel()

	t.Run("should remove a directory and all its contents", func(t *testing.T) {
		t.Parallel()

		// given
		buildDir := filepath.Join(t.TempDir(), "build")
		nested := filepath.Join(buildDir, "app", "outputs", "apk")
		require.NoError(t, os.MkdirAll(nested, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(nested, "app-debug.apk"), []byte("apk"), 0o600))
		repo := filesystem.NewLocalFileSystemRepository()

		// when
		err := repo.RemoveAll(context.Background(), buildDir)

		// then
		require.NoError(t, err)
		exists, existsErr := repo.Exists(buildDir)
		require.NoError(t, existsErr)
		assert.False(t, exists)
	})

	t.Run("should treat a missing directory as success", func(t *testing.T) {
		t.Parallel()

		// given
		missing := filepath.Join(t.TempDir(), "never-built")
		repo := filesystem.NewLocalFileSystemRepository()

		// when
		err := repo.RemoveAll(context.Background(), missing)

		// then
		require.NoError(t, err)
	})

	t.Run("should report existing paths", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		repo := filesystem.NewLocalFileSystemRepository()

		// when
		exists, err := repo.Exists(dir)

		// then
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("should not remove anything when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		dir := filepath.Join(t.TempDir(), "build")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		repo := filesystem.NewLocalFileSystemRepository()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// when
		err := repo.RemoveAll(ctx, dir)

		// then
		require.ErrorIs(t, err, context.Canceled)
		_, statErr := os.Stat(dir)
		assert.NoError(t, statErr)
	})
}
