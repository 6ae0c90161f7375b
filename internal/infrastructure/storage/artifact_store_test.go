package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"safeai-bot/internal/domain/entity"
)

func TestFileArtifactStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := NewFileArtifactStore()

	artifact := &entity.Artifact{Name: "processed_wall.png", Format: "png", Data: []byte("png-bytes")}
	path, err := store.Save(context.Background(), filepath.Join(dir, "wall.png"), artifact)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "processed_wall.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("png-bytes"), data)
}

func TestFileArtifactStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads", "nested")
	path, err := NewFileArtifactStore().Save(context.Background(), filepath.Join(dir, "a.jpg"),
		&entity.Artifact{Name: "processed_a.jpg", Data: []byte{1}})
	require.NoError(t, err)
	require.FileExists(t, path)
}

func TestFileArtifactStore_WriteError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// Каталог назначения является обычным файлом.
	_, err := NewFileArtifactStore().Save(context.Background(), filepath.Join(blocker, "wall.png"),
		&entity.Artifact{Name: "processed_wall.png", Data: []byte{1}})
	require.ErrorIs(t, err, entity.ErrWrite)

	_, err = NewFileArtifactStore().Save(context.Background(), filepath.Join(dir, "wall.png"), nil)
	require.ErrorIs(t, err, entity.ErrWrite)
}
