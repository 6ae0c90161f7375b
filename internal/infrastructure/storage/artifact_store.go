package storage

import (
	"bufio"
	"context"
	"errors"
	"os"
	"path/filepath"

	"safeai-bot/internal/domain/entity"
	"safeai-bot/internal/domain/port"
)

// FileArtifactStore пишет визуализации на диск рядом с исходным изображением
type FileArtifactStore struct{}

// NewFileArtifactStore создаёт файловое хранилище визуализаций
func NewFileArtifactStore() *FileArtifactStore {
	return &FileArtifactStore{}
}

// Save записывает артефакт в каталог sourcePath. Файл закрывается
// и буфер сбрасывается на любом пути выхода; сбой даёт ошибку вида write.
func (s *FileArtifactStore) Save(ctx context.Context, sourcePath string, artifact *entity.Artifact) (path string, err error) {
	if artifact == nil || artifact.Name == "" {
		return "", entity.NewAnalysisError(entity.KindWrite, "save artifact", errors.New("empty artifact"))
	}
	if err := ctx.Err(); err != nil {
		return "", entity.NewAnalysisError(entity.KindWrite, "save artifact", err)
	}

	dir := filepath.Dir(sourcePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", entity.NewAnalysisError(entity.KindWrite, "save artifact", err)
	}

	path = filepath.Join(dir, artifact.Name)
	f, err := os.Create(path)
	if err != nil {
		return "", entity.NewAnalysisError(entity.KindWrite, "save artifact", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			path, err = "", entity.NewAnalysisError(entity.KindWrite, "save artifact", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := w.Write(artifact.Data); err != nil {
		return "", entity.NewAnalysisError(entity.KindWrite, "save artifact", err)
	}
	if err := w.Flush(); err != nil {
		return "", entity.NewAnalysisError(entity.KindWrite, "save artifact", err)
	}

	return path, nil
}

var _ port.ArtifactStore = (*FileArtifactStore)(nil)
