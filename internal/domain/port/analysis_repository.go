package port

import (
	"context"
	"errors"

	"safeai-bot/internal/domain/entity"
)

// AnalysisRepository интерфейс хранилища результатов анализа
type AnalysisRepository interface {
	// Save сохраняет запись и возвращает присвоенный ID
	Save(ctx context.Context, record *entity.AnalysisRecord) (string, error)

	// Get возвращает запись по ID
	Get(ctx context.Context, id string) (*entity.AnalysisRecord, error)

	// ListByChat возвращает записи чата, новые первыми
	ListByChat(ctx context.Context, chatID int64) ([]*entity.AnalysisRecord, error)
}

// ArtifactStore интерфейс хранилища визуализаций
type ArtifactStore interface {
	// Save записывает артефакт рядом с исходным изображением и возвращает путь
	Save(ctx context.Context, sourcePath string, artifact *entity.Artifact) (string, error)
}

// ErrNotFound запись отсутствует в хранилище
var ErrNotFound = errors.New("not found")
