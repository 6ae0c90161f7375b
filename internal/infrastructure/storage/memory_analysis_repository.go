package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"safeai-bot/internal/domain/entity"
	"safeai-bot/internal/domain/port"
)

// MemoryAnalysisRepository in-memory хранилище результатов анализа
type MemoryAnalysisRepository struct {
	mu      sync.RWMutex
	records map[string]*entity.AnalysisRecord
	byChat  map[int64][]string
}

// NewMemoryAnalysisRepository создаёт новое in-memory хранилище
func NewMemoryAnalysisRepository() *MemoryAnalysisRepository {
	return &MemoryAnalysisRepository{
		records: make(map[string]*entity.AnalysisRecord),
		byChat:  make(map[int64][]string),
	}
}

// Save сохраняет копию записи под новым UUID
func (r *MemoryAnalysisRepository) Save(ctx context.Context, record *entity.AnalysisRecord) (string, error) {
	if record == nil {
		return "", fmt.Errorf("nil analysis record")
	}

	id := uuid.NewString()
	stored := *record
	stored.ID = id

	r.mu.Lock()
	r.records[id] = &stored
	r.byChat[record.ChatID] = append(r.byChat[record.ChatID], id)
	r.mu.Unlock()

	return id, nil
}

// Get возвращает копию записи по ID
func (r *MemoryAnalysisRepository) Get(ctx context.Context, id string) (*entity.AnalysisRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("analysis %s: %w", id, port.ErrNotFound)
	}
	out := *record
	return &out, nil
}

// ListByChat возвращает записи чата, новые первыми
func (r *MemoryAnalysisRepository) ListByChat(ctx context.Context, chatID int64) ([]*entity.AnalysisRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byChat[chatID]
	out := make([]*entity.AnalysisRecord, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		record := *r.records[ids[i]]
		out = append(out, &record)
	}
	return out, nil
}

// Проверка реализации интерфейса
var _ port.AnalysisRepository = (*MemoryAnalysisRepository)(nil)
