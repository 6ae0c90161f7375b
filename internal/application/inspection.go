package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"safeai-bot/internal/domain/entity"
	"safeai-bot/internal/domain/port"
)

var (
	// ErrNoAnalysis у пользователя ещё нет сохранённых анализов.
	ErrNoAnalysis = errors.New("no analysis has been made yet")
	// ErrBusy предыдущее фото пользователя ещё обрабатывается.
	ErrBusy = errors.New("previous photo is still being processed")
)

type InspectionService struct {
	mu        sync.Mutex // проверка и захват состояния processing
	users     *UserService
	analysis  *AnalysisService
	records   port.AnalysisRepository
	artifacts port.ArtifactStore
	uploadDir string
	logger    *zap.Logger
	now       func() time.Time
}

// InspectionOutput содержит отчёт, сохранённую запись и путь к визуализации.
type InspectionOutput struct {
	Report       *entity.AnalysisReport
	Record       *entity.AnalysisRecord
	ArtifactPath string
}

// NewInspectionService создаёт сервис, который проводит проверку и сохраняет результат.
// Пустой uploadDir означает, что визуализации фото из чата на диск не пишутся.
func NewInspectionService(users *UserService, analysis *AnalysisService, records port.AnalysisRepository, artifacts port.ArtifactStore, uploadDir string, logger *zap.Logger) *InspectionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InspectionService{
		users:     users,
		analysis:  analysis,
		records:   records,
		artifacts: artifacts,
		uploadDir: uploadDir,
		logger:    logger,
		now:       time.Now,
	}
}

// ProcessPhoto анализирует фото из чата, сохраняет исходник и визуализацию
// в uploadDir, пишет запись и возвращает пользователя в главное меню.
// При недоступном изображении возвращается нейтральный отчёт вместе с ошибкой,
// пока идёт обработка предыдущего фото — ErrBusy.
func (s *InspectionService) ProcessPhoto(ctx context.Context, userID, chatID int64, name string, photo []byte) (out *InspectionOutput, err error) {
	if s.analysis == nil {
		return nil, errors.New("analysis is not configured")
	}
	if err := s.begin(ctx, userID, chatID); err != nil {
		return nil, err
	}

	var analysisID string
	defer func() {
		if _, ferr := s.users.Finish(ctx, userID, chatID, analysisID); ferr != nil {
			s.logger.Error("failed to reset user state", zap.Int64("user_id", userID), zap.Error(ferr))
		}
	}()

	report, err := s.analysis.AnalyzeBytes(photo, name)
	if err != nil {
		return &InspectionOutput{Report: report}, err
	}

	var sourcePath string
	if s.uploadDir != "" && s.artifacts != nil {
		sourcePath = filepath.Join(s.uploadDir, filepath.Base(name))
		source := &entity.Artifact{
			Name:   filepath.Base(name),
			Format: strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), "."),
			Data:   photo,
		}
		if _, err := s.artifacts.Save(ctx, sourcePath, source); err != nil {
			return &InspectionOutput{Report: report}, err
		}
	}
	out, err = s.store(ctx, chatID, sourcePath, report)
	if err != nil {
		return out, err
	}
	analysisID = out.Record.ID
	return out, nil
}

// begin переводит пользователя в processing, если он ещё не там.
func (s *InspectionService) begin(ctx context.Context, userID, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.users.Get(ctx, userID, chatID)
	if err != nil {
		return err
	}
	if user.State == entity.StateProcessing {
		return ErrBusy
	}
	_, err = s.users.SetState(ctx, userID, chatID, entity.StateProcessing)
	return err
}

// InspectFile анализирует файл и пишет визуализацию рядом с ним.
func (s *InspectionService) InspectFile(ctx context.Context, path string) (*InspectionOutput, error) {
	if s.analysis == nil {
		return nil, errors.New("analysis is not configured")
	}

	report, err := s.analysis.AnalyzeFile(path)
	if err != nil {
		return &InspectionOutput{Report: report}, err
	}
	return s.store(ctx, 0, path, report)
}

// LastReport возвращает последнюю сохранённую запись пользователя.
func (s *InspectionService) LastReport(ctx context.Context, userID, chatID int64) (*entity.AnalysisRecord, error) {
	user, err := s.users.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	if user.LastAnalysisID == "" || s.records == nil {
		return nil, ErrNoAnalysis
	}

	record, err := s.records.Get(ctx, user.LastAnalysisID)
	if errors.Is(err, port.ErrNotFound) {
		return nil, ErrNoAnalysis
	}
	return record, err
}

func (s *InspectionService) store(ctx context.Context, chatID int64, sourcePath string, report *entity.AnalysisReport) (*InspectionOutput, error) {
	out := &InspectionOutput{Report: report}

	if s.artifacts != nil && sourcePath != "" && report.Artifact != nil {
		path, err := s.artifacts.Save(ctx, sourcePath, report.Artifact)
		if err != nil {
			return out, err
		}
		out.ArtifactPath = path
	}

	record, err := entity.NewAnalysisRecord(report, s.now())
	if err != nil {
		return out, fmt.Errorf("build analysis record: %w", err)
	}
	record.ChatID = chatID

	if s.records != nil {
		id, err := s.records.Save(ctx, record)
		if err != nil {
			return out, fmt.Errorf("save analysis record: %w", err)
		}
		record.ID = id
	}
	out.Record = record

	s.logger.Info("inspection stored",
		zap.String("analysis_id", record.ID),
		zap.Int64("chat_id", chatID),
		zap.String("artifact", out.ArtifactPath))

	return out, nil
}
