package app

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"

	"go.uber.org/zap"

	"safeai-bot/internal/domain/entity"
	"safeai-bot/internal/domain/port"
)

// AnalysisService конвейер анализа одного изображения:
// загрузка, карта границ, скоринг, визуализация, выводы.
type AnalysisService struct {
	codec       port.ImageCodec
	detector    port.EdgeDetector
	synthesizer port.ReportSynthesizer
	highlight   color.Color
	logger      *zap.Logger
}

// NewAnalysisService создаёт конвейер. Цвет подсветки по умолчанию красный.
func NewAnalysisService(codec port.ImageCodec, detector port.EdgeDetector, synthesizer port.ReportSynthesizer, highlight color.Color, logger *zap.Logger) *AnalysisService {
	if highlight == nil {
		highlight = color.RGBA{R: 255, A: 255}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{
		codec:       codec,
		detector:    detector,
		synthesizer: synthesizer,
		highlight:   highlight,
		logger:      logger,
	}
}

// AnalyzeFile анализирует изображение с диска. Если файл недоступен или
// не декодируется, возвращается нейтральный отчёт вместе с ошибкой.
func (s *AnalysisService) AnalyzeFile(path string) (*entity.AnalysisReport, error) {
	name := filepath.Base(path)
	img, err := s.codec.LoadFile(path)
	if err != nil {
		s.logger.Warn("image is unavailable", zap.String("path", path), zap.Error(err))
		return entity.NeutralReport(name), err
	}
	return s.AnalyzeImage(img, name)
}

// AnalyzeBytes анализирует изображение из буфера, name задаёт имя артефакта.
func (s *AnalysisService) AnalyzeBytes(data []byte, name string) (*entity.AnalysisReport, error) {
	img, err := s.codec.Decode(data)
	if err != nil {
		s.logger.Warn("image is unavailable", zap.String("name", name), zap.Error(err))
		return entity.NeutralReport(name), err
	}
	return s.AnalyzeImage(img, name)
}

// AnalyzeImage прогоняет уже декодированное изображение через конвейер.
// Ошибкой может закончиться только кодирование артефакта.
func (s *AnalysisService) AnalyzeImage(img image.Image, name string) (*entity.AnalysisReport, error) {
	if s.detector == nil || s.synthesizer == nil || s.codec == nil {
		return nil, errors.New("analysis pipeline is not configured")
	}
	if img == nil {
		return entity.NeutralReport(name), entity.NewAnalysisError(entity.KindDecode, "analyze image", errors.New("nil image"))
	}

	edges := s.detector.DetectEdges(img)
	score := entity.ScoreEdges(edges)
	s.logger.Debug("edges scored",
		zap.String("name", name),
		zap.Int("edge_pixels", edges.CountOn()),
		zap.Float64("density", score.Density),
		zap.String("tier", string(score.Tier)))

	overlay := s.detector.HighlightEdges(img, edges, s.highlight)
	artifact, err := s.codec.Encode(overlay, name)
	if err != nil {
		return nil, err
	}

	findings := s.synthesizer.Synthesize(score)

	b := img.Bounds()
	report := &entity.AnalysisReport{
		Available:  true,
		SourceName: name,
		Width:      b.Dx(),
		Height:     b.Dy(),
		Density:    score.Density,
		Score:      score.Value,
		Tier:       score.Tier,
		Method:     findings.Method,
		Narrative:  findings.Narrative,
		Artifact:   artifact,
		Metrics:    findings.Metrics,
		Hazards:    findings.Hazards,
		Expert:     findings.Expert,
	}

	s.logger.Info("analysis completed",
		zap.String("name", name),
		zap.Float64("score", float64(report.Score)),
		zap.String("tier", string(report.Tier)),
		zap.String("method", string(report.Method)))

	return report, nil
}
