package port

import (
	"image"
	"image/color"

	"safeai-bot/internal/domain/entity"
)

// EdgeDetector интерфейс детектора границ
type EdgeDetector interface {
	// DetectEdges строит бинарную карту границ изображения
	DetectEdges(img image.Image) *entity.EdgeMap

	// HighlightEdges рисует внешние контуры карты границ на копии изображения
	HighlightEdges(img image.Image, edges *entity.EdgeMap, highlight color.Color) image.Image
}
