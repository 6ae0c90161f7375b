package port

import (
	"image"

	"safeai-bot/internal/domain/entity"
)

// ImageCodec интерфейс загрузки исходных изображений и кодирования визуализаций
type ImageCodec interface {
	// LoadFile читает изображение с диска
	LoadFile(path string) (image.Image, error)

	// Decode декодирует изображение из байтов
	Decode(data []byte) (image.Image, error)

	// Encode кодирует визуализацию под именем processed_<sourceName>
	Encode(img image.Image, sourceName string) (*entity.Artifact, error)
}
