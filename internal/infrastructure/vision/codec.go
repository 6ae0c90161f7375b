package vision

import (
	"image"

	"safeai-bot/internal/domain/entity"
	"safeai-bot/internal/domain/port"
)

// Codec связывает функции загрузки и кодирования с портом ImageCodec.
type Codec struct{}

// NewCodec создаёт кодек изображений.
func NewCodec() Codec {
	return Codec{}
}

func (Codec) LoadFile(path string) (image.Image, error) {
	return LoadFile(path)
}

func (Codec) Decode(data []byte) (image.Image, error) {
	return Decode(data)
}

func (Codec) Encode(img image.Image, sourceName string) (*entity.Artifact, error) {
	return EncodeArtifact(img, sourceName)
}

var _ port.ImageCodec = Codec{}
