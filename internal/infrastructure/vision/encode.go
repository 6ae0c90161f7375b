package vision

import (
	"bytes"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"safeai-bot/internal/domain/entity"
)

const defaultSourceName = "image.png"

// EncodeArtifact кодирует визуализацию в формате исходного файла
// и называет её processed_<имя>. Неизвестное расширение кодируется в PNG.
func EncodeArtifact(img image.Image, sourceName string) (*entity.Artifact, error) {
	if strings.TrimSpace(sourceName) == "" {
		sourceName = defaultSourceName
	}
	name := entity.ProcessedName(sourceName)

	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		format = imaging.PNG
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(90)); err != nil {
		return nil, entity.NewAnalysisError(entity.KindWrite, "encode artifact", err)
	}

	return &entity.Artifact{
		Name:   name,
		Format: strings.ToLower(format.String()),
		Data:   buf.Bytes(),
	}, nil
}
