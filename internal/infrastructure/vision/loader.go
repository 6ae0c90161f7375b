package vision

import (
	"bytes"
	"errors"
	"image"
	"os"

	"github.com/disintegration/imaging"

	"safeai-bot/internal/domain/entity"
)

// LoadFile читает и декодирует изображение с диска.
// Отсутствующий или нечитаемый файл даёт ошибку вида resource,
// неверное содержимое даёт decode.
func LoadFile(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, entity.NewAnalysisError(entity.KindResource, "load image", err)
	}
	if info.IsDir() {
		return nil, entity.NewAnalysisError(entity.KindResource, "load image", errors.New(path+" is a directory"))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, entity.NewAnalysisError(entity.KindResource, "load image", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, entity.NewAnalysisError(entity.KindDecode, "load image", err)
	}
	return img, nil
}

// Decode декодирует изображение из буфера. Пустой буфер считается
// отсутствующим ресурсом.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, entity.NewAnalysisError(entity.KindResource, "decode image", errors.New("empty image data"))
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, entity.NewAnalysisError(entity.KindDecode, "decode image", err)
	}
	return img, nil
}
