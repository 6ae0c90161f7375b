package app

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"safeai-bot/internal/infrastructure/report"
	"safeai-bot/internal/infrastructure/vision"
)

func newTestAnalysis(seed uint64) *AnalysisService {
	return NewAnalysisService(vision.NewCodec(), vision.NewCannyDetector(), report.NewSeededSynthesizer(seed), nil, nil)
}

// crackImage белая диагональ толщиной 2 пикселя на чёрном поле 100x100.
func crackImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 100, 100))
	for i := 10; i <= 90; i++ {
		img.SetGray(i, i, color.Gray{Y: 255})
		img.SetGray(i+1, i, color.Gray{Y: 255})
	}
	return img
}

func checkerImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 60, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 60; x++ {
			if (x/4+y/4)%2 == 1 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func writeImage(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, encodePNG(t, img), 0o644))
	return path
}
