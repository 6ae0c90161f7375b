package container

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"safeai-bot/internal/domain/entity"
	"safeai-bot/internal/infrastructure/report"
	"safeai-bot/internal/infrastructure/storage"
	"safeai-bot/internal/infrastructure/vision"
)

func TestNew_WiresInspection(t *testing.T) {
	dir := t.TempDir()
	img := image.NewGray(image.Rect(0, 0, 100, 100))
	for i := 10; i <= 90; i++ {
		img.SetGray(i, i, color.Gray{Y: 255})
		img.SetGray(i+1, i, color.Gray{Y: 255})
	}
	path := filepath.Join(dir, "wall.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	c := New(storage.NewMemoryUserRepository(), storage.NewMemoryAnalysisRepository(),
		vision.NewCannyDetector(), report.NewSeededSynthesizer(3), Options{UploadDir: dir})
	require.NotNil(t, c.UserService)
	require.NotNil(t, c.AnalysisService)

	out, err := c.InspectionService.InspectFile(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, entity.TierCaution, out.Report.Tier)
	require.FileExists(t, filepath.Join(dir, "processed_wall.png"))
}
