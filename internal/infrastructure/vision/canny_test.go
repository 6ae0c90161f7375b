package vision

import (
	"image"
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"safeai-bot/internal/domain/entity"
)

func TestCannyDetector_DiagonalCrackIsCaution(t *testing.T) {
	d := NewCannyDetector()
	edges := d.DetectEdges(diagonalCrack(100))

	require.Equal(t, 100, edges.Width)
	require.Equal(t, 100, edges.Height)

	s := entity.ScoreEdges(edges)
	require.Equal(t, entity.TierCaution, s.Tier)
	require.Greater(t, float64(s.Value), 1.0)
	require.Less(t, float64(s.Value), 5.0)
}

func TestCannyDetector_BlackImageHasNoEdges(t *testing.T) {
	d := NewCannyDetector()
	for _, size := range []int{1, 2, 5, 64, 120} {
		edges := d.DetectEdges(uniform(size, size, color.Black))
		require.Zero(t, edges.CountOn(), "size=%d", size)

		s := entity.ScoreEdges(edges)
		require.Equal(t, entity.RiskScore(0), s.Value)
		require.Equal(t, entity.TierSafe, s.Tier)
	}
}

func TestCannyDetector_EmptyImage(t *testing.T) {
	d := NewCannyDetector()
	edges := d.DetectEdges(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	require.Zero(t, edges.Len())
	require.Zero(t, entity.Density(edges))

	require.Zero(t, d.DetectEdges(nil).Len())
}

func TestCannyDetector_VerticalStepIsThin(t *testing.T) {
	d := NewCannyDetector()
	edges := d.DetectEdges(verticalStep(100, 100))

	// Край шириной в один пиксель по всей высоте, кроме рамки.
	require.Equal(t, 98, edges.CountOn())
	for y := 1; y < 99; y++ {
		require.True(t, edges.At(49, y), "y=%d", y)
	}
}

func TestCannyDetector_CheckerboardIsDanger(t *testing.T) {
	edges := NewCannyDetector().DetectEdges(checkerboard(60, 4))
	s := entity.ScoreEdges(edges)
	require.Equal(t, entity.TierDanger, s.Tier)
	require.Greater(t, s.Density, 10.0)
}

func TestCannyDetector_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	img := image.NewGray(image.Rect(0, 0, 80, 60))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.IntN(256))
	}

	d := NewCannyDetector()
	first := d.DetectEdges(img)
	second := d.DetectEdges(img)
	require.Equal(t, first.Pix, second.Pix)
}

func TestCannyDetector_HighlightEdges(t *testing.T) {
	src := verticalStep(100, 100)
	before := append([]uint8(nil), src.Pix...)

	d := NewCannyDetector()
	edges := d.DetectEdges(src)
	red := color.RGBA{R: 255, A: 255}
	out := d.HighlightEdges(src, edges, red)

	require.Equal(t, src.Bounds(), out.Bounds())
	require.Equal(t, before, src.Pix, "source must not be modified")

	r, g, b, _ := out.At(49, 50).RGBA()
	require.Equal(t, uint32(0xffff), r)
	require.Zero(t, g)
	require.Zero(t, b)

	// Толщина линии 2: соседний слева пиксель тоже закрашен.
	r, _, _, _ = out.At(48, 50).RGBA()
	require.Equal(t, uint32(0xffff), r)

	// Вдали от края цвета не меняются.
	r, g, b, _ = out.At(10, 50).RGBA()
	require.Zero(t, r+g+b)
}

func TestCannyDetector_HighlightWithoutEdgesReturnsCopy(t *testing.T) {
	src := uniform(20, 20, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	d := NewCannyDetector()
	out := d.HighlightEdges(src, entity.NewEdgeMap(20, 20), color.White)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			require.Equal(t, color.NRGBAModel.Convert(src.At(x, y)), color.NRGBAModel.Convert(out.At(x, y)))
		}
	}
}
