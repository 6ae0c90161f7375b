//go:build gocv
// +build gocv

package vision

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"gocv.io/x/gocv"

	"safeai-bot/internal/domain/entity"
	"safeai-bot/internal/domain/port"
)

// GoCVDetector детектор границ на OpenCV. Параметры совпадают с CannyDetector.
type GoCVDetector struct {
	LowThreshold  float32
	HighThreshold float32
	KernelSize    int
	StrokeWidth   int
}

// NewGoCVDetector создаёт детектор с ядром размытия 5x5 и порогами 50/150.
func NewGoCVDetector() *GoCVDetector {
	return &GoCVDetector{
		LowThreshold:  DefaultLowThreshold,
		HighThreshold: DefaultHighThreshold,
		KernelSize:    5,
		StrokeWidth:   DefaultStrokeWidth,
	}
}

// NewDetector возвращает детектор, выбранный тегом сборки.
func NewDetector() port.EdgeDetector {
	return NewGoCVDetector()
}

// DetectEdges строит карту границ: серый, GaussianBlur, Canny.
func (d *GoCVDetector) DetectEdges(img image.Image) *entity.EdgeMap {
	if img == nil || img.Bounds().Empty() {
		return entity.NewEdgeMap(0, 0)
	}

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return entity.NewEdgeMap(img.Bounds().Dx(), img.Bounds().Dy())
	}
	defer mat.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	blur := gocv.NewMat()
	defer blur.Close()
	gocv.GaussianBlur(gray, &blur, image.Pt(d.KernelSize, d.KernelSize), 0, 0, gocv.BorderDefault)

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(blur, &edges, d.LowThreshold, d.HighThreshold)

	return &entity.EdgeMap{
		Width:  edges.Cols(),
		Height: edges.Rows(),
		Pix:    edges.ToBytes(),
	}
}

// HighlightEdges рисует внешние контуры (RetrievalExternal) поверх копии.
func (d *GoCVDetector) HighlightEdges(img image.Image, edges *entity.EdgeMap, highlight color.Color) image.Image {
	if edges.Len() == 0 {
		return imaging.Clone(img)
	}

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return imaging.Clone(img)
	}
	defer mat.Close()

	mask, err := gocv.NewMatFromBytes(edges.Height, edges.Width, gocv.MatTypeCV8U, edges.Pix)
	if err != nil {
		return imaging.Clone(img)
	}
	defer mask.Close()

	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()
	if contours.Size() == 0 {
		return imaging.Clone(img)
	}

	r, g, b, a := highlight.RGBA()
	c := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	gocv.DrawContours(&mat, contours, -1, c, d.StrokeWidth)

	out, err := mat.ToImage()
	if err != nil {
		return imaging.Clone(img)
	}
	return out
}

var _ port.EdgeDetector = (*GoCVDetector)(nil)
