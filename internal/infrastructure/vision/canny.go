package vision

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"safeai-bot/internal/domain/entity"
)

// Параметры детектора границ, откалиброванные под фото фасадов.
const (
	DefaultLowThreshold  = 50
	DefaultHighThreshold = 150
	DefaultStrokeWidth   = 2
)

// gaussian5x5 биномиальное ядро 1-4-6-4-1, нормализуется при свёртке.
var gaussian5x5 = [25]float64{
	1, 4, 6, 4, 1,
	4, 16, 24, 16, 4,
	6, 24, 36, 24, 6,
	4, 16, 24, 16, 4,
	1, 4, 6, 4, 1,
}

// tan(22.5°) и tan(67.5°) для квантования направления градиента.
const (
	tan22 = 0.41421356237309503
	tan67 = 2.414213562373095
)

// CannyDetector детектор границ на чистом Go, без OpenCV.
type CannyDetector struct {
	LowThreshold  int
	HighThreshold int
	StrokeWidth   int
}

// NewCannyDetector создаёт детектор с порогами 50/150 и толщиной линии 2.
func NewCannyDetector() *CannyDetector {
	return &CannyDetector{
		LowThreshold:  DefaultLowThreshold,
		HighThreshold: DefaultHighThreshold,
		StrokeWidth:   DefaultStrokeWidth,
	}
}

// DetectEdges переводит изображение в оттенки серого, сглаживает ядром 5x5
// и строит карту границ Канни. Пустое изображение даёт пустую карту.
func (d *CannyDetector) DetectEdges(img image.Image) *entity.EdgeMap {
	if img == nil || img.Bounds().Empty() {
		return entity.NewEdgeMap(0, 0)
	}

	// Сглаживание обязательно: без него шум сенсора завышает плотность.
	gray := imaging.Grayscale(img)
	blurred := imaging.Convolve5x5(gray, gaussian5x5, &imaging.ConvolveOptions{Normalize: true})

	b := blurred.Bounds()
	w, h := b.Dx(), b.Dy()
	lum := make([]int, w*h)
	for y := 0; y < h; y++ {
		row := blurred.Pix[y*blurred.Stride:]
		for x := 0; x < w; x++ {
			lum[y*w+x] = int(row[x*4])
		}
	}

	return canny(lum, w, h, d.LowThreshold, d.HighThreshold)
}

// HighlightEdges рисует внешние контуры поверх копии изображения.
// Если контуров нет, возвращается нетронутая копия.
func (d *CannyDetector) HighlightEdges(img image.Image, edges *entity.EdgeMap, highlight color.Color) image.Image {
	canvas := imaging.Clone(img)

	contours := ExternalContours(edges)
	if len(contours) == 0 {
		return canvas
	}

	c := color.NRGBAModel.Convert(highlight).(color.NRGBA)
	for _, contour := range contours {
		drawContour(canvas, contour, c, d.StrokeWidth)
	}
	return canvas
}

// canny выполняет Собель 3x3 (L1-норма), подавление немаксимумов
// и гистерезис по двум порогам.
func canny(lum []int, w, h, low, high int) *entity.EdgeMap {
	edges := entity.NewEdgeMap(w, h)
	if w < 3 || h < 3 {
		return edges
	}

	at := func(x, y int) int {
		return lum[clamp(y, 0, h-1)*w+clamp(x, 0, w-1)]
	}

	dx := make([]int, w*h)
	dy := make([]int, w*h)
	mag := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx := at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1)
			gy := at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1)
			i := y*w + x
			dx[i], dy[i] = gx, gy
			mag[i] = abs(gx) + abs(gy)
		}
	}

	const (
		none uint8 = iota
		weak
		strong
	)
	state := make([]uint8, w*h)
	stack := make([]int, 0, w+h)

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			m := mag[i]
			if m <= low {
				continue
			}

			ax, ay := float64(abs(dx[i])), float64(abs(dy[i]))
			var keep bool
			switch {
			case ay < ax*tan22:
				keep = m > mag[i-1] && m >= mag[i+1]
			case ay > ax*tan67:
				keep = m > mag[i-w] && m >= mag[i+w]
			default:
				s := 1
				if (dx[i] < 0) != (dy[i] < 0) {
					s = -1
				}
				keep = m > mag[i-w-s] && m > mag[i+w+s]
			}
			if !keep {
				continue
			}

			if m > high {
				state[i] = strong
				stack = append(stack, i)
			} else {
				state[i] = weak
			}
		}
	}

	// Слабые пиксели остаются, только если связаны с сильными.
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		edges.Pix[i] = 255

		x, y := i%w, i/w
		for ny := y - 1; ny <= y+1; ny++ {
			for nx := x - 1; nx <= x+1; nx++ {
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				j := ny*w + nx
				if state[j] == weak {
					state[j] = strong
					stack = append(stack, j)
				}
			}
		}
	}

	return edges
}

// drawContour ставит квадратную кисть толщиной stroke в каждую точку контура.
// Соседние точки контура 8-смежны, поэтому линия получается непрерывной.
func drawContour(canvas *image.NRGBA, contour Contour, c color.NRGBA, stroke int) {
	if stroke < 1 {
		stroke = 1
	}
	lo := -(stroke / 2)
	hi := lo + stroke - 1
	for _, p := range contour {
		for oy := lo; oy <= hi; oy++ {
			for ox := lo; ox <= hi; ox++ {
				canvas.SetNRGBA(p.X+ox, p.Y+oy, c)
			}
		}
	}
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
