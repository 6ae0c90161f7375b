package vision

import (
	"image"

	"safeai-bot/internal/domain/entity"
)

// Contour упорядоченный обход внешней границы связной области.
type Contour []image.Point

// Направления обхода окрестности Мура по часовой стрелке, начиная с запада.
var moore = [8]image.Point{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
}

// ExternalContours находит внешние контуры 8-связных областей карты границ.
// Области, целиком лежащие в дырах других областей, пропускаются,
// внутренние границы (дыры) не обходятся.
func ExternalContours(edges *entity.EdgeMap) []Contour {
	if edges.Len() == 0 {
		return nil
	}
	w, h := edges.Width, edges.Height
	on := func(x, y int) bool { return edges.At(x, y) }

	outside := outerBackground(edges)
	labels := make([]int32, w*h)
	var contours []Contour
	var label int32

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if !on(x, y) || labels[i] != 0 {
				continue
			}
			label++
			if !markComponent(edges, labels, outside, x, y, label) {
				continue
			}
			contours = append(contours, traceBorder(on, image.Pt(x, y)))
		}
	}
	return contours
}

// outerBackground помечает фон, достижимый от края изображения
// по 4-связности. Недостижимый фон является дырами.
func outerBackground(edges *entity.EdgeMap) []bool {
	w, h := edges.Width, edges.Height
	outside := make([]bool, w*h)
	queue := make([]int, 0, 2*(w+h))

	push := func(x, y int) {
		i := y*w + x
		if edges.Pix[i] == 0 && !outside[i] {
			outside[i] = true
			queue = append(queue, i)
		}
	}
	for x := 0; x < w; x++ {
		push(x, 0)
		push(x, h-1)
	}
	for y := 0; y < h; y++ {
		push(0, y)
		push(w-1, y)
	}

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		x, y := i%w, i/w
		if x > 0 {
			push(x-1, y)
		}
		if x < w-1 {
			push(x+1, y)
		}
		if y > 0 {
			push(x, y-1)
		}
		if y < h-1 {
			push(x, y+1)
		}
	}
	return outside
}

// markComponent размечает 8-связную область и сообщает, является ли она
// внешней: касается края изображения или внешнего фона.
func markComponent(edges *entity.EdgeMap, labels []int32, outside []bool, sx, sy int, label int32) bool {
	w, h := edges.Width, edges.Height
	external := false
	stack := []image.Point{{sx, sy}}
	labels[sy*w+sx] = label

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X == 0 || p.Y == 0 || p.X == w-1 || p.Y == h-1 {
			external = true
		}
		for _, d := range moore {
			nx, ny := p.X+d.X, p.Y+d.Y
			if nx < 0 || ny < 0 || nx >= w || ny >= h {
				continue
			}
			j := ny*w + nx
			if edges.Pix[j] == 0 {
				if outside[j] && (d.X == 0 || d.Y == 0) {
					external = true
				}
				continue
			}
			if labels[j] == 0 {
				labels[j] = label
				stack = append(stack, image.Point{nx, ny})
			}
		}
	}
	return external
}

// traceBorder обходит внешнюю границу области методом соседей Мура.
// start должен быть первым пикселем области в порядке развёртки,
// тогда его западный сосед заведомо фон.
func traceBorder(on func(x, y int) bool, start image.Point) Contour {
	contour := Contour{start}

	type step struct {
		p    image.Point
		back int
	}
	seen := map[step]bool{{start, 0}: true}

	cur, back := start, 0
	for {
		next, nextBack, ok := mooreStep(on, cur, back)
		if !ok {
			// одиночный пиксель
			return contour
		}
		s := step{next, nextBack}
		if seen[s] {
			return contour
		}
		seen[s] = true
		cur, back = next, nextBack
		if cur != start {
			contour = append(contour, cur)
		}
	}
}

// mooreStep ищет следующий пиксель границы по часовой стрелке от back
// и возвращает направление от него на последний проверенный фоновый пиксель.
func mooreStep(on func(x, y int) bool, cur image.Point, back int) (image.Point, int, bool) {
	for k := 1; k <= 8; k++ {
		d := (back + k) % 8
		n := cur.Add(moore[d])
		if !on(n.X, n.Y) {
			continue
		}
		prev := cur.Add(moore[(d+7)%8])
		return n, direction(prev.Sub(n)), true
	}
	return cur, back, false
}

// direction возвращает индекс единичного смещения в moore.
func direction(v image.Point) int {
	for i, d := range moore {
		if d == v {
			return i
		}
	}
	return 0
}
