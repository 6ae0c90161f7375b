package vision

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"safeai-bot/internal/domain/entity"
)

func ring(m *entity.EdgeMap, x0, y0, x1, y1 int) {
	for x := x0; x <= x1; x++ {
		m.Set(x, y0, true)
		m.Set(x, y1, true)
	}
	for y := y0; y <= y1; y++ {
		m.Set(x0, y, true)
		m.Set(x1, y, true)
	}
}

func unique(c Contour) map[image.Point]bool {
	set := make(map[image.Point]bool, len(c))
	for _, p := range c {
		set[p] = true
	}
	return set
}

func TestExternalContours_Empty(t *testing.T) {
	require.Empty(t, ExternalContours(entity.NewEdgeMap(0, 0)))
	require.Empty(t, ExternalContours(entity.NewEdgeMap(10, 10)))
}

func TestExternalContours_NestedRingIgnored(t *testing.T) {
	m := entity.NewEdgeMap(30, 30)
	ring(m, 2, 2, 20, 20)
	ring(m, 6, 6, 12, 12)

	contours := ExternalContours(m)
	require.Len(t, contours, 1)
	require.Len(t, unique(contours[0]), 72)
	require.Equal(t, image.Pt(2, 2), contours[0][0])
}

func TestExternalContours_SeparateRegions(t *testing.T) {
	m := entity.NewEdgeMap(30, 30)
	ring(m, 2, 2, 8, 8)
	ring(m, 15, 15, 25, 25)

	contours := ExternalContours(m)
	require.Len(t, contours, 2)
	require.Len(t, unique(contours[0]), 24)
	require.Len(t, unique(contours[1]), 40)
}

func TestExternalContours_FilledBlockTracesBorderOnly(t *testing.T) {
	m := entity.NewEdgeMap(10, 10)
	for y := 3; y < 7; y++ {
		for x := 3; x < 7; x++ {
			m.Set(x, y, true)
		}
	}

	contours := ExternalContours(m)
	require.Len(t, contours, 1)
	pts := unique(contours[0])
	require.Len(t, pts, 12)
	require.False(t, pts[image.Pt(4, 4)])
	require.False(t, pts[image.Pt(5, 5)])
}

func TestExternalContours_SinglePixelAndLine(t *testing.T) {
	m := entity.NewEdgeMap(10, 10)
	m.Set(4, 4, true)
	contours := ExternalContours(m)
	require.Equal(t, []Contour{{image.Pt(4, 4)}}, contours)

	m = entity.NewEdgeMap(10, 10)
	for x := 2; x < 8; x++ {
		m.Set(x, 3, true)
	}
	contours = ExternalContours(m)
	require.Len(t, contours, 1)
	require.Len(t, unique(contours[0]), 6)
}
