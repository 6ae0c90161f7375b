package entity

// EdgeMap бинарная карта границ: один байт на пиксель, 0 или 255.
type EdgeMap struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewEdgeMap создаёт пустую карту заданного размера.
// Отрицательные размеры приводятся к нулю.
func NewEdgeMap(width, height int) *EdgeMap {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &EdgeMap{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// Len возвращает общее число пикселей карты.
func (m *EdgeMap) Len() int {
	if m == nil {
		return 0
	}
	return m.Width * m.Height
}

// At сообщает, помечен ли пиксель как граница. Координаты вне карты дают false.
func (m *EdgeMap) At(x, y int) bool {
	if m == nil || x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.Pix[y*m.Width+x] != 0
}

// Set помечает пиксель как границу или снимает пометку.
func (m *EdgeMap) Set(x, y int, on bool) {
	if m == nil || x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	var v uint8
	if on {
		v = 255
	}
	m.Pix[y*m.Width+x] = v
}

// CountOn возвращает количество пикселей-границ.
func (m *EdgeMap) CountOn() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, v := range m.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}
