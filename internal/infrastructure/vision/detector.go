//go:build !gocv
// +build !gocv

package vision

import "safeai-bot/internal/domain/port"

// NewDetector возвращает детектор на чистом Go, если сборка без тега gocv.
func NewDetector() port.EdgeDetector {
	return NewCannyDetector()
}

var _ port.EdgeDetector = (*CannyDetector)(nil)
