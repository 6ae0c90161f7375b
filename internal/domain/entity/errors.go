package entity

import (
	"errors"
	"fmt"
)

// ErrorKind вид ошибки анализа.
type ErrorKind string

const (
	KindResource ErrorKind = "resource" // изображение отсутствует или не читается
	KindDecode   ErrorKind = "decode"   // байты есть, но это не изображение
	KindWrite    ErrorKind = "write"    // не удалось сохранить артефакт
)

var (
	ErrResource = errors.New("image resource is unavailable")
	ErrDecode   = errors.New("image cannot be decoded")
	ErrWrite    = errors.New("artifact cannot be written")
)

// AnalysisError ошибка этапа анализа с указанием вида и операции.
type AnalysisError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

// NewAnalysisError оборачивает err в ошибку заданного вида.
func NewAnalysisError(kind ErrorKind, op string, err error) *AnalysisError {
	return &AnalysisError{Kind: kind, Op: op, Err: err}
}

func (e *AnalysisError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s error", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// Is связывает вид ошибки с соответствующей sentinel-ошибкой,
// чтобы работал errors.Is(err, ErrDecode).
func (e *AnalysisError) Is(target error) bool {
	switch target {
	case ErrResource:
		return e.Kind == KindResource
	case ErrDecode:
		return e.Kind == KindDecode
	case ErrWrite:
		return e.Kind == KindWrite
	}
	return false
}

// KindOf возвращает вид ошибки анализа или пустую строку для посторонних ошибок.
func KindOf(err error) ErrorKind {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}
