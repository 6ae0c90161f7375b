package entity

import "math"

// Пороги уровней риска по плотности границ, в процентах.
const (
	CautionThreshold = 1.0
	DangerThreshold  = 5.0
)

// RiskTier дискретный уровень риска.
type RiskTier string

const (
	TierSafe    RiskTier = "Safe"
	TierCaution RiskTier = "Caution"
	TierDanger  RiskTier = "Danger"
)

// Valid сообщает, входит ли значение в перечисление.
func (t RiskTier) Valid() bool {
	switch t {
	case TierSafe, TierCaution, TierDanger:
		return true
	}
	return false
}

// RiskScore процент пикселей-границ, округлённый до сотых, в диапазоне [0, 100].
type RiskScore float64

// Density считает долю пикселей-границ в процентах без округления.
// Пустая карта даёт 0.
func Density(edges *EdgeMap) float64 {
	total := edges.Len()
	if total == 0 {
		return 0
	}
	return 100 * float64(edges.CountOn()) / float64(total)
}

// NewRiskScore округляет плотность до двух знаков и ограничивает диапазоном [0, 100].
func NewRiskScore(density float64) RiskScore {
	if math.IsNaN(density) || density < 0 {
		return 0
	}
	if density > 100 {
		return 100
	}
	return RiskScore(math.Round(density*100) / 100)
}

// TierFor переводит оценку в уровень риска. Границы полуоткрытые:
// 1.00 уже Caution, 5.00 уже Danger.
func TierFor(score RiskScore) RiskTier {
	switch {
	case score < CautionThreshold:
		return TierSafe
	case score < DangerThreshold:
		return TierCaution
	default:
		return TierDanger
	}
}

// Score объединяет результат скоринга карты границ.
type Score struct {
	Density float64
	Value   RiskScore
	Tier    RiskTier
}

// ScoreEdges вычисляет плотность, оценку и уровень риска для карты границ.
func ScoreEdges(edges *EdgeMap) Score {
	density := Density(edges)
	value := NewRiskScore(density)
	return Score{
		Density: density,
		Value:   value,
		Tier:    TierFor(value),
	}
}
