package port

import "safeai-bot/internal/domain/entity"

// ReportSynthesizer интерфейс генератора выводов по результату скоринга
type ReportSynthesizer interface {
	// Synthesize дополняет отчёт методом, метриками, текстом и рисками
	Synthesize(score entity.Score) Findings
}

// Findings часть отчёта, которую формирует синтезатор.
type Findings struct {
	Method    entity.ConstructionMethod
	Narrative string
	Metrics   entity.DashboardMetrics
	Hazards   entity.InternalHazards
	Expert    entity.ExpertReport
}
