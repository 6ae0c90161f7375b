package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// AnalysisRecord плоское представление отчёта для хранилища:
// скалярные поля и три JSON-блоба.
type AnalysisRecord struct {
	ID                  string             `json:"id"`
	ChatID              int64              `json:"chat_id,omitempty"`
	Available           bool               `json:"available"`
	CrackDetected       bool               `json:"crack_detected"`
	CrackScore          float64            `json:"crack_score"`
	RiskLevel           RiskTier           `json:"risk_level"`
	ConstructionMethod  ConstructionMethod `json:"construction_method"`
	StructuralStability string             `json:"structural_stability"`
	ProcessedImagePath  string             `json:"processed_image_path"`
	ChartDataJSON       string             `json:"chart_data_json"`
	InternalRisksJSON   string             `json:"internal_risks_json"`
	ExpertReportJSON    string             `json:"expert_report_json"`
	AnalyzedAt          time.Time          `json:"analyzed_at"`
}

// NewAnalysisRecord сериализует отчёт в запись. ID назначает хранилище.
func NewAnalysisRecord(report *AnalysisReport, analyzedAt time.Time) (*AnalysisRecord, error) {
	if report == nil {
		return nil, fmt.Errorf("nil report")
	}
	if !report.Tier.Valid() {
		return nil, fmt.Errorf("invalid risk level %q", report.Tier)
	}

	chart, err := json.Marshal(report.Metrics)
	if err != nil {
		return nil, fmt.Errorf("marshal chart data: %w", err)
	}
	risks, err := json.Marshal(report.Hazards)
	if err != nil {
		return nil, fmt.Errorf("marshal internal risks: %w", err)
	}
	expert, err := json.Marshal(report.Expert)
	if err != nil {
		return nil, fmt.Errorf("marshal expert report: %w", err)
	}

	return &AnalysisRecord{
		Available:           report.Available,
		CrackDetected:       report.CrackDetected(),
		CrackScore:          float64(report.Score),
		RiskLevel:           report.Tier,
		ConstructionMethod:  report.Method,
		StructuralStability: report.Narrative,
		ProcessedImagePath:  report.Artifact.WebPath(),
		ChartDataJSON:       string(chart),
		InternalRisksJSON:   string(risks),
		ExpertReportJSON:    string(expert),
		AnalyzedAt:          analyzedAt,
	}, nil
}

// Metrics восстанавливает метрики панели из записи.
func (r *AnalysisRecord) Metrics() (DashboardMetrics, error) {
	var m DashboardMetrics
	if r.ChartDataJSON == "" {
		return m, nil
	}
	if err := json.Unmarshal([]byte(r.ChartDataJSON), &m); err != nil {
		return m, fmt.Errorf("unmarshal chart data: %w", err)
	}
	return m, nil
}

// Expert восстанавливает экспертный отчёт из записи.
func (r *AnalysisRecord) Expert() (ExpertReport, error) {
	var e ExpertReport
	if r.ExpertReportJSON == "" {
		return e, nil
	}
	if err := json.Unmarshal([]byte(r.ExpertReportJSON), &e); err != nil {
		return e, fmt.Errorf("unmarshal expert report: %w", err)
	}
	return e, nil
}

// Hazards восстанавливает внутренние риски из записи.
func (r *AnalysisRecord) Hazards() (InternalHazards, error) {
	var h InternalHazards
	if r.InternalRisksJSON == "" {
		return h, nil
	}
	if err := json.Unmarshal([]byte(r.InternalRisksJSON), &h); err != nil {
		return h, fmt.Errorf("unmarshal internal risks: %w", err)
	}
	return h, nil
}
