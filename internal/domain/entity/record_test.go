package entity

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewAnalysisRecord_RoundTripBlobs(t *testing.T) {
	report := &AnalysisReport{
		Available: true,
		Score:     3.21,
		Tier:      TierCaution,
		Method:    MethodSteelFrame,
		Narrative: "text",
		Artifact:  &Artifact{Name: "processed_wall.png", Format: "png"},
		Metrics:   DashboardMetrics{Safety: 96, Durability: 86, Design: 70, Foundation: 96, Maintenance: 40},
		Hazards: InternalHazards{
			FireHazard: FireMedium,
			Findings:   []string{"ok"},
		},
		Expert: ExpertReport{
			Diagnosis: ReportSection{Title: "d", Severity: TierCaution, SeverityClass: "Class B", Content: []string{"x"}},
		},
	}
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	rec, err := NewAnalysisRecord(report, now)
	require.NoError(t, err)
	require.True(t, rec.CrackDetected)
	require.Equal(t, 3.21, rec.CrackScore)
	require.Equal(t, TierCaution, rec.RiskLevel)
	require.Equal(t, "uploads/processed_wall.png", rec.ProcessedImagePath)
	require.Contains(t, rec.ChartDataJSON, `"maintenance":40`)
	require.Contains(t, rec.ExpertReportJSON, `"severity_class":"Class B"`)

	metrics, err := rec.Metrics()
	require.NoError(t, err)
	require.Equal(t, report.Metrics, metrics)

	hazards, err := rec.Hazards()
	require.NoError(t, err)
	require.Equal(t, report.Hazards, hazards)

	expert, err := rec.Expert()
	require.NoError(t, err)
	require.Equal(t, report.Expert.Diagnosis, expert.Diagnosis)
}

func TestNewAnalysisRecord_Neutral(t *testing.T) {
	rec, err := NewAnalysisRecord(NeutralReport("a.jpg"), time.Now())
	require.NoError(t, err)
	require.False(t, rec.Available)
	require.False(t, rec.CrackDetected)
	require.Equal(t, TierSafe, rec.RiskLevel)
	require.Equal(t, MethodUnknown, rec.ConstructionMethod)
	require.Empty(t, rec.ProcessedImagePath)
}

func TestNewAnalysisRecord_InvalidTier(t *testing.T) {
	_, err := NewAnalysisRecord(&AnalysisReport{Tier: "Bogus"}, time.Now())
	require.Error(t, err)
}

func TestAnalysisError_Is(t *testing.T) {
	err := fmt.Errorf("load: %w", NewAnalysisError(KindDecode, "decode", errors.New("bad header")))
	require.ErrorIs(t, err, ErrDecode)
	require.NotErrorIs(t, err, ErrResource)
	require.Equal(t, KindDecode, KindOf(err))
	require.Equal(t, ErrorKind(""), KindOf(errors.New("other")))
}

func TestProcessedName(t *testing.T) {
	require.Equal(t, "processed_wall.jpg", ProcessedName("wall.jpg"))
	require.Equal(t, "processed_wall.jpg", ProcessedName("uploads/wall.jpg"))
}
