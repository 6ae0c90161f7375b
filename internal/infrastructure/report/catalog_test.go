package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"safeai-bot/internal/domain/entity"
)

func TestNarrative(t *testing.T) {
	safe := Narrative(entity.TierSafe, 0.5, entity.MethodSteelFrame)
	require.Contains(t, safe, entity.MethodSteelFrame.Title())
	require.NotContains(t, safe, "0.5")

	caution := Narrative(entity.TierCaution, 2, entity.MethodPrecastConcrete)
	require.Contains(t, caution, entity.MethodPrecastConcrete.Title())

	danger := Narrative(entity.TierDanger, 7.5, entity.MethodMasonry)
	require.Contains(t, danger, "7.50%")
	require.Contains(t, Narrative(entity.TierDanger, 7, entity.MethodMasonry), "7.00%")
	require.Contains(t, danger, entity.MethodMasonry.Title())

	require.Equal(t, entity.NeutralNarrative, Narrative("Other", 1, entity.MethodUnknown))
}

func TestSeverityClass(t *testing.T) {
	require.Equal(t, "Class A", SeverityClass(entity.TierSafe))
	require.Equal(t, "Class B", SeverityClass(entity.TierCaution))
	require.Equal(t, "Class C", SeverityClass(entity.TierDanger))
}

func TestExpertReport_Sections(t *testing.T) {
	r := ExpertReport(scoreOf(7), entity.MethodReinforcedConcrete)

	require.Equal(t, "Class C", r.Diagnosis.SeverityClass)
	require.Equal(t, entity.TierDanger, r.Diagnosis.Severity)
	require.Len(t, r.Diagnosis.Content, 3)
	require.Len(t, r.Repairs.Content, 3)
	require.Len(t, r.Durability.Content, 1)
	require.NotEmpty(t, r.Causes.Title)

	safe := ExpertReport(scoreOf(0.1), entity.MethodSteelFrame)
	require.Len(t, safe.Repairs.Content, 2)
	require.Equal(t, "Class A", safe.Durability.SeverityClass)
}

func TestExpertReport_Causes(t *testing.T) {
	tests := []struct {
		name    string
		method  entity.ConstructionMethod
		density float64
		want    int
	}{
		{"rc low density", entity.MethodReinforcedConcrete, 3, 2},
		{"masonry overload", entity.MethodMasonry, 60, 3},
		{"masonry at threshold", entity.MethodMasonry, 50, 2},
		{"steel low density", entity.MethodSteelFrame, 3, 1},
		{"precast overload", entity.MethodPrecastConcrete, 70, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ExpertReport(scoreOf(tt.density), tt.method)
			require.Len(t, r.Causes.Content, tt.want)
		})
	}
}

func TestExpertReport_NoRandomness(t *testing.T) {
	a := ExpertReport(scoreOf(3), entity.MethodMasonry)
	b := ExpertReport(scoreOf(3), entity.MethodMasonry)
	require.Equal(t, a, b)
}
