package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecommendationFor_AllSeverities(t *testing.T) {
	for _, s := range []Severity{SeverityLow, SeverityModerate, SeveritySevere, SeverityCritical} {
		rec := RecommendationFor(s)
		require.NotEmpty(t, rec.RiskLevel)
		require.NotEmpty(t, rec.RecommendedAction)
		require.NotEmpty(t, rec.EstimatedRepairTime)
	}
}

func TestRecommendationFor_EngineerOnlySkippedForLow(t *testing.T) {
	require.False(t, RecommendationFor(SeverityLow).EngineerRequired)
	require.True(t, RecommendationFor(SeverityModerate).EngineerRequired)
	require.True(t, RecommendationFor(SeveritySevere).EngineerRequired)
	require.True(t, RecommendationFor(SeverityCritical).EngineerRequired)
}

func TestRecommendationFor_Rows(t *testing.T) {
	low := RecommendationFor(SeverityLow)
	require.Equal(t, "Low", low.RiskLevel)
	require.Equal(t, "Seal crack and monitor", low.RecommendedAction)
	require.Equal(t, "1–2 days", low.EstimatedRepairTime)

	critical := RecommendationFor(SeverityCritical)
	require.Equal(t, "Critical", critical.RiskLevel)
	require.Equal(t, "Immediate evacuation and full structural assessment", critical.RecommendedAction)
	require.Equal(t, "1–3 months", critical.EstimatedRepairTime)
}

func TestRecommendationFor_UnknownFallsBackToCritical(t *testing.T) {
	rec := RecommendationFor(Severity(99))
	require.Equal(t, RecommendationFor(SeverityCritical), rec)
}
