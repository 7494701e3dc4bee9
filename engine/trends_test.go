package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civic-reporter-be/models"
)

func TestAnalyzeTrends(t *testing.T) {
	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	issues := []models.Issue{
		{Category: models.RoadInfrastructure, Status: models.StatusResolved, CreatedAt: now},
		{Category: models.RoadInfrastructure, Status: models.StatusPending, CreatedAt: now},
		{Category: models.WaterSupply, Status: models.StatusPending, CreatedAt: now.AddDate(0, 0, -7)},
	}

	report := AnalyzeTrends(issues)

	assert.Equal(t, 2, report.CategoryTrends[models.RoadInfrastructure])
	assert.Equal(t, 1, report.CategoryTrends[models.WaterSupply])
	assert.Equal(t, "Stable", report.GrowthRate)
	assert.Len(t, report.WeeklyTrends, 2, "two distinct ISO weeks")

	require.NotEmpty(t, report.Insights)
	assert.Contains(t, report.Insights[0], string(models.RoadInfrastructure))
	assert.Contains(t, report.Insights[1], "33.3%")
}

func TestAnalyzeTrendsEmpty(t *testing.T) {
	report := AnalyzeTrends(nil)
	assert.Empty(t, report.Insights)
	assert.Empty(t, report.WeeklyTrends)
}

func TestGeneratePredictions(t *testing.T) {
	issues := make([]models.Issue, 0, 120)
	for i := 0; i < 100; i++ {
		issues = append(issues, models.Issue{Category: models.GarbageSanitation})
	}
	for i := 0; i < 20; i++ {
		issues = append(issues, models.Issue{Category: models.Electricity})
	}

	predictions := GeneratePredictions(issues)

	assert.Equal(t, 2, predictions.ExpectedIssues, "120/50")
	require.NotEmpty(t, predictions.HighRiskCategories)
	assert.Equal(t, models.GarbageSanitation, predictions.HighRiskCategories[0].Category)
	assert.Equal(t, 100, predictions.HighRiskCategories[0].Count)
}
