package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestSolutionKnownType(t *testing.T) {
	advice := SuggestSolution("pothole", "large")

	assert.Equal(t, "Full-depth road repair", advice.Solution.Solution)
	assert.Equal(t, "Roads & Infrastructure", advice.Solution.Department)
	assert.NotEmpty(t, advice.Solution.Steps)
	assert.NotEmpty(t, advice.PreventiveMeasures)
	assert.Equal(t, "2-4 weeks", advice.Deterioration.Timeline)
}

func TestSuggestSolutionUnknownTypeFallsBack(t *testing.T) {
	advice := SuggestSolution("sinkhole", "medium")

	assert.Equal(t, "Standard sinkhole resolution procedure", advice.Solution.Solution)
	assert.Equal(t, "To be assessed", advice.Solution.EstimatedCost)
	assert.Equal(t, "Municipal Corporation", advice.Solution.Department)
	assert.Equal(t, []string{"Regular maintenance and monitoring"}, advice.PreventiveMeasures)
	assert.Equal(t, "Varies", advice.Deterioration.Timeline)
}

func TestSuggestSolutionUnknownSubcategory(t *testing.T) {
	advice := SuggestSolution("pothole", "gigantic")

	assert.Equal(t, "Standard pothole resolution procedure", advice.Solution.Solution)
	assert.NotEmpty(t, advice.PreventiveMeasures, "preventive measures still come from the known type")
	assert.Equal(t, "2-4 weeks", advice.Deterioration.Timeline)
}

func TestSuggestSolutionResolutionStats(t *testing.T) {
	advice := SuggestSolution("pothole", "small")

	stats := advice.PastResolutions
	require.NotZero(t, stats.SimilarIssuesResolved)
	assert.GreaterOrEqual(t, stats.SimilarIssuesResolved, 50)
	assert.Less(t, stats.SimilarIssuesResolved, 200)
	assert.Regexp(t, `^\d+%$`, stats.CitizenSatisfaction)
}
