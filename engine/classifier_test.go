package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"civic-reporter-be/models"
)

func TestPredictCategory(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        models.IssueCategory
	}{
		{
			name:        "pothole report",
			title:       "Large pothole on main road",
			description: "Deep pothole on the highway near the bridge",
			want:        models.RoadInfrastructure,
		},
		{
			name:        "garbage report",
			title:       "Garbage overflowing",
			description: "Dustbin full of trash and waste not collected",
			want:        models.GarbageSanitation,
		},
		{
			name:        "water report",
			title:       "Pipe leak",
			description: "Water supply pipeline leaking near the tap",
			want:        models.WaterSupply,
		},
		{
			name:        "no keyword match falls back to Other",
			title:       "Something odd happened",
			description: "Cannot quite describe it",
			want:        models.OtherCategory,
		},
		{
			name:        "empty input falls back to Other",
			title:       "",
			description: "",
			want:        models.OtherCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PredictCategory(tt.title, tt.description))
		})
	}
}

func TestPredictSeverity(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        models.IssueSeverity
	}{
		{"critical keywords win", "Urgent emergency", "dangerous accident site", models.SeverityCritical},
		{"high tier", "Burst pipe", "pipe has burst and blocked the lane", models.SeverityHigh},
		{"low tier", "Minor scuff", "small scratch on the bench", models.SeverityLow},
		{"no match defaults to medium", "Streetlight flickers", "it flickers at dusk", models.SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PredictSeverity(tt.title, tt.description))
		})
	}
}

func TestPredictSeverityCascadeOrder(t *testing.T) {
	// Text hits both critical and low keywords; the cascade must pick
	// the critical tier first.
	got := PredictSeverity("Urgent", "urgent but small maintenance request")
	assert.Equal(t, models.SeverityCritical, got)
}

func TestPriorityScore(t *testing.T) {
	assert.Equal(t, 100.0, PriorityScore(models.SeverityCritical, models.PublicSafety), "95*1.2 capped at 100")
	assert.InDelta(t, 20.0, PriorityScore(models.SeverityLow, models.ParksEnvironment), 1e-9)
	assert.InDelta(t, 50.0, PriorityScore(models.SeverityMedium, models.OtherCategory), 1e-9, "unknown category weight is 1.0")
	assert.InDelta(t, 82.5, PriorityScore(models.SeverityHigh, models.WaterSupply), 1e-9)
}

func TestDepartment(t *testing.T) {
	assert.Equal(t, "Public Works Department (PWD)", Department(models.RoadInfrastructure))
	assert.Equal(t, DefaultDepartment, Department(models.OtherCategory))
}

func TestPredict(t *testing.T) {
	p := Predict("Water pipeline burst flooding the road", "Major water pipeline burst on CG Road.")

	assert.Equal(t, models.WaterSupply, p.Category)
	assert.Equal(t, models.SeverityCritical, p.Severity, "flood keyword is critical")
	assert.Equal(t, "Water & Sewage Department", p.Department)
	assert.InDelta(t, 100.0, p.PriorityScore, 1e-9)
}
