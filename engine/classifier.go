// Package engine holds the heuristic analysis pipeline: keyword
// classification, priority scoring, duplicate detection, hotspot
// identification, solution suggestion, and trend analytics.
package engine

import (
	"strings"

	"civic-reporter-be/models"
)

// Keyword tables are ordered slices, not maps: tie-breaking and the
// severity cascade depend on evaluation order.
var categoryKeywords = []struct {
	category models.IssueCategory
	keywords []string
}{
	{models.RoadInfrastructure, []string{"road", "pothole", "street", "footpath", "bridge", "traffic", "signal", "highway", "pavement"}},
	{models.WaterSupply, []string{"water", "pipe", "leak", "supply", "drainage", "sewage", "tap", "pipeline", "overflow"}},
	{models.Electricity, []string{"light", "electricity", "power", "streetlight", "pole", "wire", "outage", "transformer"}},
	{models.GarbageSanitation, []string{"garbage", "waste", "trash", "dustbin", "cleaning", "sanitation", "litter", "dump"}},
	{models.PublicSafety, []string{"crime", "safety", "violence", "theft", "danger", "police", "security", "lighting"}},
	{models.ParksEnvironment, []string{"park", "tree", "garden", "pollution", "noise", "air", "greenery", "plantation"}},
	{models.PublicTransport, []string{"bus", "metro", "transport", "station", "railway", "traffic", "parking"}},
	{models.BuildingsHousing, []string{"building", "construction", "illegal", "encroachment", "demolition", "housing"}},
}

var severityKeywords = []struct {
	severity models.IssueSeverity
	keywords []string
}{
	{models.SeverityCritical, []string{"urgent", "emergency", "dangerous", "accident", "death", "injury", "collapsed", "fire", "flood"}},
	{models.SeverityHigh, []string{"broken", "burst", "overflow", "blocked", "major", "severe", "damaged"}},
	{models.SeverityMedium, []string{"poor", "bad", "issue", "problem", "needs", "requires", "repair"}},
	{models.SeverityLow, []string{"minor", "small", "slight", "little", "maintenance", "request"}},
}

var severityScores = map[models.IssueSeverity]float64{
	models.SeverityCritical: 95,
	models.SeverityHigh:     75,
	models.SeverityMedium:   50,
	models.SeverityLow:      25,
}

var categoryWeights = map[models.IssueCategory]float64{
	models.PublicSafety:       1.2,
	models.WaterSupply:        1.1,
	models.RoadInfrastructure: 1.1,
	models.Electricity:        1.0,
	models.GarbageSanitation:  0.9,
	models.PublicTransport:    0.9,
	models.ParksEnvironment:   0.8,
	models.BuildingsHousing:   0.85,
}

var departments = map[models.IssueCategory]string{
	models.RoadInfrastructure: "Public Works Department (PWD)",
	models.WaterSupply:        "Water & Sewage Department",
	models.Electricity:        "Electricity Board",
	models.GarbageSanitation:  "Solid Waste Management",
	models.PublicSafety:       "Police & Municipal Security",
	models.ParksEnvironment:   "Environment & Horticulture",
	models.PublicTransport:    "Transport Department",
	models.BuildingsHousing:   "Town Planning Department",
}

// DefaultDepartment handles categories without a dedicated owner.
const DefaultDepartment = "General Administration"

// PredictCategory scores each category by keyword hits in the combined
// title and description and returns the best match. Ties keep the
// earlier-listed category; no hits at all fall through to "Other".
func PredictCategory(title, description string) models.IssueCategory {
	text := strings.ToLower(title + " " + description)

	best := models.OtherCategory
	maxScore := 0
	for _, entry := range categoryKeywords {
		score := 0
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				score++
			}
		}
		if score > maxScore {
			maxScore = score
			best = entry.category
		}
	}
	return best
}

// PredictSeverity walks the severity tiers from critical down and
// returns the first tier with a keyword hit, defaulting to medium.
func PredictSeverity(title, description string) models.IssueSeverity {
	text := strings.ToLower(title + " " + description)

	for _, entry := range severityKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				return entry.severity
			}
		}
	}
	return models.SeverityMedium
}

// PriorityScore derives a 0-100 score from the severity tier weighted
// by the category, capped at 100.
func PriorityScore(severity models.IssueSeverity, category models.IssueCategory) float64 {
	base, ok := severityScores[severity]
	if !ok {
		base = 50
	}
	weight, ok := categoryWeights[category]
	if !ok {
		weight = 1.0
	}
	score := base * weight
	if score > 100 {
		score = 100
	}
	return score
}

// Department routes a category to the responsible department.
func Department(category models.IssueCategory) string {
	if dept, ok := departments[category]; ok {
		return dept
	}
	return DefaultDepartment
}

// Prediction bundles the classifier outputs for one issue.
type Prediction struct {
	Category      models.IssueCategory `json:"category"`
	Severity      models.IssueSeverity `json:"severity"`
	Department    string               `json:"department"`
	PriorityScore float64              `json:"priority_score"`
}

// Predict runs the full heuristic pipeline on a title and description.
func Predict(title, description string) Prediction {
	category := PredictCategory(title, description)
	severity := PredictSeverity(title, description)
	return Prediction{
		Category:      category,
		Severity:      severity,
		Department:    Department(category),
		PriorityScore: PriorityScore(severity, category),
	}
}
