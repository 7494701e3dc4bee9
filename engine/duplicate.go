package engine

import (
	"math"
	"sort"
	"time"

	"civic-reporter-be/models"
)

const (
	// duplicateRadiusKm is where the geo score decays to zero.
	duplicateRadiusKm = 0.1
	// duplicateThreshold flags a combined score as a duplicate.
	duplicateThreshold = 0.65

	textWeight = 0.6
	geoWeight  = 0.4
)

const earthRadiusKm = 6371

// Haversine returns the great-circle distance in kilometers between
// two latitude/longitude points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlon1 := lon1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	rlon2 := lon2 * math.Pi / 180

	dlat := rlat2 - rlat1
	dlon := rlon2 - rlon1

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// DuplicateCandidate is one existing issue that scored above the
// duplicate threshold against the new report.
type DuplicateCandidate struct {
	IssueID         string    `json:"issue_id"`
	SimilarityScore float64   `json:"similarity_score"`
	DistanceMeters  float64   `json:"distance_meters"`
	TextSimilarity  float64   `json:"text_similarity"`
	ReportedAt      time.Time `json:"reported_at"`
}

type DuplicateReport struct {
	IsDuplicate     bool                 `json:"is_duplicate"`
	SimilarIssues   []DuplicateCandidate `json:"similar_issues"`
	SimilarityScore float64              `json:"similarity_score"`
	Confidence      float64              `json:"confidence"`
	Recommendation  string               `json:"recommendation"`
}

// CheckDuplicate scores a new report against existing issues of the
// same category that are not resolved. The combined score weighs text
// similarity at 0.6 and geographic proximity at 0.4, with the geo
// component decaying linearly to zero at 100 m. Scores above 0.65 are
// flagged; the top three matches are returned.
func CheckDuplicate(category models.IssueCategory, description string, lat, lng float64, existing []models.Issue) DuplicateReport {
	if len(existing) == 0 {
		return DuplicateReport{
			IsDuplicate:    false,
			SimilarIssues:  []DuplicateCandidate{},
			Confidence:     1.0,
			Recommendation: recommendationUnique,
		}
	}

	candidates := make([]DuplicateCandidate, 0)
	maxScore := 0.0

	for _, issue := range existing {
		if issue.Status == models.StatusResolved {
			continue
		}
		if issue.Category != category {
			continue
		}

		var exLat, exLng float64
		if issue.Latitude != nil {
			exLat = *issue.Latitude
		}
		if issue.Longitude != nil {
			exLng = *issue.Longitude
		}

		distance := Haversine(lat, lng, exLat, exLng)
		geoScore := 0.0
		if distance < duplicateRadiusKm {
			geoScore = 1.0 - distance/duplicateRadiusKm
		}

		textScore := TextSimilarity(description, issue.Description)
		combined := textWeight*textScore + geoWeight*geoScore

		if combined > maxScore {
			maxScore = combined
		}
		if combined > duplicateThreshold {
			candidates = append(candidates, DuplicateCandidate{
				IssueID:         issue.ID.Hex(),
				SimilarityScore: combined,
				DistanceMeters:  distance * 1000,
				TextSimilarity:  textScore,
				ReportedAt:      issue.CreatedAt,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].SimilarityScore > candidates[j].SimilarityScore
	})
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}

	isDuplicate := len(candidates) > 0
	report := DuplicateReport{
		IsDuplicate:     isDuplicate,
		SimilarIssues:   candidates,
		SimilarityScore: maxScore,
		Confidence:      0.8,
		Recommendation:  recommendationUnique,
	}
	if isDuplicate {
		report.Confidence = 0.9
		report.Recommendation = recommendationDuplicate
	}
	return report
}

const (
	recommendationDuplicate = "This appears to be a duplicate report. Consider updating the existing issue."
	recommendationUnique    = "This is a new unique issue."
)
