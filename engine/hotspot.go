package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"

	"civic-reporter-be/models"
)

// Hotspot is a grid cell whose issue count reached the 90th
// percentile of all cell counts. Cells are lat/lng rounded to three
// decimals, roughly 100 m.
type Hotspot struct {
	Latitude          float64                      `json:"latitude"`
	Longitude         float64                      `json:"longitude"`
	IssueCount        int                          `json:"issue_count"`
	DominantCategory  models.IssueCategory         `json:"dominant_category"`
	RiskLevel         string                       `json:"risk_level"`
	CategoryBreakdown map[models.IssueCategory]int `json:"category_breakdown"`
}

type HotspotReport struct {
	Hotspots      []Hotspot `json:"hotspots"`
	TotalHotspots int       `json:"total_hotspots"`
	HighRiskAreas int       `json:"high_risk_areas"`
	Threshold     float64   `json:"threshold"`
}

// IdentifyHotspots buckets located issues into the grid, takes the
// 90th percentile of per-cell counts as the threshold, and reports
// cells at or above it. Counts beyond 1.5x the threshold are tagged
// "high", the rest "moderate". Issues without coordinates are skipped.
func IdentifyHotspots(issues []models.Issue) HotspotReport {
	cellCounts := make(map[string]int)
	cellCategories := make(map[string]map[models.IssueCategory]int)

	for _, issue := range issues {
		if issue.Latitude == nil || issue.Longitude == nil {
			continue
		}
		key := gridKey(*issue.Latitude, *issue.Longitude)
		cellCounts[key]++
		if cellCategories[key] == nil {
			cellCategories[key] = make(map[models.IssueCategory]int)
		}
		cellCategories[key][issue.Category]++
	}

	if len(cellCounts) == 0 {
		return HotspotReport{Hotspots: []Hotspot{}}
	}

	counts := make([]float64, 0, len(cellCounts))
	for _, count := range cellCounts {
		counts = append(counts, float64(count))
	}
	threshold, err := stats.Percentile(counts, 90)
	if err != nil {
		// Single-cell input; every cell qualifies.
		threshold = counts[0]
	}

	hotspots := make([]Hotspot, 0)
	highRisk := 0
	for key, count := range cellCounts {
		if float64(count) < threshold {
			continue
		}
		lat, lng := parseGridKey(key)
		risk := "moderate"
		if float64(count) > threshold*1.5 {
			risk = "high"
			highRisk++
		}
		hotspots = append(hotspots, Hotspot{
			Latitude:          lat,
			Longitude:         lng,
			IssueCount:        count,
			DominantCategory:  dominantCategory(cellCategories[key]),
			RiskLevel:         risk,
			CategoryBreakdown: cellCategories[key],
		})
	}

	sort.SliceStable(hotspots, func(i, j int) bool {
		return hotspots[i].IssueCount > hotspots[j].IssueCount
	})

	total := len(hotspots)
	if len(hotspots) > 10 {
		hotspots = hotspots[:10]
	}

	return HotspotReport{
		Hotspots:      hotspots,
		TotalHotspots: total,
		HighRiskAreas: highRisk,
		Threshold:     threshold,
	}
}

func gridKey(lat, lng float64) string {
	return fmt.Sprintf("%.3f,%.3f", lat, lng)
}

func parseGridKey(key string) (float64, float64) {
	parts := strings.SplitN(key, ",", 2)
	lat, _ := strconv.ParseFloat(parts[0], 64)
	lng, _ := strconv.ParseFloat(parts[1], 64)
	return lat, lng
}

func dominantCategory(breakdown map[models.IssueCategory]int) models.IssueCategory {
	var best models.IssueCategory
	max := -1
	for category, count := range breakdown {
		if count > max || (count == max && category < best) {
			max = count
			best = category
		}
	}
	return best
}
