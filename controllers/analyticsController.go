package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"civic-reporter-be/engine"
	"civic-reporter-be/models"
	"civic-reporter-be/store"
)

type AnalyticsController struct {
	Store store.Store
	Log   *slog.Logger
}

func NewAnalyticsController(s store.Store, log *slog.Logger) *AnalyticsController {
	return &AnalyticsController{Store: s, Log: log}
}

// Summary returns the dashboard counters: totals by status, category,
// severity, and department, the ten most recent issues, and the
// average resolution time in days.
func (an *AnalyticsController) Summary(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issues, err := an.Store.ListIssues(ctx, store.IssueFilter{})
	if err != nil {
		an.Log.Error("listing issues", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}

	statusCounts := map[models.IssueStatus]int{}
	byCategory := map[models.IssueCategory]int{}
	bySeverity := map[models.IssueSeverity]int{}
	byDepartment := map[string]int{}

	var resolutionSum time.Duration
	resolvedWithTime := 0

	for _, issue := range issues {
		statusCounts[issue.Status]++
		byCategory[issue.Category]++
		bySeverity[issue.Severity]++
		byDepartment[issue.Department]++

		if issue.ResolvedAt != nil {
			resolutionSum += issue.ResolvedAt.Sub(issue.CreatedAt)
			resolvedWithTime++
		}
	}

	var avgResolutionDays *float64
	if resolvedWithTime > 0 {
		days := resolutionSum.Hours() / 24 / float64(resolvedWithTime)
		avgResolutionDays = &days
	}

	recent := issues
	if len(recent) > 10 {
		recent = recent[:10]
	}
	recentFormatted := make([]gin.H, 0, len(recent))
	for _, issue := range recent {
		recentFormatted = append(recentFormatted, gin.H{
			"id":         issue.ID,
			"title":      issue.Title,
			"category":   issue.Category,
			"severity":   issue.Severity,
			"status":     issue.Status,
			"created_at": issue.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"total_issues":        len(issues),
		"pending":             statusCounts[models.StatusPending],
		"in_progress":         statusCounts[models.StatusInProgress],
		"resolved":            statusCounts[models.StatusResolved],
		"rejected":            statusCounts[models.StatusRejected],
		"by_category":         byCategory,
		"by_severity":         bySeverity,
		"by_department":       byDepartment,
		"recent_issues":       recentFormatted,
		"resolution_time_avg": avgResolutionDays,
	})
}

// Hotspots returns the grid-cell hotspot report plus forward-looking
// predictions.
func (an *AnalyticsController) Hotspots(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issues, err := an.Store.ListIssues(ctx, store.IssueFilter{})
	if err != nil {
		an.Log.Error("listing issues", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}

	report := engine.IdentifyHotspots(issues)
	c.JSON(http.StatusOK, gin.H{
		"hotspots":        report.Hotspots,
		"total_hotspots":  report.TotalHotspots,
		"high_risk_areas": report.HighRiskAreas,
		"predictions":     engine.GeneratePredictions(issues),
	})
}

// Trends returns weekly and per-category trend data.
func (an *AnalyticsController) Trends(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issues, err := an.Store.ListIssues(ctx, store.IssueFilter{})
	if err != nil {
		an.Log.Error("listing issues", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}

	c.JSON(http.StatusOK, engine.AnalyzeTrends(issues))
}
