package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"civic-reporter-be/engine"
	"civic-reporter-be/models"
	"civic-reporter-be/store"
)

type IssueController struct {
	Store store.Store
	Log   *slog.Logger
}

func NewIssueController(s store.Store, log *slog.Logger) *IssueController {
	return &IssueController{Store: s, Log: log}
}

// Create runs the classifier pipeline on the submitted report, stores
// it, and writes the initial history entry.
func (ic *IssueController) Create(c *gin.Context) {
	var input struct {
		Title           string   `json:"title" binding:"required,max=200"`
		Description     string   `json:"description" binding:"required,max=1000"`
		Location        string   `json:"location" binding:"required,max=200"`
		ReporterName    string   `json:"reporter_name" binding:"required,max=100"`
		ReporterContact *string  `json:"reporter_contact,omitempty"`
		Latitude        *float64 `json:"latitude,omitempty"`
		Longitude       *float64 `json:"longitude,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prediction := engine.Predict(input.Title, input.Description)

	issue := models.Issue{
		ID:              primitive.NewObjectID(),
		Title:           input.Title,
		Description:     input.Description,
		Location:        input.Location,
		ReporterName:    input.ReporterName,
		ReporterContact: input.ReporterContact,
		Category:        prediction.Category,
		Severity:        prediction.Severity,
		Status:          models.StatusPending,
		Department:      prediction.Department,
		PriorityScore:   prediction.PriorityScore,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		CreatedAt:       time.Now(),
	}
	if userID, exists := c.Get("user_id"); exists {
		if reporterID, err := primitive.ObjectIDFromHex(userID.(string)); err == nil {
			issue.ReporterID = reporterID
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ic.Store.CreateIssue(ctx, &issue); err != nil {
		ic.Log.Error("creating issue", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create issue"})
		return
	}

	if err := ic.Store.AppendHistory(ctx, &models.StatusHistoryEntry{
		IssueID:   issue.ID,
		NewStatus: issue.Status,
		UpdatedBy: "System",
		Timestamp: issue.CreatedAt,
	}); err != nil {
		ic.Log.Error("appending history", "issue", issue.ID.Hex(), "error", err)
	}

	ic.Log.Info("issue created",
		"id", issue.ID.Hex(),
		"category", issue.Category,
		"severity", issue.Severity,
		"priority", issue.PriorityScore,
	)

	c.JSON(http.StatusCreated, issue)
}

// List returns issues with optional status/category/severity filters,
// newest first, capped by the limit parameter.
func (ic *IssueController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit < 1 || limit > 500 {
		limit = 100
	}

	filter := store.IssueFilter{
		Status:   models.IssueStatus(c.Query("status")),
		Category: models.IssueCategory(c.Query("category")),
		Severity: models.IssueSeverity(c.Query("severity")),
		Limit:    limit,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issues, err := ic.Store.ListIssues(ctx, filter)
	if err != nil {
		ic.Log.Error("listing issues", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}

	c.JSON(http.StatusOK, issues)
}

// Get retrieves an issue by its ID
func (ic *IssueController) Get(c *gin.Context) {
	issueID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issue, err := ic.Store.GetIssue(ctx, issueID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			ic.Log.Error("getting issue", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	c.JSON(http.StatusOK, issue)
}

// Update changes status, assignment, or admin notes. A history entry
// is appended only when the status actually changes.
func (ic *IssueController) Update(c *gin.Context) {
	issueID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	var input struct {
		Status     *string `json:"status,omitempty" binding:"omitempty,oneof=pending in_progress resolved rejected"`
		AssignedTo *string `json:"assigned_to,omitempty"`
		AdminNotes *string `json:"admin_notes,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := ic.Store.GetIssue(ctx, issueID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			ic.Log.Error("getting issue", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	update := store.IssueUpdate{
		AssignedTo: input.AssignedTo,
		AdminNotes: input.AdminNotes,
	}
	if input.Status != nil {
		status := models.IssueStatus(*input.Status)
		update.Status = &status
	}

	updated, err := ic.Store.UpdateIssue(ctx, issueID, update)
	if err != nil {
		ic.Log.Error("updating issue", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue"})
		return
	}

	if updated.Status != existing.Status {
		oldStatus := existing.Status
		if err := ic.Store.AppendHistory(ctx, &models.StatusHistoryEntry{
			IssueID:   issueID,
			OldStatus: &oldStatus,
			NewStatus: updated.Status,
			UpdatedBy: actor(c),
			Notes:     input.AdminNotes,
			Timestamp: time.Now(),
		}); err != nil {
			ic.Log.Error("appending history", "issue", issueID.Hex(), "error", err)
		}
		ic.Log.Info("issue status changed",
			"id", issueID.Hex(),
			"from", existing.Status,
			"to", updated.Status,
		)
	}

	c.JSON(http.StatusOK, updated)
}

// History returns the status history entries for an issue, oldest
// first.
func (ic *IssueController) History(c *gin.Context) {
	issueID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	entries, err := ic.Store.HistoryFor(ctx, issueID)
	if err != nil {
		ic.Log.Error("getting history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve history"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func actor(c *gin.Context) string {
	if role, exists := c.Get("role"); exists {
		if role == models.RoleAdmin {
			return "Admin"
		}
	}
	if userID, exists := c.Get("user_id"); exists {
		if id, ok := userID.(string); ok && id != "" {
			return id
		}
	}
	return "System"
}
