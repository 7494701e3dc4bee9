package controllers

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"civic-reporter-be/engine"
	"civic-reporter-be/models"
	"civic-reporter-be/store"
)

type AIController struct {
	Store store.Store
	Log   *slog.Logger
}

func NewAIController(s store.Store, log *slog.Logger) *AIController {
	return &AIController{Store: s, Log: log}
}

// Predict returns category, severity, department, and priority for a
// title and description without storing anything.
func (ai *AIController) Predict(c *gin.Context) {
	var input struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, engine.Predict(input.Title, input.Description))
}

// Suggestions returns auto-suggestions for a partial issue title.
func (ai *AIController) Suggestions(c *gin.Context) {
	var input struct {
		PartialText string `json:"partial_text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": engine.Suggestions(input.PartialText)})
}

// DuplicateCheck scores a prospective report against stored issues.
func (ai *AIController) DuplicateCheck(c *gin.Context) {
	var input struct {
		Category    string  `json:"category" binding:"required"`
		Description string  `json:"description"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issues, err := ai.Store.ListIssues(ctx, store.IssueFilter{})
	if err != nil {
		ai.Log.Error("listing issues", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}

	report := engine.CheckDuplicate(
		models.IssueCategory(input.Category),
		input.Description,
		input.Latitude,
		input.Longitude,
		issues,
	)
	c.JSON(http.StatusOK, report)
}

// Classify runs image feature extraction and keyword refinement on a
// base64-encoded photo.
func (ai *AIController) Classify(c *gin.Context) {
	var input struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageData, err := base64.StdEncoding.DecodeString(input.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid base64 image data"})
		return
	}

	c.JSON(http.StatusOK, engine.ClassifyImage(imageData, input.Description))
}

// Solution returns the suggested remediation plan for an issue type.
func (ai *AIController) Solution(c *gin.Context) {
	var input struct {
		Category    string `json:"category" binding:"required"`
		Subcategory string `json:"subcategory"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Subcategory == "" {
		input.Subcategory = "medium"
	}
	c.JSON(http.StatusOK, engine.SuggestSolution(input.Category, input.Subcategory))
}
