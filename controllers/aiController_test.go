package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civic-reporter-be/store"
)

func aiRouter(s store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ai := NewAIController(s, testLogger())
	r := gin.New()
	r.POST("/api/ai/predict", ai.Predict)
	r.POST("/api/ai/suggestions", ai.Suggestions)
	r.POST("/api/ai/duplicate-check", ai.DuplicateCheck)
	r.POST("/api/ai/classify", ai.Classify)
	r.POST("/api/ai/solution", ai.Solution)
	return r
}

func TestPredictEndpoint(t *testing.T) {
	r := aiRouter(store.NewMemory())

	w := doJSON(r, http.MethodPost, "/api/ai/predict", gin.H{
		"title":       "Water pipe leaking badly",
		"description": "Continuous water leakage flooding the street",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Water Supply", resp["category"])
	assert.NotEmpty(t, resp["severity"])
	assert.NotEmpty(t, resp["department"])
	assert.Greater(t, resp["priority_score"], 0.0)
}

func TestPredictEndpointValidation(t *testing.T) {
	r := aiRouter(store.NewMemory())

	w := doJSON(r, http.MethodPost, "/api/ai/predict", gin.H{"title": "only a title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSuggestionsEndpoint(t *testing.T) {
	r := aiRouter(store.NewMemory())

	w := doJSON(r, http.MethodPost, "/api/ai/suggestions", gin.H{"partial_text": "street"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Suggestions)
	for _, s := range resp.Suggestions {
		assert.Contains(t, s, "Street")
	}
}

func TestDuplicateCheckEndpoint(t *testing.T) {
	s := store.NewMemory()
	issueR := issueRouter(s)
	createPothole(t, issueR)

	r := aiRouter(s)
	w := doJSON(r, http.MethodPost, "/api/ai/duplicate-check", gin.H{
		"category":    "Road & Infrastructure",
		"description": "Deep pothole causing accidents near the market",
		"latitude":    0.0,
		"longitude":   0.0,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["is_duplicate"])
	assert.NotEmpty(t, resp["similar_issues"])
}

func TestClassifyEndpointRejectsBadBase64(t *testing.T) {
	r := aiRouter(store.NewMemory())

	w := doJSON(r, http.MethodPost, "/api/ai/classify", gin.H{
		"image_base64": "!!!not base64!!!",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSolutionEndpoint(t *testing.T) {
	r := aiRouter(store.NewMemory())

	t.Run("known type", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/ai/solution", gin.H{
			"category":    "pothole",
			"subcategory": "large",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["solution"])
		assert.NotEmpty(t, resp["estimated_cost"])
	})

	t.Run("subcategory defaults to medium", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/ai/solution", gin.H{
			"category": "pothole",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
