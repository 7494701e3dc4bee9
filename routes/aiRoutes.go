package routes

import (
	"github.com/gin-gonic/gin"

	"civic-reporter-be/controllers"
)

// AIRoutes sets up the prediction and suggestion routes
func AIRoutes(r *gin.Engine, ai *controllers.AIController) {
	group := r.Group("/api/ai")
	{
		group.POST("/predict", ai.Predict)
		group.POST("/suggestions", ai.Suggestions)
		group.POST("/duplicate-check", ai.DuplicateCheck)
		group.POST("/classify", ai.Classify)
		group.POST("/solution", ai.Solution)
	}
}
