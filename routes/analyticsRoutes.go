package routes

import (
	"github.com/gin-gonic/gin"

	"civic-reporter-be/controllers"
)

// AnalyticsRoutes sets up the dashboard analytics routes
func AnalyticsRoutes(r *gin.Engine, an *controllers.AnalyticsController) {
	group := r.Group("/api/analytics")
	{
		group.GET("", an.Summary)
		group.GET("/hotspots", an.Hotspots)
		group.GET("/trends", an.Trends)
	}
}
