package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"civic-reporter-be/controllers"
	"civic-reporter-be/middlewares"
)

// IssueRoutes sets up the issue CRUD and history routes. The rate
// limiter guards creation only when a redis client is configured.
func IssueRoutes(r *gin.Engine, ic *controllers.IssueController, redisClient *redis.Client, dailyLimit int, log *slog.Logger) {
	issue := r.Group("/api/issues")
	{
		createHandlers := []gin.HandlerFunc{middlewares.AuthMiddleware(log)}
		if redisClient != nil {
			createHandlers = append(createHandlers, middlewares.IssueRateLimiter(redisClient, dailyLimit))
		}
		createHandlers = append(createHandlers, ic.Create)

		issue.POST("", createHandlers...)
		issue.GET("", ic.List)
		issue.GET("/:id", ic.Get)
		issue.PUT("/:id", middlewares.AuthMiddleware(log), ic.Update)
		issue.GET("/:id/history", ic.History)
	}
}
