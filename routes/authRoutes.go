package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"civic-reporter-be/controllers"
	"civic-reporter-be/middlewares"
)

// AuthRoutes sets up the authentication routes
func AuthRoutes(r *gin.Engine, ac *controllers.AuthController, log *slog.Logger) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
		auth.GET("/me", middlewares.AuthMiddleware(log), ac.Me)
	}
}
