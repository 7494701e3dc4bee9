package main

import (
	"context"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"civic-reporter-be/config"
	"civic-reporter-be/controllers"
	"civic-reporter-be/routes"
	"civic-reporter-be/store"
)

func main() {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfg := config.Load()
	log := config.NewLogger(cfg.LogLevel)

	var st store.Store
	if cfg.MongoURI != "" {
		mongoStore, err := store.NewMongo(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.Error("connecting to mongodb", "error", err)
			os.Exit(1)
		}
		st = mongoStore
		log.Info("using mongodb store", "database", cfg.MongoDatabase)
	} else {
		st = store.NewMemory()
		log.Info("using in-memory store")
	}

	var redisClient *redis.Client
	if cfg.RedisAddress != "" {
		client, err := config.ConnectRedis(cfg)
		if err != nil {
			log.Error("connecting to redis", "error", err)
			os.Exit(1)
		}
		redisClient = client
		log.Info("connected to redis", "address", cfg.RedisAddress)
	}

	if err := seedDemoData(context.Background(), st, log); err != nil {
		log.Error("seeding demo data", "error", err)
		os.Exit(1)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.Default()
	r.Use(cors.Default())

	authController := controllers.NewAuthController(st, log)
	issueController := controllers.NewIssueController(st, log)
	aiController := controllers.NewAIController(st, log)
	analyticsController := controllers.NewAnalyticsController(st, log)

	routes.AuthRoutes(r, authController, log)
	routes.IssueRoutes(r, issueController, redisClient, cfg.IssueDailyLimit, log)
	routes.AIRoutes(r, aiController)
	routes.AnalyticsRoutes(r, analyticsController)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	log.Info("starting server", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
