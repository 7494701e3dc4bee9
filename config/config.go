package config

import (
	"os"
)

// Config collects the environment-driven settings. Everything has a
// development default; MONGODB_URI and REDIS_ADDRESS are optional and
// switch on the corresponding backends when set.
type Config struct {
	Port          string
	GinMode       string
	LogLevel      string
	JWTSecret     string
	MongoURI      string
	MongoDatabase string
	RedisAddress  string
	RedisPassword string
	// IssueDailyLimit caps issue creation per user per day when
	// redis is configured.
	IssueDailyLimit int
}

func Load() Config {
	return Config{
		Port:            envOr("PORT", "8000"),
		GinMode:         envOr("GIN_MODE", "debug"),
		LogLevel:        envOr("LOG_LEVEL", "info"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		MongoURI:        os.Getenv("MONGODB_URI"),
		MongoDatabase:   envOr("MONGODB_DATABASE", "civic_reporter"),
		RedisAddress:    os.Getenv("REDIS_ADDRESS"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		IssueDailyLimit: 20,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
