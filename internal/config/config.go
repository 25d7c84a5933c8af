package config

import (
	"os"
	"time"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	JWTSecret      string
	TokenTTL       time.Duration
	AllowedOrigins []string
	DevEndpoints   bool
}

func Load() *Config {
	return &Config{
		Port:      getenv("PORT", "8080"),
		MongoURI:  getenv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:   getenv("MONGO_DB", "pet_qa_forum"),
		JWTSecret: getenv("JWT_SECRET", ""),
		TokenTTL:  getduration("TOKEN_TTL", 24*time.Hour),
		AllowedOrigins: []string{
			getenv("CLIENT_ORIGIN", "http://localhost:3000"),
			"http://localhost:5173",
		},
		DevEndpoints: getenv("DEV_ENDPOINTS", "false") == "true",
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
