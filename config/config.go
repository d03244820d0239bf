package config

import (
	"fmt"
	"os"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// Config carries everything handlers need: the shared mongo client plus the
// secrets and knobs read from the environment at startup.
type Config struct {
	Port           string
	MongoURI       string
	DBName         string
	JWTSecret      string
	AllowedOrigins []string

	MongoClient *mongo.Client
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		MongoURI:  getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:    getEnv("DB_NAME", "eventmanager"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, strings.TrimSpace(o))
		}
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:3000"}
	}

	return cfg, nil
}

// DB returns the application database handle.
func (c *Config) DB() *mongo.Database {
	return c.MongoClient.Database(c.DBName)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
