package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// CookieName is the cookie carrying the bearer token between browser and proxy.
const CookieName = "jwt"

type Config struct {
	Port            string
	UpstreamBaseURL string
	FrontendOrigin  string
	UpstreamTimeout time.Duration
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			panic("Error loading .env file")
		}
		// no .env, environment variables only
	}
	return Config{
		Port:            getEnv("PORT", "8080"),
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:3001"),
		FrontendOrigin:  getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),
		UpstreamTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
