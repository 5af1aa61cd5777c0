package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Settings
	AppPort string
	HOST    string

	// JWT Settings
	JWTSecret     string
	JWTExpiration time.Duration

	// Simulated latency of the wallet login flow.
	LoginDelay time.Duration

	// CORS Settings
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
}

func LoadConfig() *Config {
	// A missing .env is fine; everything has a default.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	config := &Config{
		AppPort: getEnv("PORT", "8080"),
		HOST:    getEnv("HOST", "0.0.0.0"),

		JWTSecret:     getEnv("JWT_SECRET", "fleachain-dev-secret"),
		JWTExpiration: getDuration("JWT_EXPIRES_IN", 72*time.Hour),

		LoginDelay: getDuration("LOGIN_DELAY", time.Second),

		CORSAllowOrigins: []string{"*"},
		CORSAllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		CORSAllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}

	return config
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid duration for %s: %q, using default %s", key, v, fallback)
		return fallback
	}
	return d
}
