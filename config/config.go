package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds process-level settings read from the environment.
type Config struct {
	Port           string
	DatabaseURL    string
	AllowedOrigins []string
}

// Load reads .env (if present) and the environment. DATABASE_URL is
// optional: without it the server runs with the round archive disabled.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, reading environment variables")
	}

	cfg := Config{
		Port:           os.Getenv("PORT"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		AllowedOrigins: []string{"http://localhost:3000"},
	}
	if cfg.Port == "" {
		cfg.Port = "4000"
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}
	return cfg
}
