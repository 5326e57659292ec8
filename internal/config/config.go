// Package config provides application configuration loaded from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/diewo77/devis-board/i18n"
)

// Config holds all application configuration.
type Config struct {
	API      APIConfig
	Server   ServerConfig
	Database DatabaseConfig
	App      AppConfig
}

// APIConfig describes the remote quotes API the client talks to.
type APIConfig struct {
	BaseURL string
	// Timeout per request; zero means none.
	Timeout time.Duration
}

// ServerConfig holds the dev API server settings.
type ServerConfig struct {
	Port         string
	BasePath     string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	IdleTimeout  int // seconds
}

// DatabaseConfig selects the dev API storage.
type DatabaseConfig struct {
	Driver string // sqlite or postgres
	DSN    string
	Debug  bool // log every SQL statement
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Dev        bool
	Migrations bool
	Lang       string
}

const DefaultAPIBaseURL = "http://localhost:3001/api"

// Load reads configuration from environment variables.
// It uses sensible defaults for local development.
func Load() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", getEnv("PUBLIC_API_BASE_URL", DefaultAPIBaseURL)),
			Timeout: time.Duration(getEnvInt("API_TIMEOUT", 0)) * time.Second,
		},
		Server: ServerConfig{
			Port:         getEnv("PORT", "3001"),
			BasePath:     "/" + strings.Trim(getEnv("API_BASE_PATH", "/api"), "/"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			Driver: strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			DSN:    getEnv("DATABASE_DSN", "devis.db"),
			Debug:  getEnvBool("DB_DEBUG", false),
		},
		App: AppConfig{
			Dev:        getEnvBool("DEV", true),
			Migrations: getEnvBool("MIGRATIONS", true),
			Lang:       i18n.DetectLanguage(getEnv("DEVIS_LANG", os.Getenv("LANG"))),
		},
	}
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvBool returns the boolean value of an environment variable or a default.
// Accepts "1", "true", "yes" as true; everything else is false.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "1" || value == "true" || value == "yes"
}
