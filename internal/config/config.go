// Package config carga la configuración desde el entorno, con un
// .env opcional para desarrollo.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Backends de persistencia soportados para los documentos locales
// (snapshot de sesión y cache de asociaciones).
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	Addr            string
	UpstreamBaseURL string
	UpstreamTimeout time.Duration

	Storage       string // memory | file | postgres | redis
	StorageDir    string // backend file
	PostgresDSN   string // backend postgres
	RedisAddr     string // backend redis
	RedisPassword string
}

// Load lee el entorno. El .env nunca pisa variables ya definidas, así
// que en producción alcanza con no tener el archivo.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:            ":" + getEnv("PORT", "8080"),
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:8081/api"),
		UpstreamTimeout: getDuration("UPSTREAM_TIMEOUT", 15*time.Second),

		Storage:       getEnv("STORAGE_BACKEND", StorageFile),
		StorageDir:    getEnv("STORAGE_DIR", "./data"),
		PostgresDSN:   getEnv("DB_DSN", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
