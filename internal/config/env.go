package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	// DBDSN overrides the default local MySQL DSN when set.
	DBDSN string

	// PresetBackend selects where the preset slot lives: "mysql" (default),
	// "redis" or "memory".
	PresetBackend string
	RedisURL      string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	backend := strings.ToLower(strings.TrimSpace(os.Getenv("PRESET_BACKEND")))
	if backend == "" {
		backend = "mysql"
	}

	return Env{
		AppAddr:       appAddr,
		GinMode:       strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:         strings.TrimSpace(os.Getenv("DB_DSN")),
		PresetBackend: backend,
		RedisURL:      strings.TrimSpace(os.Getenv("REDIS_URL")),
	}
}
