package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "TestSecretKeyPOS1945"

type Config struct {
	Port            string
	GinMode         string
	LogLevel        string
	HistoryDSN      string
	MenuFile        string
	SeedHistory     bool
	LegacyDetailTax bool
	OperatorPIN     string
	JWTSecret       string
	TokenTTL        time.Duration
	CORSOrigin      string
	RateLimit       int
	RateWindow      time.Duration

	// Warnings dikumpulkan saat load karena logger belum siap;
	// main mencetaknya setelah utils.InitLogger.
	Warnings []string
}

// Load membaca .env (jika ada) lalu environment.
func Load() *Config {
	envErr := godotenv.Load()
	cfg := FromEnv()
	if envErr != nil {
		cfg.Warnings = append([]string{fmt.Sprintf(".env file not found or error loading: %v", envErr)}, cfg.Warnings...)
	}
	return cfg
}

// FromEnv membaca konfigurasi dari environment saja, tanpa menyentuh .env.
func FromEnv() *Config {
	env := &envReader{}
	cfg := &Config{
		Port:            env.str("PORT", "8080"),
		GinMode:         env.str("GIN_MODE", "debug"),
		LogLevel:        env.str("LOG_LEVEL", "info"),
		HistoryDSN:      env.str("HISTORY_DSN", "file::memory:?cache=shared"),
		MenuFile:        env.str("MENU_FILE", ""),
		SeedHistory:     env.bool("SEED_HISTORY", true),
		LegacyDetailTax: env.bool("LEGACY_DETAIL_TAX", false),
		OperatorPIN:     env.str("OPERATOR_PIN", ""),
		JWTSecret:       env.str("JWT_SECRET", defaultJWTSecret),
		TokenTTL:        env.duration("TOKEN_TTL", 12*time.Hour),
		CORSOrigin:      env.str("CORS_ORIGIN", "http://127.0.0.1:5500"),
		RateLimit:       env.int("RATE_LIMIT", 50),
		RateWindow:      env.duration("RATE_WINDOW", time.Second),
	}

	if cfg.OperatorPIN != "" && cfg.JWTSecret == defaultJWTSecret {
		env.warn("OPERATOR_PIN is set but JWT_SECRET uses the development default")
	}
	if cfg.LegacyDetailTax {
		env.warn("LEGACY_DETAIL_TAX enabled: history details add 5%% on top of tax-inclusive totals")
	}

	cfg.Warnings = env.warnings
	return cfg
}

// AuthEnabled true kalau operator lock aktif.
func (c *Config) AuthEnabled() bool {
	return c.OperatorPIN != ""
}

// envReader membaca env dan mencatat nilai yang tidak valid.
type envReader struct {
	warnings []string
}

func (e *envReader) warn(format string, args ...interface{}) {
	e.warnings = append(e.warnings, fmt.Sprintf(format, args...))
}

func (e *envReader) str(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (e *envReader) bool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.warn("%s=%q is not a boolean, using %v", key, v, def)
		return def
	}
	return b
}

func (e *envReader) int(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		e.warn("%s=%q is not a positive integer, using %d", key, v, def)
		return def
	}
	return n
}

func (e *envReader) duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		e.warn("%s=%q is not a valid duration, using %s", key, v, def)
		return def
	}
	return d
}
