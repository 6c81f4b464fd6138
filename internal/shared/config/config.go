package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"recruit-backend/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port                string
	Env                 string
	LogLevel            string
	CORSAllowOrigin     []string
	DatabaseURL         string
	UpstreamAPIURL      string
	UpstreamTimeout     time.Duration
	BreakerEnabled      bool
	RateLimitRPS        float64
	RateLimitBurst      int
	Timezone            string
	DefaultTotalScore   int
	DefaultPassingScore int
}

var defaults = map[string]any{
	"PORT":                  "8080",
	"ENV":                   "dev",
	"LOG_LEVEL":             "info",
	"CORS_ALLOW_ORIGINS":    "http://localhost:5173",
	"DATABASE_URL":          "",
	"UPSTREAM_API_URL":      "",
	"UPSTREAM_TIMEOUT":      "10s",
	"BREAKER_ENABLED":       true,
	"RATE_LIMIT_RPS":        20.0,
	"RATE_LIMIT_BURST":      40,
	"TIMEZONE":              "Asia/Seoul",
	"DEFAULT_TOTAL_SCORE":   50,
	"DEFAULT_PASSING_SCORE": 30,
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads configuration through v, so callers (cobra commands, tests)
// can bind flags or overrides before loading.
func LoadFrom(v *viper.Viper) Config {
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(v, ".env", "cmd/.env")

	env := normalizeEnv(v.GetString("ENV"))
	dbURL := strings.TrimSpace(v.GetString("DATABASE_URL"))
	if env == "production" && dbURL == "" && strings.TrimSpace(v.GetString("UPSTREAM_API_URL")) == "" {
		telemetry.Warn("config.missing_backend", map[string]any{
			"message": "DATABASE_URL or UPSTREAM_API_URL is required in production",
		})
	}

	timeout := v.GetDuration("UPSTREAM_TIMEOUT")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return Config{
		Port:                v.GetString("PORT"),
		Env:                 env,
		LogLevel:            v.GetString("LOG_LEVEL"),
		CORSAllowOrigin:     splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		DatabaseURL:         dbURL,
		UpstreamAPIURL:      strings.TrimRight(strings.TrimSpace(v.GetString("UPSTREAM_API_URL")), "/"),
		UpstreamTimeout:     timeout,
		BreakerEnabled:      v.GetBool("BREAKER_ENABLED"),
		RateLimitRPS:        v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:      v.GetInt("RATE_LIMIT_BURST"),
		Timezone:            v.GetString("TIMEZONE"),
		DefaultTotalScore:   positiveOr(v.GetInt("DEFAULT_TOTAL_SCORE"), 50),
		DefaultPassingScore: positiveOr(v.GetInt("DEFAULT_PASSING_SCORE"), 30),
	}
}

// Location resolves the configured timezone, falling back to UTC.
func (c Config) Location() *time.Location {
	if strings.TrimSpace(c.Timezone) == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		telemetry.Warn("config.unknown_timezone", map[string]any{"timezone": c.Timezone})
		return time.UTC
	}
	return loc
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func positiveOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
