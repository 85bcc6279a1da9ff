package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/erraggy/rad2oas/openapi"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Conversion defaults.
	Strict     bool
	Title      string
	APIVersion string
	Format     openapi.Format

	// Cache settings for parsed RAD inputs.
	CacheEnabled bool
	CacheMaxSize int
	CacheTTL     time.Duration

	// MaxInlineSize bounds inline content in bytes.
	MaxInlineSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from RAD2OAS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		Strict:        envBool("RAD2OAS_STRICT", false),
		Title:         envString("RAD2OAS_TITLE", openapi.DefaultTitle),
		APIVersion:    envString("RAD2OAS_API_VERSION", openapi.DefaultAPIVersion),
		Format:        envFormat("RAD2OAS_FORMAT", openapi.FormatJSON),
		CacheEnabled:  envBool("RAD2OAS_CACHE_ENABLED", true),
		CacheMaxSize:  envInt("RAD2OAS_CACHE_MAX_SIZE", 10),
		CacheTTL:      envDuration("RAD2OAS_CACHE_TTL", 15*time.Minute),
		MaxInlineSize: int64(envInt("RAD2OAS_MAX_INLINE_SIZE", 10*1024*1024)),
	}
}

func envString(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}

func envFormat(key string, fallback openapi.Format) openapi.Format {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := openapi.ParseFormat(v)
	if err != nil {
		slog.Warn("invalid format env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return f
}
