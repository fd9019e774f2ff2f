package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/casekit/launcher"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Result item presentation.
	IconDir        string
	MultilineTitle string

	// Input limits.
	MaxInputSize int64
}

// defaultMaxInputSize bounds queries and subjects to 1 MiB.
const defaultMaxInputSize = 1 << 20

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from CASEKIT_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		IconDir:        envString("CASEKIT_ICON_DIR", launcher.DefaultIconDir),
		MultilineTitle: envString("CASEKIT_MULTILINE_TITLE", launcher.DefaultMultilineTitle),
		MaxInputSize:   envInt64("CASEKIT_MAX_INPUT_SIZE", defaultMaxInputSize),
	}
}

func envString(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}
