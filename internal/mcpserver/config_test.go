package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearCASEKITEnv clears all CASEKIT_* env vars to isolate tests from the ambient environment.
func clearCASEKITEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CASEKIT_ICON_DIR", "CASEKIT_MULTILINE_TITLE", "CASEKIT_MAX_INPUT_SIZE",
	} {
		t.Setenv(key, "")
	}
}

// withConfig swaps the active configuration for the duration of the test.
func withConfig(t *testing.T, c *serverConfig) {
	t.Helper()
	origCfg := cfg
	cfg = c
	t.Cleanup(func() { cfg = origCfg })
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearCASEKITEnv(t)

	c := loadConfig()

	assert.Equal(t, "./icons", c.IconDir)
	assert.Equal(t, "Multiline output", c.MultilineTitle)
	assert.Equal(t, int64(1024*1024), c.MaxInputSize)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearCASEKITEnv(t)
	t.Setenv("CASEKIT_ICON_DIR", "/opt/casekit/icons")
	t.Setenv("CASEKIT_MULTILINE_TITLE", "(multi-line)")
	t.Setenv("CASEKIT_MAX_INPUT_SIZE", "4096")

	c := loadConfig()

	assert.Equal(t, "/opt/casekit/icons", c.IconDir)
	assert.Equal(t, "(multi-line)", c.MultilineTitle)
	assert.Equal(t, int64(4096), c.MaxInputSize)
}

func TestLoadConfig_InvalidFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "not a number", value: "lots"},
		{name: "zero", value: "0"},
		{name: "negative", value: "-10"},
		{name: "fractional", value: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearCASEKITEnv(t)
			t.Setenv("CASEKIT_MAX_INPUT_SIZE", tt.value)

			c := loadConfig()
			assert.Equal(t, int64(defaultMaxInputSize), c.MaxInputSize)
		})
	}
}
