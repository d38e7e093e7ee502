package framebuffer

import (
	"fmt"
	"os"
)

const (
	EnvScale     = "FBCONFIG_SCALE"
	EnvImagePath = "FBCONFIG_IMAGE_PATH"
)

// ConfigFromEnv applies the FBCONFIG_* environment variables on top of defaults.
// Unset or empty variables leave the corresponding field untouched; use
// FBCONFIG_SCALE=none to clear a scale override.
func ConfigFromEnv(defaults Config) (Config, error) {
	cfg := defaults
	if raw := os.Getenv(EnvScale); raw != "" {
		scale, err := ParseScale(raw)
		if err != nil {
			return defaults, fmt.Errorf("%s must be one of none, 1x, 2x, 3x, 4x (got %q): %w", EnvScale, raw, err)
		}
		cfg = cfg.WithScale(scale)
	}
	if path := os.Getenv(EnvImagePath); path != "" {
		cfg = cfg.WithImagePath(path)
	}
	return cfg, nil
}
