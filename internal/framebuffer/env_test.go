package framebuffer

import (
	"errors"
	"testing"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvScale, "2x")
	t.Setenv(EnvImagePath, "/env/shot.png")

	cfg, err := ConfigFromEnv(Default())
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Scale() != Scale2x {
		t.Errorf("Scale() = %v, want %v", cfg.Scale(), Scale2x)
	}
	if cfg.ImagePath() != "/env/shot.png" {
		t.Errorf("ImagePath() = %q, want %q", cfg.ImagePath(), "/env/shot.png")
	}
}

func TestConfigFromEnvEmptyKeepsDefaults(t *testing.T) {
	t.Setenv(EnvScale, "")
	t.Setenv(EnvImagePath, "")
	defaults := Default().WithScale(Scale3x)

	cfg, err := ConfigFromEnv(defaults)
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg != defaults {
		t.Errorf("ConfigFromEnv = %v, want %v", cfg, defaults)
	}
}

func TestConfigFromEnvNoneClearsScale(t *testing.T) {
	t.Setenv(EnvScale, "none")
	cfg, err := ConfigFromEnv(Default().WithScale(Scale4x))
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Scale() != ScaleNone {
		t.Errorf("Scale() = %v, want %v", cfg.Scale(), ScaleNone)
	}
}

func TestConfigFromEnvInvalidScale(t *testing.T) {
	t.Setenv(EnvScale, "huge")
	defaults := Default()
	cfg, err := ConfigFromEnv(defaults)
	if !errors.Is(err, ErrUnknownScale) {
		t.Errorf("err = %v, want ErrUnknownScale", err)
	}
	if cfg != defaults {
		t.Errorf("ConfigFromEnv on error = %v, want defaults", cfg)
	}
}
