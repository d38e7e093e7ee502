package framebuffer

import (
	"fmt"
	"path/filepath"

	"github.com/rook-computer/fbconfig/internal/encoder"
)

const (
	// DefaultImagePath is where still images are written when nothing else is configured.
	DefaultImagePath = "/tmp/framebuffer/image.png"
	// DiagnosticsDir is the directory below a simulator root that receives capture artifacts.
	DiagnosticsDir = "diagnostics"
)

// Diagnostic is any record backed by a file on disk.
type Diagnostic interface {
	Path() string
}

// Simulator exposes the private working directory of a simulator instance.
type Simulator interface {
	RootDirectory() string
}

// Config is the capture configuration of a simulator framebuffer.
//
// Config is an immutable value: the With* methods return modified copies and
// never touch the receiver. Two configs are equal iff all fields are equal, so
// Config can be compared with == and used as a map key.
type Config struct {
	scale     Scale
	encoder   encoder.Config
	imagePath string
}

// New builds a Config. A nil enc is replaced by encoder.Default(), an empty
// imagePath by DefaultImagePath, and a scale outside the enumeration by ScaleNone.
// A non-finite encoder FPS is normalized, see encoder.Config.Normalized.
func New(scale Scale, enc *encoder.Config, imagePath string) Config {
	if !scale.Valid() {
		scale = ScaleNone
	}
	e := encoder.Default()
	if enc != nil {
		e = enc.Normalized()
	}
	if imagePath == "" {
		imagePath = DefaultImagePath
	}
	return Config{scale: scale, encoder: e, imagePath: imagePath}
}

// Default returns the canonical configuration: unscaled, default encoder, default image path.
func Default() Config {
	return New(ScaleNone, nil, DefaultImagePath)
}

func (c Config) Scale() Scale            { return c.scale }
func (c Config) Encoder() encoder.Config { return c.encoder }
func (c Config) ImagePath() string       { return c.imagePath }

// WithScale returns a copy with the scale replaced. ScaleNone clears the override.
func (c Config) WithScale(scale Scale) Config {
	if !scale.Valid() {
		scale = ScaleNone
	}
	c.scale = scale
	return c
}

// ScaleValue returns the multiplier for the configured scale, if any.
func (c Config) ScaleValue() (float64, bool) {
	return c.scale.Value()
}

// ScaleSize multiplies both dimensions of size by the scale multiplier.
// The multipliers are integral, so the result is exact; no rounding is applied.
func (c Config) ScaleSize(size Size) Size {
	multiplier, ok := c.ScaleValue()
	if !ok {
		return size
	}
	return Size{Width: size.Width * multiplier, Height: size.Height * multiplier}
}

// WithEncoder returns a copy with the encoder replaced, normalized as in New.
func (c Config) WithEncoder(enc encoder.Config) Config {
	c.encoder = enc.Normalized()
	return c
}

// WithImagePath returns a copy writing still images to path.
// The path is used as given; an empty path keeps the current one.
func (c Config) WithImagePath(path string) Config {
	if path == "" {
		return c
	}
	c.imagePath = path
	return c
}

// WithImageDiagnostic is WithImagePath(diagnostic.Path()).
func (c Config) WithImageDiagnostic(diagnostic Diagnostic) Config {
	return c.WithImagePath(diagnostic.Path())
}

// InSimulator re-roots the image path and the encoder output under the
// simulator's diagnostics directory, so concurrent simulators never share
// artifact paths. File names are kept.
func (c Config) InSimulator(simulator Simulator) Config {
	dir := filepath.Join(simulator.RootDirectory(), DiagnosticsDir)
	name := filepath.Base(c.imagePath)
	if name == "." || name == string(filepath.Separator) {
		name = filepath.Base(DefaultImagePath)
	}
	c.imagePath = filepath.Join(dir, name)
	c.encoder = c.encoder.InDirectory(dir)
	return c
}

func (c Config) String() string {
	return fmt.Sprintf("Scale %s | Encoder %s | Image Path %s", c.scale, c.encoder, c.imagePath)
}
