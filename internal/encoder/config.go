package encoder

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
)

// Default values for the video encoder.
const (
	DefaultTimescale = 1000
	DefaultFileType  = "mp4"
	DefaultFilePath  = "/tmp/framebuffer/video.mp4"
	DefaultFPS       = 60
	DefaultCodec     = "libx264"
)

// Options toggles encoder behaviour.
type Options uint8

const (
	// OptionAutorecord starts recording as soon as the framebuffer is attached.
	OptionAutorecord Options = 1 << iota
	// OptionImmediateFrameStart writes the first frame without waiting for a damage event.
	OptionImmediateFrameStart
	// OptionFinalFrame repeats the last frame when the recording stops.
	OptionFinalFrame
)

func (o Options) String() string {
	if o == 0 {
		return "none"
	}
	var parts []string
	if o&OptionAutorecord != 0 {
		parts = append(parts, "autorecord")
	}
	if o&OptionImmediateFrameStart != 0 {
		parts = append(parts, "immediate-frame-start")
	}
	if o&OptionFinalFrame != 0 {
		parts = append(parts, "final-frame")
	}
	return strings.Join(parts, ",")
}

// Rounding selects how frame timestamps are snapped to the timescale.
type Rounding uint8

const (
	RoundTowardZero Rounding = iota
	RoundAwayFromZero
	RoundNearest
)

func (r Rounding) String() string {
	switch r {
	case RoundTowardZero:
		return "toward-zero"
	case RoundAwayFromZero:
		return "away-from-zero"
	case RoundNearest:
		return "nearest"
	default:
		return fmt.Sprintf("rounding(%d)", uint8(r))
	}
}

// Config describes how captured frames are encoded into a video file.
// It is a comparable value; derivations return modified copies.
type Config struct {
	Options   Options  `json:"options"`
	Timescale int32    `json:"timescale"`
	Rounding  Rounding `json:"rounding"`
	FileType  string   `json:"file_type"`
	FilePath  string   `json:"file_path"`
	FPS       float64  `json:"fps"`
	Bitrate   int      `json:"bitrate,omitempty"`
	Codec     string   `json:"codec"`
}

// Default returns the canonical encoder configuration.
func Default() Config {
	return Config{
		Timescale: DefaultTimescale,
		Rounding:  RoundTowardZero,
		FileType:  DefaultFileType,
		FilePath:  DefaultFilePath,
		FPS:       DefaultFPS,
		Codec:     DefaultCodec,
	}
}

func (c Config) WithFilePath(path string) Config {
	c.FilePath = path
	return c
}

func (c Config) WithOptions(options Options) Config {
	c.Options = options
	return c
}

// WithFPS returns a copy recording at fps. NaN and infinities become DefaultFPS.
func (c Config) WithFPS(fps float64) Config {
	c.FPS = fps
	return c.Normalized()
}

// Normalized replaces a non-finite FPS with DefaultFPS, so the value stays
// comparable with itself and encodable as JSON.
func (c Config) Normalized() Config {
	if math.IsNaN(c.FPS) || math.IsInf(c.FPS, 0) {
		c.FPS = DefaultFPS
	}
	return c
}

// InDirectory moves the output file into dir, keeping its base name.
func (c Config) InDirectory(dir string) Config {
	name := filepath.Base(c.FilePath)
	if c.FilePath == "" || name == "." || name == string(filepath.Separator) {
		name = filepath.Base(DefaultFilePath)
	}
	c.FilePath = filepath.Join(dir, name)
	return c
}

func (c Config) String() string {
	return fmt.Sprintf("Options %s | Timescale %d | Rounding %s | File Type %s | File Path %s | FPS %g | Codec %s",
		c.Options, c.Timescale, c.Rounding, c.FileType, c.FilePath, c.FPS, c.Codec)
}
