package framebuffer

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownScale = errors.New("unknown framebuffer scale")

// Scale is a discrete downscale factor for the framebuffer.
// ScaleNone means no override: the framebuffer is captured at native size.
type Scale uint8

const (
	ScaleNone Scale = iota
	Scale1x
	Scale2x
	Scale3x
	Scale4x
)

// ParseScale accepts "1x".."4x", and "" or "none" for ScaleNone.
func ParseScale(raw string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none":
		return ScaleNone, nil
	case "1x":
		return Scale1x, nil
	case "2x":
		return Scale2x, nil
	case "3x":
		return Scale3x, nil
	case "4x":
		return Scale4x, nil
	default:
		return ScaleNone, fmt.Errorf("%w: %q", ErrUnknownScale, raw)
	}
}

// Valid reports whether s is one of the enumerated factors or ScaleNone.
func (s Scale) Valid() bool {
	return s <= Scale4x
}

// Value returns the numeric multiplier. ok is false for ScaleNone.
func (s Scale) Value() (value float64, ok bool) {
	switch s {
	case Scale1x:
		return 1, true
	case Scale2x:
		return 2, true
	case Scale3x:
		return 3, true
	case Scale4x:
		return 4, true
	default:
		return 0, false
	}
}

func (s Scale) String() string {
	switch s {
	case ScaleNone:
		return "unscaled"
	case Scale1x, Scale2x, Scale3x, Scale4x:
		return fmt.Sprintf("%dx", uint8(s))
	default:
		return fmt.Sprintf("scale(%d)", uint8(s))
	}
}

// Size is a width/height pair in points.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
