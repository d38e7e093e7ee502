package display

import (
	"image"

	fb "github.com/gonutz/framebuffer"
	"github.com/rook-computer/fbconfig/internal/framebuffer"
)

const DefaultDevice = "/dev/fb0"

// DeviceSize opens the framebuffer device at path and reports its visible size.
func DeviceSize(path string) (framebuffer.Size, error) {
	if path == "" {
		path = DefaultDevice
	}
	dev, err := fb.Open(path)
	if err != nil {
		return framebuffer.Size{}, err
	}
	defer dev.Close()
	return SizeOf(dev.Bounds()), nil
}

func SizeOf(bounds image.Rectangle) framebuffer.Size {
	return framebuffer.Size{Width: float64(bounds.Dx()), Height: float64(bounds.Dy())}
}
