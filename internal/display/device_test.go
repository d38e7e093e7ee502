package display

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/rook-computer/fbconfig/internal/framebuffer"
)

func TestSizeOf(t *testing.T) {
	got := SizeOf(image.Rect(10, 20, 1930, 1100))
	want := framebuffer.Size{Width: 1920, Height: 1080}
	if got != want {
		t.Errorf("SizeOf = %v, want %v", got, want)
	}
}

func TestDeviceSizeMissingDevice(t *testing.T) {
	if _, err := DeviceSize(filepath.Join(t.TempDir(), "fb-missing")); err == nil {
		t.Error("DeviceSize on a missing device should fail")
	}
}
