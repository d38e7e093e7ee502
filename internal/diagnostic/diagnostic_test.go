package diagnostic

import (
	"path/filepath"
	"testing"
)

func TestPath(t *testing.T) {
	tests := []struct {
		file File
		want string
	}{
		{Named("/sims/A/diagnostics", ScreenshotName), filepath.Join("/sims/A/diagnostics", "screenshot.png")},
		{Named("rel", VideoName), filepath.Join("rel", "video.mp4")},
		{File{Name: "only.png"}, "only.png"},
	}
	for _, tc := range tests {
		if got := tc.file.Path(); got != tc.want {
			t.Errorf("%+v.Path() = %q, want %q", tc.file, got, tc.want)
		}
	}
}
