package diagnostic

import "path/filepath"

const (
	ScreenshotName = "screenshot.png"
	VideoName      = "video.mp4"
)

// File is a diagnostic artifact backed by a single file.
type File struct {
	Name string
	Dir  string
}

// Named returns the diagnostic file name inside dir.
func Named(dir, name string) File {
	return File{Name: name, Dir: dir}
}

// Path is the location of the backing file. It does not need to exist.
func (f File) Path() string {
	return filepath.Join(f.Dir, f.Name)
}
