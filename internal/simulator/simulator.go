package simulator

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rook-computer/fbconfig/internal/diagnostic"
	"github.com/rook-computer/fbconfig/internal/framebuffer"
)

// Simulator identifies a simulator instance inside a device set.
// Each instance owns <DeviceSetPath>/<UDID>; nothing else writes there.
type Simulator struct {
	UDID          string
	DeviceSetPath string
}

var (
	ErrInvalidUDID      = errors.New("invalid simulator udid")
	ErrInvalidDeviceSet = errors.New("invalid device set path")
)

// New validates the inputs so that distinct simulators get distinct roots.
// The UDID must be a single path element and the device set an absolute path.
func New(deviceSetPath, udid string) (Simulator, error) {
	udid = strings.TrimSpace(udid)
	if udid == "" || udid == "." || udid == ".." || strings.ContainsAny(udid, `/\`) {
		return Simulator{}, fmt.Errorf("%w: %q", ErrInvalidUDID, udid)
	}
	deviceSetPath = strings.TrimSpace(deviceSetPath)
	if deviceSetPath == "" || !filepath.IsAbs(deviceSetPath) {
		return Simulator{}, fmt.Errorf("%w: %q must be absolute", ErrInvalidDeviceSet, deviceSetPath)
	}
	return Simulator{UDID: udid, DeviceSetPath: filepath.Clean(deviceSetPath)}, nil
}

// RootDirectory is the simulator's private working directory.
func (s Simulator) RootDirectory() string {
	return filepath.Join(s.DeviceSetPath, s.UDID)
}

// DiagnosticsDirectory is where framebuffer artifacts for this simulator live.
func (s Simulator) DiagnosticsDirectory() string {
	return filepath.Join(s.RootDirectory(), framebuffer.DiagnosticsDir)
}

func (s Simulator) Screenshot() diagnostic.File {
	return diagnostic.Named(s.DiagnosticsDirectory(), diagnostic.ScreenshotName)
}

func (s Simulator) Video() diagnostic.File {
	return diagnostic.Named(s.DiagnosticsDirectory(), diagnostic.VideoName)
}

// FramebufferConfig scopes cfg to this simulator and points the still image
// at the simulator's screenshot diagnostic.
func (s Simulator) FramebufferConfig(cfg framebuffer.Config) framebuffer.Config {
	return cfg.InSimulator(s).WithImageDiagnostic(s.Screenshot())
}
