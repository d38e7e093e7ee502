package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rook-computer/fbconfig/internal/display"
	"github.com/rook-computer/fbconfig/internal/framebuffer"
	"github.com/rook-computer/fbconfig/internal/logging"
	"github.com/rook-computer/fbconfig/internal/simulator"
)

const envStdioLog = "FBCONFIG_STDIO_LOG"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// writerReport is the effective vidio writer setup for the configured encoder.
type writerReport struct {
	FPS     float64 `json:"fps"`
	Bitrate int     `json:"bitrate"`
	Codec   string  `json:"codec"`
}

type report struct {
	Framebuffer framebuffer.Config `json:"framebuffer"`
	Writer      writerReport       `json:"writer"`
}

// run returns the process exit code. Deferred cleanup runs before main exits.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("fbconfig", flag.ContinueOnError)
	flags.SetOutput(stderr)
	scale := flags.String("scale", "", "framebuffer scale: none | 1x | 2x | 3x | 4x; also configurable via "+framebuffer.EnvScale)
	imagePath := flags.String("image-path", "", "still image output path; also configurable via "+framebuffer.EnvImagePath)
	deviceSet := flags.String("device-set", "", "simulator device set directory; with -udid, scopes output paths to that simulator")
	udid := flags.String("udid", "", "simulator UDID inside -device-set")
	fbDevice := flags.String("fb", "", "framebuffer device to read native geometry from (e.g. "+display.DefaultDevice+")")
	asJSON := flags.Bool("json", false, "print the configuration as JSON")
	debug := flags.Bool("debug", false, "enable debug logging to ./fbconfig-debug.log")
	stdioLog := flags.String("stdio-log", "", "redirect stderr (including panics) to this file; also configurable via "+envStdioLog)
	if err := flags.Parse(args); err != nil {
		return 2
	}

	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv(envStdioLog)
	}
	if logPath != "" {
		if err := redirectStderr(logPath); err != nil {
			fmt.Fprintln(stdout, "stderr redirect error:", err)
		}
	}

	var logger logging.Logger = logging.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./fbconfig-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = logging.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Fprintln(stderr, "debug log open error:", err)
		}
	}

	cfg, err := framebuffer.ConfigFromEnv(framebuffer.Default())
	if err != nil {
		fmt.Fprintln(stderr, "config error:", err)
		return 2
	}
	if *scale != "" {
		s, err := framebuffer.ParseScale(*scale)
		if err != nil {
			fmt.Fprintln(stderr, "invalid -scale:", err)
			return 2
		}
		cfg = cfg.WithScale(s)
	}
	cfg = cfg.WithImagePath(*imagePath)

	if *deviceSet != "" || *udid != "" {
		sim, err := simulator.New(*deviceSet, *udid)
		if err != nil {
			fmt.Fprintln(stderr, "simulator error:", err)
			return 2
		}
		cfg = cfg.InSimulator(sim)
		logger.Infof("config", "scoped to simulator root %s", sim.RootDirectory())
	}
	logger.Infof("config", "%s", cfg)

	opts := cfg.Encoder().VidioOptions()
	writer := writerReport{FPS: opts.FPS, Bitrate: opts.Bitrate, Codec: opts.Codec}
	logger.Infof("encoder", "writer fps=%g bitrate=%d codec=%s", writer.FPS, writer.Bitrate, writer.Codec)

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report{Framebuffer: cfg, Writer: writer}); err != nil {
			fmt.Fprintln(stderr, "encode error:", err)
			return 1
		}
	} else {
		fmt.Fprintln(stdout, cfg)
		fmt.Fprintf(stdout, "Writer FPS %g | Bitrate %d | Codec %s\n", writer.FPS, writer.Bitrate, writer.Codec)
	}

	if *fbDevice != "" {
		native, err := display.DeviceSize(*fbDevice)
		if err != nil {
			logger.Errorf("fb", "open %s failed: %v", *fbDevice, err)
			fmt.Fprintln(stderr, "framebuffer error:", err)
			return 1
		}
		scaled := cfg.ScaleSize(native)
		logger.Infof("fb", "native=%gx%g scaled=%gx%g", native.Width, native.Height, scaled.Width, scaled.Height)
		fmt.Fprintf(stdout, "Native Size %gx%g | Scaled Size %gx%g\n", native.Width, native.Height, scaled.Width, scaled.Height)
	}
	return 0
}
