package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"webcam-tuner/internal/capture"
	"webcam-tuner/internal/logger"
)

const (
	AppName = "webcam-tuner"
	AppID   = "com.imageprocessing.webcam-tuner"

	UIHighGUI = "highgui"
	UIFyne    = "fyne"
)

// ErrUsage means the command line could not be parsed.
var ErrUsage = errors.New("usage error")

type Config struct {
	SourceIndex int
	UI          string
	PollTimeout time.Duration
	Histogram   bool
	Capture     capture.Settings

	LogLevel logger.LogLevel
	LogJSON  bool
}

func DefaultConfig() Config {
	return Config{
		UI:          UIHighGUI,
		PollTimeout: capture.DefaultPollTimeout,
		Histogram:   true,
		LogLevel:    logger.InfoLevel,
	}
}

// ParseArgs reads flags and the single positional video source index. getenv
// supplies LOG_LEVEL and DEBUG, which the -log-level flag overrides. Flag
// parse errors and help requests are reported to output.
func ParseArgs(args []string, getenv func(string) string, output io.Writer) (Config, error) {
	cfg := DefaultConfig()
	cfg.LogLevel = levelFromEnv(getenv)

	fs := flag.NewFlagSet(AppName, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: %s [flags] <video source no.>\n", AppName)
		fmt.Fprintln(output, "Flags must come before the video source index.")
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.UI, "ui", cfg.UI, "display back end: highgui or fyne")
	fs.DurationVar(&cfg.PollTimeout, "poll", cfg.PollTimeout, "key poll timeout per frame")
	fs.BoolVar(&cfg.Histogram, "histogram", cfg.Histogram, "show the RGB histogram")
	fs.IntVar(&cfg.Capture.Width, "width", 0, "requested capture width (0 keeps the driver default)")
	fs.IntVar(&cfg.Capture.Height, "height", 0, "requested capture height (0 keeps the driver default)")
	fs.IntVar(&cfg.Capture.FPS, "fps", 0, "requested capture frame rate (0 keeps the driver default)")
	fs.BoolVar(&cfg.LogJSON, "log-json", false, "write JSON log lines instead of console output")
	level := fs.String("log-level", "", "debug, info, warn or error (default from LOG_LEVEL)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if *level != "" {
		cfg.LogLevel = logger.ParseLevel(*level)
	}

	for _, arg := range fs.Args()[min(1, fs.NArg()):] {
		if strings.HasPrefix(arg, "-") {
			fs.Usage()
			return cfg, fmt.Errorf("%w: flag %s after the video source index; flags must come first", ErrUsage, arg)
		}
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return cfg, fmt.Errorf("%w: expected exactly one video source index, got %d arguments", ErrUsage, fs.NArg())
	}
	index, err := strconv.Atoi(fs.Arg(0))
	if err != nil || index < 0 {
		fs.Usage()
		return cfg, fmt.Errorf("%w: video source index %q is not a non-negative integer", ErrUsage, fs.Arg(0))
	}
	cfg.SourceIndex = index

	if err := cfg.Validate(); err != nil {
		fs.Usage()
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.UI {
	case UIHighGUI, UIFyne:
	default:
		return fmt.Errorf("%w: unknown ui %q", ErrUsage, c.UI)
	}
	if c.PollTimeout <= 0 {
		return fmt.Errorf("%w: poll timeout must be positive, got %s", ErrUsage, c.PollTimeout)
	}
	if c.Capture.Width < 0 || c.Capture.Height < 0 || c.Capture.FPS < 0 {
		return fmt.Errorf("%w: capture settings must not be negative", ErrUsage)
	}
	return nil
}

func levelFromEnv(getenv func(string) string) logger.LogLevel {
	if name := strings.TrimSpace(getenv("LOG_LEVEL")); name != "" {
		return logger.ParseLevel(name)
	}
	if getenv("DEBUG") == "1" {
		return logger.DebugLevel
	}
	return logger.InfoLevel
}
