package app

import (
	"context"
	"errors"
	"fmt"

	"webcam-tuner/internal/capture"
	"webcam-tuner/internal/logger"
	"webcam-tuner/internal/models"
	"webcam-tuner/internal/processing/chain"
	"webcam-tuner/internal/processing/filters"
	"webcam-tuner/internal/shutdown"

	"gocv.io/x/gocv"
)

// Display shows frame outputs and owns the sliders bound to the parameters.
type Display interface {
	capture.KeyPoller
	Bind(p *models.Parameters)
	Pull() []string
	Push()
	Show(f *filters.Frame)
	Close()
}

// SourceOpener opens the video source with the given index.
type SourceOpener func(index int, settings capture.Settings) (capture.Source, error)

func openDevice(index int, settings capture.Settings) (capture.Source, error) {
	vc, err := capture.OpenDevice(index, settings)
	if err != nil {
		return nil, err
	}
	return vc, nil
}

type Application struct {
	cfg     Config
	logger  logger.Logger
	params  *models.Parameters
	tracker *models.ModeTracker
	chain   *chain.ProcessingChain
	frame   *filters.Frame

	openSource SourceOpener
	newDisplay func() Display
}

func NewApplication(cfg Config, log logger.Logger) *Application {
	params := models.DefaultParameters()
	a := &Application{
		cfg:        cfg,
		logger:     log,
		params:     params,
		tracker:    models.NewModeTracker(params.Mode),
		openSource: openDevice,
	}
	a.newDisplay = a.newHighGUIDisplay
	return a
}

// Run opens the source, shows the display selected in the config and runs the
// capture loop until it ends. The returned error is nil for a key press or
// signal, wraps capture.ErrSourceUnavailable when the source never opened, and
// wraps capture.ErrFrameRead when a read failed mid-stream.
func (a *Application) Run(ctx context.Context) error {
	sm := shutdown.NewManager(ctx, a.logger)
	sm.Listen()
	defer sm.Shutdown()

	a.logger.Info("Application", "starting", map[string]interface{}{
		"source":       a.cfg.SourceIndex,
		"ui":           a.cfg.UI,
		"poll_timeout": a.cfg.PollTimeout.String(),
		"gocv_version": gocv.Version(),
	})

	source, err := a.openSource(a.cfg.SourceIndex, a.cfg.Capture)
	if err != nil {
		return err
	}
	sm.Register(shutdown.Func(func() { source.Close() }))
	if vc, ok := source.(*gocv.VideoCapture); ok {
		info := capture.Describe(vc)
		a.logger.Info("Application", "video source opened", map[string]interface{}{
			"width":  info.Width,
			"height": info.Height,
			"fps":    info.FPS,
		})
	}

	a.chain = chain.NewProcessingChain(filters.DefaultStages(a.cfg.Histogram))
	a.frame = filters.NewFrame()
	sm.Register(a.chain)
	sm.Register(shutdown.Func(a.frame.Close))
	a.logger.Info("Pipeline", "processing chain ready", map[string]interface{}{
		"steps": a.chain.GetStepNames(),
	})

	switch a.cfg.UI {
	case UIFyne:
		err = a.runFyne(sm.Context(), source)
	default:
		display := a.newDisplay()
		defer display.Close()
		display.Bind(a.params)
		err = a.runLoop(sm.Context(), source, display)
	}

	for name, s := range a.chain.Stats() {
		a.logger.Debug("Pipeline", "step timing", map[string]interface{}{
			"step":     name,
			"runs":     s.Runs,
			"failures": s.Failures,
			"avg_ms":   float64(s.Average().Microseconds()) / 1000,
		})
	}
	return err
}

// runLoop drives the capture loop against a display whose sliders are bound.
func (a *Application) runLoop(ctx context.Context, source capture.Source, display Display) error {
	loop := capture.NewLoop(source, display, a.frameHandler(display),
		capture.WithPollTimeout(a.cfg.PollTimeout),
		capture.WithLogger(a.logger),
	)
	return loop.Run(ctx)
}

func (a *Application) frameHandler(display Display) capture.FrameHandler {
	return func(ctx context.Context, frame gocv.Mat) error {
		if moved := display.Pull(); len(moved) > 0 {
			a.logger.Debug("Parameters", "sliders moved", map[string]interface{}{
				"sliders": moved,
			})
		}
		if err := a.params.Validate(); err != nil {
			a.logger.Warning("Parameters", "clamping out-of-range value", map[string]interface{}{
				"error": err.Error(),
			})
			a.params.Clamp()
		}

		if a.tracker.Apply(a.params) {
			a.logger.Info("ModeTracker", "mode defaults applied", a.params.Fields())
		}
		display.Push()

		a.frame.Reset(frame)
		if err := a.chain.Execute(ctx, a.frame, a.params); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			a.logger.Warning("Pipeline", "frame skipped", map[string]interface{}{
				"error": err.Error(),
			})
			return nil
		}

		display.Show(a.frame)
		return nil
	}
}

// Parameters returns the live parameter set.
func (a *Application) Parameters() *models.Parameters {
	return a.params
}

// ExitCode maps a Run error onto the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, capture.ErrFrameRead):
		return 0
	default:
		return 1
	}
}

// Describe formats err for the user.
func Describe(err error) string {
	switch {
	case errors.Is(err, capture.ErrSourceUnavailable):
		return fmt.Sprintf("error: webcam could not be connected: %v", err)
	case errors.Is(err, capture.ErrFrameRead):
		return fmt.Sprintf("error: frame could not be read: %v", err)
	default:
		return fmt.Sprintf("error: %v", err)
	}
}
