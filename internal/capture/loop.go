package capture

import (
	"context"
	"fmt"
	"time"

	"webcam-tuner/internal/logger"

	"gocv.io/x/gocv"
)

const (
	// EscapeKey ends the loop when returned by the key poll.
	EscapeKey = 27

	DefaultPollTimeout = time.Millisecond
)

// FrameHandler processes one frame. The Mat is reused by the next read and must
// not be retained. A returned error ends the loop.
type FrameHandler func(ctx context.Context, frame gocv.Mat) error

// KeyPoller blocks for at most timeout waiting for a key press and returns the
// key code, or -1 if none arrived. The timeout also paces the loop.
type KeyPoller interface {
	PollKey(timeout time.Duration) int
}

// Stats summarizes a finished run.
type Stats struct {
	Frames  int
	Elapsed time.Duration
}

// FPS returns the mean frame rate of the run.
func (s Stats) FPS() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Elapsed.Seconds()
}

type Loop struct {
	source      Source
	poller      KeyPoller
	handler     FrameHandler
	logger      logger.Logger
	pollTimeout time.Duration
	exitKey     int
	stats       Stats
}

type Option func(*Loop)

func WithPollTimeout(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.pollTimeout = d
		}
	}
}

func WithLogger(log logger.Logger) Option {
	return func(l *Loop) {
		l.logger = log
	}
}

func NewLoop(source Source, poller KeyPoller, handler FrameHandler, opts ...Option) *Loop {
	l := &Loop{
		source:      source,
		poller:      poller,
		handler:     handler,
		logger:      logger.Nop(),
		pollTimeout: DefaultPollTimeout,
		exitKey:     EscapeKey,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run reads frames until the exit key is pressed or ctx is cancelled, both of
// which return nil. A failed or empty read returns ErrFrameRead; reads are never
// retried.
func (l *Loop) Run(ctx context.Context) error {
	frame := gocv.NewMat()
	defer frame.Close()

	start := time.Now()
	defer func() {
		l.stats.Elapsed = time.Since(start)
		l.logger.Info("CaptureLoop", "capture loop stopped", map[string]interface{}{
			"frames": l.stats.Frames,
			"fps":    fmt.Sprintf("%.1f", l.stats.FPS()),
		})
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}

		if !l.source.IsOpened() {
			return fmt.Errorf("%w: source closed after %d frames", ErrFrameRead, l.stats.Frames)
		}
		if ok := l.source.Read(&frame); !ok || frame.Empty() {
			return fmt.Errorf("%w: read %d failed", ErrFrameRead, l.stats.Frames+1)
		}
		l.stats.Frames++

		if err := l.handler(ctx, frame); err != nil {
			return err
		}

		key := l.poller.PollKey(l.pollTimeout)
		if key >= 0 && key&0xFF == l.exitKey {
			l.logger.Debug("CaptureLoop", "exit key received", nil)
			return nil
		}
	}
}

// Stats returns the counters of the last Run.
func (l *Loop) Stats() Stats {
	return l.stats
}
