package capture

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Source yields frames. *gocv.VideoCapture satisfies it.
type Source interface {
	Read(m *gocv.Mat) bool
	IsOpened() bool
	Close() error
}

// Settings are optional capture hints. Zero values leave the driver default.
type Settings struct {
	Width  int
	Height int
	FPS    int
}

// Info describes what the driver actually negotiated.
type Info struct {
	Width  int
	Height int
	FPS    float64
}

// OpenDevice opens the camera with the given index and applies settings.
func OpenDevice(index int, settings Settings) (*gocv.VideoCapture, error) {
	if index < 0 {
		return nil, fmt.Errorf("%w: negative device index %d", ErrSourceUnavailable, index)
	}

	vc, err := gocv.OpenVideoCapture(index)
	if err != nil {
		return nil, fmt.Errorf("%w: device %d: %v", ErrSourceUnavailable, index, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("%w: device %d did not open", ErrSourceUnavailable, index)
	}

	if settings.Width > 0 {
		vc.Set(gocv.VideoCaptureFrameWidth, float64(settings.Width))
	}
	if settings.Height > 0 {
		vc.Set(gocv.VideoCaptureFrameHeight, float64(settings.Height))
	}
	if settings.FPS > 0 {
		vc.Set(gocv.VideoCaptureFPS, float64(settings.FPS))
	}

	return vc, nil
}

// Describe reads the negotiated frame size and rate from an open capture.
func Describe(vc *gocv.VideoCapture) Info {
	return Info{
		Width:  int(vc.Get(gocv.VideoCaptureFrameWidth)),
		Height: int(vc.Get(gocv.VideoCaptureFrameHeight)),
		FPS:    vc.Get(gocv.VideoCaptureFPS),
	}
}
