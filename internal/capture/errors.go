package capture

import "errors"

var (
	// ErrSourceUnavailable means the video source could not be opened.
	ErrSourceUnavailable = errors.New("video source unavailable")
	// ErrFrameRead means a read failed or produced an empty frame after startup.
	ErrFrameRead = errors.New("frame could not be read")
)
