package app

import (
	"io"

	"webcam-tuner/internal/logger"
)

// NewLogger builds the application logger writing to w.
func NewLogger(cfg Config, w io.Writer) logger.Logger {
	if cfg.LogJSON {
		return logger.NewZerolog(w, cfg.LogLevel)
	}
	return logger.NewConsoleLogger(w, cfg.LogLevel)
}
