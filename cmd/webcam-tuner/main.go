package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"webcam-tuner/internal/app"
)

// HighGUI and fyne both need the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stderr))
}

func run(args []string, getenv func(string) string, stderr io.Writer) int {
	cfg, err := app.ParseArgs(args, getenv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return app.ExitCode(err)
	}

	log := app.NewLogger(cfg, stderr)
	application := app.NewApplication(cfg, log)

	err = application.Run(context.Background())
	if err != nil {
		log.Error("Application", err, nil)
		fmt.Fprintln(stderr, app.Describe(err))
	}
	return app.ExitCode(err)
}
