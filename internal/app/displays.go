package app

import (
	"context"
	"sync"

	"webcam-tuner/internal/capture"
	"webcam-tuner/internal/gui/fyneui"
	"webcam-tuner/internal/gui/highgui"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

func (a *Application) newHighGUIDisplay() Display {
	return highgui.New(a.cfg.Histogram, a.logger)
}

// runFyne hands the main goroutine to fyne and runs the capture loop on a
// worker goroutine once the app has started. Closing the window cancels the
// loop; the loop ending quits the app.
func (a *Application) runFyne(ctx context.Context, source capture.Source) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fyneApp := fyneapp.NewWithID(AppID)
	display := fyneui.New(fyneApp, a.cfg.Histogram, a.logger, cancel)
	defer display.Close()
	display.Bind(a.params)

	var (
		wg      sync.WaitGroup
		loopErr error
		once    sync.Once
	)
	fyneApp.Lifecycle().SetOnStarted(func() {
		once.Do(func() {
			display.Activate()
			wg.Add(1)
			go func() {
				defer wg.Done()
				loopErr = a.runLoop(ctx, source, display)
				fyne.Do(fyneApp.Quit)
			}()
		})
	})

	display.Window().Show()
	fyneApp.Run()

	cancel()
	wg.Wait()
	return loopErr
}
