package preview

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/hashicorp/go-hclog"
)

// Run opens the terminal, runs the preview until the user quits or ctx is
// cancelled, and restores the terminal.
func Run(ctx context.Context, m *Model, logger hclog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise terminal: %w", err)
	}
	defer screen.Fini()

	return Loop(ctx, screen, m, logger)
}

// Loop handles events on an initialised screen. Events are polled on a
// separate goroutine; drawing happens on the caller's goroutine.
func Loop(ctx context.Context, screen tcell.Screen, m *Model, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("preview")

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	Draw(screen, m)

	for {
		select {
		case <-ctx.Done():
			logger.Debug("preview cancelled")
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if m.HandleKey(ev) {
					logger.Debug("preview closed", "count", m.Params().Count, "method", m.Params().Method)
					return nil
				}
				logger.Trace("key", "name", ev.Name(), "count", m.Params().Count, "method", m.Params().Method)
			case *tcell.EventResize:
				screen.Sync()
			}
			Draw(screen, m)
		}
	}
}
