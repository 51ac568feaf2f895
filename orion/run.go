package orion

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/oliverbestmann/windshield/glimpse"
	"github.com/oliverbestmann/windshield/pulse"
)

type RunOptions struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string
}

func (opts RunOptions) withDefaults() RunOptions {
	if opts.WindowWidth == 0 {
		opts.WindowWidth = 800
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 600
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "Windshield"
	}

	return opts
}

// Run opens the window, initializes webgpu and blocks until the window is
// closed. An error is returned if initialization fails or rendering
// had to be aborted.
func Run(opts RunOptions) error {
	opts = opts.withDefaults()

	// create a new window (or canvas)
	win, err := glimpse.NewWindow(
		opts.WindowWidth,
		opts.WindowHeight,
		opts.WindowTitle,
	)
	if err != nil {
		return errors.Wrap(err, "create window")
	}

	defer win.Terminate()

	// initialize the webgpu device
	ctx, err := pulse.New(win)
	if err != nil {
		return errors.Wrap(err, "initialize wgpu")
	}

	defer ctx.Release()

	size := ctx.Size()
	slog.Info("Render context ready",
		slog.Int("width", int(size.Width)),
		slog.Int("height", int(size.Height)),
	)

	driver := NewDriver(win, ctx)

	if err := win.Run(driver.Handle); err != nil {
		return errors.Wrap(err, "event loop")
	}

	if err := driver.Err(); err != nil {
		return errors.Wrap(err, "render")
	}

	return nil
}
