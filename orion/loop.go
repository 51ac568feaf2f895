package orion

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/oliverbestmann/windshield/glimpse"
	"github.com/oliverbestmann/windshield/pulse"
)

// Renderer is driven by the event loop. *pulse.Context implements it.
type Renderer interface {
	// Size returns the last size the renderer was configured with.
	Size() glimpse.Size
	Resize(size glimpse.Size)

	// Input reports whether the renderer consumed the event.
	Input(event glimpse.WindowEvent) bool
	Update()
	Render() error
}

type RedrawRequester interface {
	RequestRedraw()
}

var _ Renderer = (*pulse.Context)(nil)

// Driver maps window events to calls on a Renderer.
type Driver struct {
	window   RedrawRequester
	renderer Renderer

	frames FrameTimes

	// error that terminated the loop
	err error
}

func NewDriver(window RedrawRequester, renderer Renderer) *Driver {
	return &Driver{window: window, renderer: renderer}
}

// Err returns the error that caused the driver to request the loop to exit.
// It is nil if the loop was exited by the user.
func (d *Driver) Err() error {
	return d.err
}

func (d *Driver) Frames() FrameTimes {
	return d.frames
}

// Handle dispatches a single event and returns whether the
// loop should continue.
func (d *Driver) Handle(event glimpse.Event) glimpse.ControlFlow {
	if windowEvent, ok := event.(glimpse.WindowEvent); ok {
		if d.renderer.Input(windowEvent) {
			return glimpse.ControlFlowPoll
		}
	}

	switch event := event.(type) {
	case glimpse.CloseRequested:
		return glimpse.ControlFlowExit

	case glimpse.KeyboardInput:
		if event.Key == glimpse.KeyEscape && event.State == glimpse.Pressed {
			return glimpse.ControlFlowExit
		}

	case glimpse.Resized:
		d.renderer.Resize(event.Size)

	case glimpse.ScaleFactorChanged:
		d.renderer.Resize(event.NewInnerSize)

	case glimpse.RedrawRequested:
		return d.redraw()

	case glimpse.MainEventsCleared:
		// RedrawRequested is only emitted once, keep asking for the next one
		d.window.RequestRedraw()
	}

	return glimpse.ControlFlowPoll
}

func (d *Driver) redraw() glimpse.ControlFlow {
	d.renderer.Update()

	err := d.renderer.Render()
	switch {
	case err == nil:
		if d.frames.Tick() {
			slog.Debug("Frame stats",
				slog.Uint64("frames", d.frames.FrameCount),
				slog.Float64("fps", d.frames.FPS()),
				slog.Duration("max", d.frames.MaxDuration),
			)
		}

	case errors.Is(err, pulse.ErrSurfaceLost):
		slog.Info("Surface lost, reconfiguring")
		d.renderer.Resize(d.renderer.Size())

	case errors.Is(err, pulse.ErrSurfaceOutOfMemory):
		slog.Error("Out of memory while rendering", slog.Any("err", err))
		d.err = err
		return glimpse.ControlFlowExit

	default:
		// validation errors while acquiring or encoding usually resolve on one of the next frames
		slog.Error("Render failed", slog.Any("err", err))
	}

	return glimpse.ControlFlowPoll
}
