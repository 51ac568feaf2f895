package glimpse

import "github.com/oliverbestmann/webgpu/wgpu"

// Size is the size of a window or surface in physical pixels.
type Size struct {
	Width  uint32
	Height uint32
}

// IsZero reports whether at least one of the dimensions is zero,
// as it happens while a window is minimized.
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// ControlFlow is returned by an event handler and tells the
// event loop whether it should keep running.
type ControlFlow int

const (
	// ControlFlowPoll keeps the loop running and polling for new events.
	ControlFlowPoll ControlFlow = iota

	// ControlFlowExit stops the loop. Run returns after the
	// current event was handled.
	ControlFlowExit
)

func (c ControlFlow) String() string {
	switch c {
	case ControlFlowPoll:
		return "Poll"
	case ControlFlowExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// EventHandler is called by the event loop for every event.
type EventHandler func(event Event) ControlFlow

type Window interface {
	// InnerSize returns the size of the drawable area in physical pixels.
	InnerSize() Size

	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// RequestRedraw schedules a RedrawRequested event for the next
	// iteration of the event loop.
	RequestRedraw()

	// Run blocks and dispatches events to the handler until
	// it returns ControlFlowExit.
	Run(handler EventHandler) error

	Terminate()
}
