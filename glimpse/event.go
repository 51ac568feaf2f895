package glimpse

import "fmt"

// Event is one of the event types defined in this package.
type Event interface {
	isEvent()
}

// WindowEvent is implemented by all events that originate from the window
// itself, in contrast to events produced by the loop.
type WindowEvent interface {
	Event
	isWindowEvent()
}

// CloseRequested is sent when the user tries to close the window.
// The window is not closed automatically.
type CloseRequested struct{}

type KeyboardInput struct {
	Key   Key
	State ElementState
}

// Resized carries the new size of the drawable area in physical pixels.
type Resized struct {
	Size Size
}

// ScaleFactorChanged is sent when the window moves to a monitor with a
// different pixel density. NewInnerSize is the physical size the window
// has after the change.
type ScaleFactorChanged struct {
	ScaleFactor  float64
	NewInnerSize Size
}

// RedrawRequested is emitted once per loop iteration after RequestRedraw
// was called.
type RedrawRequested struct{}

// MainEventsCleared is emitted after all pending window events of a loop
// iteration were dispatched.
type MainEventsCleared struct{}

func (CloseRequested) isEvent()     {}
func (KeyboardInput) isEvent()      {}
func (Resized) isEvent()            {}
func (ScaleFactorChanged) isEvent() {}
func (RedrawRequested) isEvent()    {}
func (MainEventsCleared) isEvent()  {}

func (CloseRequested) isWindowEvent()     {}
func (KeyboardInput) isWindowEvent()      {}
func (Resized) isWindowEvent()            {}
func (ScaleFactorChanged) isWindowEvent() {}

func (k KeyboardInput) String() string {
	return fmt.Sprintf("KeyboardInput(%s, %s)", k.Key, k.State)
}

func (r Resized) String() string {
	return fmt.Sprintf("Resized(%dx%d)", r.Size.Width, r.Size.Height)
}
