package glimpse

import "strconv"

type Key uint32

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyTab
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	// KeyA to KeyZ are contiguous
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Key0 to Key9 are contiguous
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

var keyNames = map[Key]string{
	KeyUnknown:   "Unknown",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeySpace:     "Space",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + k - KeyA))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	}

	if name, ok := keyNames[k]; ok {
		return name
	}

	return "Key(" + strconv.Itoa(int(k)) + ")"
}

type ElementState uint8

const (
	Pressed ElementState = iota
	Released
)

func (s ElementState) String() string {
	if s == Pressed {
		return "Pressed"
	}

	return "Released"
}

// eventQueue buffers events emitted by platform callbacks until
// the loop dispatches them.
type eventQueue struct {
	events []Event
}

func (q *eventQueue) push(event Event) {
	q.events = append(q.events, event)
}

// dispatch hands all queued events to the handler in order. Events
// queued after an exit request are dropped.
func (q *eventQueue) dispatch(handler EventHandler) ControlFlow {
	defer func() {
		clear(q.events)
		q.events = q.events[:0]
	}()

	for _, event := range q.events {
		if handler(event) == ControlFlowExit {
			return ControlFlowExit
		}
	}

	return ControlFlowPoll
}

// frame dispatches one loop iteration: queued window events,
// then MainEventsCleared, then a RedrawRequested if one is pending.
func frame(queue *eventQueue, redraw *bool, handler EventHandler) ControlFlow {
	if queue.dispatch(handler) == ControlFlowExit {
		return ControlFlowExit
	}

	if handler(MainEventsCleared{}) == ControlFlowExit {
		return ControlFlowExit
	}

	if *redraw {
		*redraw = false

		if handler(RedrawRequested{}) == ControlFlowExit {
			return ControlFlowExit
		}
	}

	return ControlFlowPoll
}
