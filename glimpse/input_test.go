package glimpse

import (
	"reflect"
	"testing"
)

type recorder struct {
	events []Event
	exitOn func(Event) bool
}

func (r *recorder) handle(event Event) ControlFlow {
	r.events = append(r.events, event)

	if r.exitOn != nil && r.exitOn(event) {
		return ControlFlowExit
	}

	return ControlFlowPoll
}

func TestFrameOrder(t *testing.T) {
	var queue eventQueue
	queue.push(Resized{Size: Size{Width: 10, Height: 20}})
	queue.push(KeyboardInput{Key: KeyA, State: Pressed})

	redraw := true

	var rec recorder
	if flow := frame(&queue, &redraw, rec.handle); flow != ControlFlowPoll {
		t.Fatalf("expected Poll, got %s", flow)
	}

	expected := []Event{
		Resized{Size: Size{Width: 10, Height: 20}},
		KeyboardInput{Key: KeyA, State: Pressed},
		MainEventsCleared{},
		RedrawRequested{},
	}

	if !reflect.DeepEqual(rec.events, expected) {
		t.Fatalf("unexpected events: %v", rec.events)
	}

	if redraw {
		t.Fatal("pending redraw was not consumed")
	}

	if len(queue.events) != 0 {
		t.Fatalf("queue not drained: %v", queue.events)
	}
}

func TestFrameWithoutRedraw(t *testing.T) {
	var queue eventQueue
	redraw := false

	var rec recorder
	frame(&queue, &redraw, rec.handle)

	if !reflect.DeepEqual(rec.events, []Event{MainEventsCleared{}}) {
		t.Fatalf("unexpected events: %v", rec.events)
	}
}

func TestFrameStopsOnExit(t *testing.T) {
	var queue eventQueue
	queue.push(CloseRequested{})
	queue.push(Resized{Size: Size{Width: 1, Height: 1}})

	redraw := true

	rec := recorder{
		exitOn: func(event Event) bool {
			_, ok := event.(CloseRequested)
			return ok
		},
	}

	if flow := frame(&queue, &redraw, rec.handle); flow != ControlFlowExit {
		t.Fatalf("expected Exit, got %s", flow)
	}

	if !reflect.DeepEqual(rec.events, []Event{CloseRequested{}}) {
		t.Fatalf("events after exit were dispatched: %v", rec.events)
	}

	if len(queue.events) != 0 {
		t.Fatalf("queue not drained: %v", queue.events)
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		name string
	}{
		{KeyEscape, "Escape"},
		{KeyA, "A"},
		{KeyZ, "Z"},
		{Key0, "0"},
		{Key9, "9"},
		{Key(1000), "Key(1000)"},
	}

	for _, test := range tests {
		if got := test.key.String(); got != test.name {
			t.Errorf("Key(%d).String() = %q, expected %q", uint32(test.key), got, test.name)
		}
	}
}

func TestSizeIsZero(t *testing.T) {
	tests := []struct {
		size Size
		zero bool
	}{
		{Size{}, true},
		{Size{Width: 0, Height: 500}, true},
		{Size{Width: 500, Height: 0}, true},
		{Size{Width: 1, Height: 1}, false},
	}

	for _, test := range tests {
		if got := test.size.IsZero(); got != test.zero {
			t.Errorf("%+v.IsZero() = %v", test.size, got)
		}
	}
}
