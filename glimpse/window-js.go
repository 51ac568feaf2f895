//go:build js

package glimpse

import (
	"syscall/js"

	"github.com/oliverbestmann/webgpu/wgpu"
)

type jsWindow struct {
	canvas js.Value
	queue  eventQueue
	redraw bool

	size  Size
	ratio float64
}

func NewWindow(width, height int, title string) (Window, error) {
	document := js.Global().Get("document")
	canvas := document.Call("createElement", "canvas")
	document.Get("body").Call("appendChild", canvas)

	document.Set("title", title)

	canvas.Set("style", "width:100vw; height:100vh")

	win := &jsWindow{
		canvas: canvas,
		ratio:  devicePixelRatio(),
	}

	win.size = resizeCanvas(canvas)

	return win, nil
}

func (g *jsWindow) InnerSize() Size {
	return g.size
}

func (g *jsWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{Canvas: g.canvas}
}

func (g *jsWindow) RequestRedraw() {
	g.redraw = true
}

func (g *jsWindow) Terminate() {
	// do nothing
}

func (g *jsWindow) Run(handler EventHandler) error {
	helper := js.Global().Call("eval", `({
        async run(runOnce) {
            while (true) {
                await new Promise(resolve => requestAnimationFrame(resolve))
                if (!runOnce()) {
                    return
                }
            }
        }
	})`)

	onKeyDown := js.FuncOf(func(this js.Value, args []js.Value) any {
		if key, ok := domToKey(args[0].Get("key").String()); ok {
			g.queue.push(KeyboardInput{Key: key, State: Pressed})
		}

		return nil
	})

	defer onKeyDown.Release()

	window := js.Global().Get("window")
	window.Call("addEventListener", "keydown", onKeyDown)
	defer window.Call("removeEventListener", "keydown", onKeyDown)

	done := make(chan struct{})

	g.redraw = true

	runOnce := js.FuncOf(func(this js.Value, args []js.Value) any {
		g.pollSize()

		if frame(&g.queue, &g.redraw, handler) == ControlFlowExit {
			close(done)
			return false
		}

		return true
	})

	defer runOnce.Release()

	helper.Call("run", runOnce)

	<-done

	return nil
}

// pollSize queues resize events, the canvas has no resize callback.
func (g *jsWindow) pollSize() {
	ratio := devicePixelRatio()
	size := resizeCanvas(g.canvas)

	switch {
	case ratio != g.ratio:
		g.queue.push(ScaleFactorChanged{ScaleFactor: ratio, NewInnerSize: size})
	case size != g.size:
		g.queue.push(Resized{Size: size})
	}

	g.ratio = ratio
	g.size = size
}

func devicePixelRatio() float64 {
	return js.Global().Get("devicePixelRatio").Float()
}

func resizeCanvas(canvas js.Value) Size {
	vv := js.Global().Get("visualViewport")
	viewWidth := vv.Get("width").Float()
	viewHeight := vv.Get("height").Float()

	ratio := devicePixelRatio()

	width := uint32(viewWidth * ratio)
	height := uint32(viewHeight * ratio)

	canvas.Set("width", width)
	canvas.Set("height", height)

	return Size{Width: width, Height: height}
}

func domToKey(name string) (Key, bool) {
	switch name {
	case "Escape":
		return KeyEscape, true
	case "Enter":
		return KeyEnter, true
	case " ":
		return KeySpace, true
	case "Tab":
		return KeyTab, true
	case "Backspace":
		return KeyBackspace, true
	case "ArrowLeft":
		return KeyLeft, true
	case "ArrowRight":
		return KeyRight, true
	case "ArrowUp":
		return KeyUp, true
	case "ArrowDown":
		return KeyDown, true
	}

	if len(name) == 1 {
		switch ch := name[0]; {
		case ch >= 'a' && ch <= 'z':
			return KeyA + Key(ch-'a'), true
		case ch >= 'A' && ch <= 'Z':
			return KeyA + Key(ch-'A'), true
		case ch >= '0' && ch <= '9':
			return Key0 + Key(ch-'0'), true
		}
	}

	return KeyUnknown, false
}
