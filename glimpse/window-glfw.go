//go:build !js

package glimpse

import (
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/webgpu/wgpuglfw"
	"github.com/pkg/profile"
)

var cpuProfile = os.Getenv("WINDSHIELD_CPU_PROFILE") == "1"

type glfwWindow struct {
	win    *glfw.Window
	prof   interface{ Stop() }
	queue  eventQueue
	redraw bool
}

func NewWindow(width, height int, title string) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "initialize glfw")
	}

	// the surface is driven by webgpu, not by an OpenGL context
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "create window")
	}

	w := &glfwWindow{win: window}

	if cpuProfile {
		w.prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	}

	configureCallbacks(window, &w.queue)

	return w, nil
}

func (g *glfwWindow) InnerSize() Size {
	width, height := g.win.GetFramebufferSize()
	return Size{Width: uint32(width), Height: uint32(height)}
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) RequestRedraw() {
	g.redraw = true
}

func (g *glfwWindow) Terminate() {
	if g.prof != nil {
		g.prof.Stop()
	}

	g.win.Destroy()
	glfw.Terminate()
}

func (g *glfwWindow) Run(handler EventHandler) error {
	// a window is drawn at least once, even if nobody asks for it
	g.redraw = true

	for {
		glfw.PollEvents()

		if frame(&g.queue, &g.redraw, handler) == ControlFlowExit {
			return nil
		}
	}
}

func configureCallbacks(window *glfw.Window, queue *eventQueue) {
	window.SetCloseCallback(func(win *glfw.Window) {
		// closing is decided by the event handler
		win.SetShouldClose(false)
		queue.push(CloseRequested{})
	})

	window.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}

		key, ok := keyOf(glfwKey)
		if !ok {
			return
		}

		state := Pressed
		if action == glfw.Release {
			state = Released
		}

		queue.push(KeyboardInput{Key: key, State: state})
	})

	window.SetFramebufferSizeCallback(func(_win *glfw.Window, width int, height int) {
		queue.push(Resized{Size: Size{Width: uint32(width), Height: uint32(height)}})
	})

	window.SetContentScaleCallback(func(win *glfw.Window, x float32, y float32) {
		width, height := win.GetFramebufferSize()

		queue.push(ScaleFactorChanged{
			ScaleFactor:  float64(x),
			NewInnerSize: Size{Width: uint32(width), Height: uint32(height)},
		})
	})
}

func keyOf(glfwKey glfw.Key) (key Key, ok bool) {
	key, ok = glfwToKey(glfwKey)
	if !ok {
		slog.Warn(
			"Unknown key code",
			slog.Int("code", int(glfwKey)),
			slog.String("key", glfw.GetKeyName(glfwKey, 0)),
		)
	}

	return
}

var glfwNamedKeys = map[glfw.Key]Key{
	glfw.KeyEscape:    KeyEscape,
	glfw.KeyEnter:     KeyEnter,
	glfw.KeySpace:     KeySpace,
	glfw.KeyTab:       KeyTab,
	glfw.KeyBackspace: KeyBackspace,
	glfw.KeyLeft:      KeyLeft,
	glfw.KeyRight:     KeyRight,
	glfw.KeyUp:        KeyUp,
	glfw.KeyDown:      KeyDown,
}

func glfwToKey(glfwKey glfw.Key) (Key, bool) {
	switch {
	case glfwKey >= glfw.KeyA && glfwKey <= glfw.KeyZ:
		return KeyA + Key(glfwKey-glfw.KeyA), true
	case glfwKey >= glfw.Key0 && glfwKey <= glfw.Key9:
		return Key0 + Key(glfwKey-glfw.Key0), true
	}

	key, ok := glfwNamedKeys[glfwKey]
	return key, ok
}
