package pulse

import (
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/windshield/glimpse"
)

func init() {
	// glfw and the native surface must be driven from the main thread
	runtime.LockOSThread()

	switch strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL")) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

// surface is the part of *wgpu.Surface the Context depends on.
type surface interface {
	Configure(device *wgpu.Device, config *wgpu.SurfaceConfiguration)
	GetCurrentTexture() (*wgpu.Texture, error)
	Present()
	Release()
}

// Context encapsulates the low level state of the webgpu context:
// the Surface bound to the window, the Device with its Queue and
// the configuration of the Surface.
type Context struct {
	Adapter *wgpu.Adapter
	Device  *wgpu.Device
	Queue   *wgpu.Queue

	surface surface
	config  wgpu.SurfaceConfiguration

	// last known size of the window
	size glimpse.Size

	clear *ClearCommand
}

// New initializes webgpu for the given window. It blocks until
// an adapter and a device were acquired.
func New(win glimpse.Window) (ctx *Context, err error) {
	defer func() {
		if err != nil && ctx != nil {
			ctx.Release()
			ctx = nil
		}
	}()

	ctx = &Context{}

	size := win.InnerSize()

	// create the webgpu instance on all available backends
	instance := wgpu.CreateInstance(&wgpu.InstanceDescriptor{
		Backends: wgpu.InstanceBackendAll,
	})
	defer instance.Release()

	// create a Surface based on the window
	wgpuSurface := instance.CreateSurface(win.SurfaceDescriptor())
	ctx.surface = wgpuSurface

	// request an adapter that can render to the Surface
	ctx.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference:      wgpu.PowerPreferenceUndefined,
		ForceFallbackAdapter: false,
		CompatibleSurface:    wgpuSurface,
	})
	if err != nil {
		return ctx, errors.Wrap(err, "request adapter")
	}

	limits := requiredLimits()

	ctx.Device, err = ctx.Adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:          "Device",
		RequiredLimits: &limits,
	})
	if err != nil {
		return ctx, errors.Wrap(err, "request device")
	}

	ctx.Queue = ctx.Device.GetQueue()

	caps := wgpuSurface.GetCapabilities(ctx.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	if len(caps.Formats) == 0 {
		return ctx, errors.New("surface is not supported by the adapter")
	}

	ctx.size = size
	ctx.config = wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   wgpu.CompositeAlphaModeAuto,
		Width:       size.Width,
		Height:      size.Height,
	}

	ctx.surface.Configure(ctx.Device, &ctx.config)

	ctx.clear = NewClear(ctx)

	return ctx, nil
}

// Size returns the last size the surface was configured with.
func (c *Context) Size() glimpse.Size {
	return c.size
}

// Config returns a copy of the current surface configuration.
func (c *Context) Config() wgpu.SurfaceConfiguration {
	return c.config
}

// Resize reconfigures the surface to the new size. A size with
// a zero dimension is ignored, as reported for minimized windows.
func (c *Context) Resize(size glimpse.Size) {
	if size.IsZero() {
		return
	}

	slog.Debug("Resize surface",
		slog.Int("width", int(size.Width)),
		slog.Int("height", int(size.Height)),
	)

	c.size = size
	c.config.Width = size.Width
	c.config.Height = size.Height
	c.surface.Configure(c.Device, &c.config)
}

// Input offers a window event to the context. It reports whether the
// event was consumed. Nothing is consumed at the moment.
func (c *Context) Input(event glimpse.WindowEvent) bool {
	return false
}

// Update advances per frame state. There is no state yet.
func (c *Context) Update() {
}

// Render clears the current surface texture to ClearColor and presents it.
// If the surface did not hand out a texture, ErrSurfaceLost is returned
// and the surface needs to be configured again.
func (c *Context) Render() error {
	texture, err := c.surface.GetCurrentTexture()
	if err != nil {
		return errors.Wrap(err, "get current texture")
	}

	if !textureAcquired(texture) {
		return errors.Wrap(ErrSurfaceLost, "get current texture")
	}

	defer texture.Release()

	view, err := texture.CreateView(nil)
	if err != nil {
		return errors.Wrap(err, "create surface view")
	}

	defer view.Release()

	if err := c.clear.Clear(RenderTarget{View: view}, ClearColor); err != nil {
		return errors.Wrap(err, "clear surface")
	}

	c.surface.Present()

	// we do not need to release the texture if present was successful
	texture = nil

	return nil
}

func (c *Context) Release() {
	if c.Queue != nil {
		c.Queue.Release()
		c.Queue = nil
	}

	if c.Device != nil {
		c.Device.Release()
		c.Device = nil
	}

	if c.Adapter != nil {
		c.Adapter.Release()
		c.Adapter = nil
	}

	if c.surface != nil {
		c.surface.Release()
		c.surface = nil
	}
}
