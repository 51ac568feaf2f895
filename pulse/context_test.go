package pulse

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/windshield/glimpse"
)

type fakeSurface struct {
	configured []wgpu.SurfaceConfiguration
	texture    *wgpu.Texture
	acquireErr error
	presented  int
	released   bool
}

func (f *fakeSurface) Configure(device *wgpu.Device, config *wgpu.SurfaceConfiguration) {
	f.configured = append(f.configured, *config)
}

func (f *fakeSurface) GetCurrentTexture() (*wgpu.Texture, error) {
	if f.acquireErr != nil {
		return nil, f.acquireErr
	}

	return f.texture, nil
}

func (f *fakeSurface) Present() {
	f.presented++
}

func (f *fakeSurface) Release() {
	f.released = true
}

func newTestContext(width, height uint32) (*Context, *fakeSurface) {
	surface := &fakeSurface{}

	ctx := &Context{
		surface: surface,
		size:    glimpse.Size{Width: width, Height: height},
		config: wgpu.SurfaceConfiguration{
			Usage:       wgpu.TextureUsageRenderAttachment,
			Format:      wgpu.TextureFormatBGRA8Unorm,
			PresentMode: wgpu.PresentModeFifo,
			AlphaMode:   wgpu.CompositeAlphaModeAuto,
			Width:       width,
			Height:      height,
		},
	}

	return ctx, surface
}

func assertConfigSize(t *testing.T, ctx *Context, width, height uint32) {
	t.Helper()

	config := ctx.Config()
	if config.Width != width || config.Height != height {
		t.Fatalf("expected configuration %dx%d, got %dx%d", width, height, config.Width, config.Height)
	}

	if size := ctx.Size(); size.Width != width || size.Height != height {
		t.Fatalf("expected size %dx%d, got %dx%d", width, height, size.Width, size.Height)
	}
}

func TestResizeValid(t *testing.T) {
	sizes := []glimpse.Size{
		{Width: 1, Height: 1},
		{Width: 1024, Height: 768},
		{Width: 3840, Height: 2160},
		{Width: 300, Height: 5000},
	}

	for _, size := range sizes {
		ctx, surface := newTestContext(800, 600)
		ctx.Resize(size)

		assertConfigSize(t, ctx, size.Width, size.Height)

		if len(surface.configured) != 1 {
			t.Fatalf("expected exactly one reconfiguration, got %d", len(surface.configured))
		}

		applied := surface.configured[0]
		if applied.Width != size.Width || applied.Height != size.Height {
			t.Fatalf("surface configured with %dx%d", applied.Width, applied.Height)
		}

		if applied.Format != wgpu.TextureFormatBGRA8Unorm || applied.PresentMode != wgpu.PresentModeFifo {
			t.Fatal("resize must keep format and present mode")
		}
	}
}

func TestResizeZeroIsIgnored(t *testing.T) {
	sizes := []glimpse.Size{
		{},
		{Width: 0, Height: 500},
		{Width: 500, Height: 0},
	}

	for _, size := range sizes {
		ctx, surface := newTestContext(800, 600)
		ctx.Resize(size)

		assertConfigSize(t, ctx, 800, 600)

		if len(surface.configured) != 0 {
			t.Fatalf("resize to %+v must not reconfigure the surface", size)
		}
	}
}

func TestResizeKeepsLastValidSize(t *testing.T) {
	ctx, surface := newTestContext(800, 600)

	ctx.Resize(glimpse.Size{Width: 640, Height: 480})
	ctx.Resize(glimpse.Size{Width: 1920, Height: 1080})

	assertConfigSize(t, ctx, 1920, 1080)

	if len(surface.configured) != 2 {
		t.Fatalf("expected two reconfigurations, got %d", len(surface.configured))
	}
}

func TestResizeScenario(t *testing.T) {
	ctx, _ := newTestContext(800, 600)

	ctx.Resize(glimpse.Size{Width: 0, Height: 0})
	assertConfigSize(t, ctx, 800, 600)

	ctx.Resize(glimpse.Size{Width: 1024, Height: 768})
	assertConfigSize(t, ctx, 1024, 768)

	ctx.Resize(glimpse.Size{Width: 0, Height: 500})
	assertConfigSize(t, ctx, 1024, 768)
}

func TestInputAndUpdateAreInert(t *testing.T) {
	ctx, surface := newTestContext(800, 600)

	events := []glimpse.WindowEvent{
		glimpse.CloseRequested{},
		glimpse.KeyboardInput{Key: glimpse.KeyEscape, State: glimpse.Pressed},
		glimpse.Resized{Size: glimpse.Size{Width: 10, Height: 10}},
	}

	for _, event := range events {
		if ctx.Input(event) {
			t.Fatalf("event %v must not be consumed", event)
		}
	}

	ctx.Update()

	assertConfigSize(t, ctx, 800, 600)

	if len(surface.configured) != 0 {
		t.Fatal("input or update must not touch the surface")
	}
}

func TestRenderWithoutSurfaceTextureIsLost(t *testing.T) {
	ctx, surface := newTestContext(800, 600)

	// what the bindings return for a lost or outdated surface
	surface.texture = &wgpu.Texture{}

	err := ctx.Render()
	if !errors.Is(err, ErrSurfaceLost) {
		t.Fatalf("expected %v, got %v", ErrSurfaceLost, err)
	}

	if surface.presented != 0 {
		t.Fatal("nothing must be presented without a texture")
	}
}

func TestRenderPropagatesAcquireErrors(t *testing.T) {
	ctx, surface := newTestContext(800, 600)

	acquireErr := errors.New("wgpu.(*Surface).GetCurrentTexture(): Surface is not configured for presentation")
	surface.acquireErr = acquireErr

	err := ctx.Render()
	if !errors.Is(err, acquireErr) {
		t.Fatalf("expected %v, got %v", acquireErr, err)
	}

	if errors.Is(err, ErrSurfaceLost) || errors.Is(err, ErrSurfaceOutOfMemory) {
		t.Fatalf("validation error must not be reported as a surface state: %v", err)
	}

	if surface.presented != 0 {
		t.Fatal("nothing must be presented if acquisition failed")
	}
}

func TestTextureAcquired(t *testing.T) {
	if textureAcquired(nil) {
		t.Fatal("nil texture reported as acquired")
	}

	if textureAcquired(&wgpu.Texture{}) {
		t.Fatal("texture without handle reported as acquired")
	}
}

func TestReleaseReleasesSurface(t *testing.T) {
	ctx, surface := newTestContext(800, 600)
	ctx.Release()

	if !surface.released {
		t.Fatal("surface not released")
	}

	// releasing twice is fine
	ctx.Release()
}
