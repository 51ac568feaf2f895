package pulse

import (
	"github.com/cockroachdb/errors"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// ClearCommand records and submits a single render pass that
// clears a render target.
type ClearCommand struct {
	device *wgpu.Device
	queue  *wgpu.Queue
}

func NewClear(ctx *Context) *ClearCommand {
	return &ClearCommand{device: ctx.Device, queue: ctx.Queue}
}

func (c *ClearCommand) Clear(target RenderTarget, color Color) error {
	enc, err := c.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "Render Encoder",
	})
	if err != nil {
		return errors.Wrap(err, "create command encoder")
	}

	defer enc.Release()

	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Render Pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       target.View,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: color.ToWGPU(),
			},
		},
		DepthStencilAttachment: nil,
	})

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	if err := pass.End(); err != nil {
		return errors.Wrap(err, "end render pass")
	}

	passGuard.Release()

	// encode into a command buffer
	buf, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "Render Encoder"})
	if err != nil {
		return errors.Wrap(err, "finish command encoder")
	}

	defer buf.Release()

	c.queue.Submit(buf)

	return nil
}

type Releaser interface {
	Release()
}

// ReleaseGuard releases its delegate at most once.
type ReleaseGuard struct {
	delegate Releaser
}

func NewReleaseGuard(delegate Releaser) ReleaseGuard {
	return ReleaseGuard{delegate: delegate}
}

func (r *ReleaseGuard) Release() {
	if r.delegate != nil {
		r.delegate.Release()
		r.delegate = nil
	}
}
