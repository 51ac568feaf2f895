package pulse

import "github.com/oliverbestmann/webgpu/wgpu"

// RenderTarget holds what a render pass draws into.
// Here this is always a view of the current surface texture.
type RenderTarget struct {
	View *wgpu.TextureView
}
