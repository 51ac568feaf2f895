//go:build js

package pulse

import "github.com/oliverbestmann/webgpu/wgpu"

// textureAcquired reports whether the surface handed out a texture.
// The browser always provides one for a configured canvas.
func textureAcquired(texture *wgpu.Texture) bool {
	return texture != nil
}
