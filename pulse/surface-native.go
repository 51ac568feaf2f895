//go:build !js

package pulse

import (
	"reflect"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// textureAcquired reports whether the surface handed out a usable texture.
// For a lost, outdated or timed out surface the bindings return a texture
// without a native handle and no error, and any call on it aborts the process.
func textureAcquired(texture *wgpu.Texture) bool {
	if texture == nil {
		return false
	}

	ref := reflect.ValueOf(texture).Elem().FieldByName("ref")
	if !ref.IsValid() || ref.Kind() != reflect.Pointer {
		return true
	}

	return !ref.IsNil()
}
