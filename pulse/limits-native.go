//go:build !js

package pulse

import "github.com/oliverbestmann/webgpu/wgpu"

// requiredLimits asks for the full default limits on native backends.
func requiredLimits() wgpu.Limits {
	return wgpu.DefaultLimits()
}
