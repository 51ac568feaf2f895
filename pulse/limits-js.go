//go:build js

package pulse

import "github.com/oliverbestmann/webgpu/wgpu"

// requiredLimits returns limits a WebGL2 backed browser can satisfy.
// Values follow the downlevel WebGL2 defaults of wgpu.
func requiredLimits() wgpu.Limits {
	limits := wgpu.DefaultLimits()

	limits.MaxTextureDimension1D = 2048
	limits.MaxTextureDimension2D = 2048
	limits.MaxTextureDimension3D = 256
	limits.MaxTextureArrayLayers = 256
	limits.MaxBindGroups = 4
	limits.MaxDynamicUniformBuffersPerPipelineLayout = 8
	limits.MaxDynamicStorageBuffersPerPipelineLayout = 0
	limits.MaxSampledTexturesPerShaderStage = 16
	limits.MaxSamplersPerShaderStage = 16
	limits.MaxStorageBuffersPerShaderStage = 0
	limits.MaxStorageTexturesPerShaderStage = 0
	limits.MaxUniformBuffersPerShaderStage = 11
	limits.MaxUniformBufferBindingSize = 16 << 10
	limits.MaxStorageBufferBindingSize = 0
	limits.MaxVertexBuffers = 8
	limits.MaxVertexAttributes = 16
	limits.MaxVertexBufferArrayStride = 255
	limits.MaxBufferSize = 256 << 20

	// no compute shaders on WebGL2
	limits.MaxComputeWorkgroupStorageSize = 0
	limits.MaxComputeInvocationsPerWorkgroup = 0
	limits.MaxComputeWorkgroupSizeX = 0
	limits.MaxComputeWorkgroupSizeY = 0
	limits.MaxComputeWorkgroupSizeZ = 0
	limits.MaxComputeWorkgroupsPerDimension = 0

	return limits
}
