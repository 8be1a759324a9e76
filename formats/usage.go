package formats

import (
	"github.com/kirides/dxcaps/driver"
	"github.com/kirides/dxcaps/fields"
)

// Usage is one per-format capability a tree node lists.
type Usage int

const (
	UsageShaderSample Usage = iota
	UsageShaderGather
	UsageMipAutoGen
	UsageRenderTarget
	UsageBlendable
	UsageIAVertexBuffer
	UsageTypedUAV
	UsageMultisample
	UsageMultisampleLoad
	UsageLogicOp
	UsageUAVTypedStore
	UsageShareable
	UsageUAVTypedLoad
)

var usages = [...]struct {
	name     string
	support  driver.FormatSupport
	support2 driver.FormatSupport2
}{
	UsageShaderSample:    {"shader-sample", driver.SupportShaderSample, 0},
	UsageShaderGather:    {"shader-gather", driver.SupportShaderGather, 0},
	UsageMipAutoGen:      {"mip-autogen", driver.SupportMipAutogen, 0},
	UsageRenderTarget:    {"render-target", driver.SupportRenderTarget, 0},
	UsageBlendable:       {"blendable", driver.SupportBlendable, 0},
	UsageIAVertexBuffer:  {"ia-vertex-buffer", driver.SupportIAVertexBuffer, 0},
	UsageTypedUAV:        {"typed-uav", driver.SupportTypedUnorderedAccess, 0},
	UsageMultisample:     {"msaa", driver.SupportMultisampleRenderTarget, 0},
	UsageMultisampleLoad: {"msaa-load", driver.SupportMultisampleLoad, 0},
	UsageLogicOp:         {"logic-op", 0, driver.Support2OutputMergerLogicOp},
	UsageUAVTypedStore:   {"uav-typed-store", 0, driver.Support2UAVTypedStore},
	UsageShareable:       {"shareable", 0, driver.Support2Shareable},
	UsageUAVTypedLoad:    {"uav-typed-load", 0, driver.Support2UAVTypedLoad},
}

func (u Usage) String() string {
	if u < 0 || int(u) >= len(usages) {
		return "unknown"
	}
	return usages[u].name
}

// Support is the FORMAT_SUPPORT bit u tests, or 0 for a FORMAT_SUPPORT2 usage.
func (u Usage) Support() driver.FormatSupport { return usages[u].support }

// Support2 is the FORMAT_SUPPORT2 bit u tests, or 0.
func (u Usage) Support2() driver.FormatSupport2 { return usages[u].support2 }

// Candidates returns the formats worth querying for u on an interface of
// version v created at level. samples only matters for UsageMultisample;
// the interesting view narrows some MSAA lists to the formats whose
// support is actually optional at that count. A nil result means the
// combination has nothing optional to show.
func Candidates(v driver.DeviceVersion, level driver.FeatureLevel, u Usage, samples uint32, view fields.View) []driver.Format {
	interesting := view == fields.ViewInteresting
	switch v {
	case driver.D3D10:
		switch u {
		case UsageShaderSample:
			return shaderSample10
		case UsageMipAutoGen:
			return rgb32Float
		case UsageRenderTarget:
			return renderTarget10
		case UsageBlendable:
			return blendable10
		case UsageMultisample:
			return msaa10
		case UsageMultisampleLoad:
			return msaaLoad10
		}

	case driver.D3D10_1:
		switch u {
		case UsageShaderSample, UsageMipAutoGen:
			return rgb32Float
		case UsageRenderTarget:
			return renderTarget10
		case UsageMultisample:
			switch {
			case level.Is10Level9():
				return msaa10Level9
			case interesting && samples == 4:
				return msaa4x10_1
			}
			return msaa10
		}

	case driver.D3D11:
		switch u {
		case UsageShaderSample, UsageShaderGather, UsageMipAutoGen:
			return rgb32Float
		case UsageRenderTarget:
			return renderTarget10
		case UsageMultisample:
			switch {
			case interesting && samples == 8:
				return msaa8x11
			case interesting && samples == 4:
				return nil
			}
			return msaa11No16bpp
		}

	case driver.D3D11_1:
		return candidates11_1(level, u, samples, interesting)

	case driver.D3D11_2:
		if u == UsageShareable {
			return shareable
		}

	case driver.D3D11_3:
		if u == UsageUAVTypedLoad {
			return uavTypedLoad
		}
	}
	return nil
}

func candidates11_1(level driver.FeatureLevel, u Usage, samples uint32, interesting bool) []driver.Format {
	switch u {
	case UsageIAVertexBuffer, UsageTypedUAV, UsageUAVTypedStore:
		return bpp16
	case UsageShaderSample:
		if level >= driver.Level10_1 {
			return rgb32Float
		}
		return shaderSample10
	case UsageShaderGather:
		return rgb32Float
	case UsageMipAutoGen:
		if level >= driver.Level11_1 {
			return mipAutoGen11_1
		}
		return mipAutoGen11
	case UsageRenderTarget:
		if level >= driver.Level11_1 {
			return renderTarget11_1
		}
		return renderTarget11
	case UsageBlendable:
		if level >= driver.Level10_0 {
			return bpp16Alpha
		}
		return blendable11
	case UsageLogicOp:
		return logicOps
	case UsageMultisample:
		switch {
		case !interesting:
			return msaa11
		case samples == 8:
			return msaa8x11_1No565
		case samples == 2 || samples == 4:
			return bpp16Alpha
		}
		return msaa11No565
	case UsageMultisampleLoad:
		switch {
		case level >= driver.Level10_1:
			return bpp16Alpha
		case level >= driver.Level10_0:
			return bpp16
		}
		return msaaLoad11_1
	}
	return nil
}

// SampleCandidates returns the formats that decide which sample counts
// an interface shows.
func SampleCandidates(v driver.DeviceVersion, level driver.FeatureLevel) []driver.Format {
	switch v {
	case driver.D3D10:
		return msaa10
	case driver.D3D10_1:
		if level != driver.Level10_1 {
			return msaa10Level9
		}
		return msaa10
	}
	return msaa11
}

// MatrixCandidates returns the formats of the "Other MSAA" matrix.
func MatrixCandidates(v driver.DeviceVersion) []driver.Format {
	switch v {
	case driver.D3D10, driver.D3D10_1:
		return msaa10
	case driver.D3D11:
		return msaa11No16bpp
	}
	return msaa11
}
