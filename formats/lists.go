package formats

import "github.com/kirides/dxcaps/driver"

// Curated candidate lists. Only formats whose support is optional for
// the generation and usage are listed; everything else is required and
// not worth a query.

var msaa10Level9 = []driver.Format{
	driver.FormatR8G8B8A8Unorm,
	driver.FormatR8G8B8A8UnormSRGB,
	driver.FormatD24UnormS8Uint,
	driver.FormatD16Unorm,
	driver.FormatB8G8R8A8Unorm,
}

var msaa10 = []driver.Format{
	driver.FormatR32G32B32A32Float,
	driver.FormatR32G32B32A32Uint,
	driver.FormatR32G32B32A32Sint,
	driver.FormatR32G32B32Float,
	driver.FormatR32G32B32Uint,
	driver.FormatR32G32B32Sint,
	driver.FormatR16G16B16A16Float,
	driver.FormatR16G16B16A16Unorm,
	driver.FormatR16G16B16A16Uint,
	driver.FormatR16G16B16A16Snorm,
	driver.FormatR16G16B16A16Sint,
	driver.FormatR32G32Float,
	driver.FormatR32G32Uint,
	driver.FormatR32G32Sint,
	driver.FormatD32FloatS8X24Uint,
	driver.FormatR10G10B10A2Unorm,
	driver.FormatR10G10B10A2Uint,
	driver.FormatR11G11B10Float,
	driver.FormatR8G8B8A8Unorm,
	driver.FormatR8G8B8A8UnormSRGB,
	driver.FormatR8G8B8A8Uint,
	driver.FormatR8G8B8A8Snorm,
	driver.FormatR8G8B8A8Sint,
	driver.FormatR16G16Float,
	driver.FormatR16G16Unorm,
	driver.FormatR16G16Uint,
	driver.FormatR16G16Snorm,
	driver.FormatR16G16Sint,
	driver.FormatD32Float,
	driver.FormatR32Float,
	driver.FormatR32Uint,
	driver.FormatR32Sint,
	driver.FormatD24UnormS8Uint,
	driver.FormatR8G8Unorm,
	driver.FormatR8G8Uint,
	driver.FormatR8G8Snorm,
	driver.FormatR8G8Sint,
	driver.FormatR16Float,
	driver.FormatD16Unorm,
	driver.FormatR16Unorm,
	driver.FormatR16Uint,
	driver.FormatR16Snorm,
	driver.FormatR16Sint,
	driver.FormatR8Unorm,
	driver.FormatR8Uint,
	driver.FormatR8Snorm,
	driver.FormatR8Sint,
	driver.FormatA8Unorm,
}

var bpp16 = []driver.Format{
	driver.FormatB5G6R5Unorm,
	driver.FormatB5G5R5A1Unorm,
	driver.FormatB4G4R4A4Unorm,
}

// bpp16Alpha is bpp16 without 565, which is never blendable or
// multisample-loadable as an optional feature.
var bpp16Alpha = []driver.Format{
	driver.FormatB5G5R5A1Unorm,
	driver.FormatB4G4R4A4Unorm,
}

var msaa11 = concat(msaa10, []driver.Format{
	driver.FormatB8G8R8A8Unorm,
	driver.FormatB8G8R8A8UnormSRGB,
	driver.FormatB8G8R8X8Unorm,
	driver.FormatB8G8R8X8UnormSRGB,
}, bpp16)

var shaderSample10 = []driver.Format{
	driver.FormatR32G32B32A32Float,
	driver.FormatR32G32B32Float,
	driver.FormatR32G32Float,
	driver.FormatR32FloatX8X24Typeless,
	driver.FormatR32Float,
	driver.FormatR24UnormX8Typeless,
}

var rgb32Float = []driver.Format{driver.FormatR32G32B32Float}

var renderTarget10 = []driver.Format{
	driver.FormatR32G32B32Float,
	driver.FormatR32G32B32Uint,
	driver.FormatR32G32B32Sint,
}

var blendable10 = []driver.Format{
	driver.FormatR32G32B32Float,
	driver.FormatR16G16B16A16Unorm,
	driver.FormatR16G16Unorm,
	driver.FormatR16Unorm,
}

var msaa4x10_1 = []driver.Format{
	driver.FormatR32G32B32A32Float,
	driver.FormatR32G32B32A32Uint,
	driver.FormatR32G32B32A32Sint,
	driver.FormatR32G32B32Float,
	driver.FormatR32G32B32Uint,
	driver.FormatR32G32B32Sint,
}

var msaa8x11 = []driver.Format{
	driver.FormatR32G32B32A32Float,
	driver.FormatR32G32B32A32Uint,
	driver.FormatR32G32B32A32Sint,
}

var (
	mipAutoGen11     = concat(rgb32Float, bpp16)
	mipAutoGen11_1   = concat(rgb32Float, bpp16Alpha)
	renderTarget11   = concat(renderTarget10, bpp16)
	renderTarget11_1 = concat(renderTarget10, bpp16Alpha)
	blendable11      = concat(blendable10, bpp16)
	msaa8x11_1       = concat(msaa8x11, bpp16)
)

var logicOps = []driver.Format{
	driver.FormatR32G32B32A32Uint,
	driver.FormatR32G32B32Uint,
	driver.FormatR16G16B16A16Uint,
	driver.FormatR32G32Uint,
	driver.FormatR10G10B10A2Uint,
	driver.FormatR8G8B8A8Uint,
	driver.FormatR16G16Uint,
	driver.FormatR32Uint,
	driver.FormatR8G8Uint,
	driver.FormatR16Uint,
	driver.FormatR8Uint,
}

var shareable = []driver.Format{
	driver.FormatR32G32B32A32Float,
	driver.FormatR32G32B32A32Uint,
	driver.FormatR32G32B32A32Sint,
	driver.FormatR16G16B16A16Float,
	driver.FormatR16G16B16A16Unorm,
	driver.FormatR16G16B16A16Uint,
	driver.FormatR16G16B16A16Snorm,
	driver.FormatR16G16B16A16Sint,
	driver.FormatR10G10B10A2Unorm,
	driver.FormatR10G10B10XRBiasA2Unorm,
	driver.FormatR10G10B10A2Uint,
	driver.FormatR8G8B8A8Unorm,
	driver.FormatR8G8B8A8UnormSRGB,
	driver.FormatR8G8B8A8Uint,
	driver.FormatR8G8B8A8Snorm,
	driver.FormatR8G8B8A8Sint,
	driver.FormatR32Float,
	driver.FormatR32Uint,
	driver.FormatR32Sint,
	driver.FormatR8G8Unorm,
	driver.FormatR16Float,
	driver.FormatR16Unorm,
	driver.FormatR16Uint,
	driver.FormatR16Snorm,
	driver.FormatR16Sint,
	driver.FormatR8Unorm,
	driver.FormatR8Uint,
	driver.FormatR8Snorm,
	driver.FormatR8Sint,
	driver.FormatA8Unorm,
	driver.FormatBC1Unorm,
	driver.FormatBC1UnormSRGB,
	driver.FormatBC2Unorm,
	driver.FormatBC2UnormSRGB,
	driver.FormatBC3Unorm,
	driver.FormatBC3UnormSRGB,
	driver.FormatB8G8R8A8Unorm,
	driver.FormatB8G8R8A8UnormSRGB,
	driver.FormatB8G8R8X8Unorm,
	driver.FormatB8G8R8X8UnormSRGB,
}

var uavTypedLoad = []driver.Format{
	driver.FormatR32G32B32A32Float,
	driver.FormatR32G32B32A32Uint,
	driver.FormatR32G32B32A32Sint,
	driver.FormatR16G16B16A16Float,
	driver.FormatR16G16B16A16Unorm,
	driver.FormatR16G16B16A16Uint,
	driver.FormatR16G16B16A16Snorm,
	driver.FormatR16G16B16A16Sint,
	driver.FormatR32G32Float,
	driver.FormatR32G32Uint,
	driver.FormatR32G32Sint,
	driver.FormatR10G10B10A2Unorm,
	driver.FormatR10G10B10A2Uint,
	driver.FormatR11G11B10Float,
	driver.FormatR8G8B8A8Unorm,
	driver.FormatR8G8B8A8Uint,
	driver.FormatR8G8B8A8Snorm,
	driver.FormatR8G8B8A8Sint,
	driver.FormatR16G16Float,
	driver.FormatR16G16Unorm,
	driver.FormatR16G16Uint,
	driver.FormatR16G16Snorm,
	driver.FormatR16G16Sint,
	driver.FormatR32Float,
	driver.FormatR32Uint,
	driver.FormatR32Sint,
	driver.FormatR8G8Unorm,
	driver.FormatR8G8Uint,
	driver.FormatR8G8Snorm,
	driver.FormatR8G8Sint,
	driver.FormatR16Float,
	driver.FormatR16Unorm,
	driver.FormatR16Uint,
	driver.FormatR16Snorm,
	driver.FormatR16Sint,
	driver.FormatR8Unorm,
	driver.FormatR8Uint,
	driver.FormatR8Snorm,
	driver.FormatR8Sint,
	driver.FormatA8Unorm,
}

// VideoFormats are the YUV and palettized formats of the Video node.
var VideoFormats = []driver.Format{
	driver.FormatNV12,
	driver.Format420Opaque,
	driver.FormatYUY2,
	driver.FormatAYUV,
	driver.FormatY410,
	driver.FormatY416,
	driver.FormatP010,
	driver.FormatP016,
	driver.FormatY210,
	driver.FormatY216,
	driver.FormatNV11,
	driver.FormatAI44,
	driver.FormatIA44,
	driver.FormatP8,
	driver.FormatA8P8,
}

// Skip lists for the reused MSAA lists. Depth formats can never be
// multisample-loaded through a shader resource view, and the SRGB BGRA
// variants are required where they are loadable at all.
var (
	skipDepth = []driver.Format{
		driver.FormatD32FloatS8X24Uint,
		driver.FormatD32Float,
		driver.FormatD24UnormS8Uint,
		driver.FormatD16Unorm,
	}
	skipSRGBBGRA = []driver.Format{
		driver.FormatB8G8R8A8UnormSRGB,
		driver.FormatB8G8R8X8UnormSRGB,
	}
	skip565 = []driver.Format{driver.FormatB5G6R5Unorm}
)

// Pre-filtered tables, built once from the lists above.
var (
	msaaLoad10      []driver.Format
	msaaLoad11_1    []driver.Format
	msaa11No16bpp   []driver.Format
	msaa11No565     []driver.Format
	msaa8x11_1No565 []driver.Format
)

func init() {
	msaaLoad10 = without(msaa10, skipDepth)
	msaaLoad11_1 = without(msaa11, concat(skipDepth, skipSRGBBGRA))
	msaa11No16bpp = without(msaa11, bpp16)
	msaa11No565 = without(msaa11, skip565)
	msaa8x11_1No565 = without(msaa8x11_1, skip565)
}

func concat(lists ...[]driver.Format) []driver.Format {
	var n int
	for _, l := range lists {
		n += len(l)
	}
	out := make([]driver.Format, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func without(list, skip []driver.Format) []driver.Format {
	out := make([]driver.Format, 0, len(list))
next:
	for _, f := range list {
		for _, s := range skip {
			if f == s {
				continue next
			}
		}
		out = append(out, f)
	}
	return out
}
