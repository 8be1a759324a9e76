package driver

import "strconv"

// Format is a DXGI_FORMAT value.
type Format uint32

const (
	FormatUnknown                Format = 0
	FormatR32G32B32A32Typeless   Format = 1
	FormatR32G32B32A32Float      Format = 2
	FormatR32G32B32A32Uint       Format = 3
	FormatR32G32B32A32Sint       Format = 4
	FormatR32G32B32Typeless      Format = 5
	FormatR32G32B32Float         Format = 6
	FormatR32G32B32Uint          Format = 7
	FormatR32G32B32Sint          Format = 8
	FormatR16G16B16A16Typeless   Format = 9
	FormatR16G16B16A16Float      Format = 10
	FormatR16G16B16A16Unorm      Format = 11
	FormatR16G16B16A16Uint       Format = 12
	FormatR16G16B16A16Snorm      Format = 13
	FormatR16G16B16A16Sint       Format = 14
	FormatR32G32Typeless         Format = 15
	FormatR32G32Float            Format = 16
	FormatR32G32Uint             Format = 17
	FormatR32G32Sint             Format = 18
	FormatR32G8X24Typeless       Format = 19
	FormatD32FloatS8X24Uint      Format = 20
	FormatR32FloatX8X24Typeless  Format = 21
	FormatX32TypelessG8X24Uint   Format = 22
	FormatR10G10B10A2Typeless    Format = 23
	FormatR10G10B10A2Unorm       Format = 24
	FormatR10G10B10A2Uint        Format = 25
	FormatR11G11B10Float         Format = 26
	FormatR8G8B8A8Typeless       Format = 27
	FormatR8G8B8A8Unorm          Format = 28
	FormatR8G8B8A8UnormSRGB      Format = 29
	FormatR8G8B8A8Uint           Format = 30
	FormatR8G8B8A8Snorm          Format = 31
	FormatR8G8B8A8Sint           Format = 32
	FormatR16G16Typeless         Format = 33
	FormatR16G16Float            Format = 34
	FormatR16G16Unorm            Format = 35
	FormatR16G16Uint             Format = 36
	FormatR16G16Snorm            Format = 37
	FormatR16G16Sint             Format = 38
	FormatR32Typeless            Format = 39
	FormatD32Float               Format = 40
	FormatR32Float               Format = 41
	FormatR32Uint                Format = 42
	FormatR32Sint                Format = 43
	FormatR24G8Typeless          Format = 44
	FormatD24UnormS8Uint         Format = 45
	FormatR24UnormX8Typeless     Format = 46
	FormatX24TypelessG8Uint      Format = 47
	FormatR8G8Typeless           Format = 48
	FormatR8G8Unorm              Format = 49
	FormatR8G8Uint               Format = 50
	FormatR8G8Snorm              Format = 51
	FormatR8G8Sint               Format = 52
	FormatR16Typeless            Format = 53
	FormatR16Float               Format = 54
	FormatD16Unorm               Format = 55
	FormatR16Unorm               Format = 56
	FormatR16Uint                Format = 57
	FormatR16Snorm               Format = 58
	FormatR16Sint                Format = 59
	FormatR8Typeless             Format = 60
	FormatR8Unorm                Format = 61
	FormatR8Uint                 Format = 62
	FormatR8Snorm                Format = 63
	FormatR8Sint                 Format = 64
	FormatA8Unorm                Format = 65
	FormatR1Unorm                Format = 66
	FormatR9G9B9E5SharedExp      Format = 67
	FormatR8G8B8G8Unorm          Format = 68
	FormatG8R8G8B8Unorm          Format = 69
	FormatBC1Typeless            Format = 70
	FormatBC1Unorm               Format = 71
	FormatBC1UnormSRGB           Format = 72
	FormatBC2Typeless            Format = 73
	FormatBC2Unorm               Format = 74
	FormatBC2UnormSRGB           Format = 75
	FormatBC3Typeless            Format = 76
	FormatBC3Unorm               Format = 77
	FormatBC3UnormSRGB           Format = 78
	FormatBC4Typeless            Format = 79
	FormatBC4Unorm               Format = 80
	FormatBC4Snorm               Format = 81
	FormatBC5Typeless            Format = 82
	FormatBC5Unorm               Format = 83
	FormatBC5Snorm               Format = 84
	FormatB5G6R5Unorm            Format = 85
	FormatB5G5R5A1Unorm          Format = 86
	FormatB8G8R8A8Unorm          Format = 87
	FormatB8G8R8X8Unorm          Format = 88
	FormatR10G10B10XRBiasA2Unorm Format = 89
	FormatB8G8R8A8Typeless       Format = 90
	FormatB8G8R8A8UnormSRGB      Format = 91
	FormatB8G8R8X8Typeless       Format = 92
	FormatB8G8R8X8UnormSRGB      Format = 93
	FormatBC6HTypeless           Format = 94
	FormatBC6HUF16               Format = 95
	FormatBC6HSF16               Format = 96
	FormatBC7Typeless            Format = 97
	FormatBC7Unorm               Format = 98
	FormatBC7UnormSRGB           Format = 99
	FormatAYUV                   Format = 100
	FormatY410                   Format = 101
	FormatY416                   Format = 102
	FormatNV12                   Format = 103
	FormatP010                   Format = 104
	FormatP016                   Format = 105
	Format420Opaque              Format = 106
	FormatYUY2                   Format = 107
	FormatY210                   Format = 108
	FormatY216                   Format = 109
	FormatNV11                   Format = 110
	FormatAI44                   Format = 111
	FormatIA44                   Format = 112
	FormatP8                     Format = 113
	FormatA8P8                   Format = 114
	FormatB4G4R4A4Unorm          Format = 115
	FormatP208                   Format = 130
	FormatV208                   Format = 131
	FormatV408                   Format = 132
)

var formatNames = map[Format]string{
	FormatUnknown:                "DXGI_FORMAT_UNKNOWN",
	FormatR32G32B32A32Typeless:   "DXGI_FORMAT_R32G32B32A32_TYPELESS",
	FormatR32G32B32A32Float:      "DXGI_FORMAT_R32G32B32A32_FLOAT",
	FormatR32G32B32A32Uint:       "DXGI_FORMAT_R32G32B32A32_UINT",
	FormatR32G32B32A32Sint:       "DXGI_FORMAT_R32G32B32A32_SINT",
	FormatR32G32B32Typeless:      "DXGI_FORMAT_R32G32B32_TYPELESS",
	FormatR32G32B32Float:         "DXGI_FORMAT_R32G32B32_FLOAT",
	FormatR32G32B32Uint:          "DXGI_FORMAT_R32G32B32_UINT",
	FormatR32G32B32Sint:          "DXGI_FORMAT_R32G32B32_SINT",
	FormatR16G16B16A16Typeless:   "DXGI_FORMAT_R16G16B16A16_TYPELESS",
	FormatR16G16B16A16Float:      "DXGI_FORMAT_R16G16B16A16_FLOAT",
	FormatR16G16B16A16Unorm:      "DXGI_FORMAT_R16G16B16A16_UNORM",
	FormatR16G16B16A16Uint:       "DXGI_FORMAT_R16G16B16A16_UINT",
	FormatR16G16B16A16Snorm:      "DXGI_FORMAT_R16G16B16A16_SNORM",
	FormatR16G16B16A16Sint:       "DXGI_FORMAT_R16G16B16A16_SINT",
	FormatR32G32Typeless:         "DXGI_FORMAT_R32G32_TYPELESS",
	FormatR32G32Float:            "DXGI_FORMAT_R32G32_FLOAT",
	FormatR32G32Uint:             "DXGI_FORMAT_R32G32_UINT",
	FormatR32G32Sint:             "DXGI_FORMAT_R32G32_SINT",
	FormatR32G8X24Typeless:       "DXGI_FORMAT_R32G8X24_TYPELESS",
	FormatD32FloatS8X24Uint:      "DXGI_FORMAT_D32_FLOAT_S8X24_UINT",
	FormatR32FloatX8X24Typeless:  "DXGI_FORMAT_R32_FLOAT_X8X24_TYPELESS",
	FormatX32TypelessG8X24Uint:   "DXGI_FORMAT_X32_TYPELESS_G8X24_UINT",
	FormatR10G10B10A2Typeless:    "DXGI_FORMAT_R10G10B10A2_TYPELESS",
	FormatR10G10B10A2Unorm:       "DXGI_FORMAT_R10G10B10A2_UNORM",
	FormatR10G10B10A2Uint:        "DXGI_FORMAT_R10G10B10A2_UINT",
	FormatR11G11B10Float:         "DXGI_FORMAT_R11G11B10_FLOAT",
	FormatR8G8B8A8Typeless:       "DXGI_FORMAT_R8G8B8A8_TYPELESS",
	FormatR8G8B8A8Unorm:          "DXGI_FORMAT_R8G8B8A8_UNORM",
	FormatR8G8B8A8UnormSRGB:      "DXGI_FORMAT_R8G8B8A8_UNORM_SRGB",
	FormatR8G8B8A8Uint:           "DXGI_FORMAT_R8G8B8A8_UINT",
	FormatR8G8B8A8Snorm:          "DXGI_FORMAT_R8G8B8A8_SNORM",
	FormatR8G8B8A8Sint:           "DXGI_FORMAT_R8G8B8A8_SINT",
	FormatR16G16Typeless:         "DXGI_FORMAT_R16G16_TYPELESS",
	FormatR16G16Float:            "DXGI_FORMAT_R16G16_FLOAT",
	FormatR16G16Unorm:            "DXGI_FORMAT_R16G16_UNORM",
	FormatR16G16Uint:             "DXGI_FORMAT_R16G16_UINT",
	FormatR16G16Snorm:            "DXGI_FORMAT_R16G16_SNORM",
	FormatR16G16Sint:             "DXGI_FORMAT_R16G16_SINT",
	FormatR32Typeless:            "DXGI_FORMAT_R32_TYPELESS",
	FormatD32Float:               "DXGI_FORMAT_D32_FLOAT",
	FormatR32Float:               "DXGI_FORMAT_R32_FLOAT",
	FormatR32Uint:                "DXGI_FORMAT_R32_UINT",
	FormatR32Sint:                "DXGI_FORMAT_R32_SINT",
	FormatR24G8Typeless:          "DXGI_FORMAT_R24G8_TYPELESS",
	FormatD24UnormS8Uint:         "DXGI_FORMAT_D24_UNORM_S8_UINT",
	FormatR24UnormX8Typeless:     "DXGI_FORMAT_R24_UNORM_X8_TYPELESS",
	FormatX24TypelessG8Uint:      "DXGI_FORMAT_X24_TYPELESS_G8_UINT",
	FormatR8G8Typeless:           "DXGI_FORMAT_R8G8_TYPELESS",
	FormatR8G8Unorm:              "DXGI_FORMAT_R8G8_UNORM",
	FormatR8G8Uint:               "DXGI_FORMAT_R8G8_UINT",
	FormatR8G8Snorm:              "DXGI_FORMAT_R8G8_SNORM",
	FormatR8G8Sint:               "DXGI_FORMAT_R8G8_SINT",
	FormatR16Typeless:            "DXGI_FORMAT_R16_TYPELESS",
	FormatR16Float:               "DXGI_FORMAT_R16_FLOAT",
	FormatD16Unorm:               "DXGI_FORMAT_D16_UNORM",
	FormatR16Unorm:               "DXGI_FORMAT_R16_UNORM",
	FormatR16Uint:                "DXGI_FORMAT_R16_UINT",
	FormatR16Snorm:               "DXGI_FORMAT_R16_SNORM",
	FormatR16Sint:                "DXGI_FORMAT_R16_SINT",
	FormatR8Typeless:             "DXGI_FORMAT_R8_TYPELESS",
	FormatR8Unorm:                "DXGI_FORMAT_R8_UNORM",
	FormatR8Uint:                 "DXGI_FORMAT_R8_UINT",
	FormatR8Snorm:                "DXGI_FORMAT_R8_SNORM",
	FormatR8Sint:                 "DXGI_FORMAT_R8_SINT",
	FormatA8Unorm:                "DXGI_FORMAT_A8_UNORM",
	FormatR1Unorm:                "DXGI_FORMAT_R1_UNORM",
	FormatR9G9B9E5SharedExp:      "DXGI_FORMAT_R9G9B9E5_SHAREDEXP",
	FormatR8G8B8G8Unorm:          "DXGI_FORMAT_R8G8_B8G8_UNORM",
	FormatG8R8G8B8Unorm:          "DXGI_FORMAT_G8R8_G8B8_UNORM",
	FormatBC1Typeless:            "DXGI_FORMAT_BC1_TYPELESS",
	FormatBC1Unorm:               "DXGI_FORMAT_BC1_UNORM",
	FormatBC1UnormSRGB:           "DXGI_FORMAT_BC1_UNORM_SRGB",
	FormatBC2Typeless:            "DXGI_FORMAT_BC2_TYPELESS",
	FormatBC2Unorm:               "DXGI_FORMAT_BC2_UNORM",
	FormatBC2UnormSRGB:           "DXGI_FORMAT_BC2_UNORM_SRGB",
	FormatBC3Typeless:            "DXGI_FORMAT_BC3_TYPELESS",
	FormatBC3Unorm:               "DXGI_FORMAT_BC3_UNORM",
	FormatBC3UnormSRGB:           "DXGI_FORMAT_BC3_UNORM_SRGB",
	FormatBC4Typeless:            "DXGI_FORMAT_BC4_TYPELESS",
	FormatBC4Unorm:               "DXGI_FORMAT_BC4_UNORM",
	FormatBC4Snorm:               "DXGI_FORMAT_BC4_SNORM",
	FormatBC5Typeless:            "DXGI_FORMAT_BC5_TYPELESS",
	FormatBC5Unorm:               "DXGI_FORMAT_BC5_UNORM",
	FormatBC5Snorm:               "DXGI_FORMAT_BC5_SNORM",
	FormatB5G6R5Unorm:            "DXGI_FORMAT_B5G6R5_UNORM",
	FormatB5G5R5A1Unorm:          "DXGI_FORMAT_B5G5R5A1_UNORM",
	FormatB8G8R8A8Unorm:          "DXGI_FORMAT_B8G8R8A8_UNORM",
	FormatB8G8R8X8Unorm:          "DXGI_FORMAT_B8G8R8X8_UNORM",
	FormatR10G10B10XRBiasA2Unorm: "DXGI_FORMAT_R10G10B10_XR_BIAS_A2_UNORM",
	FormatB8G8R8A8Typeless:       "DXGI_FORMAT_B8G8R8A8_TYPELESS",
	FormatB8G8R8A8UnormSRGB:      "DXGI_FORMAT_B8G8R8A8_UNORM_SRGB",
	FormatB8G8R8X8Typeless:       "DXGI_FORMAT_B8G8R8X8_TYPELESS",
	FormatB8G8R8X8UnormSRGB:      "DXGI_FORMAT_B8G8R8X8_UNORM_SRGB",
	FormatBC6HTypeless:           "DXGI_FORMAT_BC6H_TYPELESS",
	FormatBC6HUF16:               "DXGI_FORMAT_BC6H_UF16",
	FormatBC6HSF16:               "DXGI_FORMAT_BC6H_SF16",
	FormatBC7Typeless:            "DXGI_FORMAT_BC7_TYPELESS",
	FormatBC7Unorm:               "DXGI_FORMAT_BC7_UNORM",
	FormatBC7UnormSRGB:           "DXGI_FORMAT_BC7_UNORM_SRGB",
	FormatAYUV:                   "DXGI_FORMAT_AYUV",
	FormatY410:                   "DXGI_FORMAT_Y410",
	FormatY416:                   "DXGI_FORMAT_Y416",
	FormatNV12:                   "DXGI_FORMAT_NV12",
	FormatP010:                   "DXGI_FORMAT_P010",
	FormatP016:                   "DXGI_FORMAT_P016",
	Format420Opaque:              "DXGI_FORMAT_420_OPAQUE",
	FormatYUY2:                   "DXGI_FORMAT_YUY2",
	FormatY210:                   "DXGI_FORMAT_Y210",
	FormatY216:                   "DXGI_FORMAT_Y216",
	FormatNV11:                   "DXGI_FORMAT_NV11",
	FormatAI44:                   "DXGI_FORMAT_AI44",
	FormatIA44:                   "DXGI_FORMAT_IA44",
	FormatP8:                     "DXGI_FORMAT_P8",
	FormatA8P8:                   "DXGI_FORMAT_A8P8",
	FormatB4G4R4A4Unorm:          "DXGI_FORMAT_B4G4R4A4_UNORM",
	FormatP208:                   "DXGI_FORMAT_P208",
	FormatV208:                   "DXGI_FORMAT_V208",
	FormatV408:                   "DXGI_FORMAT_V408",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "DXGI_FORMAT_" + strconv.FormatUint(uint64(f), 10)
}

// FormatSupport is the D3D10/D3D11 FORMAT_SUPPORT bitmask. The two APIs
// share bit positions for every flag D3D10 defines.
type FormatSupport uint32

const (
	SupportBuffer                  FormatSupport = 0x1
	SupportIAVertexBuffer          FormatSupport = 0x2
	SupportIAIndexBuffer           FormatSupport = 0x4
	SupportSOBuffer                FormatSupport = 0x8
	SupportTexture1D               FormatSupport = 0x10
	SupportTexture2D               FormatSupport = 0x20
	SupportTexture3D               FormatSupport = 0x40
	SupportTextureCube             FormatSupport = 0x80
	SupportShaderLoad              FormatSupport = 0x100
	SupportShaderSample            FormatSupport = 0x200
	SupportShaderSampleComparison  FormatSupport = 0x400
	SupportShaderSampleMonoText    FormatSupport = 0x800
	SupportMip                     FormatSupport = 0x1000
	SupportMipAutogen              FormatSupport = 0x2000
	SupportRenderTarget            FormatSupport = 0x4000
	SupportBlendable               FormatSupport = 0x8000
	SupportDepthStencil            FormatSupport = 0x10000
	SupportCPULockable             FormatSupport = 0x20000
	SupportMultisampleResolve      FormatSupport = 0x40000
	SupportDisplay                 FormatSupport = 0x80000
	SupportCastWithinBitLayout     FormatSupport = 0x100000
	SupportMultisampleRenderTarget FormatSupport = 0x200000
	SupportMultisampleLoad         FormatSupport = 0x400000
	SupportShaderGather            FormatSupport = 0x800000
	SupportBackBufferCast          FormatSupport = 0x1000000
	SupportTypedUnorderedAccess    FormatSupport = 0x2000000
	SupportShaderGatherComparison  FormatSupport = 0x4000000
	SupportDecoderOutput           FormatSupport = 0x8000000
	SupportVideoProcessorOutput    FormatSupport = 0x10000000
	SupportVideoProcessorInput     FormatSupport = 0x20000000
	SupportVideoEncoder            FormatSupport = 0x40000000
)

// FormatSupport2 is the D3D11_FORMAT_SUPPORT2 bitmask.
type FormatSupport2 uint32

const (
	Support2UAVAtomicAdd            FormatSupport2 = 0x1
	Support2UAVAtomicBitwiseOps     FormatSupport2 = 0x2
	Support2UAVAtomicCompareStore   FormatSupport2 = 0x4
	Support2UAVAtomicExchange       FormatSupport2 = 0x8
	Support2UAVAtomicSignedMinMax   FormatSupport2 = 0x10
	Support2UAVAtomicUnsignedMinMax FormatSupport2 = 0x20
	Support2UAVTypedLoad            FormatSupport2 = 0x40
	Support2UAVTypedStore           FormatSupport2 = 0x80
	Support2OutputMergerLogicOp     FormatSupport2 = 0x100
	Support2Tiled                   FormatSupport2 = 0x200
	Support2Shareable               FormatSupport2 = 0x400
	Support2MultiplaneOverlay       FormatSupport2 = 0x4000
)
