package driver

// Bool is a Win32 BOOL as laid out in the feature-data structures.
type Bool int32

func (b Bool) True() bool { return b != 0 }

// Feature is a D3D11_FEATURE value.
type Feature uint32

const (
	FeatureThreading                   Feature = 0
	FeatureDoubles                     Feature = 1
	FeatureFormatSupport               Feature = 2
	FeatureFormatSupport2              Feature = 3
	FeatureD3D10XHardwareOptions       Feature = 4
	FeatureD3D11Options                Feature = 5
	FeatureArchitectureInfo            Feature = 6
	FeatureD3D9Options                 Feature = 7
	FeatureShaderMinPrecisionSupport   Feature = 8
	FeatureD3D9ShadowSupport           Feature = 9
	FeatureD3D11Options1               Feature = 10
	FeatureD3D9SimpleInstancingSupport Feature = 11
	FeatureMarkerSupport               Feature = 12
	FeatureD3D9Options1                Feature = 13
	FeatureD3D11Options2               Feature = 14
)

// FeatureData is implemented by pointers to the typed result structures
// passed to Device.CheckFeatureSupport. The backend hands the pointer and
// the struct size to the driver unchanged.
type FeatureData interface {
	Feature() Feature
}

type Threading struct {
	DriverConcurrentCreates Bool
	DriverCommandLists      Bool
}

type Doubles struct {
	DoublePrecisionFloatShaderOps Bool
}

type D3D10XHardwareOptions struct {
	ComputeShadersPlusRawAndStructuredBuffersViaShader4x Bool
}

type D3D11Options struct {
	OutputMergerLogicOp                    Bool
	UAVOnlyRenderingForcedSampleCount      Bool
	DiscardAPIsSeenByDriver                Bool
	FlagsForUpdateAndCopySeenByDriver      Bool
	ClearView                              Bool
	CopyWithOverlap                        Bool
	ConstantBufferPartialUpdate            Bool
	ConstantBufferOffsetting               Bool
	MapNoOverwriteOnDynamicConstantBuffer  Bool
	MapNoOverwriteOnDynamicBufferSRV       Bool
	MultisampleRTVWithForcedSampleCountOne Bool
	SAD4ShaderInstructions                 Bool
	ExtendedDoublesShaderInstructions      Bool
	ExtendedResourceSharing                Bool
}

type ArchitectureInfo struct {
	TileBasedDeferredRenderer Bool
}

type D3D9Options struct {
	FullNonPow2TextureSupport Bool
}

// Min-precision bits reported by ShaderMinPrecisionSupport.
const (
	MinPrecision10Bit uint32 = 0x1
	MinPrecision16Bit uint32 = 0x2
)

type ShaderMinPrecisionSupport struct {
	PixelShaderMinPrecision          uint32
	AllOtherShaderStagesMinPrecision uint32
}

type D3D9ShadowSupport struct {
	SupportsDepthAsTextureWithLessEqualComparisonFilter Bool
}

// TiledResourcesTier and ConservativeRasterizationTier share this encoding.
type Tier int32

type D3D11Options1 struct {
	TiledResourcesTier                    Tier
	MinMaxFiltering                       Bool
	ClearViewAlsoSupportsDepthOnlyFormats Bool
	MapOnDefaultBuffers                   Bool
}

type D3D9SimpleInstancingSupport struct {
	SimpleInstancingSupported Bool
}

type MarkerSupport struct {
	Profile Bool
}

type D3D9Options1 struct {
	FullNonPow2TextureSupported                                 Bool
	DepthAsTextureWithLessEqualComparisonFilterSupported        Bool
	SimpleInstancingSupported                                   Bool
	TextureCubeFaceRenderTargetWithNonCubeDepthStencilSupported Bool
}

type D3D11Options2 struct {
	PSSpecifiedStencilRefSupported Bool
	TypedUAVLoadAdditionalFormats  Bool
	ROVsSupported                  Bool
	ConservativeRasterizationTier  Tier
	TiledResourcesTier             Tier
	MapOnDefaultTextures           Bool
	StandardSwizzle                Bool
	UnifiedMemoryArchitecture      Bool
}

func (*Threading) Feature() Feature                   { return FeatureThreading }
func (*Doubles) Feature() Feature                     { return FeatureDoubles }
func (*D3D10XHardwareOptions) Feature() Feature       { return FeatureD3D10XHardwareOptions }
func (*D3D11Options) Feature() Feature                { return FeatureD3D11Options }
func (*ArchitectureInfo) Feature() Feature            { return FeatureArchitectureInfo }
func (*D3D9Options) Feature() Feature                 { return FeatureD3D9Options }
func (*ShaderMinPrecisionSupport) Feature() Feature   { return FeatureShaderMinPrecisionSupport }
func (*D3D9ShadowSupport) Feature() Feature           { return FeatureD3D9ShadowSupport }
func (*D3D11Options1) Feature() Feature               { return FeatureD3D11Options1 }
func (*D3D9SimpleInstancingSupport) Feature() Feature { return FeatureD3D9SimpleInstancingSupport }
func (*MarkerSupport) Feature() Feature               { return FeatureMarkerSupport }
func (*D3D9Options1) Feature() Feature                { return FeatureD3D9Options1 }
func (*D3D11Options2) Feature() Feature               { return FeatureD3D11Options2 }

// Query runs CheckFeatureSupport for T on dev. The result starts zeroed
// and is reset to zero when the query fails, so "the driver cannot
// answer" and "the driver answered no" look the same to callers.
// A nil device yields the zero value without a call.
func Query[T any, P interface {
	*T
	FeatureData
}](dev Device) (T, bool) {
	var data T
	if dev == nil {
		return data, false
	}
	if err := dev.CheckFeatureSupport(P(&data)); err != nil {
		var zero T
		return zero, false
	}
	return data, true
}
