package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kirides/dxcaps/driver"
	"github.com/kirides/dxcaps/driver/drivertest"
	"github.com/kirides/dxcaps/fields"
	"github.com/kirides/dxcaps/probe"
)

func newContext(v driver.DeviceVersion, level driver.FeatureLevel, caps *drivertest.Caps) (*probe.Context, *drivertest.Stats) {
	stats := &drivertest.Stats{}
	dev := &drivertest.Device{V: v, Level: level, MaxVersion: v, Caps: caps, Stats: stats}
	return &probe.Context{
		Version:    v,
		Level:      level,
		DriverType: driver.DriverHardware,
		Device:     dev,
		Factory:    driver.Factory1_2,
	}, stats
}

func names(t fields.Table) []string {
	out := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Name
	}
	return out
}

func row(t *testing.T, tbl fields.Table, name string) fields.Row {
	t.Helper()
	r, ok := tbl.Lookup(name)
	require.True(t, ok, "missing row %q", name)
	return r
}

var versions = []driver.DeviceVersion{driver.D3D10, driver.D3D10_1, driver.D3D11, driver.D3D11_1, driver.D3D11_2, driver.D3D11_3}

func TestBaselineIsMonotonic(t *testing.T) {
	for _, v := range versions {
		ladder := v.Generation().Ladder()
		for i, high := range ladder {
			for _, low := range ladder[i:] {
				assert.True(t, Baseline(v, high).Covers(Baseline(v, low)), "%s: %s must cover %s", v, high, low)
			}
		}
	}
}

func TestBaselineGrowsWithEachLevel(t *testing.T) {
	ladder := driver.Ladder11
	for i := 0; i+1 < len(ladder); i++ {
		high, low := Baseline(driver.D3D11_1, ladder[i]), Baseline(driver.D3D11_1, ladder[i+1])
		assert.NotEqual(t, high, low, "%s", ladder[i])
		assert.False(t, low.Covers(high), "%s must not cover %s", ladder[i+1], ladder[i])
	}
}

func TestBaselineValues(t *testing.T) {
	s := Baseline(driver.D3D11_1, driver.Level11_1)
	assert.Equal(t, ShaderModel5_0, s.ShaderModel)
	assert.Equal(t, uint64(16384), s.MaxTextureDimension)
	assert.Equal(t, uint64(64), s.UAVSlots)
	assert.Equal(t, uint64(16), s.UAVOnlyRendering)
	assert.True(t, s.LogicOps)

	s = Baseline(driver.D3D11, driver.Level11_1)
	assert.Zero(t, s.UAVSlots)
	assert.False(t, s.LogicOps)

	s = Baseline(driver.D3D10_1, driver.Level9_1)
	assert.Equal(t, "2.0 (4_0_level_9_1)", s.ShaderModel.String())
	assert.Equal(t, uint64(2), s.MaxAnisotropy)
	assert.Equal(t, uint64(65535), s.MaxPrimitiveCount)
	assert.False(t, s.Instancing)

	s = Baseline(driver.D3D10, driver.Level10_0)
	assert.Equal(t, uint64(1)<<32, s.MaxPrimitiveCount)
	assert.Equal(t, uint64(16), s.MaxInputSlots)
	assert.False(t, s.NonPow2Full)
	assert.True(t, Baseline(driver.D3D11_1, driver.Level10_0).NonPow2Full)
}

func TestResolveWithoutQueriesNeverTouchesDevice(t *testing.T) {
	tests := []struct {
		name    string
		v       driver.DeviceVersion
		level   driver.FeatureLevel
		factory driver.FactoryVersion
	}{
		{"d3d10.1 at 9_1", driver.D3D10_1, driver.Level9_1, driver.Factory1_1},
		{"d3d10.1 at 9_3", driver.D3D10_1, driver.Level9_3, driver.Factory1_1},
		{"d3d10 on dxgi 1.0", driver.D3D10, driver.Level10_0, driver.Factory1_0},
		{"d3d11 at 11_0", driver.D3D11, driver.Level11_0, driver.Factory1_1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dev := drivertest.NewMockDevice(ctrl)
			ctx := &probe.Context{Version: tt.v, Level: tt.level, DriverType: driver.DriverHardware, Device: dev, Factory: tt.factory}

			tbl := Resolve(ctx, tt.level, fields.ViewAll)
			assert.Equal(t, Baseline(tt.v, tt.level).ShaderModel.String(), row(t, tbl, "Shader Model").Value())
			assert.Equal(t, featureLevelNote, row(t, tbl, "Note").Value())
		})
	}
}

func TestResolve10Level9(t *testing.T) {
	ctx, _ := newContext(driver.D3D10_1, driver.Level9_1, nil)
	tbl := Resolve(ctx, driver.Level9_1, fields.ViewAll)

	assert.Equal(t, "2048", row(t, tbl, "Max Texture Dimension").Value())
	assert.Equal(t, fields.BaselineRequired, row(t, tbl, "Extended Formats (BGRA, etc.)").Class)
	_, ok := tbl.Lookup("10-bit XR High Color Format")
	assert.False(t, ok)
	_, ok = tbl.Lookup("DirectCompute")
	assert.False(t, ok)
	assert.Equal(t, fields.NotApplicable, row(t, tbl, "Instancing").Class)
	assert.Equal(t, fields.NotApplicable, row(t, tbl, "Occlusion Queries").Class)
	assert.Equal(t, fields.NotApplicable, row(t, tbl, "Geometry Shader").Class)

	interesting := Resolve(ctx, driver.Level9_1, fields.ViewInteresting)
	_, ok = interesting.Lookup("Instancing")
	assert.False(t, ok)
	_, ok = interesting.Lookup("Max Anisotropy")
	assert.True(t, ok)
}

func TestFailedQueryMatchesZeroAnswer(t *testing.T) {
	scribbled := &drivertest.Caps{
		Features: map[driver.Feature]driver.FeatureData{
			driver.FeatureD3D11Options:          &driver.D3D11Options{OutputMergerLogicOp: 1, ConstantBufferPartialUpdate: 1},
			driver.FeatureD3D10XHardwareOptions: &driver.D3D10XHardwareOptions{ComputeShadersPlusRawAndStructuredBuffersViaShader4x: 1},
		},
		Fail: map[driver.Feature]bool{
			driver.FeatureD3D11Options:          true,
			driver.FeatureD3D10XHardwareOptions: true,
		},
	}
	zero := &drivertest.Caps{
		Features: map[driver.Feature]driver.FeatureData{
			driver.FeatureD3D11Options:          &driver.D3D11Options{},
			driver.FeatureD3D10XHardwareOptions: &driver.D3D10XHardwareOptions{},
		},
	}

	failed, _ := newContext(driver.D3D11_1, driver.Level10_1, scribbled)
	answered, _ := newContext(driver.D3D11_1, driver.Level10_1, zero)
	missing, _ := newContext(driver.D3D11_1, driver.Level10_1, &drivertest.Caps{})

	want := Resolve(answered, driver.Level10_1, fields.ViewAll)
	assert.Equal(t, want, Resolve(failed, driver.Level10_1, fields.ViewAll))
	assert.Equal(t, want, Resolve(missing, driver.Level10_1, fields.ViewAll))
	assert.Equal(t, "Optional (No)", row(t, want, "Logic Ops (Output Merger)").Value())
	assert.Equal(t, fields.OptionalAbsent, row(t, want, "DirectCompute").Class)
}

func TestExtendedFormatsNotApplicableOnDXGI10(t *testing.T) {
	ctx, stats := newContext(driver.D3D10, driver.Level10_0, &drivertest.Caps{
		Support: map[driver.Format]driver.FormatSupport{driver.FormatB8G8R8A8Unorm: driver.SupportRenderTarget},
	})
	ctx.Factory = driver.Factory1_0

	tbl := Resolve(ctx, driver.Level10_0, fields.ViewAll)
	xr := row(t, tbl, "10-bit XR High Color Format")
	assert.Equal(t, fields.NotApplicable, xr.Class)
	assert.Equal(t, fields.NA, xr.Value())
	assert.Equal(t, fields.NotApplicable, row(t, tbl, "Extended Formats (BGRA, etc.)").Class)
	assert.Zero(t, stats.Calls)

	info := D3D10Info(ctx)
	assert.Equal(t, fields.NotApplicable, row(t, info, "10-bit XR High Color Format").Class)

	ctx.Factory = driver.Factory1_1
	tbl = Resolve(ctx, driver.Level10_0, fields.ViewAll)
	assert.Equal(t, fields.OptionalPresent, row(t, tbl, "Extended Formats (BGRA, etc.)").Class)
	xr = row(t, tbl, "10-bit XR High Color Format")
	assert.Equal(t, fields.OptionalAbsent, xr.Class)
	assert.Equal(t, "Optional (No)", xr.Value())
}

func TestResolveD3D11_3At11_1(t *testing.T) {
	ctx, _ := newContext(driver.D3D11_3, driver.Level11_1, &drivertest.Caps{
		Features: map[driver.Feature]driver.FeatureData{
			driver.FeatureD3D11Options1: &driver.D3D11Options1{TiledResourcesTier: 2, MapOnDefaultBuffers: 1},
			driver.FeatureD3D11Options2: &driver.D3D11Options2{TiledResourcesTier: 3, ConservativeRasterizationTier: 1, ROVsSupported: 1},
		},
	})
	tbl := Resolve(ctx, driver.Level11_1, fields.ViewAll)

	assert.Equal(t, []string{
		"Shader Model",
		"Geometry Shader",
		"Stream Out",
		"DirectCompute",
		"Hull & Domain Shaders",
		"Texture Resource Arrays",
		"Cubemap Resource Arrays",
		"BC4/BC5 Compression",
		"BC6H/BC7 Compression",
		"Alpha-to-coverage",
		"Logic Ops (Output Merger)",
		"Constant Buffer Partial Updates",
		"Constant Buffer Offsetting",
		"UAVs at Every Stage",
		"UAV-only rendering",
		"Tiled Resources",
		"Min/Max Filtering",
		"Map DEFAULT Buffers",
		"Conservative Rasterization",
		"PS-Specified Stencil Ref",
		"Rasterizer Ordered Views",
		"Extended Formats (BGRA, etc.)",
		"10-bit XR High Color Format",
		"16-bit Formats (565/5551/4444)",
		"Non-Power-of-2 Textures",
		"Max Texture Dimension",
		"Max Cubemap Dimension",
		"Max Volume Extent",
		"Max Texture Repeat",
		"Max Input Slots",
		"UAV Slots",
		"Max Anisotropy",
		"Max Primitive Count",
		"Simultaneous Render Targets",
		"Note",
	}, names(tbl))

	assert.Equal(t, "Optional (Yes - Tier 3)", row(t, tbl, "Tiled Resources").Value())
	assert.Equal(t, "Optional (Yes - Tier 1)", row(t, tbl, "Conservative Rasterization").Value())
	assert.Equal(t, fields.OptionalPresent, row(t, tbl, "Rasterizer Ordered Views").Class)
	assert.Equal(t, fields.OptionalAbsent, row(t, tbl, "PS-Specified Stencil Ref").Class)
	assert.Equal(t, fields.OptionalAbsent, row(t, tbl, "Min/Max Filtering").Class)
	assert.Equal(t, fields.OptionalPresent, row(t, tbl, "Map DEFAULT Buffers").Class)
	assert.Equal(t, "64", row(t, tbl, "UAV Slots").Value())
	assert.Equal(t, "Yes (CS 5.0)", row(t, tbl, "DirectCompute").Value())
	assert.Equal(t, fields.BaselineRequired, row(t, tbl, "Logic Ops (Output Merger)").Class)
}

func TestResolveD3D11_3At11_0RulesOutNewerRows(t *testing.T) {
	ctx, _ := newContext(driver.D3D11_3, driver.Level11_0, &drivertest.Caps{})
	tbl := Resolve(ctx, driver.Level11_0, fields.ViewAll)

	for _, name := range []string{"Min/Max Filtering", "Conservative Rasterization", "PS-Specified Stencil Ref", "Rasterizer Ordered Views", "UAVs at Every Stage"} {
		r := row(t, tbl, name)
		assert.Equal(t, fields.NotApplicable, r.Class, name)
		assert.Equal(t, fields.No, r.Value(), name)
	}
	assert.Equal(t, "8", row(t, tbl, "UAV Slots").Value())
	assert.Equal(t, "8", row(t, tbl, "UAV-only rendering").Value())
	assert.Equal(t, fields.OptionalAbsent, row(t, tbl, "16-bit Formats (565/5551/4444)").Class)
}

func TestResolveD3D11CapsLevelAt11_0(t *testing.T) {
	ctx, _ := newContext(driver.D3D11, driver.Level11_1, nil)
	tbl := Resolve(ctx, driver.Level11_1, fields.ViewAll)

	assert.Equal(t, "5.0", row(t, tbl, "Shader Model").Value())
	for _, name := range []string{"Logic Ops (Output Merger)", "UAV Slots", "Tiled Resources", "16-bit Formats (565/5551/4444)", "Non-Power-of-2 Textures"} {
		_, ok := tbl.Lookup(name)
		assert.False(t, ok, name)
	}
}

func TestResolveComputeShader4x(t *testing.T) {
	caps := &drivertest.Caps{Features: map[driver.Feature]driver.FeatureData{
		driver.FeatureD3D10XHardwareOptions: &driver.D3D10XHardwareOptions{ComputeShadersPlusRawAndStructuredBuffersViaShader4x: 1},
	}}

	ctx, _ := newContext(driver.D3D11, driver.Level10_0, caps)
	tbl := Resolve(ctx, driver.Level10_0, fields.ViewAll)
	assert.Equal(t, "Optional (Yes - CS 4.0)", row(t, tbl, "DirectCompute").Value())
	assert.Equal(t, "1", row(t, tbl, "UAV Slots").Value())
	_, ok := tbl.Lookup("UAVs at Every Stage")
	assert.False(t, ok)

	ctx, _ = newContext(driver.D3D11_1, driver.Level10_1, caps)
	tbl = Resolve(ctx, driver.Level10_1, fields.ViewAll)
	assert.Equal(t, "Optional (Yes - CS 4.x)", row(t, tbl, "DirectCompute").Value())
	slots := row(t, tbl, "UAV Slots")
	assert.Equal(t, "1", slots.Value())
	assert.Equal(t, fields.OptionalPresent, slots.Class)
	assert.Equal(t, fields.NotApplicable, row(t, tbl, "UAVs at Every Stage").Class)
	assert.Equal(t, fields.NotApplicable, row(t, tbl, "UAV-only rendering").Class)
}

func TestResolveWARPTextureDimension(t *testing.T) {
	ctx, _ := newContext(driver.D3D11_1, driver.Level11_0, nil)
	ctx.DriverType = driver.DriverWARP
	assert.Equal(t, "16777216", row(t, Resolve(ctx, driver.Level11_0, fields.ViewAll), "Max Texture Dimension").Value())

	ctx, _ = newContext(driver.D3D11, driver.Level11_0, nil)
	ctx.DriverType = driver.DriverWARP
	assert.Equal(t, "65536", row(t, Resolve(ctx, driver.Level11_0, fields.ViewAll), "Max Texture Dimension").Value())
}

func TestResolve10Level9FallsBackToOlderD3D9Queries(t *testing.T) {
	ctx, _ := newContext(driver.D3D11_2, driver.Level9_1, &drivertest.Caps{
		Features: map[driver.Feature]driver.FeatureData{
			driver.FeatureD3D9Options:                 &driver.D3D9Options{FullNonPow2TextureSupport: 1},
			driver.FeatureD3D9ShadowSupport:           &driver.D3D9ShadowSupport{SupportsDepthAsTextureWithLessEqualComparisonFilter: 1},
			driver.FeatureD3D9SimpleInstancingSupport: &driver.D3D9SimpleInstancingSupport{SimpleInstancingSupported: 1},
		},
	})
	tbl := Resolve(ctx, driver.Level9_1, fields.ViewAll)

	assert.Equal(t, "Optional (Simple)", row(t, tbl, "Instancing").Value())
	assert.Equal(t, "Optional (Full)", row(t, tbl, "Non-Power-of-2 Textures").Value())
	assert.Equal(t, fields.OptionalPresent, row(t, tbl, "Shadow Support").Class)
	assert.Equal(t, fields.OptionalAbsent, row(t, tbl, "Cubemap Render w/ non-Cube Depth").Class)
	assert.Equal(t, fields.BaselineRequired, row(t, tbl, "Constant Buffer Partial Updates").Class)
	assert.Equal(t, fields.NotApplicable, row(t, tbl, "Logic Ops (Output Merger)").Class)
	_, ok := tbl.Lookup("Tiled Resources")
	assert.False(t, ok)
}

func TestResolve10Level9UsesD3D9Options1(t *testing.T) {
	ctx, _ := newContext(driver.D3D11_3, driver.Level9_3, &drivertest.Caps{
		Features: map[driver.Feature]driver.FeatureData{
			driver.FeatureD3D9Options1: &driver.D3D9Options1{TextureCubeFaceRenderTargetWithNonCubeDepthStencilSupported: 1},
		},
	})
	tbl := Resolve(ctx, driver.Level9_3, fields.ViewAll)

	assert.Equal(t, fields.BaselineRequired, row(t, tbl, "Instancing").Class)
	assert.Equal(t, "Conditional", row(t, tbl, "Non-Power-of-2 Textures").Value())
	assert.Equal(t, fields.OptionalPresent, row(t, tbl, "Cubemap Render w/ non-Cube Depth").Class)
	assert.Equal(t, fields.BaselineRequired, row(t, tbl, "Independent Write Masks").Class)
}

func TestResolveNilContext(t *testing.T) {
	assert.Empty(t, Resolve(nil, driver.Level11_0, fields.ViewAll).Rows)
	assert.Empty(t, Info(nil, fields.ViewAll).Rows)
}

func TestD3D11InfoCapsLevel(t *testing.T) {
	ctx, _ := newContext(driver.D3D11, driver.Level11_1, &drivertest.Caps{
		Features: map[driver.Feature]driver.FeatureData{
			driver.FeatureThreading: &driver.Threading{DriverConcurrentCreates: 1},
		},
	})
	tbl := Info(ctx, fields.ViewAll)

	assert.Equal(t, "D3D_FEATURE_LEVEL_11_0", row(t, tbl, "Feature Level").Value())
	assert.Equal(t, fields.OptionalPresent, row(t, tbl, "Driver Concurrent Creates").Class)
	assert.Equal(t, fields.OptionalAbsent, row(t, tbl, "Driver Command Lists").Class)
	assert.Equal(t, mostRequired(driver.D3D11), row(t, tbl, "Note").Value())
	assert.Empty(t, tbl.SeeAlso)

	interesting := Info(ctx, fields.ViewInteresting)
	_, ok := interesting.Lookup("Driver Command Lists")
	assert.False(t, ok)
}

func TestInfoCrossReferences(t *testing.T) {
	tests := []struct {
		v     driver.DeviceVersion
		level driver.FeatureLevel
		see   string
	}{
		{driver.D3D10_1, driver.Level10_0, "Direct3D 10"},
		{driver.D3D11, driver.Level10_0, "Direct3D 10"},
		{driver.D3D11, driver.Level9_3, "Direct3D 10.1"},
		{driver.D3D11_1, driver.Level11_0, "Direct3D 11"},
		{driver.D3D11_1, driver.Level11_1, ""},
		{driver.D3D11_2, driver.Level11_1, "Direct3D 11.1"},
		{driver.D3D11_3, driver.Level10_1, "Direct3D 10.1"},
	}
	for _, tt := range tests {
		t.Run(tt.v.String()+" "+tt.level.String(), func(t *testing.T) {
			ctx, _ := newContext(tt.v, tt.level, nil)
			tbl := Info(ctx, fields.ViewAll)
			assert.Equal(t, tt.see, tbl.SeeAlso)

			note := tbl.Rows[len(tbl.Rows)-1]
			assert.Equal(t, "Note", note.Name)
			if tt.see != "" {
				assert.Equal(t, "See "+tt.see+" node for device details.", note.Value())
			} else {
				assert.Equal(t, mostRequired(tt.v), note.Value())
			}
		})
	}
}

func TestD3D10_1InfoAt10Level9(t *testing.T) {
	ctx, stats := newContext(driver.D3D10_1, driver.Level9_3, nil)
	tbl := D3D10_1Info(ctx)

	assert.Equal(t, []string{"Feature Level", "Note"}, names(tbl))
	assert.Equal(t, "D3D10_FEATURE_LEVEL_9_3", tbl.Rows[0].Value())
	assert.Equal(t, level9Note, tbl.Rows[1].Value())
	assert.Zero(t, stats.Calls)
}

func TestFeatureSupportPage(t *testing.T) {
	ctx, _ := newContext(driver.D3D11_2, driver.Level11_0, &drivertest.Caps{
		Features: map[driver.Feature]driver.FeatureData{
			driver.FeatureD3D11Options:              &driver.D3D11Options{ClearView: 1, ExtendedDoublesShaderInstructions: 1, SAD4ShaderInstructions: 1},
			driver.FeatureD3D11Options1:             &driver.D3D11Options1{ClearViewAlsoSupportsDepthOnlyFormats: 1},
			driver.FeatureShaderMinPrecisionSupport: &driver.ShaderMinPrecisionSupport{PixelShaderMinPrecision: 3, AllOtherShaderStagesMinPrecision: 2},
			driver.FeatureMarkerSupport:             &driver.MarkerSupport{Profile: 1},
		},
	})
	tbl := Info(ctx, fields.ViewAll)

	assert.Equal(t, "Extended", row(t, tbl, "Double-precision Shaders").Value())
	assert.Equal(t, "RTV, UAV, and Depth (Driver sees)", row(t, tbl, "ClearView").Value())
	assert.Equal(t, "10/16/32-bit", row(t, tbl, "Pixel Shader Precision").Value())
	assert.Equal(t, "16/32-bit", row(t, tbl, "Other Stage Precision").Value())
	assert.Equal(t, fields.OptionalPresent, row(t, tbl, "Saturating Add Instruction").Class)
	assert.Equal(t, fields.OptionalPresent, row(t, tbl, "Profile Marker Support").Class)
	assert.Equal(t, "Conditional", row(t, tbl, "Non-Power-of-2 Textures").Value())
	assert.Equal(t, "Direct3D 11", tbl.SeeAlso)
}

func TestFeatureSupportPageAt10Level9(t *testing.T) {
	ctx, _ := newContext(driver.D3D11_1, driver.Level9_1, nil)
	tbl := Info(ctx, fields.ViewAll)

	for _, name := range []string{"Map NO_OVERWRITE on Dynamic SRV", "Saturating Add Instruction"} {
		_, ok := tbl.Lookup(name)
		assert.False(t, ok, name)
	}
	assert.Equal(t, "RTV and UAV (Driver doesn't see)", row(t, tbl, "ClearView").Value())
	assert.Equal(t, "Full", row(t, tbl, "Pixel Shader Precision").Value())
}

func TestD3D11_3Info(t *testing.T) {
	ctx, _ := newContext(driver.D3D11_3, driver.Level11_1, &drivertest.Caps{
		Features: map[driver.Feature]driver.FeatureData{
			driver.FeatureD3D11Options2: &driver.D3D11Options2{UnifiedMemoryArchitecture: 1},
		},
	})
	tbl := D3D11_3Info(ctx)
	assert.Equal(t, fields.OptionalPresent, row(t, tbl, "UMA").Class)
	assert.Equal(t, fields.OptionalAbsent, row(t, tbl, "Standard Swizzle").Class)
	assert.Equal(t, "Direct3D 11.1", tbl.SeeAlso)
}
