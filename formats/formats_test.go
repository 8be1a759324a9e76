package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kirides/dxcaps/driver"
	"github.com/kirides/dxcaps/driver/drivertest"
	"github.com/kirides/dxcaps/fields"
)

func fakeDevice(v driver.DeviceVersion, caps *drivertest.Caps) *drivertest.Device {
	return &drivertest.Device{V: v, Level: driver.Level11_0, MaxVersion: v, Caps: caps, Stats: &drivertest.Stats{}}
}

func TestQualityOfOneSampleIsNeverQueried(t *testing.T) {
	ctrl := gomock.NewController(t)
	dev := drivertest.NewMockDevice(ctrl)

	for _, f := range msaa11 {
		assert.Equal(t, uint32(1), Quality(dev, f, 1), f.String())
	}
}

func TestQualityFailureIsZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	dev := drivertest.NewMockDevice(ctrl)
	dev.EXPECT().CheckMultisampleQualityLevels(driver.FormatR8G8B8A8Unorm, uint32(4)).Return(uint32(7), driver.E_FAIL)

	assert.Zero(t, Quality(dev, driver.FormatR8G8B8A8Unorm, 4))
}

func TestSampleCountsAlwaysIncludeOne(t *testing.T) {
	dev := fakeDevice(driver.D3D11, &drivertest.Caps{})
	table := SampleCounts(dev, msaa11)

	assert.True(t, table.Supported(1))
	for n := uint32(2); n <= MaxSamples; n++ {
		assert.False(t, table.Supported(n), "%d", n)
	}
}

func TestSampleCountsAndColumns(t *testing.T) {
	dev := fakeDevice(driver.D3D11, &drivertest.Caps{
		Quality: map[driver.Format]map[uint32]uint32{
			driver.FormatR8G8B8A8Unorm: {2: 1, 4: 3, 8: 1},
			driver.FormatR16G16Float:   {6: 1},
		},
	})
	table := SampleCounts(dev, msaa11)

	assert.True(t, table.Supported(4))
	assert.True(t, table.Supported(6))
	assert.False(t, table.Supported(16))
	assert.False(t, table.Supported(0))
	assert.False(t, table.Supported(33))
	assert.Equal(t, []uint32{2, 4, 6, 8, 16, 32}, table.Columns())
}

func TestIsPowerOf2(t *testing.T) {
	for _, v := range []uint32{0, 1, 2, 4, 8, 16, 32} {
		assert.True(t, IsPowerOf2(v), "%d", v)
	}
	for _, v := range []uint32{3, 5, 6, 12, 24, 31} {
		assert.False(t, IsPowerOf2(v), "%d", v)
	}
}

func TestUsageTableClassifiesRows(t *testing.T) {
	dev := fakeDevice(driver.D3D11, &drivertest.Caps{
		Support: map[driver.Format]driver.FormatSupport{
			driver.FormatR32G32B32Float: driver.SupportRenderTarget | driver.SupportTexture2D,
			driver.FormatR32G32B32Uint:  driver.SupportTexture2D,
		},
	})
	tbl := UsageTable(dev, renderTarget10, UsageRenderTarget)
	require.Len(t, tbl.Rows, 3)

	rt, ok := tbl.Lookup("DXGI_FORMAT_R32G32B32_FLOAT")
	require.True(t, ok)
	assert.Equal(t, fields.OptionalPresent, rt.Class)
	assert.Equal(t, "Yes", rt.Value())

	// the failed query for SINT reads as unsupported
	for _, name := range []string{"DXGI_FORMAT_R32G32B32_UINT", "DXGI_FORMAT_R32G32B32_SINT"} {
		row, ok := tbl.Lookup(name)
		require.True(t, ok)
		assert.Equal(t, fields.OptionalAbsent, row.Class)
	}

	interesting := tbl.Filter(fields.ViewInteresting)
	require.Len(t, interesting.Rows, 1)
	assert.Equal(t, "DXGI_FORMAT_R32G32B32_FLOAT", interesting.Rows[0].Name)
	assert.Len(t, tbl.Filter(fields.ViewAll).Rows, 3)
}

func TestUsageTableSupport2(t *testing.T) {
	dev := fakeDevice(driver.D3D11_1, &drivertest.Caps{
		Support2: map[driver.Format]driver.FormatSupport2{
			driver.FormatR8Uint: driver.Support2OutputMergerLogicOp,
		},
	})
	tbl := UsageTable(dev, logicOps, UsageLogicOp)
	row, _ := tbl.Lookup("DXGI_FORMAT_R8_UINT")
	assert.Equal(t, fields.OptionalPresent, row.Class)
	row, _ = tbl.Lookup("DXGI_FORMAT_R32_UINT")
	assert.Equal(t, fields.OptionalAbsent, row.Class)
}

func TestSupport2BeforeD3D11IsZero(t *testing.T) {
	dev := fakeDevice(driver.D3D10_1, &drivertest.Caps{
		Support2: map[driver.Format]driver.FormatSupport2{driver.FormatR8Uint: driver.Support2Shareable},
	})
	assert.Zero(t, Support2(dev, driver.FormatR8Uint))
}

func TestMSAATable(t *testing.T) {
	dev := fakeDevice(driver.D3D11, &drivertest.Caps{
		Quality: map[driver.Format]map[uint32]uint32{
			driver.FormatR32G32B32A32Float: {8: 2},
		},
	})
	tbl := MSAATable(dev, msaa8x11, 8)
	assert.Equal(t, []string{"Name", "Value", "Quality Level"}, tbl.Columns)

	row, _ := tbl.Lookup("DXGI_FORMAT_R32G32B32A32_FLOAT")
	assert.Equal(t, []string{"Yes", "2"}, row.Values)
	assert.Equal(t, fields.OptionalPresent, row.Class)
	row, _ = tbl.Lookup("DXGI_FORMAT_R32G32B32A32_UINT")
	assert.Equal(t, []string{"No", "0"}, row.Values)
	assert.Equal(t, fields.OptionalAbsent, row.Class)
}

func TestMSAAMatrix(t *testing.T) {
	dev := fakeDevice(driver.D3D11, &drivertest.Caps{
		Quality: map[driver.Format]map[uint32]uint32{
			driver.FormatR8G8B8A8Unorm: {2: 1, 4: 16},
		},
	})
	counts := SampleCounts(dev, msaa11)
	tbl := MSAAMatrix(dev, []driver.Format{driver.FormatR8G8B8A8Unorm, driver.FormatR8Sint}, counts)

	assert.Equal(t, []string{"Name", "2x", "4x", "8x", "16x", "32x"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"Yes (1)", "Yes (16)", "No", "No", "No"}, tbl.Rows[0].Values)
	assert.Equal(t, fields.OptionalPresent, tbl.Rows[0].Class)
	assert.Equal(t, fields.OptionalAbsent, tbl.Rows[1].Class)

	lines := tbl.Lines()
	assert.Equal(t, "2x: Yes (1)   4x: Yes (16)   8x: No   16x: No   32x: No", lines[0].Value)
}

func TestMSAAMatrixQueriesOnlyQualityLevels(t *testing.T) {
	ctrl := gomock.NewController(t)
	dev := drivertest.NewMockDevice(ctrl)
	var counts SampleTable
	counts[0] = true

	for _, n := range counts.Columns() {
		q := uint32(0)
		if n == 4 {
			q = 2
		}
		dev.EXPECT().CheckMultisampleQualityLevels(driver.FormatR8G8B8A8Unorm, n).Return(q, nil)
	}

	tbl := MSAAMatrix(dev, []driver.Format{driver.FormatR8G8B8A8Unorm}, counts)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []string{"No", "Yes (2)", "No", "No", "No"}, tbl.Rows[0].Values)
}

func TestInspect(t *testing.T) {
	dev := fakeDevice(driver.D3D11, &drivertest.Caps{
		Support: map[driver.Format]driver.FormatSupport{driver.FormatR8G8B8A8Unorm: driver.SupportTexture2D},
		Quality: map[driver.Format]map[uint32]uint32{driver.FormatR8G8B8A8Unorm: {4: 3}},
	})
	e := Inspect(dev, driver.FormatR8G8B8A8Unorm, 2, 4)
	assert.Equal(t, driver.SupportTexture2D, e.Support)
	assert.Equal(t, map[uint32]uint32{4: 3}, e.Quality)
}

func TestVideoTable(t *testing.T) {
	dev := fakeDevice(driver.D3D11_1, &drivertest.Caps{
		Support: map[driver.Format]driver.FormatSupport{
			driver.FormatNV12: driver.SupportTexture2D | driver.SupportVideoProcessorInput | driver.SupportVideoProcessorOutput,
		},
	})
	tbl := VideoTable(dev)
	assert.Len(t, tbl.Rows, len(VideoFormats))
	row, _ := tbl.Lookup("DXGI_FORMAT_NV12")
	assert.Equal(t, []string{"Yes", "Yes", "Yes", "No"}, row.Values)
	assert.Len(t, tbl.Filter(fields.ViewInteresting).Rows, 1)
}

func TestMultisampleLoadSkipsDepthFormats(t *testing.T) {
	for _, list := range [][]driver.Format{
		Candidates(driver.D3D10, driver.Level10_0, UsageMultisampleLoad, 0, fields.ViewAll),
		Candidates(driver.D3D11_1, driver.Level9_3, UsageMultisampleLoad, 0, fields.ViewAll),
	} {
		require.NotEmpty(t, list)
		for _, f := range skipDepth {
			assert.NotContains(t, list, f)
		}
	}
	load11 := Candidates(driver.D3D11_1, driver.Level9_3, UsageMultisampleLoad, 0, fields.ViewAll)
	assert.NotContains(t, load11, driver.FormatB8G8R8A8UnormSRGB)
	assert.Contains(t, load11, driver.FormatB8G8R8A8Unorm)

	// the render-target list still carries them
	assert.Contains(t, Candidates(driver.D3D10, driver.Level10_0, UsageMultisample, 4, fields.ViewAll), driver.FormatD24UnormS8Uint)
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		name    string
		v       driver.DeviceVersion
		level   driver.FeatureLevel
		u       Usage
		samples uint32
		view    fields.View
		want    []driver.Format
	}{
		{"d3d10 shader sample", driver.D3D10, driver.Level10_0, UsageShaderSample, 0, fields.ViewAll, shaderSample10},
		{"d3d10.1 10level9 msaa", driver.D3D10_1, driver.Level9_3, UsageMultisample, 4, fields.ViewInteresting, msaa10Level9},
		{"d3d10.1 4x interesting", driver.D3D10_1, driver.Level10_1, UsageMultisample, 4, fields.ViewInteresting, msaa4x10_1},
		{"d3d10.1 4x all", driver.D3D10_1, driver.Level10_1, UsageMultisample, 4, fields.ViewAll, msaa10},
		{"d3d11 4x interesting", driver.D3D11, driver.Level11_0, UsageMultisample, 4, fields.ViewInteresting, nil},
		{"d3d11 8x interesting", driver.D3D11, driver.Level11_0, UsageMultisample, 8, fields.ViewInteresting, msaa8x11},
		{"d3d11.1 rt 11_1", driver.D3D11_1, driver.Level11_1, UsageRenderTarget, 0, fields.ViewAll, renderTarget11_1},
		{"d3d11.1 rt 11_0", driver.D3D11_1, driver.Level11_0, UsageRenderTarget, 0, fields.ViewAll, renderTarget11},
		{"d3d11.1 blendable 9_3", driver.D3D11_1, driver.Level9_3, UsageBlendable, 0, fields.ViewAll, blendable11},
		{"d3d11.1 2x interesting", driver.D3D11_1, driver.Level11_0, UsageMultisample, 2, fields.ViewInteresting, bpp16Alpha},
		{"d3d11.2 shareable", driver.D3D11_2, driver.Level11_0, UsageShareable, 0, fields.ViewAll, shareable},
		{"d3d11.3 typed load", driver.D3D11_3, driver.Level11_0, UsageUAVTypedLoad, 0, fields.ViewAll, uavTypedLoad},
		{"d3d11.2 render target", driver.D3D11_2, driver.Level11_0, UsageRenderTarget, 0, fields.ViewAll, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Candidates(tt.v, tt.level, tt.u, tt.samples, tt.view))
		})
	}
}

func TestD3D11MSAAListsExclude16bpp(t *testing.T) {
	for _, f := range bpp16 {
		assert.NotContains(t, Candidates(driver.D3D11, driver.Level11_0, UsageMultisample, 2, fields.ViewAll), f)
		assert.NotContains(t, MatrixCandidates(driver.D3D11), f)
		assert.Contains(t, MatrixCandidates(driver.D3D11_1), f)
	}
	assert.NotContains(t, Candidates(driver.D3D11_1, driver.Level11_0, UsageMultisample, 8, fields.ViewInteresting), driver.FormatB5G6R5Unorm)
	assert.Contains(t, Candidates(driver.D3D11_1, driver.Level11_0, UsageMultisample, 8, fields.ViewAll), driver.FormatB5G6R5Unorm)
}

func TestSampleCandidates(t *testing.T) {
	assert.Equal(t, msaa10Level9, SampleCandidates(driver.D3D10_1, driver.Level9_3))
	assert.Equal(t, msaa10, SampleCandidates(driver.D3D10_1, driver.Level10_1))
	assert.Equal(t, msaa10, SampleCandidates(driver.D3D10, driver.Level10_0))
	assert.Equal(t, msaa11, SampleCandidates(driver.D3D11, driver.Level9_1))
}

func TestExtended(t *testing.T) {
	caps := &drivertest.Caps{Support: map[driver.Format]driver.FormatSupport{
		driver.FormatB8G8R8A8Unorm:          driver.SupportRenderTarget,
		driver.FormatR10G10B10XRBiasA2Unorm: driver.SupportDisplay,
		driver.FormatB5G6R5Unorm:            driver.SupportTexture2D,
	}}

	ext, x2, bpp565 := Extended(fakeDevice(driver.D3D11, caps), driver.D3D11, driver.Factory1_2)
	assert.True(t, ext)
	assert.True(t, x2)
	assert.True(t, bpp565)

	_, _, bpp565 = Extended(fakeDevice(driver.D3D11, caps), driver.D3D11, driver.Factory1_1)
	assert.False(t, bpp565)

	dev := fakeDevice(driver.D3D10_1, caps)
	ext, x2, _ = Extended(dev, driver.D3D10_1, driver.Factory1_0)
	assert.False(t, ext)
	assert.False(t, x2)
	assert.Zero(t, dev.Stats.Calls)
}

func TestUsageBits(t *testing.T) {
	assert.Equal(t, driver.SupportRenderTarget, UsageRenderTarget.Support())
	assert.Zero(t, UsageRenderTarget.Support2())
	assert.Equal(t, driver.Support2Shareable, UsageShareable.Support2())
	assert.Zero(t, UsageShareable.Support())
	assert.Equal(t, "uav-typed-load", UsageUAVTypedLoad.String())
}
