package capability

import (
	"github.com/kirides/dxcaps/driver"
	"github.com/kirides/dxcaps/fields"
	"github.com/kirides/dxcaps/formats"
	"github.com/kirides/dxcaps/probe"
)

const level9Note = "Most 10level9 features are required. Tool only shows optional features."

func mostRequired(v driver.DeviceVersion) string {
	return "Most " + v.String() + " features are required. Tool only shows optional features."
}

// seeAlso ends t with a pointer to the sibling node of v, which holds
// the same device at the same level with more detail.
func seeAlso(t *fields.Table, v driver.DeviceVersion) {
	t.Note("See " + v.String() + " node for device details.")
	t.SeeAlso = v.String()
}

// Info returns the device-information page of the context's interface.
func Info(ctx *probe.Context, view fields.View) fields.Table {
	if ctx == nil {
		return *fields.NewTable()
	}
	var t fields.Table
	switch ctx.Version {
	case driver.D3D10:
		t = D3D10Info(ctx)
	case driver.D3D10_1:
		t = D3D10_1Info(ctx)
	case driver.D3D11:
		t = D3D11Info(ctx)
	case driver.D3D11_1:
		t = D3D11_1Info(ctx)
	case driver.D3D11_2:
		t = D3D11_2Info(ctx)
	default:
		t = D3D11_3Info(ctx)
	}
	return t.Filter(view)
}

func extendedRows(t *fields.Table, ctx *probe.Context) {
	if ctx.Factory < driver.Factory1_1 {
		t.NotApplicable(extendedFormats)
		t.NotApplicable(xrHighColor)
		return
	}
	ext, x2, _ := formats.Extended(ctx.Device, ctx.Version, ctx.Factory)
	t.Queried(extendedFormats, ext)
	t.Queried(xrHighColor, x2)
}

func D3D10Info(ctx *probe.Context) fields.Table {
	t := fields.NewTable()
	extendedRows(t, ctx)
	t.Note(mostRequired(driver.D3D10))
	return *t
}

func D3D10_1Info(ctx *probe.Context) fields.Table {
	t := fields.NewTable()
	t.Required("Feature Level", ctx.Level.Name(driver.Generation10))
	if ctx.Level >= driver.Level10_0 {
		extendedRows(t, ctx)
	}
	switch {
	case ctx.Level == driver.Level10_0:
		seeAlso(t, driver.D3D10)
	case ctx.Level.Is10Level9():
		t.Note(level9Note)
	default:
		t.Note(mostRequired(driver.D3D10_1))
	}
	return *t
}

// note ends a Direct3D 11.x page. Levels an older interface already
// describes completely point there instead.
func note(t *fields.Table, v driver.DeviceVersion, level driver.FeatureLevel) {
	switch {
	case level == driver.Level10_0:
		seeAlso(t, driver.D3D10)
	case level == driver.Level10_1 || level.Is10Level9():
		seeAlso(t, driver.D3D10_1)
	case level == driver.Level11_0 && v > driver.D3D11:
		seeAlso(t, driver.D3D11)
	case level == driver.Level11_1 && v > driver.D3D11_1:
		seeAlso(t, driver.D3D11_1)
	default:
		t.Note(mostRequired(v))
	}
}

func D3D11Info(ctx *probe.Context) fields.Table {
	level := min(ctx.Level, driver.Level11_0)
	threading, _ := driver.Query[driver.Threading](ctx.Device)
	doubles, _ := driver.Query[driver.Doubles](ctx.Device)
	hw, _ := driver.Query[driver.D3D10XHardwareOptions](ctx.Device)

	t := fields.NewTable()
	t.Required("Feature Level", level.Name(driver.Generation11))
	t.Queried("Driver Concurrent Creates", threading.DriverConcurrentCreates.True())
	t.Queried("Driver Command Lists", threading.DriverCommandLists.True())
	t.Queried("Double-precision Shaders", doubles.DoublePrecisionFloatShaderOps.True())
	t.Queried("DirectCompute CS 4.x", hw.ComputeShadersPlusRawAndStructuredBuffersViaShader4x.True())
	note(t, driver.D3D11, level)
	return *t
}

func D3D11_1Info(ctx *probe.Context) fields.Table {
	t := fields.NewTable()
	featureSupport(t, ctx, false)
	note(t, driver.D3D11_1, ctx.Level)
	return *t
}

func D3D11_2Info(ctx *probe.Context) fields.Table {
	t := fields.NewTable()
	featureSupport(t, ctx, true)
	marker, _ := driver.Query[driver.MarkerSupport](ctx.Device)
	t.Queried("Profile Marker Support", marker.Profile.True())
	note(t, driver.D3D11_2, ctx.Level)
	return *t
}

func D3D11_3Info(ctx *probe.Context) fields.Table {
	t := fields.NewTable()
	featureSupport(t, ctx, true)
	marker, _ := driver.Query[driver.MarkerSupport](ctx.Device)
	o2, _ := driver.Query[driver.D3D11Options2](ctx.Device)
	t.Queried("Profile Marker Support", marker.Profile.True())
	t.Queried("Map DEFAULT Textures", o2.MapOnDefaultTextures.True())
	t.Queried("Standard Swizzle", o2.StandardSwizzle.True())
	t.Queried("UMA", o2.UnifiedMemoryArchitecture.True())
	note(t, driver.D3D11_3, ctx.Level)
	return *t
}

// featureSupport lists the CheckFeatureSupport answers shared by the
// 11.1 and newer pages. OPTIONS1 is only asked from 11.2 on.
func featureSupport(t *fields.Table, ctx *probe.Context, options1 bool) {
	dev := ctx.Device
	threading, _ := driver.Query[driver.Threading](dev)
	doubles, _ := driver.Query[driver.Doubles](dev)
	hw, _ := driver.Query[driver.D3D10XHardwareOptions](dev)
	o, _ := driver.Query[driver.D3D11Options](dev)
	d3d9, _ := driver.Query[driver.D3D9Options](dev)
	arch, _ := driver.Query[driver.ArchitectureInfo](dev)
	prec, _ := driver.Query[driver.ShaderMinPrecisionSupport](dev)
	var o1 driver.D3D11Options1
	if options1 {
		o1, _ = driver.Query[driver.D3D11Options1](dev)
	}

	t.Required("Feature Level", ctx.Level.Name(driver.Generation11))
	t.Queried("Driver Concurrent Creates", threading.DriverConcurrentCreates.True())
	t.Queried("Driver Command Lists", threading.DriverCommandLists.True())
	switch {
	case o.ExtendedDoublesShaderInstructions.True():
		t.Text("Double-precision Shaders", "Extended", true)
	case doubles.DoublePrecisionFloatShaderOps.True():
		t.Text("Double-precision Shaders", fields.Yes, true)
	default:
		t.Text("Double-precision Shaders", fields.No, false)
	}
	t.Queried("DirectCompute CS 4.x", hw.ComputeShadersPlusRawAndStructuredBuffersViaShader4x.True())
	t.Queried("Driver sees DiscardResource/View", o.DiscardAPIsSeenByDriver.True())
	t.Queried("Driver sees COPY_FLAGS", o.FlagsForUpdateAndCopySeenByDriver.True())
	t.Text("ClearView", clearView(o.ClearView.True(), o1.ClearViewAlsoSupportsDepthOnlyFormats.True()), o.ClearView.True())
	t.Queried("Copy w/ Overlapping Rect", o.CopyWithOverlap.True())
	t.Queried("CB Partial Update", o.ConstantBufferPartialUpdate.True())
	t.Queried("CB Offsetting", o.ConstantBufferOffsetting.True())
	t.Queried("Map NO_OVERWRITE on Dynamic CB", o.MapNoOverwriteOnDynamicConstantBuffer.True())
	if ctx.Level >= driver.Level10_0 {
		t.Queried("Map NO_OVERWRITE on Dynamic SRV", o.MapNoOverwriteOnDynamicBufferSRV.True())
		t.Queried("MSAA with ForcedSampleCount=1", o.MultisampleRTVWithForcedSampleCountOne.True())
		t.Queried("Extended resource sharing", o.ExtendedResourceSharing.True())
	}
	if ctx.Level >= driver.Level11_0 {
		t.Queried("Saturating Add Instruction", o.SAD4ShaderInstructions.True())
	}
	t.Queried("Tile-based Deferred Renderer", arch.TileBasedDeferredRenderer.True())
	if d3d9.FullNonPow2TextureSupport.True() {
		t.Text(nonPow2Textures, "Full", true)
	} else {
		t.Text(nonPow2Textures, "Conditional", false)
	}
	ps := precision(prec.PixelShaderMinPrecision)
	t.Text("Pixel Shader Precision", ps, ps != "Full")
	other := precision(prec.AllOtherShaderStagesMinPrecision)
	t.Text("Other Stage Precision", other, other != "Full")
}

func clearView(seen, depth bool) string {
	targets := "RTV and UAV"
	if depth {
		targets = "RTV, UAV, and Depth"
	}
	if seen {
		return targets + " (Driver sees)"
	}
	return targets + " (Driver doesn't see)"
}

// precision names the reduced precisions a stage may use on top of 32-bit.
func precision(bits uint32) string {
	switch bits & (driver.MinPrecision16Bit | driver.MinPrecision10Bit) {
	case 0:
		return "Full"
	case driver.MinPrecision16Bit:
		return "16/32-bit"
	case driver.MinPrecision10Bit:
		return "10/32-bit"
	}
	return "10/16/32-bit"
}
