package capability

import (
	"fmt"

	"github.com/kirides/dxcaps/driver"
	"github.com/kirides/dxcaps/fields"
	"github.com/kirides/dxcaps/formats"
	"github.com/kirides/dxcaps/probe"
)

const (
	optionalYes = "Optional (Yes)"
	optionalNo  = "Optional (No)"

	extendedFormats = "Extended Formats (BGRA, etc.)"
	xrHighColor     = "10-bit XR High Color Format"
	nonPow2Textures = "Non-Power-of-2 Textures"

	featureLevelNote = "This feature summary is derived from hardware feature level"
)

func optional(t *fields.Table, name string, ok bool) {
	if ok {
		t.Text(name, optionalYes, true)
		return
	}
	t.Text(name, optionalNo, false)
}

// absent is a "No" that the level rules out, not one a driver answered.
func absent(t *fields.Table, names ...string) {
	for _, n := range names {
		t.Add(n, fields.NotApplicable, fields.No)
	}
}

func tier(t *fields.Table, name string, tr driver.Tier) {
	switch {
	case tr <= 0:
		t.Text(name, optionalNo, false)
	case tr <= 3:
		t.Text(name, fmt.Sprintf("Optional (Yes - Tier %d)", tr), true)
	default:
		t.Text(name, optionalYes, true)
	}
}

type d3d9Caps struct {
	nonPow2    bool
	shadows    bool
	instancing bool
	cubeRT     bool
}

// resolver answers each optional query at most once per table.
type resolver struct {
	ctx   *probe.Context
	dev   driver.Device
	v     driver.DeviceVersion
	level driver.FeatureLevel
	set   Set

	opts  *driver.D3D11Options
	opts1 *driver.D3D11Options1
	opts2 *driver.D3D11Options2
	ext   *[3]bool
	d3d9  *d3d9Caps
}

func (r *resolver) options() driver.D3D11Options {
	if r.opts == nil {
		o, _ := driver.Query[driver.D3D11Options](r.dev)
		r.opts = &o
	}
	return *r.opts
}

func (r *resolver) options1() driver.D3D11Options1 {
	if r.opts1 == nil {
		o, _ := driver.Query[driver.D3D11Options1](r.dev)
		r.opts1 = &o
	}
	return *r.opts1
}

func (r *resolver) options2() driver.D3D11Options2 {
	if r.opts2 == nil {
		o, _ := driver.Query[driver.D3D11Options2](r.dev)
		r.opts2 = &o
	}
	return *r.opts2
}

func (r *resolver) extended() (ext, x2, bpp565 bool) {
	if r.ext == nil {
		e, x, b := formats.Extended(r.dev, r.v, r.ctx.Factory)
		r.ext = &[3]bool{e, x, b}
	}
	return r.ext[0], r.ext[1], r.ext[2]
}

// d3d9Options prefers the combined D3D9_OPTIONS1 answer and falls back
// to the three older queries when the driver does not know it.
func (r *resolver) d3d9Options() d3d9Caps {
	if r.d3d9 != nil {
		return *r.d3d9
	}
	var c d3d9Caps
	o1, ok := d3d9Options1(r.dev, r.v)
	if ok {
		c = d3d9Caps{
			nonPow2:    o1.FullNonPow2TextureSupported.True(),
			shadows:    o1.DepthAsTextureWithLessEqualComparisonFilterSupported.True(),
			instancing: o1.SimpleInstancingSupported.True(),
			cubeRT:     o1.TextureCubeFaceRenderTargetWithNonCubeDepthStencilSupported.True(),
		}
	} else {
		o, _ := driver.Query[driver.D3D9Options](r.dev)
		sh, _ := driver.Query[driver.D3D9ShadowSupport](r.dev)
		c.nonPow2 = o.FullNonPow2TextureSupport.True()
		c.shadows = sh.SupportsDepthAsTextureWithLessEqualComparisonFilter.True()
		if r.v >= driver.D3D11_2 {
			si, _ := driver.Query[driver.D3D9SimpleInstancingSupport](r.dev)
			c.instancing = si.SimpleInstancingSupported.True()
		}
	}
	r.d3d9 = &c
	return c
}

func d3d9Options1(dev driver.Device, v driver.DeviceVersion) (driver.D3D9Options1, bool) {
	if v < driver.D3D11_2 {
		return driver.D3D9Options1{}, false
	}
	return driver.Query[driver.D3D9Options1](dev)
}

// Resolve builds the feature-level summary of level as seen through the
// interface of ctx. Baseline rows never touch the device; each optional
// row is gated on the context's interface version so a context that
// cannot answer a query is never asked.
func Resolve(ctx *probe.Context, level driver.FeatureLevel, view fields.View) fields.Table {
	if ctx == nil {
		return *fields.NewTable()
	}
	if ctx.Version == driver.D3D11 && level > driver.Level11_0 {
		level = driver.Level11_0
	}
	r := &resolver{ctx: ctx, dev: ctx.Device, v: ctx.Version, level: level}
	r.set = Baseline(r.v, level)
	return r.table().Filter(view)
}

func (r *resolver) table() fields.Table {
	t := fields.NewTable()
	s, v := r.set, r.v
	level9 := r.level.Is10Level9()

	t.Required("Shader Model", s.ShaderModel.String())
	t.Flag("Geometry Shader", s.GeometryShader)
	t.Flag("Stream Out", s.StreamOut)

	var cs4x bool
	if v >= driver.D3D11 {
		switch {
		case s.ComputeShader:
			t.Required("DirectCompute", "Yes (CS 5.0)")
		case level9:
			t.NotApplicable("DirectCompute")
		default:
			hw, _ := driver.Query[driver.D3D10XHardwareOptions](r.dev)
			cs4x = hw.ComputeShadersPlusRawAndStructuredBuffersViaShader4x.True()
			t.Text("DirectCompute", r.computeShader4x(cs4x), cs4x)
		}
		t.Flag("Hull & Domain Shaders", s.HullDomain)
	}

	t.Flag("Texture Resource Arrays", s.TextureArrays)
	if v != driver.D3D10 {
		t.Flag("Cubemap Resource Arrays", s.CubemapArrays)
	}
	t.Flag("BC4/BC5 Compression", s.BC4BC5)
	if v >= driver.D3D11 {
		t.Flag("BC6H/BC7 Compression", s.BC6HBC7)
	}
	t.Flag("Alpha-to-coverage", s.AlphaToCoverage)

	if v >= driver.D3D11_1 {
		r.outputMerger(t, cs4x)
	}
	if v >= driver.D3D11_2 && !level9 {
		r.tiled(t)
	}
	if v >= driver.D3D11_3 && !level9 {
		r.rasterizer(t)
	}
	r.formats(t)
	r.limits(t, cs4x)
	if level9 {
		r.level9(t)
	}

	t.Note(featureLevelNote)
	return *t
}

func (r *resolver) computeShader4x(ok bool) string {
	switch {
	case !ok:
		return optionalNo
	case r.v == driver.D3D11 && r.level == driver.Level10_0:
		return "Optional (Yes - CS 4.0)"
	}
	return "Optional (Yes - CS 4.x)"
}

// outputMerger covers the rows Direct3D 11.1 introduced. Constant buffer
// partial updates are emulated on 10level9, so they are required there
// while staying optional on 10_x and 11_0.
func (r *resolver) outputMerger(t *fields.Table, cs4x bool) {
	s := r.set
	switch {
	case s.LogicOps:
		t.Required("Logic Ops (Output Merger)", fields.Yes)
		t.Required("Constant Buffer Partial Updates", fields.Yes)
		t.Required("Constant Buffer Offsetting", fields.Yes)
	case r.level.Is10Level9():
		absent(t, "Logic Ops (Output Merger)")
		t.Required("Constant Buffer Partial Updates", fields.Yes)
		t.Required("Constant Buffer Offsetting", fields.Yes)
	default:
		o := r.options()
		optional(t, "Logic Ops (Output Merger)", o.OutputMergerLogicOp.True())
		optional(t, "Constant Buffer Partial Updates", o.ConstantBufferPartialUpdate.True())
		optional(t, "Constant Buffer Offsetting", o.ConstantBufferOffsetting.True())
	}

	switch {
	case s.UAVEveryStage:
		t.Required("UAVs at Every Stage", fields.Yes)
	case s.UAVSlots > 0 || cs4x:
		absent(t, "UAVs at Every Stage")
	}
	switch {
	case s.UAVOnlyRendering > 0:
		t.Required("UAV-only rendering", count(s.UAVOnlyRendering))
	case cs4x:
		absent(t, "UAV-only rendering")
	}
}

func (r *resolver) tiled(t *fields.Table) {
	if r.level < driver.Level11_0 {
		absent(t, "Tiled Resources", "Min/Max Filtering", "Map DEFAULT Buffers")
		return
	}
	o1 := r.options1()
	tr := o1.TiledResourcesTier
	if r.v >= driver.D3D11_3 {
		// OPTIONS1 caps the tier at 2
		tr = max(tr, r.options2().TiledResourcesTier)
	}
	tier(t, "Tiled Resources", tr)
	if r.level >= driver.Level11_1 {
		optional(t, "Min/Max Filtering", o1.MinMaxFiltering.True())
	} else {
		absent(t, "Min/Max Filtering")
	}
	optional(t, "Map DEFAULT Buffers", o1.MapOnDefaultBuffers.True())
}

func (r *resolver) rasterizer(t *fields.Table) {
	if r.level < driver.Level11_1 {
		absent(t, "Conservative Rasterization", "PS-Specified Stencil Ref", "Rasterizer Ordered Views")
		return
	}
	o2 := r.options2()
	tier(t, "Conservative Rasterization", o2.ConservativeRasterizationTier)
	optional(t, "PS-Specified Stencil Ref", o2.PSSpecifiedStencilRefSupported.True())
	optional(t, "Rasterizer Ordered Views", o2.ROVsSupported.True())
}

// formats covers the BGRA, XR and 16bpp rows. BGRA is required on
// 10level9 and 11_x but optional on 10_x.
func (r *resolver) formats(t *fields.Table) {
	level9 := r.level.Is10Level9()
	switch {
	case r.ctx.Factory < driver.Factory1_1:
		t.NotApplicable(extendedFormats)
		if !level9 {
			t.NotApplicable(xrHighColor)
		}
	case level9:
		t.Required(extendedFormats, fields.Yes)
	case r.level >= driver.Level11_0:
		t.Required(extendedFormats, fields.Yes)
		t.Required(xrHighColor, fields.Yes)
	default:
		ext, x2, _ := r.extended()
		optional(t, extendedFormats, ext)
		optional(t, xrHighColor, x2)
	}

	if r.v >= driver.D3D11_1 {
		if r.set.BPP16 {
			t.Required("16-bit Formats (565/5551/4444)", fields.Yes)
		} else {
			_, _, bpp565 := r.extended()
			optional(t, "16-bit Formats (565/5551/4444)", bpp565)
		}
	}

	switch {
	case r.set.NonPow2Full:
		t.Required(nonPow2Textures, "Full")
	case level9 && r.v >= driver.D3D11_1:
		if r.d3d9Options().nonPow2 {
			t.Text(nonPow2Textures, "Optional (Full)", true)
		} else {
			t.Text(nonPow2Textures, "Conditional", false)
		}
	}
}

func (r *resolver) limits(t *fields.Table, cs4x bool) {
	s := r.set
	maxTex := count(s.MaxTextureDimension)
	if r.ctx.DriverType == driver.DriverWARP {
		maxTex = "65536"
		if r.v >= driver.D3D11_1 {
			maxTex = "16777216"
		}
	}
	t.Required("Max Texture Dimension", maxTex)
	t.Required("Max Cubemap Dimension", count(s.MaxCubemapDimension))
	t.Required("Max Volume Extent", count(s.MaxVolumeExtent))
	t.Required("Max Texture Repeat", count(s.MaxTextureRepeat))
	t.Required("Max Input Slots", count(s.MaxInputSlots))
	switch {
	case s.UAVSlots > 0:
		t.Required("UAV Slots", count(s.UAVSlots))
	case cs4x:
		t.Text("UAV Slots", "1", true)
	}
	t.Required("Max Anisotropy", count(s.MaxAnisotropy))
	t.Required("Max Primitive Count", count(s.MaxPrimitiveCount))
	t.Required("Simultaneous Render Targets", count(s.RenderTargets))
}

func (r *resolver) level9(t *fields.Table) {
	s := r.set
	t.Flag("Occlusion Queries", s.OcclusionQuery)
	t.Flag("Separate Alpha Blend", s.SeparateAlpha)
	t.Flag("Mirror Once", s.MirrorOnce)
	t.Flag("Overlapping Vertex Elements", s.OverlapElems)
	t.Flag("Independent Write Masks", s.WriteMasks)

	switch {
	case s.Instancing:
		t.Required("Instancing", fields.Yes)
	case r.v >= driver.D3D11_2:
		if r.d3d9Options().instancing {
			t.Text("Instancing", "Optional (Simple)", true)
		} else {
			t.Text("Instancing", optionalNo, false)
		}
	default:
		absent(t, "Instancing")
	}

	if r.v >= driver.D3D11_1 {
		optional(t, "Shadow Support", r.d3d9Options().shadows)
	}
	if r.v >= driver.D3D11_2 {
		optional(t, "Cubemap Render w/ non-Cube Depth", r.d3d9Options().cubeRT)
	}
}
