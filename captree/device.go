package captree

import (
	"github.com/kirides/dxcaps/capability"
	"github.com/kirides/dxcaps/driver"
	"github.com/kirides/dxcaps/fields"
	"github.com/kirides/dxcaps/formats"
	"github.com/kirides/dxcaps/probe"
)

// shownLevel is the level an interface reports. Direct3D 10 and 11 do
// not know the levels added after them.
func shownLevel(ctx *probe.Context) driver.FeatureLevel {
	switch ctx.Version {
	case driver.D3D10:
		return min(ctx.Level, driver.Level10_0)
	case driver.D3D11:
		return min(ctx.Level, driver.Level11_0)
	}
	return ctx.Level
}

// device lays out one negotiated interface.
func (b *builder) device(ctx *probe.Context) *Node {
	n := leaf(ctx.Version.String(), func(view fields.View) fields.Table { return capability.Info(ctx, view) })
	level := shownLevel(ctx)
	g := ctx.Version.Generation()
	f := formatNodes{ctx: ctx, level: level}

	if ctx.Version == driver.D3D10 {
		n.add(summary("Features", ctx, level))
	} else {
		n.add(summary(level.Name(g), ctx, level))
		if more := b.additional(ctx, level); more != nil {
			n.add(more)
		}
	}

	switch ctx.Version {
	case driver.D3D10:
		n.add(
			f.usage("Shader sample (any filter)", formats.UsageShaderSample),
			f.usage("Mipmap Auto-Generation", formats.UsageMipAutoGen),
			f.usage("Render Target", formats.UsageRenderTarget),
			f.usage("Blendable Render Target", formats.UsageBlendable),
			f.msaa("2x MSAA", 2),
			f.msaa("4x MSAA", 4),
			f.msaa("8x MSAA", 8),
			f.matrix(),
			f.usage("MSAA Load", formats.UsageMultisampleLoad),
		)

	case driver.D3D10_1:
		switch {
		case level == driver.Level10_1:
			n.add(
				f.usage("Shader sample (any filter)", formats.UsageShaderSample),
				f.usage("Mipmap Auto-Generation", formats.UsageMipAutoGen),
				f.usage("Render Target", formats.UsageRenderTarget),
				f.msaa("2x MSAA", 2),
				f.msaa("4x MSAA (most required)", 4),
				f.msaa("8x MSAA", 8),
				f.matrix(),
			)
		case level.Is10Level9():
			n.add(f.msaa("2x MSAA", 2))
			if level >= driver.Level9_3 {
				n.add(f.msaa("4x MSAA", 4))
			}
		}

	case driver.D3D11:
		if level >= driver.Level11_0 {
			n.add(
				f.usage("Shader sample (any filter)", formats.UsageShaderSample),
				f.usage("Shader gather4", formats.UsageShaderGather),
				f.usage("Mipmap Auto-Generation", formats.UsageMipAutoGen),
				f.usage("Render Target", formats.UsageRenderTarget),
				f.msaa("2x MSAA", 2),
				f.msaa("4x MSAA (all required)", 4),
				f.msaa("8x MSAA (most required)", 8),
				f.matrix(),
			)
		}

	case driver.D3D11_1:
		if level >= driver.Level10_0 {
			n.add(
				f.usage("IA Vertex Buffer", formats.UsageIAVertexBuffer),
				f.usage("Shader sample (any filter)", formats.UsageShaderSample),
			)
			if level >= driver.Level11_0 {
				n.add(f.usage("Shader gather4", formats.UsageShaderGather))
			}
			n.add(
				f.usage("Mipmap Auto-Generation", formats.UsageMipAutoGen),
				f.usage("Render Target", formats.UsageRenderTarget),
				f.usage("Blendable Render Target", formats.UsageBlendable),
			)
			if level < driver.Level11_1 {
				n.add(f.usage("OM Logic Ops", formats.UsageLogicOp))
			}
			if level >= driver.Level11_0 {
				n.add(
					f.usage("Typed UAV (most required)", formats.UsageTypedUAV),
					f.usage("UAV Typed Store (most required)", formats.UsageUAVTypedStore),
				)
			}
			n.add(
				f.msaa("2x MSAA", 2),
				f.msaa("4x MSAA (all required)", 4),
				f.msaa("8x MSAA (most required)", 8),
				f.matrix(),
				f.usage("MSAA Load", formats.UsageMultisampleLoad),
			)
		}
		if ctx.DriverType != driver.DriverReference {
			n.add(f.video())
		}

	case driver.D3D11_2:
		n.add(f.usage("Shareable", formats.UsageShareable))

	case driver.D3D11_3:
		n.add(f.usage("UAV Typed Load", formats.UsageUAVTypedLoad))
	}
	return n
}

func summary(label string, ctx *probe.Context, level driver.FeatureLevel) *Node {
	return leaf(label, func(view fields.View) fields.Table { return capability.Resolve(ctx, level, view) })
}

// additional lists the achieved levels below level, highest first. An
// interface shown at the lowest level it can be probed at has none.
func (b *builder) additional(ctx *probe.Context, level driver.FeatureLevel) *Node {
	g := ctx.Version.Generation()
	candidates := b.prober.Candidates(g)
	if len(candidates) == 0 || level <= candidates[len(candidates)-1] {
		return nil
	}
	n := folder(AdditionalLabel)
	for _, l := range ctx.Levels.Levels() {
		if l < level {
			n.add(summary(l.Name(g), ctx, l))
		}
	}
	return n
}

type formatNodes struct {
	ctx   *probe.Context
	level driver.FeatureLevel
}

func (f formatNodes) usage(label string, u formats.Usage) *Node {
	return leaf(label, func(view fields.View) fields.Table {
		list := formats.Candidates(f.ctx.Version, f.level, u, 0, view)
		return formats.UsageTable(f.ctx.Device, list, u)
	})
}

func (f formatNodes) msaa(label string, samples uint32) *Node {
	return leaf(label, func(view fields.View) fields.Table {
		list := formats.Candidates(f.ctx.Version, f.level, formats.UsageMultisample, samples, view)
		return formats.MSAATable(f.ctx.Device, list, samples)
	})
}

func (f formatNodes) matrix() *Node {
	return leaf("Other MSAA", func(fields.View) fields.Table {
		counts := formats.SampleCounts(f.ctx.Device, formats.SampleCandidates(f.ctx.Version, f.level))
		return formats.MSAAMatrix(f.ctx.Device, formats.MatrixCandidates(f.ctx.Version), counts)
	})
}

func (f formatNodes) video() *Node {
	return leaf("Video", func(fields.View) fields.Table { return formats.VideoTable(f.ctx.Device) })
}
