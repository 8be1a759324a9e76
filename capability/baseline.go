// Package capability turns a probed device context into the feature-level
// summary and device-information tables of the report.
package capability

import (
	"strconv"

	"github.com/kirides/dxcaps/driver"
)

// ShaderModel is ordered oldest to newest.
type ShaderModel int

const (
	ShaderModelNone ShaderModel = iota
	ShaderModel2Level9_1
	ShaderModel2Level9_3
	ShaderModel4_0
	ShaderModel4_1
	ShaderModel5_0
)

func (m ShaderModel) String() string {
	switch m {
	case ShaderModel2Level9_1:
		return "2.0 (4_0_level_9_1)"
	case ShaderModel2Level9_3:
		return "2.0 (4_0_level_9_3) [vs_2_a/ps_2_b]"
	case ShaderModel4_0:
		return "4.0"
	case ShaderModel4_1:
		return "4.x"
	case ShaderModel5_0:
		return "5.0"
	}
	return "n/a"
}

// Set is what a feature level guarantees on a given device interface
// without asking the driver. Higher levels only ever add to it.
type Set struct {
	ShaderModel ShaderModel

	GeometryShader  bool
	StreamOut       bool
	ComputeShader   bool
	HullDomain      bool
	TextureArrays   bool
	CubemapArrays   bool
	BC4BC5          bool
	BC6HBC7         bool
	AlphaToCoverage bool

	LogicOps       bool
	UAVEveryStage  bool
	BPP16          bool
	NonPow2Full    bool
	Instancing     bool
	OcclusionQuery bool
	SeparateAlpha  bool
	MirrorOnce     bool
	OverlapElems   bool
	WriteMasks     bool

	MaxTextureDimension uint64
	MaxCubemapDimension uint64
	MaxVolumeExtent     uint64
	MaxTextureRepeat    uint64
	MaxInputSlots       uint64
	UAVSlots            uint64
	UAVOnlyRendering    uint64
	MaxAnisotropy       uint64
	MaxPrimitiveCount   uint64
	RenderTargets       uint64
}

type step struct {
	level driver.FeatureLevel
	delta func(v driver.DeviceVersion) Set
}

// ladder lists what each level adds over the one below it.
var ladder = []step{
	{driver.Level9_1, func(driver.DeviceVersion) Set {
		return Set{
			ShaderModel:         ShaderModel2Level9_1,
			MaxTextureDimension: 2048,
			MaxCubemapDimension: 512,
			MaxVolumeExtent:     256,
			MaxTextureRepeat:    128,
			MaxInputSlots:       16,
			MaxAnisotropy:       2,
			MaxPrimitiveCount:   65535,
			RenderTargets:       1,
		}
	}},
	{driver.Level9_2, func(driver.DeviceVersion) Set {
		return Set{
			OcclusionQuery:    true,
			SeparateAlpha:     true,
			MirrorOnce:        true,
			OverlapElems:      true,
			MaxTextureRepeat:  2048,
			MaxAnisotropy:     16,
			MaxPrimitiveCount: 1048575,
		}
	}},
	{driver.Level9_3, func(driver.DeviceVersion) Set {
		return Set{
			ShaderModel:         ShaderModel2Level9_3,
			WriteMasks:          true,
			Instancing:          true,
			MaxTextureDimension: 4096,
			MaxCubemapDimension: 4096,
			MaxTextureRepeat:    8192,
			RenderTargets:       4,
		}
	}},
	{driver.Level10_0, func(v driver.DeviceVersion) Set {
		return Set{
			ShaderModel:         ShaderModel4_0,
			GeometryShader:      true,
			StreamOut:           true,
			TextureArrays:       true,
			BC4BC5:              true,
			AlphaToCoverage:     true,
			NonPow2Full:         v >= driver.D3D11_1,
			MaxTextureDimension: 8192,
			MaxCubemapDimension: 8192,
			MaxVolumeExtent:     2048,
			MaxPrimitiveCount:   1 << 32,
			RenderTargets:       8,
		}
	}},
	{driver.Level10_1, func(driver.DeviceVersion) Set {
		return Set{
			ShaderModel:   ShaderModel4_1,
			CubemapArrays: true,
			MaxInputSlots: 32,
		}
	}},
	{driver.Level11_0, func(v driver.DeviceVersion) Set {
		if v < driver.D3D11 {
			return Set{}
		}
		s := Set{
			ShaderModel:         ShaderModel5_0,
			ComputeShader:       true,
			HullDomain:          true,
			BC6HBC7:             true,
			MaxTextureDimension: 16384,
			MaxCubemapDimension: 16384,
			MaxTextureRepeat:    16384,
		}
		if v >= driver.D3D11_1 {
			s.UAVSlots = 8
			s.UAVOnlyRendering = 8
		}
		return s
	}},
	{driver.Level11_1, func(v driver.DeviceVersion) Set {
		if v < driver.D3D11_1 {
			return Set{}
		}
		return Set{
			LogicOps:         true,
			UAVEveryStage:    true,
			BPP16:            true,
			UAVSlots:         64,
			UAVOnlyRendering: 16,
		}
	}},
}

// Baseline returns the guaranteed set of level on interface v. It never
// touches a device.
func Baseline(v driver.DeviceVersion, level driver.FeatureLevel) Set {
	var s Set
	for _, st := range ladder {
		if st.level > level {
			break
		}
		s = s.merge(st.delta(v))
	}
	return s
}

// merge adds d to s. Flags are or-ed and limits take the larger value,
// so a merge can never take anything away.
func (s Set) merge(d Set) Set {
	s.ShaderModel = max(s.ShaderModel, d.ShaderModel)

	s.GeometryShader = s.GeometryShader || d.GeometryShader
	s.StreamOut = s.StreamOut || d.StreamOut
	s.ComputeShader = s.ComputeShader || d.ComputeShader
	s.HullDomain = s.HullDomain || d.HullDomain
	s.TextureArrays = s.TextureArrays || d.TextureArrays
	s.CubemapArrays = s.CubemapArrays || d.CubemapArrays
	s.BC4BC5 = s.BC4BC5 || d.BC4BC5
	s.BC6HBC7 = s.BC6HBC7 || d.BC6HBC7
	s.AlphaToCoverage = s.AlphaToCoverage || d.AlphaToCoverage
	s.LogicOps = s.LogicOps || d.LogicOps
	s.UAVEveryStage = s.UAVEveryStage || d.UAVEveryStage
	s.BPP16 = s.BPP16 || d.BPP16
	s.NonPow2Full = s.NonPow2Full || d.NonPow2Full
	s.Instancing = s.Instancing || d.Instancing
	s.OcclusionQuery = s.OcclusionQuery || d.OcclusionQuery
	s.SeparateAlpha = s.SeparateAlpha || d.SeparateAlpha
	s.MirrorOnce = s.MirrorOnce || d.MirrorOnce
	s.OverlapElems = s.OverlapElems || d.OverlapElems
	s.WriteMasks = s.WriteMasks || d.WriteMasks

	s.MaxTextureDimension = max(s.MaxTextureDimension, d.MaxTextureDimension)
	s.MaxCubemapDimension = max(s.MaxCubemapDimension, d.MaxCubemapDimension)
	s.MaxVolumeExtent = max(s.MaxVolumeExtent, d.MaxVolumeExtent)
	s.MaxTextureRepeat = max(s.MaxTextureRepeat, d.MaxTextureRepeat)
	s.MaxInputSlots = max(s.MaxInputSlots, d.MaxInputSlots)
	s.UAVSlots = max(s.UAVSlots, d.UAVSlots)
	s.UAVOnlyRendering = max(s.UAVOnlyRendering, d.UAVOnlyRendering)
	s.MaxAnisotropy = max(s.MaxAnisotropy, d.MaxAnisotropy)
	s.MaxPrimitiveCount = max(s.MaxPrimitiveCount, d.MaxPrimitiveCount)
	s.RenderTargets = max(s.RenderTargets, d.RenderTargets)
	return s
}

// Covers reports whether s guarantees everything o does.
func (s Set) Covers(o Set) bool {
	return s.merge(o) == s
}

func count(n uint64) string { return strconv.FormatUint(n, 10) }
