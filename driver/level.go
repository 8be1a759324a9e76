package driver

import (
	"strconv"
	"strings"
)

// FeatureLevel is a D3D_FEATURE_LEVEL / D3D10_FEATURE_LEVEL1 value.
// Both enumerations share the same numeric encoding.
type FeatureLevel uint32

const (
	Level9_1  FeatureLevel = 0x9100
	Level9_2  FeatureLevel = 0x9200
	Level9_3  FeatureLevel = 0x9300
	Level10_0 FeatureLevel = 0xa000
	Level10_1 FeatureLevel = 0xa100
	Level11_0 FeatureLevel = 0xb000
	Level11_1 FeatureLevel = 0xb100
)

// Ladders, highest first.
var (
	Ladder10 = []FeatureLevel{Level10_1, Level10_0, Level9_3, Level9_2, Level9_1}
	Ladder11 = []FeatureLevel{Level11_1, Level11_0, Level10_1, Level10_0, Level9_3, Level9_2, Level9_1}
)

// String returns the short "11_0" form.
func (l FeatureLevel) String() string {
	major := uint32(l) >> 12
	minor := (uint32(l) >> 8) & 0xf
	return strconv.FormatUint(uint64(major), 10) + "_" + strconv.FormatUint(uint64(minor), 10)
}

// Name returns the enum name used by the given API generation, e.g.
// D3D10_FEATURE_LEVEL_10_1 or D3D_FEATURE_LEVEL_11_0.
func (l FeatureLevel) Name(g Generation) string {
	if g == Generation10 {
		return "D3D10_FEATURE_LEVEL_" + l.String()
	}
	return "D3D_FEATURE_LEVEL_" + l.String()
}

// Is10Level9 reports whether l is one of the 9_x levels exposed through
// the 10.x and 11.x APIs.
func (l FeatureLevel) Is10Level9() bool { return l < Level10_0 }

// ParseFeatureLevel accepts "11_0", "11.0" and the full enum names.
func ParseFeatureLevel(s string) (FeatureLevel, bool) {
	s = strings.TrimPrefix(s, "D3D10_FEATURE_LEVEL_")
	s = strings.TrimPrefix(s, "D3D_FEATURE_LEVEL_")
	s = strings.ReplaceAll(s, ".", "_")
	for _, l := range Ladder11 {
		if l.String() == s {
			return l, true
		}
	}
	return 0, false
}

// LevelMask records which levels a probe achieved.
type LevelMask uint32

const (
	Mask9_1  LevelMask = 0x1
	Mask9_2  LevelMask = 0x2
	Mask9_3  LevelMask = 0x4
	Mask10_0 LevelMask = 0x8
	Mask10_1 LevelMask = 0x10
	Mask11_0 LevelMask = 0x20
	Mask11_1 LevelMask = 0x40
)

// Mask returns the bit for l, or 0 for an unknown level.
func (l FeatureLevel) Mask() LevelMask {
	switch l {
	case Level9_1:
		return Mask9_1
	case Level9_2:
		return Mask9_2
	case Level9_3:
		return Mask9_3
	case Level10_0:
		return Mask10_0
	case Level10_1:
		return Mask10_1
	case Level11_0:
		return Mask11_0
	case Level11_1:
		return Mask11_1
	}
	return 0
}

func (m LevelMask) Has(l FeatureLevel) bool { return m&l.Mask() != 0 }

// Levels lists the levels in m, highest first.
func (m LevelMask) Levels() []FeatureLevel {
	var out []FeatureLevel
	for _, l := range Ladder11 {
		if m.Has(l) {
			out = append(out, l)
		}
	}
	return out
}

// Highest returns the highest level in m.
func (m LevelMask) Highest() (FeatureLevel, bool) {
	for _, l := range Ladder11 {
		if m.Has(l) {
			return l, true
		}
	}
	return 0, false
}

func (m LevelMask) String() string {
	levels := m.Levels()
	if len(levels) == 0 {
		return "none"
	}
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = l.String()
	}
	return strings.Join(parts, ",")
}
