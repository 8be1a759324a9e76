// Package formats queries per-format usage support and MSAA quality
// levels, and turns them into tables over curated candidate lists.
package formats

import (
	"fmt"
	"strconv"

	"github.com/kirides/dxcaps/driver"
	"github.com/kirides/dxcaps/fields"
)

// MaxSamples is the largest sample count either API defines.
const MaxSamples = 32

// Support returns the usage bits of f, or 0 when the query fails.
func Support(dev driver.Device, f driver.Format) driver.FormatSupport {
	s, err := dev.CheckFormatSupport(f)
	if err != nil {
		return 0
	}
	return s
}

// Support2 returns the extended usage bits of f, or 0 when the query
// fails or the interface predates it.
func Support2(dev driver.Device, f driver.Format) driver.FormatSupport2 {
	s, err := dev.CheckFormatSupport2(f)
	if err != nil {
		return 0
	}
	return s
}

// Quality returns the number of quality levels for f at samples. One
// sample is always supported and never queried.
func Quality(dev driver.Device, f driver.Format, samples uint32) uint32 {
	if samples == 1 {
		return 1
	}
	q, err := dev.CheckMultisampleQualityLevels(f, samples)
	if err != nil {
		return 0
	}
	return q
}

// Entry is everything known about one format on one device.
type Entry struct {
	Format   driver.Format
	Support  driver.FormatSupport
	Support2 driver.FormatSupport2
	// Quality maps a sample count to its quality level count. Counts
	// with no quality levels are absent.
	Quality map[uint32]uint32
}

// Inspect queries f for usage bits and for each sample count given.
func Inspect(dev driver.Device, f driver.Format, samples ...uint32) Entry {
	e := Entry{
		Format:   f,
		Support:  Support(dev, f),
		Support2: Support2(dev, f),
		Quality:  make(map[uint32]uint32),
	}
	for _, n := range samples {
		if q := Quality(dev, f, n); q > 0 {
			e.Quality[n] = q
		}
	}
	return e
}

// SampleTable records which sample counts any candidate format supports.
// Index i is the count i+1.
type SampleTable [MaxSamples]bool

// SampleCounts probes every count from 2 to MaxSamples against the
// candidates and stops at the first format supporting it.
func SampleCounts(dev driver.Device, candidates []driver.Format) SampleTable {
	var t SampleTable
	t[0] = true
	for n := uint32(2); n <= MaxSamples; n++ {
		for _, f := range candidates {
			if Quality(dev, f, n) > 0 {
				t[n-1] = true
				break
			}
		}
	}
	return t
}

// Supported reports whether samples is in the table.
func (t SampleTable) Supported(samples uint32) bool {
	if samples == 0 || samples > MaxSamples {
		return false
	}
	return t[samples-1]
}

// Columns returns the counts a matrix shows: powers of two always,
// others only when supported.
func (t SampleTable) Columns() []uint32 {
	var out []uint32
	for n := uint32(2); n <= MaxSamples; n++ {
		if IsPowerOf2(n) || t.Supported(n) {
			out = append(out, n)
		}
	}
	return out
}

// IsPowerOf2 treats 0 and 1 as powers of two.
func IsPowerOf2(v uint32) bool { return v&(v-1) == 0 }

// UsageTable lists whether each format supports u. Unsupported rows are
// OptionalAbsent so only the full view shows them.
func UsageTable(dev driver.Device, list []driver.Format, u Usage) fields.Table {
	t := fields.NewTable()
	for _, f := range list {
		var ok bool
		if bit := u.Support2(); bit != 0 {
			ok = Support2(dev, f)&bit != 0
		} else {
			ok = Support(dev, f)&u.Support() != 0
		}
		t.Queried(f.String(), ok)
	}
	return *t
}

// MSAATable lists the quality levels of each format at one sample count.
func MSAATable(dev driver.Device, list []driver.Format, samples uint32) fields.Table {
	t := fields.NewTable("Name", "Value", "Quality Level")
	for _, f := range list {
		q := Quality(dev, f, samples)
		if q > 0 {
			t.Add(f.String(), fields.OptionalPresent, fields.Yes, strconv.FormatUint(uint64(q), 10))
			continue
		}
		t.Add(f.String(), fields.OptionalAbsent, fields.No, "0")
	}
	return *t
}

// MSAAMatrix shows every format against every visible sample count.
func MSAAMatrix(dev driver.Device, list []driver.Format, counts SampleTable) fields.Table {
	cols := counts.Columns()
	header := []string{"Name"}
	for _, n := range cols {
		header = append(header, fmt.Sprintf("%dx", n))
	}
	t := fields.NewTable(header...)

	for _, f := range list {
		values := make([]string, len(cols))
		found := false
		for i, n := range cols {
			values[i] = fields.No
			if q := Quality(dev, f, n); q > 0 {
				values[i] = fmt.Sprintf("Yes (%d)", q)
				found = true
			}
		}
		class := fields.OptionalAbsent
		if found {
			class = fields.OptionalPresent
		}
		t.Add(f.String(), class, values...)
	}
	return *t
}

// VideoTable lists texture and video-processor support of the YUV formats.
func VideoTable(dev driver.Device) fields.Table {
	t := fields.NewTable("Name", "Texture2D", "Input", "Output", "Encoder")
	bits := []driver.FormatSupport{
		driver.SupportTexture2D,
		driver.SupportVideoProcessorInput,
		driver.SupportVideoProcessorOutput,
		driver.SupportVideoEncoder,
	}
	for _, f := range VideoFormats {
		s := Support(dev, f)
		values := make([]string, len(bits))
		found := false
		for i, b := range bits {
			values[i] = fields.No
			if s&b != 0 {
				values[i] = fields.Yes
				found = true
			}
		}
		class := fields.OptionalAbsent
		if found {
			class = fields.OptionalPresent
		}
		t.Add(f.String(), class, values...)
	}
	return *t
}

// Extended reports BGRA render-target support, 10-bit XR display
// support and 565 texture support. BGRA and XR need DXGI 1.1; 565
// needs DXGI 1.2 and a Direct3D 11 device.
func Extended(dev driver.Device, v driver.DeviceVersion, factory driver.FactoryVersion) (ext, x2, bpp565 bool) {
	if factory < driver.Factory1_1 && v.Generation() == driver.Generation10 {
		return false, false, false
	}
	ext = Support(dev, driver.FormatB8G8R8A8Unorm)&driver.SupportRenderTarget != 0
	x2 = Support(dev, driver.FormatR10G10B10XRBiasA2Unorm)&driver.SupportDisplay != 0
	if v.Generation() == driver.Generation11 && factory >= driver.Factory1_2 {
		bpp565 = Support(dev, driver.FormatB5G6R5Unorm)&driver.SupportTexture2D != 0
	}
	return ext, x2, bpp565
}
