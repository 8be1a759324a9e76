package adapters

import (
	"fmt"

	"github.com/kirides/dxcaps/driver"
)

// Mode is one display mode with a reduced refresh rate.
type Mode struct {
	Width       uint32
	Height      uint32
	Format      driver.Format
	RefreshRate uint32
}

var (
	baseModeFormats = []driver.Format{
		driver.FormatR8G8B8A8UnormSRGB,
		driver.FormatR8G8B8A8Unorm,
		driver.FormatR16G16B16A16Float,
		driver.FormatR10G10B10A2Unorm,
	}
	// Reported only through DXGI 1.1 and later.
	modeFormats11 = []driver.Format{
		driver.FormatR10G10B10XRBiasA2Unorm,
		driver.FormatB8G8R8A8Unorm,
		driver.FormatB8G8R8A8UnormSRGB,
	}
)

// ModeFormats lists the formats display modes are requested for.
func ModeFormats(v driver.FactoryVersion) []driver.Format {
	out := append([]driver.Format(nil), baseModeFormats...)
	if v >= driver.Factory1_1 {
		out = append(out, modeFormats11...)
	}
	return out
}

// RefreshRate reduces a rational refresh rate to whole hertz.
func RefreshRate(r driver.Rational) uint32 {
	switch {
	case r.Numerator == 0 || r.Denominator == 0:
		return 0
	case r.Denominator == 1:
		return r.Numerator
	}
	return r.Numerator / r.Denominator
}

// Modes queries the display modes of every candidate format. A format
// the output rejects contributes nothing.
func (o *Output) Modes() []Mode {
	if o.Handle == nil {
		return nil
	}
	var out []Mode
	for _, f := range ModeFormats(o.factory) {
		list, err := o.Handle.DisplayModes(f)
		if err != nil {
			continue
		}
		for _, m := range list {
			out = append(out, Mode{
				Width:       m.Width,
				Height:      m.Height,
				Format:      f,
				RefreshRate: RefreshRate(m.RefreshRate),
			})
		}
	}
	return out
}

// Resolution formats the mode as "W x H".
func (m Mode) Resolution() string { return fmt.Sprintf("%d x %d", m.Width, m.Height) }
