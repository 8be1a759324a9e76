//go:build windows

package d3d

import (
	"image"

	"golang.org/x/sys/windows"

	"github.com/kirides/dxcaps/driver"
)

type _DXGI_RATIONAL struct {
	Numerator   uint32
	Denominator uint32
}
type _DXGI_MODE_DESC struct {
	Width            uint32
	Height           uint32
	Rational         _DXGI_RATIONAL
	Format           uint32 // DXGI_FORMAT
	ScanlineOrdering uint32 // DXGI_MODE_SCANLINE_ORDER
	Scaling          uint32 // DXGI_MODE_SCALING
}

func (m _DXGI_MODE_DESC) mode() driver.ModeDesc {
	return driver.ModeDesc{
		Width:            m.Width,
		Height:           m.Height,
		RefreshRate:      driver.Rational{Numerator: m.Rational.Numerator, Denominator: m.Rational.Denominator},
		Format:           driver.Format(m.Format),
		ScanlineOrdering: m.ScanlineOrdering,
		Scaling:          m.Scaling,
	}
}

type _LUID struct {
	LowPart  uint32
	HighPart int32
}

type _DXGI_ADAPTER_DESC struct {
	Description           [128]uint16
	VendorId              uint32
	DeviceId              uint32
	SubSysId              uint32
	Revision              uint32
	DedicatedVideoMemory  uintptr // SIZE_T
	DedicatedSystemMemory uintptr
	SharedSystemMemory    uintptr
	AdapterLuid           _LUID
}

type _DXGI_ADAPTER_DESC1 struct {
	_DXGI_ADAPTER_DESC
	Flags uint32
}

type _DXGI_ADAPTER_DESC2 struct {
	_DXGI_ADAPTER_DESC1
	GraphicsPreemptionGranularity uint32
	ComputePreemptionGranularity  uint32
}

func (d *_DXGI_ADAPTER_DESC) desc() driver.AdapterDesc {
	return driver.AdapterDesc{
		Description:           windows.UTF16ToString(d.Description[:]),
		VendorID:              d.VendorId,
		DeviceID:              d.DeviceId,
		SubSysID:              d.SubSysId,
		Revision:              d.Revision,
		DedicatedVideoMemory:  uint64(d.DedicatedVideoMemory),
		DedicatedSystemMemory: uint64(d.DedicatedSystemMemory),
		SharedSystemMemory:    uint64(d.SharedSystemMemory),
	}
}

type _RECT struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

func (r _RECT) rect() image.Rectangle {
	return image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom))
}

type _DXGI_OUTPUT_DESC struct {
	DeviceName         [32]uint16
	DesktopCoordinates _RECT
	AttachedToDesktop  int32  // BOOL
	Rotation           uint32 // DXGI_MODE_ROTATION
	Monitor            uintptr
}

// D3D11_FEATURE_DATA_FORMAT_SUPPORT(2) share this layout.
type _D3D11_FEATURE_DATA_FORMAT_SUPPORT struct {
	InFormat         uint32
	OutFormatSupport uint32
}

// DXGI_ERROR_MORE_DATA is only ever seen between the two
// GetDisplayModeList calls and never leaves this package.
const _DXGI_ERROR_MORE_DATA = 0x887A0003

// hresult turns a failed HRESULT into a driver.Error.
func hresult(hr uintptr) error {
	if !failed(hr) {
		return nil
	}
	return driver.Error(uint32(hr))
}

func failed(hr uintptr) bool { return driver.Failed(hr) }
