// Package driver describes the DXGI and Direct3D surface the capability
// probe talks to, independent of how a backend reaches the native stack.
package driver

//go:generate mockgen -destination=drivertest/mock_driver.go -package=drivertest github.com/kirides/dxcaps/driver Device,Device11Creator

import "image"

// Host resolves native libraries and turns their exports into the
// objects below. The Windows implementation lives in package d3d;
// tests use drivertest.
type Host interface {
	LoadLibrary(name string) (Library, error)
	// NewFactory invokes a CreateDXGIFactory* export asking for the
	// interface that matches want.
	NewFactory(p Proc, want FactoryVersion) (Factory, error)
	// NewDevice10Creator wraps D3D10CreateDevice1 (minor) or D3D10CreateDevice.
	NewDevice10Creator(p Proc, minor bool) Device10Creator
	NewDevice11Creator(p Proc) Device11Creator
}

type Library interface {
	Name() string
	// Proc looks up an export. ok is false when it is absent.
	Proc(name string) (p Proc, ok bool)
	Close() error
}

type Proc interface {
	Name() string
}

type Factory interface {
	Version() FactoryVersion
	// EnumAdapters uses EnumAdapters1 when the factory supports it.
	// It returns an error matching ErrNotFound past the last adapter.
	EnumAdapters(i uint32) (Adapter, error)
	Release()
}

type AdapterFlag uint32

const (
	AdapterFlagRemote   AdapterFlag = 1
	AdapterFlagSoftware AdapterFlag = 2
)

type GraphicsPreemption uint32

const (
	GraphicsPreemptionDMABuffer GraphicsPreemption = iota
	GraphicsPreemptionPrimitive
	GraphicsPreemptionTriangle
	GraphicsPreemptionPixel
	GraphicsPreemptionInstruction
)

func (g GraphicsPreemption) String() string {
	switch g {
	case GraphicsPreemptionDMABuffer:
		return "DMA Buffer"
	case GraphicsPreemptionPrimitive:
		return "Primitive"
	case GraphicsPreemptionTriangle:
		return "Triangle"
	case GraphicsPreemptionPixel:
		return "Pixel"
	case GraphicsPreemptionInstruction:
		return "Instruction"
	}
	return "Unknown"
}

type ComputePreemption uint32

const (
	ComputePreemptionDMABuffer ComputePreemption = iota
	ComputePreemptionDispatch
	ComputePreemptionThreadGroup
	ComputePreemptionThread
	ComputePreemptionInstruction
)

func (c ComputePreemption) String() string {
	switch c {
	case ComputePreemptionDMABuffer:
		return "DMA Buffer"
	case ComputePreemptionDispatch:
		return "Dispatch"
	case ComputePreemptionThreadGroup:
		return "Thread Group"
	case ComputePreemptionThread:
		return "Thread"
	case ComputePreemptionInstruction:
		return "Instruction"
	}
	return "Unknown"
}

// AdapterDesc merges DXGI_ADAPTER_DESC, DESC1 and DESC2. Level tells
// which of them the adapter could provide; fields beyond it are zero.
type AdapterDesc struct {
	Level                 int
	Description           string
	VendorID              uint32
	DeviceID              uint32
	SubSysID              uint32
	Revision              uint32
	DedicatedVideoMemory  uint64
	DedicatedSystemMemory uint64
	SharedSystemMemory    uint64
	Flags                 AdapterFlag
	GraphicsPreemption    GraphicsPreemption
	ComputePreemption     ComputePreemption
}

// Software reports whether the adapter is the render-only software
// adapter. It can only be known from a DESC2.
func (d AdapterDesc) Software() (software, known bool) {
	if d.Level < 2 {
		return false, false
	}
	return d.Flags&AdapterFlagSoftware != 0, true
}

type Adapter interface {
	Desc() (AdapterDesc, error)
	// EnumOutputs returns an error matching ErrNotFound past the last output.
	EnumOutputs(i uint32) (Output, error)
	Release()
}

type Rotation uint32

const (
	RotationUnspecified Rotation = iota
	RotationIdentity
	Rotation90
	Rotation180
	Rotation270
)

func (r Rotation) String() string {
	switch r {
	case RotationUnspecified:
		return "DXGI_MODE_ROTATION_UNSPECIFIED"
	case RotationIdentity:
		return "DXGI_MODE_ROTATION_IDENTITY"
	case Rotation90:
		return "DXGI_MODE_ROTATION_ROTATE90"
	case Rotation180:
		return "DXGI_MODE_ROTATION_ROTATE180"
	case Rotation270:
		return "DXGI_MODE_ROTATION_ROTATE270"
	}
	return "Unknown"
}

type OutputDesc struct {
	DeviceName         string
	DesktopCoordinates image.Rectangle
	AttachedToDesktop  bool
	Rotation           Rotation
	// Primary and DisplayIndex are filled in by backends that can tell.
	Primary      bool
	DisplayIndex int
}

type Output interface {
	Desc() (OutputDesc, error)
	DisplayModes(f Format) ([]ModeDesc, error)
	Release()
}

type Rational struct {
	Numerator   uint32
	Denominator uint32
}

type ModeDesc struct {
	Width            uint32
	Height           uint32
	RefreshRate      Rational
	Format           Format
	ScanlineOrdering uint32
	Scaling          uint32
}

// Device is one device interface. Version reports which one; Upgrade
// queries for a newer interface on the same underlying device and
// returns an independently released handle.
type Device interface {
	Version() DeviceVersion
	FeatureLevel() FeatureLevel
	CheckFormatSupport(f Format) (FormatSupport, error)
	// CheckFormatSupport2 returns ErrUnsupported before Direct3D 11.
	CheckFormatSupport2(f Format) (FormatSupport2, error)
	CheckMultisampleQualityLevels(f Format, samples uint32) (uint32, error)
	// CheckFeatureSupport returns ErrUnsupported before Direct3D 11.
	CheckFeatureSupport(data FeatureData) error
	Upgrade(v DeviceVersion) (Device, error)
	Release()
}

// Device10Creator creates Direct3D 10.x devices. A legacy creator
// (Minor false) always creates a 10_0 device and ignores level.
type Device10Creator interface {
	Minor() bool
	CreateDevice(a Adapter, dt DriverType, level FeatureLevel) (Device, error)
}

// Device11Creator creates Direct3D 11 devices at exactly one level.
type Device11Creator interface {
	CreateDevice(a Adapter, dt DriverType, level FeatureLevel) (Device, error)
}
