//go:build windows

// Package d3d reaches DXGI and Direct3D 10/11 through their COM vtables.
// It implements driver.Host; nothing outside this package touches a raw
// interface pointer.
package d3d

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/kirides/dxcaps/driver"
)

var (
	iid_IDXGIFactory  = windows.GUID{Data1: 0x7b7166ec, Data2: 0x21c7, Data3: 0x44ae, Data4: [8]byte{0xb2, 0x1a, 0xc9, 0xae, 0x32, 0x1a, 0xe3, 0x69}}
	iid_IDXGIFactory1 = windows.GUID{Data1: 0x770aae78, Data2: 0xf26f, Data3: 0x4dba, Data4: [8]byte{0xa8, 0x29, 0x25, 0x3c, 0x83, 0xd1, 0xb3, 0x87}}
	iid_IDXGIFactory2 = windows.GUID{Data1: 0x50c83a1c, Data2: 0xe072, Data3: 0x4c48, Data4: [8]byte{0x87, 0xb0, 0x36, 0x30, 0xfa, 0x36, 0xa6, 0xd0}}
	iid_IDXGIAdapter1 = windows.GUID{Data1: 0x29038f61, Data2: 0x3839, Data3: 0x4626, Data4: [8]byte{0x91, 0xfd, 0x08, 0x68, 0x79, 0x01, 0x1a, 0x05}}
	iid_IDXGIAdapter2 = windows.GUID{Data1: 0x0aa1ae0a, Data2: 0xfa0e, Data3: 0x4b84, Data4: [8]byte{0x86, 0x44, 0xe0, 0x5f, 0xf8, 0xe5, 0xac, 0xb5}}

	iid_ID3D10Device  = windows.GUID{Data1: 0x9b7e4c0f, Data2: 0x342c, Data3: 0x4106, Data4: [8]byte{0xa1, 0x9f, 0x4f, 0x27, 0x04, 0xf6, 0x89, 0xf0}}
	iid_ID3D10Device1 = windows.GUID{Data1: 0x9b7e4c8f, Data2: 0x342c, Data3: 0x4106, Data4: [8]byte{0xa1, 0x9f, 0x4f, 0x27, 0x04, 0xf6, 0x89, 0xf0}}
	iid_ID3D11Device  = windows.GUID{Data1: 0xdb6f6ddb, Data2: 0xac77, Data3: 0x4e88, Data4: [8]byte{0x82, 0x53, 0x81, 0x9d, 0xf9, 0xbd, 0xf1, 0x40}}
	iid_ID3D11Device1 = windows.GUID{Data1: 0xa04bfb29, Data2: 0x08ef, Data3: 0x43d6, Data4: [8]byte{0xa4, 0x9c, 0xa9, 0xbd, 0xbd, 0xcb, 0xe6, 0x86}}
	iid_ID3D11Device2 = windows.GUID{Data1: 0x9d06dffa, Data2: 0xd1e5, Data3: 0x4d07, Data4: [8]byte{0x83, 0xa8, 0x1b, 0xb1, 0x23, 0xf2, 0xf8, 0x41}}
	iid_ID3D11Device3 = windows.GUID{Data1: 0xa05c8c37, Data2: 0xd2c6, Data3: 0x4732, Data4: [8]byte{0xb3, 0xa0, 0x9c, 0xe0, 0xb0, 0xdc, 0x9a, 0xe6}}
)

// Host loads system DLLs only, never from the application directory.
type Host struct{}

func NewHost() *Host { return &Host{} }

type library struct {
	dll *windows.LazyDLL
}

type proc struct {
	p *windows.LazyProc
}

func (p proc) Name() string { return p.p.Name }

func (h *Host) LoadLibrary(name string) (driver.Library, error) {
	dll := windows.NewLazySystemDLL(name)
	if err := dll.Load(); err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return &library{dll: dll}, nil
}

func (l *library) Name() string { return l.dll.Name }

func (l *library) Proc(name string) (driver.Proc, bool) {
	p := l.dll.NewProc(name)
	if p.Find() != nil {
		return nil, false
	}
	return proc{p: p}, true
}

func (l *library) Close() error {
	if h := l.dll.Handle(); h != 0 {
		return windows.FreeLibrary(windows.Handle(h))
	}
	return nil
}

func lazy(p driver.Proc) *windows.LazyProc {
	if pp, ok := p.(proc); ok {
		return pp.p
	}
	return nil
}

// NewFactory calls CreateDXGIFactory, CreateDXGIFactory1 or
// CreateDXGIFactory2, whichever p is, asking for the interface of want.
func (h *Host) NewFactory(p driver.Proc, want driver.FactoryVersion) (driver.Factory, error) {
	lp := lazy(p)
	if lp == nil {
		return nil, fmt.Errorf("%s: not a d3d proc", p.Name())
	}
	var iid *windows.GUID
	switch want {
	case driver.Factory1_0:
		iid = &iid_IDXGIFactory
	case driver.Factory1_1:
		iid = &iid_IDXGIFactory1
	case driver.Factory1_2, driver.Factory1_3:
		iid = &iid_IDXGIFactory2
	default:
		return nil, fmt.Errorf("factory version %v: %w", want, driver.ErrUnsupported)
	}

	var obj *iDXGIFactory
	var hr uintptr
	if lp.Name == "CreateDXGIFactory2" {
		hr, _, _ = lp.Call(0, uintptr(unsafe.Pointer(iid)), uintptr(unsafe.Pointer(&obj)))
	} else {
		hr, _, _ = lp.Call(uintptr(unsafe.Pointer(iid)), uintptr(unsafe.Pointer(&obj)))
	}
	if err := hresult(hr); err != nil {
		return nil, fmt.Errorf("%s(%v): %w", lp.Name, want, err)
	}
	return &factory{obj: obj, version: want}, nil
}

func (h *Host) NewDevice10Creator(p driver.Proc, minor bool) driver.Device10Creator {
	return &device10Creator{proc: lazy(p), minor: minor}
}

func (h *Host) NewDevice11Creator(p driver.Proc) driver.Device11Creator {
	return &device11Creator{proc: lazy(p)}
}

// com is the common head of every interface pointer.
type com struct {
	vtbl *iUnknownVtbl
}

func (c *com) queryInterface(iid *windows.GUID, out unsafe.Pointer) error {
	hr, _, _ := syscall.SyscallN(c.vtbl.QueryInterface, uintptr(unsafe.Pointer(c)), uintptr(unsafe.Pointer(iid)), uintptr(out))
	return hresult(hr)
}

func (c *com) release() {
	syscall.SyscallN(c.vtbl.Release, uintptr(unsafe.Pointer(c)))
}

func unknown(p unsafe.Pointer) *com { return (*com)(p) }
