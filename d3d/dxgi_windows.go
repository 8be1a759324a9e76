//go:build windows

package d3d

import (
	"errors"
	"fmt"
	"syscall"
	"unsafe"

	"github.com/kbinani/screenshot"
	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/kirides/dxcaps/driver"
)

type iDXGIFactory struct {
	vtbl *iDXGIFactory1Vtbl
}

type iDXGIAdapter struct {
	vtbl *iDXGIAdapter2Vtbl
}

type iDXGIOutput struct {
	vtbl *iDXGIOutputVtbl
}

type factory struct {
	obj     *iDXGIFactory
	version driver.FactoryVersion
}

func (f *factory) Version() driver.FactoryVersion { return f.version }

func (f *factory) EnumAdapters(i uint32) (driver.Adapter, error) {
	var obj *iDXGIAdapter
	method := f.obj.vtbl.EnumAdapters
	if f.version >= driver.Factory1_1 {
		method = f.obj.vtbl.EnumAdapters1
	}
	hr, _, _ := syscall.SyscallN(method, uintptr(unsafe.Pointer(f.obj)), uintptr(i), uintptr(unsafe.Pointer(&obj)))
	if err := hresult(hr); err != nil {
		return nil, err
	}
	return &adapter{obj: obj, v1: f.version >= driver.Factory1_1}, nil
}

func (f *factory) Release() {
	if f.obj != nil {
		unknown(unsafe.Pointer(f.obj)).release()
		f.obj = nil
	}
}

type adapter struct {
	obj *iDXGIAdapter
	// v1 is set when obj came from EnumAdapters1 and is an IDXGIAdapter1.
	v1 bool
}

func (a *adapter) ptr() uintptr { return uintptr(unsafe.Pointer(a.obj)) }

// Desc reads the newest description the adapter provides. A missing
// IDXGIAdapter2 only lowers Level.
func (a *adapter) Desc() (driver.AdapterDesc, error) {
	if a.v1 {
		var d2 *iDXGIAdapter
		if unknown(unsafe.Pointer(a.obj)).queryInterface(&iid_IDXGIAdapter2, unsafe.Pointer(&d2)) == nil {
			defer unknown(unsafe.Pointer(d2)).release()
			var raw _DXGI_ADAPTER_DESC2
			hr, _, _ := syscall.SyscallN(d2.vtbl.GetDesc2, uintptr(unsafe.Pointer(d2)), uintptr(unsafe.Pointer(&raw)))
			if err := hresult(hr); err == nil {
				d := raw.desc()
				d.Level = 2
				d.Flags = driver.AdapterFlag(raw.Flags)
				d.GraphicsPreemption = driver.GraphicsPreemption(raw.GraphicsPreemptionGranularity)
				d.ComputePreemption = driver.ComputePreemption(raw.ComputePreemptionGranularity)
				return d, nil
			}
		}

		var raw _DXGI_ADAPTER_DESC1
		hr, _, _ := syscall.SyscallN(a.obj.vtbl.GetDesc1, a.ptr(), uintptr(unsafe.Pointer(&raw)))
		if err := hresult(hr); err != nil {
			return driver.AdapterDesc{}, fmt.Errorf("GetDesc1: %w", err)
		}
		d := raw.desc()
		d.Level = 1
		d.Flags = driver.AdapterFlag(raw.Flags)
		return d, nil
	}

	var raw _DXGI_ADAPTER_DESC
	hr, _, _ := syscall.SyscallN(a.obj.vtbl.GetDesc, a.ptr(), uintptr(unsafe.Pointer(&raw)))
	if err := hresult(hr); err != nil {
		return driver.AdapterDesc{}, fmt.Errorf("GetDesc: %w", err)
	}
	return raw.desc(), nil
}

func (a *adapter) EnumOutputs(i uint32) (driver.Output, error) {
	var obj *iDXGIOutput
	hr, _, _ := syscall.SyscallN(a.obj.vtbl.EnumOutputs, a.ptr(), uintptr(i), uintptr(unsafe.Pointer(&obj)))
	if err := hresult(hr); err != nil {
		return nil, err
	}
	return &output{obj: obj}, nil
}

func (a *adapter) Release() {
	if a.obj != nil {
		unknown(unsafe.Pointer(a.obj)).release()
		a.obj = nil
	}
}

// nativeAdapter returns the interface pointer behind a, or 0 for nil
// and foreign adapters.
func nativeAdapter(a driver.Adapter) uintptr {
	if na, ok := a.(*adapter); ok && na != nil && na.obj != nil {
		return na.ptr()
	}
	return 0
}

type output struct {
	obj *iDXGIOutput
}

func (o *output) ptr() uintptr { return uintptr(unsafe.Pointer(o.obj)) }

func (o *output) Desc() (driver.OutputDesc, error) {
	var raw _DXGI_OUTPUT_DESC
	hr, _, _ := syscall.SyscallN(o.obj.vtbl.GetDesc, o.ptr(), uintptr(unsafe.Pointer(&raw)))
	if err := hresult(hr); err != nil {
		return driver.OutputDesc{}, fmt.Errorf("GetDesc: %w", err)
	}
	d := driver.OutputDesc{
		DeviceName:         windows.UTF16ToString(raw.DeviceName[:]),
		DesktopCoordinates: raw.DesktopCoordinates.rect(),
		AttachedToDesktop:  raw.AttachedToDesktop != 0,
		Rotation:           driver.Rotation(raw.Rotation),
		DisplayIndex:       -1,
	}

	if raw.Monitor != 0 {
		var mi win.MONITORINFO
		mi.CbSize = uint32(unsafe.Sizeof(mi))
		if win.GetMonitorInfo(win.HMONITOR(raw.Monitor), &mi) {
			d.Primary = mi.DwFlags&win.MONITORINFOF_PRIMARY != 0
		}
	}
	if d.AttachedToDesktop {
		for i, n := 0, screenshot.NumActiveDisplays(); i < n; i++ {
			if screenshot.GetDisplayBounds(i) == d.DesktopCoordinates {
				d.DisplayIndex = i
				break
			}
		}
	}
	return d, nil
}

// DisplayModes lists the modes for f. The list can grow between the
// count and the fetch, in which case it is read again.
func (o *output) DisplayModes(f driver.Format) ([]driver.ModeDesc, error) {
	for {
		var n uint32
		hr, _, _ := syscall.SyscallN(o.obj.vtbl.GetDisplayModeList, o.ptr(), uintptr(f), 0, uintptr(unsafe.Pointer(&n)), 0)
		if err := hresult(hr); err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, nil
		}
		raw := make([]_DXGI_MODE_DESC, n)
		hr, _, _ = syscall.SyscallN(o.obj.vtbl.GetDisplayModeList, o.ptr(), uintptr(f), 0, uintptr(unsafe.Pointer(&n)), uintptr(unsafe.Pointer(&raw[0])))
		if uint32(hr) == _DXGI_ERROR_MORE_DATA {
			continue
		}
		if err := hresult(hr); err != nil {
			return nil, err
		}
		modes := make([]driver.ModeDesc, 0, n)
		for _, m := range raw[:n] {
			modes = append(modes, m.mode())
		}
		return modes, nil
	}
}

func (o *output) Release() {
	if o.obj != nil {
		unknown(unsafe.Pointer(o.obj)).release()
		o.obj = nil
	}
}

var errNoProc = errors.New("entry point not resolved")
