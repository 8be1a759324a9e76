//go:build windows

package d3d

import (
	"fmt"
	"reflect"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/kirides/dxcaps/driver"
)

const (
	_D3D10_SDK_VERSION   = 29
	_D3D10_1_SDK_VERSION = 0x20
	_D3D11_SDK_VERSION   = 7
)

// D3D10_DRIVER_TYPE predates the shared D3D_DRIVER_TYPE numbering.
func d3d10DriverType(dt driver.DriverType) uintptr {
	switch dt {
	case driver.DriverReference:
		return 1
	case driver.DriverNull:
		return 2
	case driver.DriverSoftware:
		return 3
	case driver.DriverWARP:
		return 5
	}
	return 0 // D3D10_DRIVER_TYPE_HARDWARE
}

type device10Creator struct {
	proc  *windows.LazyProc
	minor bool
}

func (c *device10Creator) Minor() bool { return c.minor }

func (c *device10Creator) CreateDevice(a driver.Adapter, dt driver.DriverType, level driver.FeatureLevel) (driver.Device, error) {
	if c.proc == nil {
		return nil, errNoProc
	}
	var obj *iD3D10Device
	var hr uintptr
	if c.minor {
		hr, _, _ = c.proc.Call(nativeAdapter(a), d3d10DriverType(dt), 0, 0, uintptr(level), _D3D10_1_SDK_VERSION, uintptr(unsafe.Pointer(&obj)))
	} else {
		hr, _, _ = c.proc.Call(nativeAdapter(a), d3d10DriverType(dt), 0, 0, _D3D10_SDK_VERSION, uintptr(unsafe.Pointer(&obj)))
	}
	if err := hresult(hr); err != nil {
		return nil, fmt.Errorf("%s(%v, %v): %w", c.proc.Name, dt, level, err)
	}
	if c.minor {
		return &device10{obj: obj, version: driver.D3D10_1}, nil
	}
	return &device10{obj: obj, version: driver.D3D10}, nil
}

type device11Creator struct {
	proc *windows.LazyProc
}

// CreateDevice passes exactly one level. With an adapter the driver type
// has to be D3D_DRIVER_TYPE_UNKNOWN.
func (c *device11Creator) CreateDevice(a driver.Adapter, dt driver.DriverType, level driver.FeatureLevel) (driver.Device, error) {
	if c.proc == nil {
		return nil, errNoProc
	}
	pa := nativeAdapter(a)
	if pa != 0 {
		dt = driver.DriverUnknown
	}
	var (
		obj *iD3D11Device
		got driver.FeatureLevel
	)
	hr, _, _ := c.proc.Call(
		pa,
		uintptr(dt),
		0, // Software
		0, // Flags
		uintptr(unsafe.Pointer(&level)),
		1,
		_D3D11_SDK_VERSION,
		uintptr(unsafe.Pointer(&obj)),
		uintptr(unsafe.Pointer(&got)),
		0, // ppImmediateContext
	)
	if err := hresult(hr); err != nil {
		return nil, fmt.Errorf("%s(%v, %v): %w", c.proc.Name, dt, level, err)
	}
	return &device11{obj: obj, version: driver.D3D11}, nil
}

type iD3D10Device struct {
	vtbl *iD3D10DeviceVtbl
}

type device10 struct {
	obj     *iD3D10Device
	version driver.DeviceVersion
}

func (d *device10) ptr() uintptr { return uintptr(unsafe.Pointer(d.obj)) }

func (d *device10) Version() driver.DeviceVersion { return d.version }

// FeatureLevel is always 10_0 on a plain ID3D10Device.
func (d *device10) FeatureLevel() driver.FeatureLevel {
	if d.version == driver.D3D10 {
		return driver.Level10_0
	}
	r, _, _ := syscall.SyscallN(d.obj.vtbl[d3d10GetFeatureLevel], d.ptr())
	return driver.FeatureLevel(uint32(r))
}

func (d *device10) CheckFormatSupport(f driver.Format) (driver.FormatSupport, error) {
	var out uint32
	hr, _, _ := syscall.SyscallN(d.obj.vtbl[d3d10CheckFormatSupport], d.ptr(), uintptr(f), uintptr(unsafe.Pointer(&out)))
	if err := hresult(hr); err != nil {
		return 0, err
	}
	return driver.FormatSupport(out), nil
}

func (d *device10) CheckFormatSupport2(driver.Format) (driver.FormatSupport2, error) {
	return 0, driver.ErrUnsupported
}

func (d *device10) CheckMultisampleQualityLevels(f driver.Format, samples uint32) (uint32, error) {
	var out uint32
	hr, _, _ := syscall.SyscallN(d.obj.vtbl[d3d10CheckMultisampleQualityLevels], d.ptr(), uintptr(f), uintptr(samples), uintptr(unsafe.Pointer(&out)))
	if err := hresult(hr); err != nil {
		return 0, err
	}
	return out, nil
}

func (d *device10) CheckFeatureSupport(driver.FeatureData) error {
	return driver.ErrUnsupported
}

// Upgrade on a 10.1 device hands out its plain ID3D10Device.
func (d *device10) Upgrade(v driver.DeviceVersion) (driver.Device, error) {
	var iid *windows.GUID
	switch v {
	case driver.D3D10:
		iid = &iid_ID3D10Device
	case driver.D3D10_1:
		iid = &iid_ID3D10Device1
	default:
		return nil, fmt.Errorf("%v to %v: %w", d.version, v, driver.ErrNoInterface)
	}
	var obj *iD3D10Device
	if err := unknown(unsafe.Pointer(d.obj)).queryInterface(iid, unsafe.Pointer(&obj)); err != nil {
		return nil, fmt.Errorf("%v to %v: %w", d.version, v, driver.ErrNoInterface)
	}
	return &device10{obj: obj, version: v}, nil
}

func (d *device10) Release() {
	if d.obj != nil {
		unknown(unsafe.Pointer(d.obj)).release()
		d.obj = nil
	}
}

type iD3D11Device struct {
	vtbl *iD3D11DeviceVtbl
}

type device11 struct {
	obj     *iD3D11Device
	version driver.DeviceVersion
}

func (d *device11) ptr() uintptr { return uintptr(unsafe.Pointer(d.obj)) }

func (d *device11) Version() driver.DeviceVersion { return d.version }

func (d *device11) FeatureLevel() driver.FeatureLevel {
	r, _, _ := syscall.SyscallN(d.obj.vtbl.GetFeatureLevel, d.ptr())
	return driver.FeatureLevel(uint32(r))
}

func (d *device11) CheckFormatSupport(f driver.Format) (driver.FormatSupport, error) {
	var out uint32
	hr, _, _ := syscall.SyscallN(d.obj.vtbl.CheckFormatSupport, d.ptr(), uintptr(f), uintptr(unsafe.Pointer(&out)))
	if err := hresult(hr); err != nil {
		return 0, err
	}
	return driver.FormatSupport(out), nil
}

// CheckFormatSupport2 goes through D3D11_FEATURE_FORMAT_SUPPORT2.
func (d *device11) CheckFormatSupport2(f driver.Format) (driver.FormatSupport2, error) {
	data := _D3D11_FEATURE_DATA_FORMAT_SUPPORT{InFormat: uint32(f)}
	if err := d.checkFeature(driver.FeatureFormatSupport2, unsafe.Pointer(&data), unsafe.Sizeof(data)); err != nil {
		return 0, err
	}
	return driver.FormatSupport2(data.OutFormatSupport), nil
}

func (d *device11) CheckMultisampleQualityLevels(f driver.Format, samples uint32) (uint32, error) {
	var out uint32
	hr, _, _ := syscall.SyscallN(d.obj.vtbl.CheckMultisampleQualityLevels, d.ptr(), uintptr(f), uintptr(samples), uintptr(unsafe.Pointer(&out)))
	if err := hresult(hr); err != nil {
		return 0, err
	}
	return out, nil
}

// CheckFeatureSupport hands the typed structure behind data to the
// driver as is; the driver layouts match field for field.
func (d *device11) CheckFeatureSupport(data driver.FeatureData) error {
	if data == nil {
		return driver.E_INVALIDARG
	}
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return fmt.Errorf("feature %d: %w", data.Feature(), driver.E_INVALIDARG)
	}
	return d.checkFeature(data.Feature(), v.UnsafePointer(), v.Elem().Type().Size())
}

func (d *device11) checkFeature(f driver.Feature, p unsafe.Pointer, size uintptr) error {
	hr, _, _ := syscall.SyscallN(d.obj.vtbl.CheckFeatureSupport, d.ptr(), uintptr(f), uintptr(p), size)
	return hresult(hr)
}

func (d *device11) Upgrade(v driver.DeviceVersion) (driver.Device, error) {
	var iid *windows.GUID
	switch v {
	case driver.D3D11:
		iid = &iid_ID3D11Device
	case driver.D3D11_1:
		iid = &iid_ID3D11Device1
	case driver.D3D11_2:
		iid = &iid_ID3D11Device2
	case driver.D3D11_3:
		iid = &iid_ID3D11Device3
	default:
		return nil, fmt.Errorf("%v to %v: %w", d.version, v, driver.ErrNoInterface)
	}
	var obj *iD3D11Device
	if err := unknown(unsafe.Pointer(d.obj)).queryInterface(iid, unsafe.Pointer(&obj)); err != nil {
		return nil, fmt.Errorf("%v to %v: %w", d.version, v, driver.ErrNoInterface)
	}
	return &device11{obj: obj, version: v}, nil
}

func (d *device11) Release() {
	if d.obj != nil {
		unknown(unsafe.Pointer(d.obj)).release()
		d.obj = nil
	}
}

var (
	_ driver.Host    = (*Host)(nil)
	_ driver.Device  = (*device10)(nil)
	_ driver.Device  = (*device11)(nil)
	_ driver.Factory = (*factory)(nil)
	_ driver.Adapter = (*adapter)(nil)
	_ driver.Output  = (*output)(nil)
)
