package driver

import (
	"errors"
	"strconv"
)

// Error is a failed HRESULT returned by a DXGI or Direct3D call.
type Error uint32

const (
	E_NOINTERFACE                      Error = 0x80004002
	E_FAIL                             Error = 0x80004005
	E_INVALIDARG                       Error = 0x80070057
	E_OUTOFMEMORY                      Error = 0x8007000E
	DXGI_ERROR_INVALID_CALL            Error = 0x887A0001
	DXGI_ERROR_NOT_FOUND               Error = 0x887A0002
	DXGI_ERROR_UNSUPPORTED             Error = 0x887A0004
	DXGI_ERROR_DEVICE_HUNG             Error = 0x887A0006
	DXGI_ERROR_DEVICE_REMOVED          Error = 0x887A0005
	DXGI_ERROR_NOT_CURRENTLY_AVAILABLE Error = 0x887A0022
)

func (e Error) Error() string {
	switch e {
	case E_NOINTERFACE:
		return "E_NOINTERFACE"
	case E_FAIL:
		return "E_FAIL"
	case E_INVALIDARG:
		return "E_INVALIDARG"
	case E_OUTOFMEMORY:
		return "E_OUTOFMEMORY"
	case DXGI_ERROR_INVALID_CALL:
		return "DXGI_ERROR_INVALID_CALL"
	case DXGI_ERROR_NOT_FOUND:
		return "DXGI_ERROR_NOT_FOUND"
	case DXGI_ERROR_UNSUPPORTED:
		return "DXGI_ERROR_UNSUPPORTED"
	case DXGI_ERROR_DEVICE_HUNG:
		return "DXGI_ERROR_DEVICE_HUNG"
	case DXGI_ERROR_DEVICE_REMOVED:
		return "DXGI_ERROR_DEVICE_REMOVED"
	case DXGI_ERROR_NOT_CURRENTLY_AVAILABLE:
		return "DXGI_ERROR_NOT_CURRENTLY_AVAILABLE"
	}

	return "0x" + strconv.FormatUint(uint64(e), 16)
}

// Is lets DXGI_ERROR_NOT_FOUND match ErrNotFound.
func (e Error) Is(target error) bool {
	return e == DXGI_ERROR_NOT_FOUND && target == ErrNotFound
}

// Failed reports whether hr is a failure code.
func Failed(hr uintptr) bool { return int32(hr) < 0 }

var (
	// ErrNotFound ends an adapter, output or mode enumeration.
	ErrNotFound = errors.New("not found")
	// ErrUnsupported is returned for a call the device's interface
	// version does not expose.
	ErrUnsupported = errors.New("unsupported by this interface version")
	// ErrNoInterface is returned when an upgrade to a newer interface fails.
	ErrNoInterface = errors.New("interface not available")
)
