package win

//go:generate mkwinsyscall -output zsyscall_windows.go syscall_windows.go

const (
	DpiAwarenessContextUndefined         = 0
	DpiAwarenessContextUnaware           = -1
	DpiAwarenessContextSystemAware       = -2
	DpiAwarenessContextPerMonitorAware   = -3
	DpiAwarenessContextPerMonitorAwareV2 = -4
	DpiAwarenessContextUnawareGdiScaled  = -5
)

//sys	SetThreadDpiAwarenessContext(value int32) (n int, err error) = User32.SetThreadDpiAwarenessContext
//sys	IsValidDpiAwarenessContext(value int32) (n bool) = User32.IsValidDpiAwarenessContext

// PerMonitorDPI makes the calling thread PerMonitorV2 DPI aware when the
// OS knows that context, so output coordinates come back unscaled.
// The caller must have locked its OS thread.
func PerMonitorDPI() (bool, error) {
	if procIsValidDpiAwarenessContext.Find() != nil {
		return false, nil
	}
	if !IsValidDpiAwarenessContext(DpiAwarenessContextPerMonitorAwareV2) {
		return false, nil
	}
	if _, err := SetThreadDpiAwarenessContext(DpiAwarenessContextPerMonitorAwareV2); err != nil {
		return false, err
	}
	return true, nil
}
