//go:build !windows

package win

// PerMonitorDPI is a no-op off Windows.
func PerMonitorDPI() (bool, error) { return false, nil }
