//go:build !windows

// Package d3d reaches DXGI and Direct3D 10/11 through their COM vtables.
// On other platforms every library is absent, so the loader finds no
// runtime.
package d3d

import (
	"errors"
	"fmt"

	"github.com/kirides/dxcaps/driver"
)

var errNotWindows = errors.New("DXGI and Direct3D require Windows")

type Host struct{}

func NewHost() *Host { return &Host{} }

func (h *Host) LoadLibrary(name string) (driver.Library, error) {
	return nil, fmt.Errorf("load %s: %w", name, errNotWindows)
}

func (h *Host) NewFactory(driver.Proc, driver.FactoryVersion) (driver.Factory, error) {
	return nil, errNotWindows
}

func (h *Host) NewDevice10Creator(driver.Proc, bool) driver.Device10Creator { return nil }

func (h *Host) NewDevice11Creator(driver.Proc) driver.Device11Creator { return nil }

var _ driver.Host = (*Host)(nil)
