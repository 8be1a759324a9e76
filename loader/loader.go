// Package loader resolves the DXGI and Direct3D entry points available on
// this machine. Every endpoint is optional; callers branch on presence.
package loader

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kirides/dxcaps/driver"
)

// ErrNoRuntime means no device-creation entry point resolved at all.
var ErrNoRuntime = errors.New("no devices found")

const (
	libDXGI    = "dxgi.dll"
	libD3D10_1 = "d3d10_1.dll"
	libD3D10   = "d3d10.dll"
	libD3D11   = "d3d11.dll"
)

// Runtime holds the resolved endpoints and owns the library handles.
type Runtime struct {
	// Factory is nil when dxgi.dll or all of its factory entry points
	// are unavailable.
	Factory driver.Factory
	// Device10 wraps D3D10CreateDevice1, or D3D10CreateDevice when
	// only the baseline library exists.
	Device10 driver.Device10Creator
	Device11 driver.Device11Creator

	libs []driver.Library
	log  zerolog.Logger
}

type Option func(*Runtime)

func WithLogger(l zerolog.Logger) Option {
	return func(r *Runtime) { r.log = l }
}

// Load resolves all endpoints through host. It fails only with
// ErrNoRuntime; a missing factory or generation is not an error.
func Load(host driver.Host, opts ...Option) (*Runtime, error) {
	r := &Runtime{log: zerolog.Nop()}
	for _, o := range opts {
		o(r)
	}

	r.loadDXGI(host)
	r.loadD3D10(host)
	r.loadD3D11(host)

	if r.Device10 == nil && r.Device11 == nil {
		_ = r.Close()
		return nil, ErrNoRuntime
	}
	r.log.Debug().
		Stringer("dxgi", r.FactoryVersion()).
		Bool("d3d10", r.Device10 != nil).
		Bool("d3d10_1", r.Device10 != nil && r.Device10.Minor()).
		Bool("d3d11", r.Device11 != nil).
		Msg("runtime loaded")
	return r, nil
}

// FactoryVersion reports which DXGI interface was obtained.
func (r *Runtime) FactoryVersion() driver.FactoryVersion {
	if r.Factory == nil {
		return driver.FactoryNone
	}
	return r.Factory.Version()
}

// Has reports whether the device-creation endpoint for g resolved.
func (r *Runtime) Has(g driver.Generation) bool {
	if g == driver.Generation10 {
		return r.Device10 != nil
	}
	return r.Device11 != nil
}

func (r *Runtime) open(host driver.Host, name string) (driver.Library, bool) {
	lib, err := host.LoadLibrary(name)
	if err != nil {
		r.log.Debug().Err(err).Str("library", name).Msg("library not available")
		return nil, false
	}
	r.libs = append(r.libs, lib)
	return lib, true
}

// loadDXGI stops at the first factory entry point present. The only
// fallback after a failed creation is from CreateDXGIFactory2 to
// CreateDXGIFactory1.
func (r *Runtime) loadDXGI(host driver.Host) {
	lib, ok := r.open(host, libDXGI)
	if !ok {
		return
	}

	if p, ok := lib.Proc("CreateDXGIFactory2"); ok {
		if r.createFactory(host, p, driver.Factory1_3) {
			return
		}
	}
	if p, ok := lib.Proc("CreateDXGIFactory1"); ok {
		if !r.createFactory(host, p, driver.Factory1_2) {
			r.createFactory(host, p, driver.Factory1_1)
		}
		return
	}
	if p, ok := lib.Proc("CreateDXGIFactory"); ok {
		r.createFactory(host, p, driver.Factory1_0)
	}
}

func (r *Runtime) createFactory(host driver.Host, p driver.Proc, want driver.FactoryVersion) bool {
	f, err := host.NewFactory(p, want)
	if err != nil {
		r.log.Debug().Err(err).Str("entry", p.Name()).Stringer("want", want).Msg("factory creation failed")
		return false
	}
	r.Factory = f
	return true
}

func (r *Runtime) loadD3D10(host driver.Host) {
	if lib, ok := r.open(host, libD3D10_1); ok {
		if p, ok := lib.Proc("D3D10CreateDevice1"); ok {
			r.Device10 = host.NewDevice10Creator(p, true)
		}
		return
	}
	if lib, ok := r.open(host, libD3D10); ok {
		if p, ok := lib.Proc("D3D10CreateDevice"); ok {
			r.Device10 = host.NewDevice10Creator(p, false)
		}
	}
}

func (r *Runtime) loadD3D11(host driver.Host) {
	if lib, ok := r.open(host, libD3D11); ok {
		if p, ok := lib.Proc("D3D11CreateDevice"); ok {
			r.Device11 = host.NewDevice11Creator(p)
		}
	}
}

// Close releases the factory and unloads the libraries in reverse order.
func (r *Runtime) Close() error {
	if r.Factory != nil {
		r.Factory.Release()
		r.Factory = nil
	}
	var errs []error
	for i := len(r.libs) - 1; i >= 0; i-- {
		if err := r.libs[i].Close(); err != nil {
			errs = append(errs, fmt.Errorf("unload %s: %w", r.libs[i].Name(), err))
		}
	}
	r.libs = nil
	r.Device10, r.Device11 = nil, nil
	return errors.Join(errs...)
}
