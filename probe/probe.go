// Package probe finds the feature levels a device can be created at and
// keeps one device per (adapter, generation, driver type) for queries.
package probe

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kirides/dxcaps/adapters"
	"github.com/kirides/dxcaps/driver"
	"github.com/kirides/dxcaps/loader"
)

// ErrDriverType is returned for a driver type that does not match the
// adapter argument: hardware needs an adapter, WARP and REF must not
// have one.
var ErrDriverType = errors.New("driver type does not match adapter")

// Context is one negotiated device interface at the highest achieved
// level. The prober owns Device.
type Context struct {
	Version    driver.DeviceVersion
	Level      driver.FeatureLevel
	DriverType driver.DriverType
	Device     driver.Device
	// Factory is the DXGI version the runtime loaded.
	Factory driver.FactoryVersion
	// Levels is every level the probe achieved.
	Levels driver.LevelMask
}

// Result of one probe. Contexts are ordered newest interface first.
type Result struct {
	Levels   driver.LevelMask
	Contexts []*Context
}

// Context returns the context negotiated for v, or nil.
func (r Result) Context(v driver.DeviceVersion) *Context {
	for _, c := range r.Contexts {
		if c.Version == v {
			return c
		}
	}
	return nil
}

// Newest returns the newest interface context, or nil.
func (r Result) Newest() *Context {
	if len(r.Contexts) == 0 {
		return nil
	}
	return r.Contexts[0]
}

type key struct {
	adapter    driver.Adapter
	generation driver.Generation
	driverType driver.DriverType
}

// Prober memoizes probe results and owns every retained device.
type Prober struct {
	rt       *loader.Runtime
	memo     map[key]Result
	retained []driver.Device
	leaked   int
	log      zerolog.Logger
}

type Option func(*Prober)

func WithLogger(l zerolog.Logger) Option {
	return func(p *Prober) { p.log = l }
}

func New(rt *loader.Runtime, opts ...Option) *Prober {
	p := &Prober{rt: rt, memo: make(map[key]Result), log: zerolog.Nop()}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Candidates returns the levels probed for g, highest first. The
// 10level9 levels of the D3D10.1 API need DXGI 1.1.
func (p *Prober) Candidates(g driver.Generation) []driver.FeatureLevel {
	if g == driver.Generation11 {
		return driver.Ladder11
	}
	if p.rt.Device10 == nil || !p.rt.Device10.Minor() {
		return []driver.FeatureLevel{driver.Level10_0}
	}
	if p.rt.FactoryVersion() < driver.Factory1_1 {
		return []driver.FeatureLevel{driver.Level10_1, driver.Level10_0}
	}
	return driver.Ladder10
}

type createFunc func(a driver.Adapter, dt driver.DriverType, l driver.FeatureLevel) (driver.Device, error)

func (p *Prober) creator(g driver.Generation) createFunc {
	if g == driver.Generation10 {
		if p.rt.Device10 == nil {
			return nil
		}
		return p.rt.Device10.CreateDevice
	}
	if p.rt.Device11 == nil {
		return nil
	}
	return p.rt.Device11.CreateDevice
}

// Probe probes a on generation g with driver type dt. WARP and REF are
// probed with a nil adapter. A generation whose runtime is missing
// yields an empty result.
func (p *Prober) Probe(a *adapters.Adapter, g driver.Generation, dt driver.DriverType) (Result, error) {
	var (
		handle driver.Adapter
		vendor uint32
	)
	if a != nil {
		handle, vendor = a.Handle, a.Desc.VendorID
	}
	if (dt == driver.DriverHardware) != (handle != nil) {
		return Result{}, fmt.Errorf("probe %s on %s: %w", g, dt, ErrDriverType)
	}

	k := key{adapter: handle, generation: g, driverType: dt}
	if r, ok := p.memo[k]; ok {
		return r, nil
	}
	r := p.probe(handle, vendor, g, dt)
	p.memo[k] = r
	return r, nil
}

func (p *Prober) probe(a driver.Adapter, vendor uint32, g driver.Generation, dt driver.DriverType) Result {
	create := p.creator(g)
	if create == nil {
		return Result{}
	}
	log := p.log.With().Stringer("generation", g).Stringer("driver", dt).Logger()

	// Intel drivers crash when a D3D11 probe device is released.
	leak := g == driver.Generation11 && dt == driver.DriverHardware && vendor == adapters.VendorIntel

	var mask driver.LevelMask
	for _, l := range p.Candidates(g) {
		dev, err := create(a, dt, l)
		if err != nil {
			log.Debug().Err(err).Stringer("level", l).Msg("level not achieved")
			continue
		}
		mask |= l.Mask()
		if leak {
			p.leaked++
			log.Warn().Stringer("level", l).Msg("leaking probe device")
			continue
		}
		dev.Release()
	}

	top, ok := mask.Highest()
	if !ok {
		return Result{}
	}
	dev, err := create(a, dt, top)
	if err != nil {
		log.Warn().Err(err).Stringer("level", top).Msg("could not recreate device at highest level")
		return Result{Levels: mask}
	}
	r := Result{Levels: mask, Contexts: p.negotiate(dev, top, dt, mask, log)}
	log.Debug().Stringer("levels", mask).Int("contexts", len(r.Contexts)).Msg("probed")
	return r
}

// negotiate upgrades the retained device to every newer interface it
// supports. The returned contexts are newest first.
func (p *Prober) negotiate(dev driver.Device, level driver.FeatureLevel, dt driver.DriverType, mask driver.LevelMask, log zerolog.Logger) []*Context {
	newContext := func(d driver.Device) *Context {
		p.retained = append(p.retained, d)
		return &Context{
			Version:    d.Version(),
			Level:      level,
			DriverType: dt,
			Device:     d,
			Factory:    p.rt.FactoryVersion(),
			Levels:     mask,
		}
	}

	base := newContext(dev)
	if base.Version.Generation() == driver.Generation10 {
		if base.Version != driver.D3D10_1 || level < driver.Level10_0 {
			return []*Context{base}
		}
		up, err := dev.Upgrade(driver.D3D10)
		if err != nil {
			log.Debug().Err(err).Msg("no Direct3D 10 interface")
			return []*Context{base}
		}
		return []*Context{base, newContext(up)}
	}

	out := []*Context{base}
	for _, v := range []driver.DeviceVersion{driver.D3D11_1, driver.D3D11_2, driver.D3D11_3} {
		up, err := dev.Upgrade(v)
		if err != nil {
			log.Debug().Err(err).Stringer("version", v).Msg("interface not available")
			continue
		}
		out = append([]*Context{newContext(up)}, out...)
	}
	return out
}

// Leaked returns how many probe devices were deliberately not released.
func (p *Prober) Leaked() int { return p.leaked }

// Close releases every retained device, newest first, and forgets all
// results.
func (p *Prober) Close() {
	for i := len(p.retained) - 1; i >= 0; i-- {
		p.retained[i].Release()
	}
	p.retained = nil
	p.memo = make(map[key]Result)
}
