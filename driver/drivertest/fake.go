// Package drivertest provides scriptable in-memory implementations of the
// driver interfaces for tests.
package drivertest

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/kirides/dxcaps/driver"
)

// Stats counts native-looking calls across every object created from
// the same Host or Creator.
type Stats struct {
	Created  int
	Released int
	Calls    int
}

// Live returns the number of devices not yet released.
func (s *Stats) Live() int { return s.Created - s.Released }

// FactoryKey names one CreateDXGIFactory* call.
type FactoryKey struct {
	Entry string
	Want  driver.FactoryVersion
}

// Host is a scripted driver.Host. Libraries maps a DLL name to the
// exports it carries; a name missing from the map fails to load.
type Host struct {
	Libraries     map[string][]string
	FactoryErrors map[FactoryKey]error
	Adapters      []*Adapter
	EnumErr       map[uint32]error
	Device10      *Creator
	Device11      *Creator

	FactoryCalls []FactoryKey
	Opened       []string
	Closed       []string
	Factories    []*Factory
}

func (h *Host) LoadLibrary(name string) (driver.Library, error) {
	exports, ok := h.Libraries[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("load %s: %w", name, driver.E_FAIL)
	}
	h.Opened = append(h.Opened, name)
	return &library{host: h, name: name, exports: exports}, nil
}

func (h *Host) NewFactory(p driver.Proc, want driver.FactoryVersion) (driver.Factory, error) {
	key := FactoryKey{Entry: p.Name(), Want: want}
	h.FactoryCalls = append(h.FactoryCalls, key)
	if err := h.FactoryErrors[key]; err != nil {
		return nil, err
	}
	f := &Factory{V: want, Adapters: h.Adapters, EnumErr: h.EnumErr}
	h.Factories = append(h.Factories, f)
	return f, nil
}

func (h *Host) NewDevice10Creator(p driver.Proc, minor bool) driver.Device10Creator {
	if h.Device10 == nil {
		h.Device10 = &Creator{}
	}
	h.Device10.IsMinor = minor
	return h.Device10
}

func (h *Host) NewDevice11Creator(p driver.Proc) driver.Device11Creator {
	if h.Device11 == nil {
		h.Device11 = &Creator{}
	}
	return h.Device11
}

type library struct {
	host    *Host
	name    string
	exports []string
}

type proc string

func (p proc) Name() string { return string(p) }

func (l *library) Name() string { return l.name }

func (l *library) Proc(name string) (driver.Proc, bool) {
	for _, e := range l.exports {
		if e == name {
			return proc(name), true
		}
	}
	return nil, false
}

func (l *library) Close() error {
	l.host.Closed = append(l.host.Closed, l.name)
	return nil
}

// Factory is a fake DXGI factory.
type Factory struct {
	V        driver.FactoryVersion
	Adapters []*Adapter
	// EnumErr fails EnumAdapters at the given indices.
	EnumErr  map[uint32]error
	Released bool
}

func (f *Factory) Version() driver.FactoryVersion { return f.V }

func (f *Factory) EnumAdapters(i uint32) (driver.Adapter, error) {
	if err := f.EnumErr[i]; err != nil {
		return nil, err
	}
	if int(i) >= len(f.Adapters) {
		return nil, driver.DXGI_ERROR_NOT_FOUND
	}
	a := f.Adapters[i]
	a.limit = descLevel(f.V)
	return a, nil
}

func (f *Factory) Release() { f.Released = true }

func descLevel(v driver.FactoryVersion) int {
	switch {
	case v >= driver.Factory1_2:
		return 2
	case v == driver.Factory1_1:
		return 1
	}
	return 0
}

// Adapter is a fake adapter. Desc is trimmed to what the enumerating
// factory version could have returned.
type Adapter struct {
	D        driver.AdapterDesc
	Outputs  []*Output
	DescErr  error
	Released int

	limit int
}

func (a *Adapter) Desc() (driver.AdapterDesc, error) {
	if a.DescErr != nil {
		return driver.AdapterDesc{}, a.DescErr
	}
	d := a.D
	if d.Level > a.limit {
		d.Level = a.limit
	}
	if d.Level < 2 {
		d.GraphicsPreemption, d.ComputePreemption = 0, 0
	}
	if d.Level < 1 {
		d.Flags = 0
	}
	return d, nil
}

func (a *Adapter) EnumOutputs(i uint32) (driver.Output, error) {
	if int(i) >= len(a.Outputs) {
		return nil, driver.DXGI_ERROR_NOT_FOUND
	}
	return a.Outputs[i], nil
}

func (a *Adapter) Release() { a.Released++ }

// Output is a fake display output.
type Output struct {
	D        driver.OutputDesc
	Modes    map[driver.Format][]driver.ModeDesc
	Queried  []driver.Format
	Released int
}

func (o *Output) Desc() (driver.OutputDesc, error) { return o.D, nil }

func (o *Output) DisplayModes(f driver.Format) ([]driver.ModeDesc, error) {
	o.Queried = append(o.Queried, f)
	return o.Modes[f], nil
}

func (o *Output) Release() { o.Released++ }

// Caps holds the answers a fake device gives. Devices upgraded from one
// another share it.
type Caps struct {
	Support  map[driver.Format]driver.FormatSupport
	Support2 map[driver.Format]driver.FormatSupport2
	Quality  map[driver.Format]map[uint32]uint32
	// Features holds pointers to filled result structures.
	Features map[driver.Feature]driver.FeatureData
	// Fail makes a feature query return E_FAIL after copying whatever
	// Features holds for it, like a driver that scribbles on failure.
	Fail map[driver.Feature]bool
	// NoInterface refuses Upgrade to these versions below MaxVersion.
	NoInterface map[driver.DeviceVersion]bool
}

// Device is a fake device interface.
type Device struct {
	V     driver.DeviceVersion
	Level driver.FeatureLevel
	// MaxVersion bounds Upgrade.
	MaxVersion driver.DeviceVersion
	Caps       *Caps
	Stats      *Stats
	Released   bool
}

func (d *Device) call() {
	if d.Stats != nil {
		d.Stats.Calls++
	}
}

func (d *Device) caps() *Caps {
	if d.Caps == nil {
		return &Caps{}
	}
	return d.Caps
}

func (d *Device) Version() driver.DeviceVersion { return d.V }

func (d *Device) FeatureLevel() driver.FeatureLevel { return d.Level }

func (d *Device) CheckFormatSupport(f driver.Format) (driver.FormatSupport, error) {
	d.call()
	s, ok := d.caps().Support[f]
	if !ok {
		return 0, driver.E_FAIL
	}
	return s, nil
}

func (d *Device) CheckFormatSupport2(f driver.Format) (driver.FormatSupport2, error) {
	if !d.V.HasFeatureQueries() {
		return 0, driver.ErrUnsupported
	}
	d.call()
	s, ok := d.caps().Support2[f]
	if !ok {
		return 0, driver.E_FAIL
	}
	return s, nil
}

func (d *Device) CheckMultisampleQualityLevels(f driver.Format, samples uint32) (uint32, error) {
	d.call()
	return d.caps().Quality[f][samples], nil
}

func (d *Device) CheckFeatureSupport(data driver.FeatureData) error {
	if !d.V.HasFeatureQueries() {
		return driver.ErrUnsupported
	}
	d.call()
	c := d.caps()
	src, ok := c.Features[data.Feature()]
	if ok {
		reflect.ValueOf(data).Elem().Set(reflect.ValueOf(src).Elem())
	}
	if c.Fail[data.Feature()] {
		return driver.E_FAIL
	}
	if !ok {
		return driver.E_INVALIDARG
	}
	return nil
}

func (d *Device) Upgrade(v driver.DeviceVersion) (driver.Device, error) {
	d.call()
	if v > d.MaxVersion || v.Generation() != d.V.Generation() || d.caps().NoInterface[v] {
		return nil, driver.E_NOINTERFACE
	}
	if d.Stats != nil {
		d.Stats.Created++
	}
	return &Device{V: v, Level: d.Level, MaxVersion: d.MaxVersion, Caps: d.Caps, Stats: d.Stats}, nil
}

func (d *Device) Release() {
	if d.Released {
		panic("drivertest: device released twice")
	}
	d.Released = true
	if d.Stats != nil {
		d.Stats.Released++
	}
}

// Attempt records one CreateDevice call.
type Attempt struct {
	Adapter    driver.Adapter
	DriverType driver.DriverType
	Level      driver.FeatureLevel
}

// Creator implements both creator interfaces. Achievable lists the
// levels creation succeeds at, per driver type; a missing driver type
// uses Default.
type Creator struct {
	IsMinor    bool
	Version    driver.DeviceVersion
	MaxVersion driver.DeviceVersion
	Default    driver.LevelMask
	Achievable map[driver.DriverType]driver.LevelMask
	Caps       *Caps
	Stats      Stats

	Attempts []Attempt
	Devices  []*Device
}

func (c *Creator) Minor() bool { return c.IsMinor }

func (c *Creator) CreateDevice(a driver.Adapter, dt driver.DriverType, level driver.FeatureLevel) (driver.Device, error) {
	if c.Version.Generation() == driver.Generation10 && !c.IsMinor {
		level = driver.Level10_0
	}
	c.Attempts = append(c.Attempts, Attempt{Adapter: a, DriverType: dt, Level: level})
	mask, ok := c.Achievable[dt]
	if !ok {
		mask = c.Default
	}
	if !mask.Has(level) {
		return nil, driver.E_INVALIDARG
	}
	max := c.MaxVersion
	if max < c.Version {
		max = c.Version
	}
	c.Stats.Created++
	d := &Device{V: c.Version, Level: level, MaxVersion: max, Caps: c.Caps, Stats: &c.Stats}
	c.Devices = append(c.Devices, d)
	return d, nil
}

// AttemptedLevels lists the levels tried for dt in call order.
func (c *Creator) AttemptedLevels(dt driver.DriverType) []driver.FeatureLevel {
	var out []driver.FeatureLevel
	for _, a := range c.Attempts {
		if a.DriverType == dt {
			out = append(out, a.Level)
		}
	}
	return out
}
