// Package adapters walks the DXGI adapters, their outputs and display
// modes through whichever factory version the loader obtained.
package adapters

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kirides/dxcaps/driver"
	"github.com/kirides/dxcaps/loader"
)

// ErrExhausted ends an adapter or output sequence.
var ErrExhausted = errors.New("enumeration exhausted")

// Enumerator yields adapters one at a time.
type Enumerator struct {
	factory driver.Factory
	version driver.FactoryVersion
	index   uint32
	count   int
	done    bool
	log     zerolog.Logger
}

type Option func(*Enumerator)

func WithLogger(l zerolog.Logger) Option {
	return func(e *Enumerator) { e.log = l }
}

// NewEnumerator enumerates the adapters of rt's factory. Without a
// factory the sequence is empty.
func NewEnumerator(rt *loader.Runtime, opts ...Option) *Enumerator {
	e := &Enumerator{
		factory: rt.Factory,
		version: rt.FactoryVersion(),
		log:     zerolog.Nop(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Next returns the next adapter or ErrExhausted. The software adapter is
// skipped when the descriptor can tell it apart.
func (e *Enumerator) Next() (*Adapter, error) {
	if e.factory == nil || e.done {
		return nil, ErrExhausted
	}
	for {
		i := e.index
		e.index++
		h, err := e.factory.EnumAdapters(i)
		if errors.Is(err, driver.ErrNotFound) {
			e.done = true
			return nil, ErrExhausted
		}
		if err != nil {
			e.done = true
			return nil, fmt.Errorf("enum adapter %d: %w", i, err)
		}

		desc, err := h.Desc()
		if err != nil {
			e.log.Warn().Err(err).Uint32("index", i).Msg("adapter description unavailable")
			desc = driver.AdapterDesc{}
		}
		if sw, known := desc.Software(); known && sw {
			e.log.Debug().Str("adapter", desc.Description).Msg("skipping software adapter")
			h.Release()
			continue
		}

		a := &Adapter{Index: e.count, Handle: h, Desc: desc, factory: e.version}
		e.count++
		return a, nil
	}
}

// All drains the enumerator. An enumeration failure ends the list
// early; the adapters seen before it are kept.
func (e *Enumerator) All() []*Adapter {
	var out []*Adapter
	for {
		a, err := e.Next()
		if errors.Is(err, ErrExhausted) {
			return out
		}
		if err != nil {
			e.log.Warn().Err(err).Int("adapters", len(out)).Msg("adapter enumeration stopped early")
			return out
		}
		out = append(out, a)
	}
}

// Adapter is one enumerated hardware adapter.
type Adapter struct {
	Index   int
	Handle  driver.Adapter
	Desc    driver.AdapterDesc
	factory driver.FactoryVersion
}

// Label is the adapter's tree label.
func (a *Adapter) Label() string {
	if a.Desc.Description == "" {
		return fmt.Sprintf("Adapter %d", a.Index)
	}
	return a.Desc.Description
}

// Outputs starts a new output sequence for a.
func (a *Adapter) Outputs() *OutputEnumerator {
	return &OutputEnumerator{adapter: a}
}

// Release drops the adapter handle.
func (a *Adapter) Release() {
	if a.Handle != nil {
		a.Handle.Release()
		a.Handle = nil
	}
}

// OutputEnumerator yields the outputs of one adapter.
type OutputEnumerator struct {
	adapter *Adapter
	index   uint32
	done    bool
}

// Next returns the next output or ErrExhausted.
func (e *OutputEnumerator) Next() (*Output, error) {
	if e.done || e.adapter.Handle == nil {
		return nil, ErrExhausted
	}
	i := e.index
	e.index++
	h, err := e.adapter.Handle.EnumOutputs(i)
	if errors.Is(err, driver.ErrNotFound) {
		e.done = true
		return nil, ErrExhausted
	}
	if err != nil {
		e.done = true
		return nil, fmt.Errorf("enum output %d: %w", i, err)
	}
	desc, err := h.Desc()
	if err != nil {
		h.Release()
		e.done = true
		return nil, fmt.Errorf("output %d description: %w", i, err)
	}
	return &Output{Handle: h, Desc: desc, factory: e.adapter.factory}, nil
}

// All drains the output sequence.
func (e *OutputEnumerator) All() ([]*Output, error) {
	var out []*Output
	for {
		o, err := e.Next()
		if errors.Is(err, ErrExhausted) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, o)
	}
}

// Output is a display output attached to an adapter.
type Output struct {
	Handle  driver.Output
	Desc    driver.OutputDesc
	factory driver.FactoryVersion
}

// Label is the output's device name.
func (o *Output) Label() string { return o.Desc.DeviceName }

// Release drops the output handle.
func (o *Output) Release() {
	if o.Handle != nil {
		o.Handle.Release()
		o.Handle = nil
	}
}
