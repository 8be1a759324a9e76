package captree

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kirides/dxcaps/adapters"
	"github.com/kirides/dxcaps/driver"
	"github.com/kirides/dxcaps/fields"
	"github.com/kirides/dxcaps/loader"
	"github.com/kirides/dxcaps/probe"
)

const (
	RootLabel       = "DXGI Devices"
	OutputsLabel    = "Outputs"
	ModesLabel      = "Display Modes"
	WARPLabel       = "Windows Advanced Rasterization Platform (WARP)"
	ReferenceLabel  = "Reference"
	AdditionalLabel = "Additional Feature Levels"
)

// Tree is a built capability tree. It owns the enumerated adapter and
// output handles; devices stay with the prober.
type Tree struct {
	Root *Node

	adapters []*adapters.Adapter
	outputs  []*adapters.Output
}

// Close releases the outputs and adapters the tree holds. The tree must
// be closed before the prober and the runtime.
func (t *Tree) Close() {
	for _, o := range t.outputs {
		o.Release()
	}
	for _, a := range t.adapters {
		a.Release()
	}
	t.outputs, t.adapters = nil, nil
}

type options struct {
	warp      bool
	reference bool
	log       zerolog.Logger
}

type Option func(*options)

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithWARP toggles the software rasterizer subtree.
func WithWARP(on bool) Option {
	return func(o *options) { o.warp = on }
}

// WithReference toggles the reference rasterizer subtree.
func WithReference(on bool) Option {
	return func(o *options) { o.reference = on }
}

type builder struct {
	rt     *loader.Runtime
	prober *probe.Prober
	log    zerolog.Logger
}

// Build enumerates every adapter of e, probes it on both generations
// and lays out the tree. Probing creates devices but no capability is
// queried until a node's table is asked for.
func Build(rt *loader.Runtime, p *probe.Prober, e *adapters.Enumerator, opts ...Option) (*Tree, error) {
	o := options{warp: true, reference: true, log: zerolog.Nop()}
	for _, fn := range opts {
		fn(&o)
	}
	b := &builder{rt: rt, prober: p, log: o.log}

	list := e.All()
	tree := &Tree{Root: folder(RootLabel), adapters: list}

	for _, a := range list {
		n, outs, err := b.adapter(a)
		tree.outputs = append(tree.outputs, outs...)
		if err != nil {
			tree.Close()
			return nil, err
		}
		tree.Root.add(n)
	}

	if o.warp {
		n, err := b.software(WARPLabel, driver.DriverWARP)
		if err != nil {
			tree.Close()
			return nil, err
		}
		if n != nil {
			tree.Root.add(n)
		}
	}
	if o.reference {
		n, err := b.software(ReferenceLabel, driver.DriverReference)
		if err != nil {
			tree.Close()
			return nil, err
		}
		if n != nil {
			tree.Root.add(n)
		}
	}
	return tree, nil
}

func (b *builder) adapter(a *adapters.Adapter) (*Node, []*adapters.Output, error) {
	desc := a.Desc
	n := leaf(a.Label(), func(fields.View) fields.Table { return adapters.AdapterTable(desc) })

	outs, err := a.Outputs().All()
	if err != nil {
		// a broken output does not hide the adapter
		b.log.Warn().Err(err).Str("adapter", a.Label()).Msg("output enumeration stopped")
	}
	if len(outs) > 0 {
		group := folder(OutputsLabel)
		for _, o := range outs {
			group.add(output(o))
		}
		n.add(group)
	}

	gens, err := b.generations(a, driver.DriverHardware)
	if err != nil {
		return nil, outs, err
	}
	n.add(gens...)
	b.log.Debug().Str("adapter", a.Label()).Int("outputs", len(outs)).Int("interfaces", len(gens)).Msg("adapter added")
	return n, outs, nil
}

func output(o *adapters.Output) *Node {
	desc := o.Desc
	n := leaf(o.Label(), func(fields.View) fields.Table { return adapters.OutputTable(desc) })
	return n.add(leaf(ModesLabel, func(fields.View) fields.Table { return adapters.ModesTable(o.Modes()) }))
}

// software builds a WARP or REF subtree. Those drivers are not tied to
// an enumerated adapter, so they hang from the root. A driver that
// could not be created at any level yields no node.
func (b *builder) software(label string, dt driver.DriverType) (*Node, error) {
	gens, err := b.generations(nil, dt)
	if err != nil || len(gens) == 0 {
		return nil, err
	}
	return folder(label, gens...), nil
}

// generations probes a on Direct3D 11 and 10 and returns one node per
// negotiated interface, newest first.
func (b *builder) generations(a *adapters.Adapter, dt driver.DriverType) ([]*Node, error) {
	var out []*Node
	for _, g := range []driver.Generation{driver.Generation11, driver.Generation10} {
		if !b.rt.Has(g) {
			continue
		}
		r, err := b.prober.Probe(a, g, dt)
		if err != nil {
			return nil, fmt.Errorf("probe %s: %w", g, err)
		}
		for _, ctx := range r.Contexts {
			out = append(out, b.device(ctx))
		}
	}
	return out, nil
}
