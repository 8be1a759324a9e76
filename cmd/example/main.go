package main

import (
	"errors"
	"os"
	"runtime"

	"github.com/kirides/dxcaps/adapters"
	"github.com/kirides/dxcaps/capability"
	"github.com/kirides/dxcaps/d3d"
	"github.com/kirides/dxcaps/driver"
	"github.com/kirides/dxcaps/fields"
	"github.com/kirides/dxcaps/loader"
	"github.com/kirides/dxcaps/logger"
	"github.com/kirides/dxcaps/probe"
	"github.com/kirides/dxcaps/win"
)

func main() {
	_ = logger.Init(logger.Config{Level: "debug", Console: logger.Bool(true)})
	log := logger.WithComponent("example")

	// Keep this thread, so windows/d3d11/dxgi can use their threadlocal caches, if any
	runtime.LockOSThread()

	if ok, err := win.PerMonitorDPI(); err != nil {
		log.Warn().Err(err).Msg("could not set thread DPI awareness to PerMonitorAwareV2")
	} else if ok {
		log.Info().Msg("enabled PerMonitorAwareV2 DPI awareness")
	}

	rt, err := loader.Load(d3d.NewHost(), loader.WithLogger(logger.WithComponent("loader")))
	if errors.Is(err, loader.ErrNoRuntime) {
		log.Warn().Msg("no devices found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("load runtime")
		os.Exit(1)
	}
	defer rt.Close()

	prober := probe.New(rt, probe.WithLogger(logger.WithComponent("probe")))
	defer prober.Close()

	list := adapters.NewEnumerator(rt, adapters.WithLogger(logger.WithComponent("adapters"))).All()
	defer func() {
		for _, a := range list {
			a.Release()
		}
	}()

	for _, a := range list {
		for _, g := range []driver.Generation{driver.Generation11, driver.Generation10} {
			if !rt.Has(g) {
				continue
			}
			res, err := prober.Probe(a, g, driver.DriverHardware)
			if err != nil {
				log.Error().Err(err).Msg("probe")
				continue
			}
			ev := log.Info().
				Str("adapter", a.Label()).
				Stringer("api", g).
				Stringer("levels", res.Levels)
			if ctx := res.Newest(); ctx != nil {
				caps := capability.Resolve(ctx, ctx.Level, fields.ViewInteresting)
				if row, ok := caps.Lookup("Shader Model"); ok {
					ev = ev.Str("shader_model", row.Value())
				}
				ev = ev.Stringer("interface", ctx.Version)
			}
			ev.Msg("achieved")
		}
	}
}
