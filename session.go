package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kirides/dxcaps/adapters"
	"github.com/kirides/dxcaps/captree"
	"github.com/kirides/dxcaps/config"
	"github.com/kirides/dxcaps/driver"
	"github.com/kirides/dxcaps/loader"
	"github.com/kirides/dxcaps/logger"
	"github.com/kirides/dxcaps/probe"
	"github.com/kirides/dxcaps/viewer"
	"github.com/kirides/dxcaps/win"
)

// session owns everything that talks to the driver. All of it lives on
// one worker thread, from loading to teardown.
type session struct {
	worker   *viewer.Worker
	rt       *loader.Runtime
	prober   *probe.Prober
	tree     *captree.Tree
	adapters []*adapters.Adapter
	log      zerolog.Logger
}

// openSession loads the runtime. It fails with loader.ErrNoRuntime when
// neither Direct3D generation is present.
func openSession(ctx context.Context, host driver.Host, log zerolog.Logger) (*session, error) {
	s := &session{worker: viewer.NewWorker(), log: log}

	var err error
	doErr := s.worker.Do(ctx, func() {
		// Make thread PerMonitorV2 Dpi aware if supported on OS
		if ok, derr := win.PerMonitorDPI(); derr != nil {
			log.Warn().Err(derr).Msg("could not set thread DPI awareness")
		} else if ok {
			log.Debug().Msg("enabled PerMonitorAwareV2 DPI awareness")
		}

		s.rt, err = loader.Load(host, loader.WithLogger(logger.WithComponent("loader")))
		if err != nil {
			return
		}
		s.prober = probe.New(s.rt, probe.WithLogger(logger.WithComponent("probe")))
	})
	if err == nil {
		err = doErr
	}
	if err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// do runs fn on the driver thread.
func (s *session) do(ctx context.Context, fn func() error) error {
	var err error
	if doErr := s.worker.Do(ctx, func() { err = fn() }); doErr != nil {
		return doErr
	}
	return err
}

func (s *session) buildTree(ctx context.Context, cfg config.Config) (*captree.Node, error) {
	err := s.do(ctx, func() error {
		t, err := captree.Build(s.rt, s.prober, adapters.NewEnumerator(s.rt, adapters.WithLogger(logger.WithComponent("adapters"))),
			captree.WithLogger(logger.WithComponent("captree")),
			captree.WithWARP(cfg.ProbeWARP()),
			captree.WithReference(cfg.ProbeReference()),
		)
		if err != nil {
			return err
		}
		s.tree = t
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("build tree: %w", err)
	}
	return s.tree.Root, nil
}

// Close tears down in dependency order: tree, prober, adapters, runtime.
func (s *session) Close() {
	_ = s.worker.Do(context.Background(), func() {
		if s.tree != nil {
			s.tree.Close()
			s.tree = nil
		}
		if s.prober != nil {
			if n := s.prober.Leaked(); n > 0 {
				s.log.Debug().Int("devices", n).Msg("probe devices leaked")
			}
			s.prober.Close()
			s.prober = nil
		}
		for _, a := range s.adapters {
			a.Release()
		}
		s.adapters = nil
		if s.rt != nil {
			if err := s.rt.Close(); err != nil {
				s.log.Warn().Err(err).Msg("unload runtime")
			}
			s.rt = nil
		}
	})
	s.worker.Close()
}
