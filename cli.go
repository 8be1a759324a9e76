package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kirides/dxcaps/adapters"
	"github.com/kirides/dxcaps/captree"
	"github.com/kirides/dxcaps/config"
	"github.com/kirides/dxcaps/driver"
	"github.com/kirides/dxcaps/fields"
	"github.com/kirides/dxcaps/loader"
	"github.com/kirides/dxcaps/logger"
	"github.com/kirides/dxcaps/report"
	"github.com/kirides/dxcaps/viewer"
)

type app struct {
	host     driver.Host
	cfg      config.Config
	cfgPath  string
	logLevel string
	log      zerolog.Logger
}

func newRootCmd(host driver.Host) *cobra.Command {
	a := &app{host: host, cfg: config.Defaults(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "dxcaps",
		Short:         "Report DXGI adapters and Direct3D 10/11 capabilities",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "Config file (.yaml, .json or .toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug|info|warn|error")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.setup()
	}

	root.AddCommand(a.reportCmd(), a.serveCmd(), a.levelsCmd())
	return root
}

func (a *app) setup() error {
	if a.cfgPath != "" {
		fileCfg, err := config.Load(a.cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		a.cfg = fileCfg.Merge(config.Defaults())
	}
	if a.logLevel != "" {
		a.cfg.Logging.Level = a.logLevel
		a.cfg.Logging.Debug = false
	}
	if err := logger.Init(a.cfg.Logging); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.log = logger.WithComponent("dxcaps")
	return nil
}

func (a *app) reportCmd() *cobra.Command {
	var (
		all    bool
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the capability tree as text, JSON, YAML or TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("all") {
				cfg.View = fields.ViewInteresting.String()
				if all {
					cfg.View = fields.ViewAll.String()
				}
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = format
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = output
			}
			f, err := report.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}
			return a.runReport(cmd, cfg, f)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Show every field, not only the interesting ones")
	cmd.Flags().StringVar(&format, "format", "", "Output format: text|json|yaml|toml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}

func (a *app) runReport(cmd *cobra.Command, cfg config.Config, f report.Format) error {
	ctx := cmd.Context()
	view := fields.ParseView(cfg.View)
	collector := report.NewCollector(report.WithLogger(logger.WithComponent("report")))

	var r *report.Report
	s, err := openSession(ctx, a.host, a.log)
	switch {
	case errors.Is(err, loader.ErrNoRuntime):
		a.log.Warn().Msg(report.NoDevices)
		r, err = collector.Collect(ctx, captree.NewNode(captree.RootLabel, nil), view)
		if err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		defer s.Close()
		root, err := s.buildTree(ctx, cfg)
		if err != nil {
			return err
		}
		err = s.do(ctx, func() error {
			var cerr error
			r, cerr = collector.Collect(ctx, root, view)
			return cerr
		})
		if err != nil {
			return err
		}
	}

	if cfg.Output == "" {
		return report.Write(cmd.OutOrStdout(), r, f)
	}
	if err := report.WriteFile(cfg.Output, r, f); err != nil {
		return err
	}
	a.log.Info().Str("path", cfg.Output).Str("format", string(f)).Msg("report written")
	return nil
}

func (a *app) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Browse the capability tree over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			ctx := cmd.Context()
			s, err := openSession(ctx, a.host, a.log)
			if errors.Is(err, loader.ErrNoRuntime) {
				fmt.Fprintln(cmd.OutOrStdout(), report.NoDevices)
				return nil
			}
			if err != nil {
				return err
			}
			defer s.Close()

			root, err := s.buildTree(ctx, cfg)
			if err != nil {
				return err
			}
			srv := viewer.New(root, s.worker,
				viewer.WithLogger(logger.WithComponent("viewer")),
				viewer.WithView(fields.ParseView(cfg.View)),
			)
			return srv.Serve(ctx, cfg.Addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, 127.0.0.1:8089)")
	return cmd
}

func (a *app) levelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "Print the feature levels every device achieves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, a.host, a.log)
			if errors.Is(err, loader.ErrNoRuntime) {
				fmt.Fprintln(cmd.OutOrStdout(), report.NoDevices)
				return nil
			}
			if err != nil {
				return err
			}
			defer s.Close()

			var rows [][]string
			err = s.do(ctx, func() error {
				var err error
				rows, err = a.levelRows(s)
				return err
			})
			if err != nil {
				return err
			}
			return writeLevels(cmd.OutOrStdout(), rows)
		},
	}
}

// levelRows probes every adapter on every present generation, then
// WARP and REF when enabled. Must run on the session worker.
func (a *app) levelRows(s *session) ([][]string, error) {
	list := adapters.NewEnumerator(s.rt, adapters.WithLogger(logger.WithComponent("adapters"))).All()
	s.adapters = list

	var rows [][]string
	add := func(label string, ad *adapters.Adapter, dt driver.DriverType) error {
		for _, g := range []driver.Generation{driver.Generation11, driver.Generation10} {
			if !s.rt.Has(g) {
				continue
			}
			res, err := s.prober.Probe(ad, g, dt)
			if err != nil {
				return err
			}
			rows = append(rows, []string{label, dt.String(), g.String(), res.Levels.String()})
		}
		return nil
	}
	for _, ad := range list {
		if err := add(ad.Label(), ad, driver.DriverHardware); err != nil {
			return nil, err
		}
	}
	if a.cfg.ProbeWARP() {
		if err := add("WARP", nil, driver.DriverWARP); err != nil {
			return nil, err
		}
	}
	if a.cfg.ProbeReference() {
		if err := add("Reference", nil, driver.DriverReference); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

func writeLevels(w io.Writer, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, report.NoDevices)
		return err
	}
	r := lipgloss.NewRenderer(w)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(lipgloss.Color("#6272a4"))).
		Headers("Device", "Driver", "API", "Levels").
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
