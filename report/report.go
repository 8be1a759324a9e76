// Package report renders a capability tree for the console or for
// export as JSON, YAML or TOML.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"gopkg.in/yaml.v3"

	"github.com/kirides/dxcaps/captree"
	"github.com/kirides/dxcaps/fields"
)

var ErrUnknownFormat = errors.New("unknown report format")

// Format selects an encoding for Write.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat accepts the format names case-insensitively. "yml" is an
// alias of yaml.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Header describes the machine and run a report was taken on.
type Header struct {
	ID              string    `json:"id" yaml:"id" toml:"id"`
	Generated       time.Time `json:"generated" yaml:"generated" toml:"generated"`
	View            string    `json:"view" yaml:"view" toml:"view"`
	Hostname        string    `json:"hostname,omitempty" yaml:"hostname,omitempty" toml:"hostname,omitempty"`
	OS              string    `json:"os,omitempty" yaml:"os,omitempty" toml:"os,omitempty"`
	Platform        string    `json:"platform,omitempty" yaml:"platform,omitempty" toml:"platform,omitempty"`
	PlatformVersion string    `json:"platform_version,omitempty" yaml:"platform_version,omitempty" toml:"platform_version,omitempty"`
	KernelVersion   string    `json:"kernel_version,omitempty" yaml:"kernel_version,omitempty" toml:"kernel_version,omitempty"`
	KernelArch      string    `json:"kernel_arch,omitempty" yaml:"kernel_arch,omitempty" toml:"kernel_arch,omitempty"`
	CPU             string    `json:"cpu,omitempty" yaml:"cpu,omitempty" toml:"cpu,omitempty"`
	MemoryTotal     uint64    `json:"memory_total,omitempty" yaml:"memory_total,omitempty" toml:"memory_total,omitempty"`
}

// Entry is one tree node with its resolved table.
type Entry struct {
	Label    string        `json:"label" yaml:"label" toml:"label"`
	Table    *fields.Table `json:"table,omitempty" yaml:"table,omitempty" toml:"table,omitempty"`
	Children []Entry       `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// Report is a fully resolved tree.
type Report struct {
	Header Header `json:"header" yaml:"header" toml:"header"`
	Root   Entry  `json:"root" yaml:"root" toml:"root"`
}

// Empty reports whether no device was found.
func (r *Report) Empty() bool { return len(r.Root.Children) == 0 }

// Collector resolves trees into reports.
type Collector struct {
	hostInfo func(context.Context) (*host.InfoStat, error)
	cpuInfo  func(context.Context) ([]cpu.InfoStat, error)
	memory   func(context.Context) (*mem.VirtualMemoryStat, error)
	newID    func() uuid.UUID
	now      func() time.Time
	log      zerolog.Logger
}

type Option func(*Collector)

func WithLogger(l zerolog.Logger) Option {
	return func(c *Collector) { c.log = l }
}

func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		hostInfo: host.InfoWithContext,
		cpuInfo:  cpu.InfoWithContext,
		memory:   mem.VirtualMemoryWithContext,
		newID:    uuid.New,
		now:      time.Now,
		log:      zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Collect resolves every table below root for view. Host details that
// cannot be read are left empty.
func (c *Collector) Collect(ctx context.Context, root *captree.Node, view fields.View) (*Report, error) {
	r := &Report{Header: c.header(ctx, view)}

	// parents[d] is the entry currently open at depth d
	var parents []*Entry
	err := root.Walk(view, func(depth int, n *captree.Node, t fields.Table, ok bool) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		e := Entry{Label: n.Label}
		if ok {
			tbl := t
			e.Table = &tbl
		}
		parents = parents[:depth]
		if depth == 0 {
			r.Root = e
			parents = append(parents, &r.Root)
			return nil
		}
		p := parents[depth-1]
		p.Children = append(p.Children, e)
		parents = append(parents, &p.Children[len(p.Children)-1])
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collect report: %w", err)
	}
	return r, nil
}

func (c *Collector) header(ctx context.Context, view fields.View) Header {
	h := Header{
		ID:        c.newID().String(),
		Generated: c.now().UTC(),
		View:      view.String(),
	}
	if info, err := c.hostInfo(ctx); err != nil {
		c.log.Warn().Err(err).Msg("host info unavailable")
	} else {
		h.Hostname = info.Hostname
		h.OS = info.OS
		h.Platform = info.Platform
		h.PlatformVersion = info.PlatformVersion
		h.KernelVersion = info.KernelVersion
		h.KernelArch = info.KernelArch
	}
	if cpus, err := c.cpuInfo(ctx); err != nil {
		c.log.Warn().Err(err).Msg("cpu info unavailable")
	} else if len(cpus) > 0 {
		h.CPU = strings.TrimSpace(cpus[0].ModelName)
	}
	if vm, err := c.memory(ctx); err != nil {
		c.log.Warn().Err(err).Msg("memory info unavailable")
	} else {
		h.MemoryTotal = vm.Total
	}
	return h
}

// Write encodes r to w.
func Write(w io.Writer, r *Report, f Format) error {
	switch f {
	case FormatText, "":
		return WriteText(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(r)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// WriteFile writes r to path, or to stdout when path is empty.
func WriteFile(path string, r *Report, f Format) error {
	if path == "" {
		return Write(os.Stdout, r, f)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(file, r, f); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}
