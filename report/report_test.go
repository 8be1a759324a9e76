package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kirides/dxcaps/captree"
	"github.com/kirides/dxcaps/fields"
	"github.com/kirides/dxcaps/logger"
)

var (
	fixedID   = uuid.MustParse("5f0c6a61-7a4e-4c1b-9d43-2f1f0a6a9c10")
	fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
)

func testCollector() *Collector {
	c := NewCollector(WithLogger(logger.NewTestLogger()))
	c.hostInfo = func(context.Context) (*host.InfoStat, error) {
		return &host.InfoStat{Hostname: "rig", OS: "windows", Platform: "Microsoft Windows 11 Pro", PlatformVersion: "10.0.22631", KernelVersion: "10.0.22631", KernelArch: "x86_64"}, nil
	}
	c.cpuInfo = func(context.Context) ([]cpu.InfoStat, error) {
		return []cpu.InfoStat{{ModelName: "Test CPU @ 3.60GHz "}}, nil
	}
	c.memory = func(context.Context) (*mem.VirtualMemoryStat, error) {
		return &mem.VirtualMemoryStat{Total: 16 << 30}, nil
	}
	c.newID = func() uuid.UUID { return fixedID }
	c.now = func() time.Time { return fixedTime }
	return c
}

func sampleTree() *captree.Node {
	fl := func(fields.View) fields.Table {
		t := fields.NewTable()
		t.Required("Shader Model", "5.0")
		t.Queried("Double-precision Shaders", true)
		t.Queried("Driver Command Lists", false)
		return *t
	}
	msaa := func(fields.View) fields.Table {
		t := fields.NewTable("Name", "Value", "Quality Level")
		t.Add("DXGI_FORMAT_R8G8B8A8_UNORM", fields.OptionalPresent, fields.Yes, "16")
		return *t
	}
	return captree.NewNode(captree.RootLabel, nil,
		captree.NewNode("Test GPU", nil,
			captree.NewNode("Direct3D 11", nil,
				captree.NewNode("D3D_FEATURE_LEVEL_11_0", fl),
				captree.NewNode("4x MSAA", msaa),
			),
		),
	)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatText},
		{"text", FormatText},
		{"JSON", FormatJSON},
		{"yml", FormatYAML},
		{" yaml ", FormatYAML},
		{"toml", FormatTOML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestCollectNestsEntries(t *testing.T) {
	r, err := testCollector().Collect(context.Background(), sampleTree(), fields.ViewInteresting)
	require.NoError(t, err)

	assert.Equal(t, fixedID.String(), r.Header.ID)
	assert.Equal(t, fixedTime, r.Header.Generated)
	assert.Equal(t, "interesting", r.Header.View)
	assert.Equal(t, "rig", r.Header.Hostname)
	assert.Equal(t, uint64(16<<30), r.Header.MemoryTotal)

	assert.Equal(t, captree.RootLabel, r.Root.Label)
	assert.Nil(t, r.Root.Table)
	require.Len(t, r.Root.Children, 1)
	d3d := r.Root.Children[0].Children[0]
	assert.Equal(t, "Direct3D 11", d3d.Label)
	require.Len(t, d3d.Children, 2)

	fl := d3d.Children[0]
	require.NotNil(t, fl.Table)
	// the absent command-list row is filtered out
	assert.Len(t, fl.Table.Rows, 2)
	assert.Equal(t, "4x MSAA", d3d.Children[1].Label)
	assert.False(t, r.Empty())
}

func TestCollectHostFailureIsNotFatal(t *testing.T) {
	c := testCollector()
	c.hostInfo = func(context.Context) (*host.InfoStat, error) { return nil, errors.New("wmi unavailable") }
	c.cpuInfo = func(context.Context) ([]cpu.InfoStat, error) { return nil, errors.New("no cpuid") }
	c.memory = func(context.Context) (*mem.VirtualMemoryStat, error) { return nil, errors.New("no memory") }

	r, err := c.Collect(context.Background(), sampleTree(), fields.ViewAll)
	require.NoError(t, err)
	assert.Empty(t, r.Header.Hostname)
	assert.Zero(t, r.Header.MemoryTotal)
	assert.Empty(t, r.Header.CPU)
	assert.Equal(t, "all", r.Header.View)
}

func TestCollectHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := testCollector().Collect(ctx, sampleTree(), fields.ViewAll)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteText(t *testing.T) {
	r, err := testCollector().Collect(context.Background(), sampleTree(), fields.ViewAll)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r, FormatText))
	out := buf.String()

	assert.Contains(t, out, "Report "+fixedID.String())
	assert.Contains(t, out, "Host rig")
	assert.Contains(t, out, "Memory 16384 MB")
	assert.Contains(t, out, "CPU Test CPU @ 3.60GHz")
	assert.Contains(t, out, "\n    Direct3D 11\n")
	assert.Contains(t, out, "Shader Model:")
	assert.Contains(t, out, "Driver Command Lists:")
	assert.Contains(t, out, "Value: Yes   Quality Level: 16")
	assert.NotContains(t, out, NoDevices)
	// ascii profile for non-terminals
	assert.NotContains(t, out, "\x1b[")
}

func TestWriteTextEmpty(t *testing.T) {
	r, err := testCollector().Collect(context.Background(), captree.NewNode(captree.RootLabel, nil), fields.ViewAll)
	require.NoError(t, err)
	assert.True(t, r.Empty())

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	assert.Contains(t, buf.String(), NoDevices)
}

func TestWriteJSON(t *testing.T) {
	r, err := testCollector().Collect(context.Background(), sampleTree(), fields.ViewAll)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r, FormatJSON))

	var doc struct {
		Header struct {
			ID string `json:"id"`
		} `json:"header"`
		Root struct {
			Label    string `json:"label"`
			Children []struct {
				Children []struct {
					Children []struct {
						Label string `json:"label"`
						Table struct {
							Rows []struct {
								Name  string `json:"name"`
								Class string `json:"class"`
							} `json:"rows"`
						} `json:"table"`
					} `json:"children"`
				} `json:"children"`
			} `json:"children"`
		} `json:"root"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, fixedID.String(), doc.Header.ID)
	assert.Equal(t, captree.RootLabel, doc.Root.Label)
	fl := doc.Root.Children[0].Children[0].Children[0]
	assert.Equal(t, "D3D_FEATURE_LEVEL_11_0", fl.Label)
	require.Len(t, fl.Table.Rows, 3)
	assert.Equal(t, "baseline", fl.Table.Rows[0].Class)
	assert.Equal(t, "optional-absent", fl.Table.Rows[2].Class)
}

func TestWriteYAMLAndTOML(t *testing.T) {
	r, err := testCollector().Collect(context.Background(), sampleTree(), fields.ViewAll)
	require.NoError(t, err)

	var y bytes.Buffer
	require.NoError(t, Write(&y, r, FormatYAML))
	var ydoc map[string]any
	require.NoError(t, yaml.Unmarshal(y.Bytes(), &ydoc))
	assert.Equal(t, fixedID.String(), ydoc["header"].(map[string]any)["id"])
	assert.Contains(t, y.String(), "class: optional-present")

	var tm bytes.Buffer
	require.NoError(t, Write(&tm, r, FormatTOML))
	var tdoc map[string]any
	require.NoError(t, toml.Unmarshal(tm.Bytes(), &tdoc))
	assert.Equal(t, fixedID.String(), tdoc["header"].(map[string]any)["id"])
	assert.Equal(t, captree.RootLabel, tdoc["root"].(map[string]any)["label"])
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, &Report{}, Format("xml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteFile(t *testing.T) {
	r, err := testCollector().Collect(context.Background(), sampleTree(), fields.ViewAll)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "caps.json")
	require.NoError(t, WriteFile(path, r, FormatJSON))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var back Report
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, r.Header.ID, back.Header.ID)
	assert.Equal(t, "Test GPU", back.Root.Children[0].Label)
}
