package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirides/dxcaps/captree"
	"github.com/kirides/dxcaps/driver"
	"github.com/kirides/dxcaps/driver/drivertest"
	"github.com/kirides/dxcaps/report"
)

const all11 = driver.Mask11_1 | driver.Mask11_0 | driver.Mask10_1 | driver.Mask10_0 | driver.Mask9_3 | driver.Mask9_2 | driver.Mask9_1

func newHost() *drivertest.Host {
	return &drivertest.Host{
		Libraries: map[string][]string{
			"dxgi.dll":  {"CreateDXGIFactory1"},
			"d3d11.dll": {"D3D11CreateDevice"},
		},
		Adapters: []*drivertest.Adapter{{
			D: driver.AdapterDesc{Description: "Test GPU", VendorID: 0x10de},
		}},
		Device11: &drivertest.Creator{
			Version:    driver.D3D11,
			MaxVersion: driver.D3D11_1,
			Default:    all11,
			Achievable: map[driver.DriverType]driver.LevelMask{
				driver.DriverWARP:      driver.Mask10_1 | driver.Mask10_0,
				driver.DriverReference: 0,
			},
		},
	}
}

func run(t *testing.T, h driver.Host, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(h)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLevels(t *testing.T) {
	h := newHost()
	out, err := run(t, h, "levels")
	require.NoError(t, err)

	assert.Contains(t, out, "Test GPU")
	assert.Contains(t, out, "11_1,11_0,10_1,10_0,9_3,9_2,9_1")
	assert.Contains(t, out, "WARP")
	assert.Contains(t, out, "10_1,10_0")
	assert.Contains(t, out, "none")

	assert.Zero(t, h.Device11.Stats.Live(), "devices outlived the session")
	assert.ElementsMatch(t, h.Opened, h.Closed)
}

func TestLevelsAfterEnumFailure(t *testing.T) {
	h := newHost()
	h.Adapters = append(h.Adapters, &drivertest.Adapter{D: driver.AdapterDesc{Description: "Lost GPU"}})
	h.EnumErr = map[uint32]error{1: driver.E_FAIL}

	out, err := run(t, h, "levels")
	require.NoError(t, err)
	assert.Contains(t, out, "Test GPU")
	assert.NotContains(t, out, "Lost GPU")
	assert.Contains(t, out, "WARP")
	assert.Contains(t, out, "Reference")
}

func TestReportJSON(t *testing.T) {
	h := newHost()
	out, err := run(t, h, "report", "--format", "json")
	require.NoError(t, err)

	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, captree.RootLabel, r.Root.Label)
	require.NotEmpty(t, r.Root.Children)
	assert.Equal(t, "Test GPU", r.Root.Children[0].Label)
	assert.Equal(t, "interesting", r.Header.View)
	assert.Zero(t, h.Device11.Stats.Live())
}

func TestReportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caps.yaml")
	out, err := run(t, newHost(), "report", "--all", "--format", "yaml", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "view: all")
	assert.Contains(t, string(b), "Test GPU")
}

func TestReportConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dxcaps.toml")
	require.NoError(t, os.WriteFile(path, []byte("format = \"json\"\nwarp = false\nreference = false\n"), 0o600))

	out, err := run(t, newHost(), "--config", path, "report")
	require.NoError(t, err)

	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	for _, c := range r.Root.Children {
		assert.NotEqual(t, captree.WARPLabel, c.Label)
	}
}

func TestReportAllFalseOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dxcaps.yaml")
	require.NoError(t, os.WriteFile(path, []byte("view: all\nformat: json\n"), 0o600))

	out, err := run(t, newHost(), "--config", path, "report", "--all=false")
	require.NoError(t, err)

	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "interesting", r.Header.View)
}

func TestReportUnknownFormat(t *testing.T) {
	_, err := run(t, newHost(), "report", "--format", "xml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestNoRuntime(t *testing.T) {
	empty := &drivertest.Host{}

	out, err := run(t, empty, "report")
	require.NoError(t, err)
	assert.Contains(t, out, report.NoDevices)

	out, err = run(t, empty, "levels")
	require.NoError(t, err)
	assert.Contains(t, out, report.NoDevices)

	out, err = run(t, empty, "serve", "--addr", "127.0.0.1:0")
	require.NoError(t, err)
	assert.Contains(t, out, report.NoDevices)
}
