package adapters

import (
	"fmt"
	"strconv"

	"github.com/kirides/dxcaps/driver"
	"github.com/kirides/dxcaps/fields"
)

var vendorNames = map[uint32]string{
	0x1002: "AMD",
	0x1a03: "ASPEED",
	0x8086: "Intel",
	0x102b: "Matrox",
	0x10de: "Nvidia",
	0x1414: "Microsoft",
}

// VendorIntel is the PCI vendor id whose D3D11 probe devices are never
// released.
const VendorIntel = 0x8086

// VendorName returns a short vendor name, or "" when unknown.
func VendorName(id uint32) string { return vendorNames[id] }

func hex32(v uint32) string { return fmt.Sprintf("0x%08x", v) }

func megabytes(v uint64) string { return strconv.FormatUint(v/(1024*1024), 10) + " MB" }

func yesNo(v bool) string {
	if v {
		return fields.Yes
	}
	return fields.No
}

// AdapterTable describes an adapter. Rows beyond the descriptor level
// the factory could return are left out.
func AdapterTable(d driver.AdapterDesc) fields.Table {
	t := fields.NewTable()
	t.Required("Description", d.Description)
	t.Required("VendorId", hex32(d.VendorID))
	if name := VendorName(d.VendorID); name != "" {
		t.Required("Vendor", name)
	}
	t.Required("DeviceId", hex32(d.DeviceID))
	t.Required("SubSysId", hex32(d.SubSysID))
	t.Required("Revision", strconv.FormatUint(uint64(d.Revision), 10))
	t.Required("DedicatedVideoMemory", megabytes(d.DedicatedVideoMemory))
	t.Required("DedicatedSystemMemory", megabytes(d.DedicatedSystemMemory))
	t.Required("SharedSystemMemory", megabytes(d.SharedSystemMemory))
	if d.Level >= 1 {
		t.Required("Remote", yesNo(d.Flags&driver.AdapterFlagRemote != 0))
	}
	if d.Level >= 2 {
		t.Required("Graphics Preemption Granularity", d.GraphicsPreemption.String())
		t.Required("Compute Preemption Granularity", d.ComputePreemption.String())
	}
	return *t
}

// OutputTable describes a display output.
func OutputTable(d driver.OutputDesc) fields.Table {
	t := fields.NewTable()
	t.Required("DeviceName", d.DeviceName)
	t.Required("AttachedToDesktop", yesNo(d.AttachedToDesktop))
	t.Required("Rotation", d.Rotation.String())
	r := d.DesktopCoordinates
	t.Required("DesktopCoordinates", fmt.Sprintf("(%d,%d)-(%d,%d) %d x %d", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, r.Dx(), r.Dy()))
	t.Required("Primary", yesNo(d.Primary))
	if d.DisplayIndex >= 0 {
		t.Required("Display Index", strconv.Itoa(d.DisplayIndex))
	}
	return *t
}

// ModesTable lists display modes in query order.
func ModesTable(modes []Mode) fields.Table {
	t := fields.NewTable("Resolution", "Format", "Refresh Rate")
	for _, m := range modes {
		t.Add(m.Resolution(), fields.BaselineRequired, m.Format.String(), strconv.FormatUint(uint64(m.RefreshRate), 10))
	}
	return *t
}
