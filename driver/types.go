package driver

// Generation selects one of the two device-creation APIs and its ladder.
type Generation int

const (
	Generation10 Generation = iota
	Generation11
)

func (g Generation) String() string {
	if g == Generation10 {
		return "d3d10"
	}
	return "d3d11"
}

// Ladder returns the candidate levels of g, highest first.
func (g Generation) Ladder() []FeatureLevel {
	if g == Generation10 {
		return Ladder10
	}
	return Ladder11
}

// DeviceVersion is the negotiated device interface of a context.
// Values are ordered oldest to newest.
type DeviceVersion int

const (
	D3D10 DeviceVersion = iota
	D3D10_1
	D3D11
	D3D11_1
	D3D11_2
	D3D11_3
)

var deviceVersionNames = [...]string{
	D3D10:   "Direct3D 10",
	D3D10_1: "Direct3D 10.1",
	D3D11:   "Direct3D 11",
	D3D11_1: "Direct3D 11.1",
	D3D11_2: "Direct3D 11.2",
	D3D11_3: "Direct3D 11.3",
}

func (v DeviceVersion) String() string {
	if v < 0 || int(v) >= len(deviceVersionNames) {
		return "unknown"
	}
	return deviceVersionNames[v]
}

// Generation returns the creation API the version belongs to.
func (v DeviceVersion) Generation() Generation {
	if v <= D3D10_1 {
		return Generation10
	}
	return Generation11
}

// HasFeatureQueries reports whether CheckFeatureSupport exists on v.
func (v DeviceVersion) HasFeatureQueries() bool { return v >= D3D11 }

// DriverType uses the D3D_DRIVER_TYPE numbering. Backends translate to
// the D3D10 numbering where needed.
type DriverType int

const (
	DriverUnknown   DriverType = 0
	DriverHardware  DriverType = 1
	DriverReference DriverType = 2
	DriverNull      DriverType = 3
	DriverSoftware  DriverType = 4
	DriverWARP      DriverType = 5
)

func (t DriverType) String() string {
	switch t {
	case DriverHardware:
		return "hardware"
	case DriverReference:
		return "reference"
	case DriverNull:
		return "null"
	case DriverSoftware:
		return "software"
	case DriverWARP:
		return "warp"
	}
	return "unknown"
}

// FactoryVersion is the DXGI factory interface the loader obtained.
type FactoryVersion int

const (
	FactoryNone FactoryVersion = iota
	Factory1_0
	Factory1_1
	Factory1_2
	Factory1_3
)

func (v FactoryVersion) String() string {
	switch v {
	case Factory1_0:
		return "DXGI 1.0"
	case Factory1_1:
		return "DXGI 1.1"
	case Factory1_2:
		return "DXGI 1.2"
	case Factory1_3:
		return "DXGI 1.3"
	}
	return "none"
}
