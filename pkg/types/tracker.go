// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Trend classifies a sample's distance against the previous sample's.
type Trend int

const (
	// Receding covers both a larger and an unchanged distance.
	Receding Trend = iota
	// Approaching means the distance is strictly smaller than before.
	Approaching
)

func (t Trend) String() string {
	if t == Approaching {
		return "approaching"
	}
	return "receding"
}

// MarshalText encodes the trend by name in JSON and YAML.
func (t Trend) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (t *Trend) UnmarshalText(b []byte) error {
	switch string(b) {
	case "receding":
		*t = Receding
	case "approaching":
		*t = Approaching
	default:
		return fmt.Errorf("unknown trend %q", b)
	}
	return nil
}

// Report is emitted once per accepted sample.
type Report struct {
	Coordinate Coordinate `json:"coordinate" yaml:"coordinate"`
	Distance   float64    `json:"distance" yaml:"distance"`
	Trend      Trend      `json:"trend" yaml:"trend"`
}

// TrackerState is what the monitoring loop remembers between samples.
type TrackerState struct {
	// LastText is the last text read from the source, compared verbatim
	// to suppress re-evaluating an unchanged source.
	LastText string

	// LastDistance is the distance computed for the last accepted sample.
	// It starts at zero.
	LastDistance float64
}
