package types

import "time"

// TrackerConfig holds settings for the monitoring loop and its console output.
type TrackerConfig struct {
	// Interval is the delay between two reads of the text source (default 500ms).
	Interval time.Duration `json:"interval" yaml:"interval"`

	// Unit is the label printed after the distance (default "Km").
	Unit string `json:"unit" yaml:"unit"`

	// Color allows colored trend lines. Color is still suppressed when
	// stdout is not a terminal or NO_COLOR is set.
	Color bool `json:"color" yaml:"color"`

	// Verbose logs discarded samples and transient source failures.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// SourceConfig selects where sample text comes from.
type SourceConfig struct {
	// File, when set, replaces the clipboard with the contents of this file.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// WaypointConfig holds settings for the waypoint store.
type WaypointConfig struct {
	// DBPath is the SQLite database file.
	DBPath string `json:"db_path" yaml:"db_path"`
}

// Config groups all settings resolved from flags, environment, and config file.
type Config struct {
	Tracker   TrackerConfig  `json:"tracker" yaml:"tracker"`
	Source    SourceConfig   `json:"source" yaml:"source"`
	Waypoints WaypointConfig `json:"waypoints" yaml:"waypoints"`
}
