// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Waypoint is a named reference point kept in the waypoint store.
type Waypoint struct {
	Name       string     `json:"name" yaml:"name"`
	Coordinate Coordinate `json:"coordinate" yaml:"coordinate"`
	CreatedAt  time.Time  `json:"created_at" yaml:"created_at"`
}
