// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the value types shared by the parser, the tracker,
// the waypoint store, and the CLI.
package types

import (
	"fmt"
	"math"
)

// Coordinate is a point in 3D space. Values carry no unit and no range
// constraint. Coordinates are plain values; copy them freely.
type Coordinate struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Distance returns the Euclidean distance between c and other.
func (c Coordinate) Distance(other Coordinate) float64 {
	dx := c.X - other.X
	dy := c.Y - other.Y
	dz := c.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Equal reports exact field-wise equality. There is no tolerance: two
// coordinates derived through different arithmetic may compare unequal.
func (c Coordinate) Equal(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y && c.Z == other.Z
}

func (c Coordinate) String() string {
	return fmt.Sprintf("x:%g y:%g z:%g", c.X, c.Y, c.Z)
}
