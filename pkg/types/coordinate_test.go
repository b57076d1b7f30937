// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestCoordinateDistance(t *testing.T) {
	origin := Coordinate{}
	one := Coordinate{X: 1, Y: 1, Z: 1}

	assert.Equal(t, 1.7320508075688772, origin.Distance(one))
	assert.Equal(t, 5.0, Coordinate{X: 3, Y: 4}.Distance(origin))
}

func TestCoordinateDistanceSymmetric(t *testing.T) {
	points := []Coordinate{
		{},
		{X: 1, Y: 1, Z: 1},
		{X: 12792414426.801407, Y: -74275565.552555, Z: 83180.938669},
		{X: -0.5, Y: 1e-9, Z: 42},
	}
	for _, a := range points {
		assert.Equal(t, 0.0, a.Distance(a))
		for _, b := range points {
			assert.Equal(t, a.Distance(b), b.Distance(a))
		}
	}
}

func TestCoordinateEqual(t *testing.T) {
	tenth := 0.1
	a := Coordinate{X: tenth + 0.2, Y: 1, Z: 2}
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(Coordinate{X: 0.3, Y: 1, Z: 2}), "equality has no tolerance")
	assert.True(t, Coordinate{X: 0}.Equal(Coordinate{X: math.Copysign(0, -1)}))
}

func TestTrendString(t *testing.T) {
	assert.Equal(t, "receding", Receding.String())
	assert.Equal(t, "approaching", Approaching.String())
}

func TestReportEncodesTrendByName(t *testing.T) {
	r := Report{Coordinate: Coordinate{X: 3, Y: 4}, Distance: 5, Trend: Approaching}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"coordinate":{"x":3,"y":4,"z":0},"distance":5,"trend":"approaching"}`, string(data))

	var back Report
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, r, back)

	y, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(y), "trend: approaching")

	var bad Trend
	assert.Error(t, bad.UnmarshalText([]byte("sideways")))
}
