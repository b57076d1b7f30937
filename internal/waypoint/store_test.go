// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package waypoint

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/position-helper/pkg/types"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func testStore(t *testing.T) *Store {
	t.Helper()
	cfg := types.WaypointConfig{DBPath: filepath.Join(t.TempDir(), "nested", "waypoints.db")}
	store, err := NewStore(cfg)
	require.NoError(t, err)
	store.now = func() time.Time { return fixedNow }
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleWaypoints() []types.Waypoint {
	return []types.Waypoint{
		{Name: "port-olisar", Coordinate: types.Coordinate{X: -18962176, Y: -2664960, Z: 0}},
		{Name: "crusader", Coordinate: types.Coordinate{X: -18962176000, Y: -2664960000, Z: 0}},
		{Name: "derelict", Coordinate: types.Coordinate{X: 12792414426.801407, Y: -74275565.552555, Z: 83180.938669}},
	}
}

func TestNewStoreRequiresPath(t *testing.T) {
	_, err := NewStore(types.WaypointConfig{})
	assert.Error(t, err)
}

func TestSaveAndGet(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	saved, err := store.Save(ctx, types.Waypoint{
		Name:       "  derelict ",
		Coordinate: types.Coordinate{X: 12792414426.801407, Y: -74275565.552555, Z: 83180.938669},
	})
	require.NoError(t, err)
	assert.Equal(t, "derelict", saved.Name)
	assert.True(t, fixedNow.Equal(saved.CreatedAt))

	got, err := store.Get(ctx, "derelict")
	require.NoError(t, err)
	assert.Equal(t, "derelict", got.Name)
	assert.True(t, saved.Coordinate.Equal(got.Coordinate), "coordinates round-trip exactly")
	assert.True(t, fixedNow.Equal(got.CreatedAt))
}

func TestSaveReplacesByName(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, types.Waypoint{Name: "camp", Coordinate: types.Coordinate{X: 1}})
	require.NoError(t, err)
	_, err = store.Save(ctx, types.Waypoint{Name: "camp", Coordinate: types.Coordinate{X: 2}})
	require.NoError(t, err)

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 2.0, all[0].Coordinate.X)
}

func TestSaveRejectsEmptyName(t *testing.T) {
	store := testStore(t)
	_, err := store.Save(context.Background(), types.Waypoint{Name: "   "})
	assert.Error(t, err)
}

func TestSaveRejectsNonFiniteCoordinates(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		c    types.Coordinate
	}{
		{name: "positive infinity", c: types.Coordinate{X: math.Inf(1)}},
		{name: "negative infinity", c: types.Coordinate{Y: math.Inf(-1)}},
		{name: "nan", c: types.Coordinate{Z: math.NaN()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Save(ctx, types.Waypoint{Name: "far", Coordinate: tt.c})
			assert.ErrorIs(t, err, ErrNotFinite)
		})
	}

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// The store stays exportable after a rejected save.
	var buf bytes.Buffer
	require.NoError(t, store.ExportJSON(ctx, &buf))
}

func TestImportRejectsNonFinite(t *testing.T) {
	store := testStore(t)
	doc := "waypoints:\n  - name: far\n    coordinate: {x: .inf, y: 0, z: 0}\n"

	n, err := store.ImportYAML(context.Background(), strings.NewReader(doc))
	assert.ErrorIs(t, err, ErrNotFinite)
	assert.Equal(t, 0, n)
}

func TestGetMissing(t *testing.T) {
	store := testStore(t)
	_, err := store.Get(context.Background(), "nowhere")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrderedByName(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	empty, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, wp := range sampleWaypoints() {
		_, err := store.Save(ctx, wp)
		require.NoError(t, err)
	}

	all, err := store.List(ctx)
	require.NoError(t, err)
	names := make([]string, len(all))
	for i, wp := range all {
		names[i] = wp.Name
	}
	assert.Equal(t, []string{"crusader", "derelict", "port-olisar"}, names)
}

func TestDelete(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, types.Waypoint{Name: "camp"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "camp"))
	_, err = store.Get(ctx, "camp")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "camp"), ErrNotFound)
}

func TestExportImportYAML(t *testing.T) {
	src := testStore(t)
	ctx := context.Background()
	for _, wp := range sampleWaypoints() {
		_, err := src.Save(ctx, wp)
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	require.NoError(t, src.ExportYAML(ctx, &buf))
	assert.True(t, strings.HasPrefix(buf.String(), "waypoints:\n"))
	assert.Contains(t, buf.String(), "name: derelict")

	dst := testStore(t)
	n, err := dst.ImportYAML(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	want, err := src.List(ctx)
	require.NoError(t, err)
	got, err := dst.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Name, got[i].Name)
		assert.True(t, want[i].Coordinate.Equal(got[i].Coordinate), "%s", want[i].Name)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt), "%s", want[i].Name)
	}
}

func TestImportYAMLEmptyAndInvalid(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	n, err := store.ImportYAML(ctx, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = store.ImportYAML(ctx, strings.NewReader("waypoints: [oops"))
	assert.Error(t, err)

	n, err = store.ImportYAML(ctx, strings.NewReader("waypoints:\n  - name: ''\n"))
	assert.Error(t, err)
	assert.Equal(t, 0, n)
}

func TestExportJSON(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	var empty bytes.Buffer
	require.NoError(t, store.ExportJSON(ctx, &empty))
	assert.JSONEq(t, `{"waypoints": []}`, empty.String())

	_, err := store.Save(ctx, types.Waypoint{Name: "camp", Coordinate: types.Coordinate{X: 1.5, Y: -2, Z: 3}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, store.ExportJSON(ctx, &buf))

	var doc struct {
		Waypoints []types.Waypoint `json:"waypoints"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Waypoints, 1)
	assert.Equal(t, "camp", doc.Waypoints[0].Name)
	assert.Equal(t, types.Coordinate{X: 1.5, Y: -2, Z: 3}, doc.Waypoints[0].Coordinate)
}
