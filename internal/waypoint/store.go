// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package waypoint persists named reference points in a SQLite database so a
// target can be tracked by name instead of by typing its coordinates.
package waypoint

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/position-helper/pkg/types"
)

var (
	// ErrNotFound is returned when no waypoint has the requested name.
	ErrNotFound = errors.New("waypoint not found")

	// ErrNotFinite is returned when a waypoint has a NaN or infinite axis.
	// Such values cannot be stored or exported as JSON.
	ErrNotFinite = errors.New("waypoint coordinate is not finite")
)

// Store manages the waypoint SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore opens or creates the waypoint database at cfg.DBPath, creating
// the parent directory and the schema when missing.
func NewStore(cfg types.WaypointConfig) (*Store, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("waypoint database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating waypoint directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS waypoints (
		name TEXT PRIMARY KEY,
		x REAL NOT NULL,
		y REAL NOT NULL,
		z REAL NOT NULL,
		created_at TEXT NOT NULL
	)`)
	return err
}

// Save inserts a waypoint or replaces the one with the same name. A zero
// CreatedAt is set to the current time.
func (s *Store) Save(ctx context.Context, wp types.Waypoint) (types.Waypoint, error) {
	name, err := normalizeName(wp.Name)
	if err != nil {
		return types.Waypoint{}, err
	}
	wp.Name = name
	if !isFinite(wp.Coordinate) {
		return types.Waypoint{}, fmt.Errorf("%s (%v): %w", name, wp.Coordinate, ErrNotFinite)
	}
	if wp.CreatedAt.IsZero() {
		wp.CreatedAt = s.now()
	}
	wp.CreatedAt = wp.CreatedAt.UTC()

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO waypoints (name, x, y, z, created_at) VALUES (?, ?, ?, ?, ?)`,
		wp.Name, wp.Coordinate.X, wp.Coordinate.Y, wp.Coordinate.Z,
		wp.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return types.Waypoint{}, fmt.Errorf("saving waypoint %s: %w", wp.Name, err)
	}
	return wp, nil
}

// Get returns the waypoint with the given name.
func (s *Store) Get(ctx context.Context, name string) (types.Waypoint, error) {
	name, err := normalizeName(name)
	if err != nil {
		return types.Waypoint{}, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT name, x, y, z, created_at FROM waypoints WHERE name = ?`, name)
	wp, err := scanWaypoint(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Waypoint{}, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return types.Waypoint{}, fmt.Errorf("reading waypoint %s: %w", name, err)
	}
	return wp, nil
}

// List returns all waypoints ordered by name.
func (s *Store) List(ctx context.Context) ([]types.Waypoint, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, x, y, z, created_at FROM waypoints ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing waypoints: %w", err)
	}
	defer rows.Close()

	var out []types.Waypoint
	for rows.Next() {
		wp, err := scanWaypoint(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning waypoint: %w", err)
		}
		out = append(out, wp)
	}
	return out, rows.Err()
}

// Delete removes the waypoint with the given name.
func (s *Store) Delete(ctx context.Context, name string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM waypoints WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting waypoint %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting waypoint %s: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanWaypoint(sc scanner) (types.Waypoint, error) {
	var (
		wp      types.Waypoint
		created string
	)
	if err := sc.Scan(&wp.Name, &wp.Coordinate.X, &wp.Coordinate.Y, &wp.Coordinate.Z, &created); err != nil {
		return types.Waypoint{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return types.Waypoint{}, fmt.Errorf("parsing created_at %q: %w", created, err)
	}
	wp.CreatedAt = t
	return wp, nil
}

func isFinite(c types.Coordinate) bool {
	for _, v := range [3]float64{c.X, c.Y, c.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("waypoint name is empty")
	}
	return name, nil
}
