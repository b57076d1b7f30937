// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package waypoint

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/position-helper/pkg/types"
)

// exportFile is the document written by ExportYAML and read by ImportYAML.
type exportFile struct {
	Waypoints []types.Waypoint `json:"waypoints" yaml:"waypoints"`
}

// ExportYAML writes every waypoint to w as YAML.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	doc, err := s.exportDoc(ctx)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// ExportJSON writes every waypoint to w as indented JSON.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer) error {
	doc, err := s.exportDoc(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

// ImportYAML reads a document written by ExportYAML and saves each waypoint,
// replacing existing ones with the same name. It returns the number saved.
func (s *Store) ImportYAML(ctx context.Context, r io.Reader) (int, error) {
	var doc exportFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, fmt.Errorf("parsing YAML: %w", err)
	}

	for i, wp := range doc.Waypoints {
		if _, err := s.Save(ctx, wp); err != nil {
			return i, err
		}
	}
	return len(doc.Waypoints), nil
}

func (s *Store) exportDoc(ctx context.Context) (exportFile, error) {
	wps, err := s.List(ctx)
	if err != nil {
		return exportFile{}, fmt.Errorf("querying for export: %w", err)
	}
	if wps == nil {
		wps = []types.Waypoint{}
	}
	return exportFile{Waypoints: wps}, nil
}
