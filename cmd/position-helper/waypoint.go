// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/position-helper/internal/coordinate"
	"github.com/pdiddy/position-helper/internal/waypoint"
	"github.com/pdiddy/position-helper/pkg/types"
)

var waypointCmd = &cobra.Command{
	Use:   "waypoint",
	Short: "Manage saved reference points (add, capture, list, remove, export, import)",
	Long: `Waypoint manages named reference points kept in a local SQLite database.
Saved waypoints can be tracked with "goto <name>".`,
}

// --- add subcommand ---

var waypointAddCmd = &cobra.Command{
	Use:   "add <name> <x> <y> <z>",
	Short: "Save a waypoint from explicit coordinates",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := coordinate.ParseReference(args[1:])
		if err != nil {
			return err
		}
		return saveWaypoint(cmd, args[0], c)
	},
}

// --- capture subcommand ---

var waypointCaptureCmd = &cobra.Command{
	Use:   "capture <name>",
	Short: "Save a waypoint from the coordinates currently on the clipboard",
	Long: `Capture reads the clipboard (or --source-file) once and saves the
coordinate announcement it holds. All three axes must be present.`,
	Args: cobra.ExactArgs(1),
	RunE: runWaypointCapture,
}

func runWaypointCapture(cmd *cobra.Command, args []string) error {
	src, name, err := newSource(loadConfig().Source)
	if err != nil {
		return err
	}
	text, err := src.Text(cmd.Context())
	if err != nil {
		return err
	}
	if !coordinate.IsValid(text) {
		return fmt.Errorf("no coordinates found in %s", name)
	}
	c, err := coordinate.ParseStrict(text)
	if err != nil {
		return fmt.Errorf("reading coordinates from %s: %w", name, err)
	}
	return saveWaypoint(cmd, args[0], c)
}

// --- list subcommand ---

var waypointListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved waypoints",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			return store.ExportJSON(cmd.Context(), cmd.OutOrStdout())
		}

		wps, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		return formatWaypoints(cmd.OutOrStdout(), wps)
	},
}

func formatWaypoints(w io.Writer, wps []types.Waypoint) error {
	if len(wps) == 0 {
		fmt.Fprintln(w, "No waypoints saved.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tX\tY\tZ\tCREATED")
	for _, wp := range wps {
		fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%.6f\t%s\n",
			wp.Name, wp.Coordinate.X, wp.Coordinate.Y, wp.Coordinate.Z,
			wp.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

// --- remove subcommand ---

var waypointRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a saved waypoint",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
		return nil
	},
}

// --- export subcommand ---

var waypointExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all waypoints to YAML or JSON",
	Args:  cobra.NoArgs,
	RunE:  runWaypointExport,
}

func runWaypointExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	w := cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", output, err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "yaml", "":
		err = store.ExportYAML(cmd.Context(), w)
	case "json":
		err = store.ExportJSON(cmd.Context(), w)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	if output != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", output)
	}
	return nil
}

// --- import subcommand ---

var waypointImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import waypoints from a YAML export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.ImportYAML(cmd.Context(), f)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d waypoint(s)\n", n)
		return nil
	},
}

// --- shared helpers ---

func openStore() (*waypoint.Store, error) {
	return waypoint.NewStore(loadConfig().Waypoints)
}

func saveWaypoint(cmd *cobra.Command, name string, c types.Coordinate) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	wp, err := store.Save(cmd.Context(), types.Waypoint{Name: name, Coordinate: c})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%v)\n", wp.Name, wp.Coordinate)
	return nil
}

func init() {
	waypointListCmd.Flags().Bool("json", false, "output waypoints as JSON")

	waypointExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	waypointExportCmd.Flags().String("output", "", "write to this file instead of stdout")

	waypointCmd.AddCommand(waypointAddCmd)
	waypointCmd.AddCommand(waypointCaptureCmd)
	waypointCmd.AddCommand(waypointListCmd)
	waypointCmd.AddCommand(waypointRemoveCmd)
	waypointCmd.AddCommand(waypointExportCmd)
	waypointCmd.AddCommand(waypointImportCmd)

	rootCmd.AddCommand(waypointCmd)
}
