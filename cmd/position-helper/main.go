// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the position-helper CLI. It watches the
// clipboard for "Coordinates: x:... y:... z:..." announcements and reports
// whether each new position is closer to or further from a reference point.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/position-helper/internal/coordinate"
	"github.com/pdiddy/position-helper/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	appName         = "position-helper"
	defaultInterval = 500 * time.Millisecond
	defaultUnit     = "Km"
)

// rootCmd tracks the position against the reference point given as x y z.
var rootCmd = &cobra.Command{
	Use:   appName + " <x> <y> <z>",
	Short: "Report whether you are moving toward a reference point",
	Long: `position-helper polls the clipboard for coordinate announcements of the form

  Coordinates: x:<num> y:<num> z:<num>

and compares each new position with a fixed reference point. Every time a new
announcement appears it prints whether you are getting closer or further away,
and the current distance.

Flags go before the coordinates. Negative coordinates are accepted as-is.`,
	Example: `  position-helper 12792414426.8 -74275565.5 83180.9
  position-helper --interval 1s --unit m -- -120.5 30 7
  position-helper goto derelict`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := coordinate.ParseReference(args)
		if err != nil {
			return cmd.Usage()
		}
		return runTracker(cmd, target)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./position-helper.yaml or ~/.config/position-helper/position-helper.yaml)")
	flags.Duration("interval", defaultInterval, "delay between two clipboard reads")
	flags.String("unit", defaultUnit, "unit label printed after the distance")
	flags.Bool("color", true, "color the closer/further lines (off anyway when stdout is not a terminal or NO_COLOR is set)")
	flags.Bool("verbose", false, "log discarded samples and clipboard errors to stderr")
	flags.String("source-file", "", "read samples from this file instead of the clipboard")
	flags.String("waypoints-db", defaultWaypointsDB(), "waypoint database file")

	bindFlags()
}

// configKeys are the persistent flags that viper also reads from the
// environment and the config file.
var configKeys = []string{"interval", "unit", "color", "verbose", "source-file", "waypoints-db"}

func bindFlags() {
	for _, name := range configKeys {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded environment from .env")
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(appName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		if dir := configDir(); dir != "" {
			viper.AddConfigPath(dir)
		}
	}

	viper.SetEnvPrefix("POSITION_HELPER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig collects the settings resolved by viper from flags, environment,
// and config file.
func loadConfig() types.Config {
	return types.Config{
		Tracker: types.TrackerConfig{
			Interval: viper.GetDuration("interval"),
			Unit:     viper.GetString("unit"),
			Color:    viper.GetBool("color"),
			Verbose:  viper.GetBool("verbose"),
		},
		Source: types.SourceConfig{
			File: viper.GetString("source-file"),
		},
		Waypoints: types.WaypointConfig{
			DBPath: viper.GetString("waypoints-db"),
		},
	}
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

func defaultWaypointsDB() string {
	if dir := configDir(); dir != "" {
		return filepath.Join(dir, "waypoints.db")
	}
	return "waypoints.db"
}

// normalizeArgs inserts "--" before the first negative number so that flag
// parsing treats it as a positional value rather than a shorthand flag.
func normalizeArgs(args []string) []string {
	for i, a := range args {
		if a == "--" {
			return args
		}
		if !isNegativeNumber(a) {
			continue
		}
		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, "--")
		return append(out, args[i:]...)
	}
	return args
}

func isNegativeNumber(s string) bool {
	if !strings.HasPrefix(s, "-") || strings.HasPrefix(s, "--") {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func main() {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
