// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tracker

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/pdiddy/position-helper/pkg/types"
)

const (
	separator = "-----------------------------"

	msgApproaching = "You are getting closer to the selected point!"
	msgReceding    = "You are getting further away from the selected point"
	msgNotFound    = "Coordinate not found"
)

// Console writes human-readable reports to a terminal.
type Console struct {
	w      io.Writer
	unit   string
	closer *color.Color
	away   *color.Color
}

// NewConsole returns a console sink. unit labels the distance (e.g. "Km").
// With useColor set, trend lines are colored unless color.NoColor is true,
// which the color package sets when stdout is not a terminal or NO_COLOR is
// present in the environment.
func NewConsole(w io.Writer, unit string, useColor bool) *Console {
	c := &Console{
		w:      w,
		unit:   unit,
		closer: color.New(color.FgGreen),
		away:   color.New(color.FgRed),
	}
	if !useColor {
		c.closer.DisableColor()
		c.away.DisableColor()
	}
	return c
}

func (c *Console) Start() {
	fmt.Fprintln(c.w, separator)
}

func (c *Console) Report(r types.Report) {
	if r.Trend == types.Approaching {
		c.closer.Fprintln(c.w, msgApproaching)
	} else {
		c.away.Fprintln(c.w, msgReceding)
	}
	if c.unit != "" {
		fmt.Fprintf(c.w, "Current distance : %.2f %s\n", r.Distance, c.unit)
	} else {
		fmt.Fprintf(c.w, "Current distance : %.2f\n", r.Distance)
	}
	fmt.Fprintln(c.w, separator)
}

func (c *Console) NotFound(error) {
	fmt.Fprintln(c.w, msgNotFound)
}
