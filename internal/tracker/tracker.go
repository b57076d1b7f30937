// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tracker runs the monitoring loop: it polls a text source, picks
// out coordinate announcements, and reports whether the position is moving
// toward or away from a fixed reference point.
//
// One goroutine owns a Tracker. Each iteration reads the source, evaluates
// the text, then waits for the configured interval or for the context to be
// cancelled. Evaluation is strictly sequential, so each classification is
// made against the immediately preceding accepted sample.
package tracker

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/position-helper/internal/clipboard"
	"github.com/pdiddy/position-helper/internal/coordinate"
	"github.com/pdiddy/position-helper/pkg/types"
)

const defaultInterval = 500 * time.Millisecond

// Sink receives the outcome of each evaluated sample.
type Sink interface {
	// Start is called once before the first sample.
	Start()
	// Report is called for each accepted sample.
	Report(r types.Report)
	// NotFound is called when a validated sample fails to parse.
	NotFound(err error)
}

// Outcome describes what Evaluate did with a sample.
type Outcome int

const (
	// Unchanged means the text equals the previous sample's text.
	Unchanged Outcome = iota
	// Invalid means the text holds no coordinate announcement.
	Invalid
	// Unparsed means the text validated but did not parse.
	Unparsed
	// Accepted means a report was produced and the state advanced.
	Accepted
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Invalid:
		return "invalid"
	case Unparsed:
		return "unparsed"
	case Accepted:
		return "accepted"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Tracker holds the reference point and the state carried between samples.
type Tracker struct {
	target   types.Coordinate
	source   clipboard.Source
	sink     Sink
	interval time.Duration
	log      io.Writer

	state types.TrackerState
}

// New returns a tracker measuring against target. A zero interval uses the
// default of 500ms. Diagnostics go to log; pass nil to discard them.
func New(target types.Coordinate, source clipboard.Source, sink Sink, interval time.Duration, log io.Writer) *Tracker {
	if interval <= 0 {
		interval = defaultInterval
	}
	if log == nil {
		log = io.Discard
	}
	return &Tracker{
		target:   target,
		source:   source,
		sink:     sink,
		interval: interval,
		log:      log,
	}
}

// Target returns the reference point.
func (t *Tracker) Target() types.Coordinate { return t.target }

// State returns a copy of the state carried between samples.
func (t *Tracker) State() types.TrackerState { return t.state }

// Run polls the source until ctx is cancelled and returns ctx.Err().
// Source failures are logged and retried after the interval with no limit.
func (t *Tracker) Run(ctx context.Context) error {
	t.sink.Start()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		text, err := t.source.Text(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(t.log, "source unavailable, retrying: %v\n", err)
		} else {
			t.Evaluate(text)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(t.interval):
		}
	}
}

// Evaluate processes one sample and returns what happened to it.
//
// Any text that differs from the previous sample becomes the new comparison
// text, whether or not it holds a coordinate. Only an accepted sample moves
// the stored distance.
func (t *Tracker) Evaluate(text string) Outcome {
	if text == t.state.LastText {
		return Unchanged
	}
	t.state.LastText = text

	if !coordinate.IsValid(text) {
		fmt.Fprintf(t.log, "discarded sample without coordinates (%d bytes)\n", len(text))
		return Invalid
	}

	pos, err := coordinate.Parse(text)
	if err != nil {
		fmt.Fprintf(t.log, "coordinate not parsed: %v\n", err)
		t.sink.NotFound(err)
		return Unparsed
	}

	distance := t.target.Distance(pos)
	trend := types.Receding
	if distance < t.state.LastDistance {
		trend = types.Approaching
	}
	t.state.LastDistance = distance

	t.sink.Report(types.Report{
		Coordinate: pos,
		Distance:   distance,
		Trend:      trend,
	})
	return Accepted
}
