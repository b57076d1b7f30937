// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package coordinate recognizes and extracts coordinate announcements of the
// form "Coordinates: x:<num> y:<num> z:<num>" from free-form text.
//
// A <num> token is a run of digits or minus signs, any single character, and
// one or more digits. The token grammar is deliberately loose: it accepts
// strings such as "1-2.5" or "3x4" that are not decimal numbers. Parse turns
// such tokens into a NumberError instead of failing hard.
//
// Digits are ASCII only: `\d` in Go's RE2 syntax does not match other
// Unicode decimal digits, so text such as "x:١.٥" holds no token.
package coordinate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/pdiddy/position-helper/pkg/types"
)

const numberPattern = `[\d-]+.\d+`

var (
	announcementRe = regexp.MustCompile(`Coordinates: x:` + numberPattern + ` y:` + numberPattern + ` z:` + numberPattern)
	numberRe       = regexp.MustCompile(numberPattern)
)

// ErrParsing reports that the text did not decompose into the expected
// number of numeric fields.
var ErrParsing = errors.New("parsing error")

// NumberError reports a token that matched the number grammar but is not a
// decimal number.
type NumberError struct {
	Token string
	Err   error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("token %q is not a decimal number: %v", e.Token, e.Err)
}

func (e *NumberError) Unwrap() error { return e.Err }

// IsValid reports whether text contains a coordinate announcement. It has no
// side effects and accepts any input, including empty or non-UTF-8 text.
func IsValid(text string) bool {
	return announcementRe.MatchString(text)
}

// Parse extracts a coordinate from text by the position of numeric tokens:
// the first token is x, the second y, the third z. Labels are ignored.
//
// More than three tokens yields ErrParsing. Fewer than three is not an
// error; the missing axes stay zero. Callers that need all three axes should
// gate with IsValid first or use ParseStrict.
func Parse(text string) (types.Coordinate, error) {
	values, err := scan(text)
	if err != nil {
		return types.Coordinate{}, err
	}
	var c types.Coordinate
	for i, v := range values {
		switch i {
		case 0:
			c.X = v
		case 1:
			c.Y = v
		case 2:
			c.Z = v
		}
	}
	return c, nil
}

// ParseStrict is Parse without the zero default: exactly three numeric
// tokens are required.
func ParseStrict(text string) (types.Coordinate, error) {
	values, err := scan(text)
	if err != nil {
		return types.Coordinate{}, err
	}
	if len(values) != 3 {
		return types.Coordinate{}, fmt.Errorf("found %d numeric fields, want 3: %w", len(values), ErrParsing)
	}
	return types.Coordinate{X: values[0], Y: values[1], Z: values[2]}, nil
}

func scan(text string) ([]float64, error) {
	tokens := numberRe.FindAllString(text, -1)
	if len(tokens) > 3 {
		return nil, fmt.Errorf("found %d numeric fields, want at most 3: %w", len(tokens), ErrParsing)
	}

	values := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := parseNumber(tok)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// parseNumber converts a matched token. Out-of-range magnitudes such as
// "9e999" saturate to ±Inf rather than failing.
func parseNumber(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, nil
		}
		return 0, &NumberError{Token: tok, Err: err}
	}
	return v, nil
}

// ParseReference parses three decimal strings into a coordinate, as given on
// the command line.
func ParseReference(args []string) (types.Coordinate, error) {
	if len(args) != 3 {
		return types.Coordinate{}, fmt.Errorf("got %d values, want 3 (x y z)", len(args))
	}
	var vals [3]float64
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return types.Coordinate{}, fmt.Errorf("invalid value %q: %w", a, err)
		}
		vals[i] = v
	}
	return types.Coordinate{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}
