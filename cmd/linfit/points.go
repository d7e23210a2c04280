package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	linfit "github.com/tphakala/go-linear-fit"
)

var errBadPoints = errors.New("invalid points")

// points holds eight samples of a line (dims 2) or a plane (dims 3).
type points struct {
	dims    int
	x, y, z linfit.Samples
}

// parseInline parses the comma-separated -x, -y and optional -z values.
func parseInline(xs, ys, zs string) (*points, error) {
	pts := &points{dims: lineDims}

	var err error
	if pts.x, err = parseSamples(xs); err != nil {
		return nil, fmt.Errorf("-x: %w", err)
	}
	if pts.y, err = parseSamples(ys); err != nil {
		return nil, fmt.Errorf("-y: %w", err)
	}
	if zs != "" {
		if pts.z, err = parseSamples(zs); err != nil {
			return nil, fmt.Errorf("-z: %w", err)
		}
		pts.dims = planeDims
	}
	return pts, nil
}

// parseSamples parses exactly PointCount comma-separated float32 values.
func parseSamples(s string) (linfit.Samples, error) {
	var out linfit.Samples
	fields := strings.Split(s, valueSeparator)
	if len(fields) != linfit.PointCount {
		return out, fmt.Errorf("%w: need %d values, got %d", errBadPoints, linfit.PointCount, len(fields))
	}
	for i, f := range fields {
		v, err := parseValue(f)
		if err != nil {
			return out, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseValue(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), float32Bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errBadPoints, err)
	}
	return float32(v), nil
}

// readCSV reads PointCount records of "x,y" or "x,y,z". Lines starting with
// '#' are ignored. Every record must have the same number of fields.
func readCSV(r io.Reader) (*points, error) {
	cr := csv.NewReader(r)
	cr.Comment = csvComment
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBadPoints, err)
	}
	if len(records) != linfit.PointCount {
		return nil, fmt.Errorf("%w: need %d rows, got %d", errBadPoints, linfit.PointCount, len(records))
	}

	dims := len(records[0])
	if dims != lineDims && dims != planeDims {
		return nil, fmt.Errorf("%w: rows must have %d or %d columns, got %d", errBadPoints, lineDims, planeDims, dims)
	}

	pts := &points{dims: dims}
	cols := []*linfit.Samples{&pts.x, &pts.y, &pts.z}
	for i, rec := range records {
		for j, field := range rec {
			v, err := parseValue(field)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", i+1, j+1, err)
			}
			cols[j][i] = v
		}
	}
	return pts, nil
}
