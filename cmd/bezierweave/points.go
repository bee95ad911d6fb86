package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sgostarter/libbezier/bezier"
	"github.com/spf13/cast"
)

var errBadPoint = errors.New("bad point")

// parsePoints reads "x,y x,y ..." (separated by spaces or semicolons).
func parsePoints(s string) ([]bezier.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ';' || r == '\t' || r == '\n'
	})

	points := make([]bezier.Point, 0, len(fields))

	for _, field := range fields {
		ps := strings.Split(field, ",")
		if len(ps) != 2 {
			return nil, fmt.Errorf("%w: %q", errBadPoint, field)
		}

		x, err := cast.ToFloat64E(strings.TrimSpace(ps[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errBadPoint, field, err)
		}

		y, err := cast.ToFloat64E(strings.TrimSpace(ps[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errBadPoint, field, err)
		}

		points = append(points, bezier.Pt(x, y))
	}

	return points, nil
}
