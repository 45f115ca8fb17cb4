package main

import (
	"strconv"
	"strings"

	"github.com/bytearena/stagelimits/common/boundary"
	"github.com/bytearena/stagelimits/common/utils/vector"
	"github.com/pkg/errors"
)

// parsePoint reads "x,y".
func parsePoint(str string) (vector.Vector2, error) {
	parts := strings.Split(strings.TrimSpace(str), ",")
	if len(parts) != 2 {
		return vector.Vector2{}, errors.Errorf("Invalid point %q, expected x,y", str)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return vector.Vector2{}, errors.Wrapf(err, "Invalid x coordinate in %q", str)
	}

	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return vector.Vector2{}, errors.Wrapf(err, "Invalid y coordinate in %q", str)
	}

	return vector.MakeVector2(x, y), nil
}

// parsePolygon reads whitespace-separated "x,y" vertices.
func parsePolygon(str string) (boundary.Polygon, error) {
	fields := strings.Fields(str)
	vertices := make([]vector.Vector2, len(fields))

	for i, field := range fields {
		point, err := parsePoint(field)
		if err != nil {
			return boundary.Polygon{}, errors.Wrapf(err, "Invalid polygon vertex %d", i)
		}

		vertices[i] = point
	}

	return boundary.NewPolygon(vertices)
}

// parseRayQuery reads a batch line: "x,y angle".
func parseRayQuery(line string) (vector.Vector2, float64, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return vector.Vector2{}, 0, errors.Errorf("Invalid query %q, expected \"x,y angle\"", line)
	}

	origin, err := parsePoint(fields[0])
	if err != nil {
		return vector.Vector2{}, 0, err
	}

	angle, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return vector.Vector2{}, 0, errors.Wrapf(err, "Invalid angle in %q", line)
	}

	return origin, angle, nil
}
