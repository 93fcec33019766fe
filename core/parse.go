package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/snowshoe/tagmatch/geometry"
)

// ParsePointSet decodes "x1,y1,x2,y2,..." into exactly size points.
func ParsePointSet(input string, size int) (geometry.PointSet, error) {
	tokens := strings.Split(input, ",")
	if len(tokens) != size*2 {
		return nil, &InputFormatError{
			Input:  input,
			Reason: fmt.Sprintf("expected %d integers, got %d", size*2, len(tokens)),
		}
	}

	points := make(geometry.PointSet, size)
	for i := 0; i < size; i++ {
		x, err := parseCoordinate(input, tokens[i*2])
		if err != nil {
			return nil, err
		}
		y, err := parseCoordinate(input, tokens[i*2+1])
		if err != nil {
			return nil, err
		}
		points[i] = geometry.NewPoint(float64(x), float64(y))
	}
	return points, nil
}

func parseCoordinate(input string, token string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, &InputFormatError{
			Input:  input,
			Reason: fmt.Sprintf("%q is not an integer", strings.TrimSpace(token)),
		}
	}
	return v, nil
}

// FormatPointSet is the inverse of ParsePointSet. Coordinates are rounded
// to the nearest integer.
func FormatPointSet(points geometry.PointSet) string {
	var sb strings.Builder
	for i, p := range points {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%.0f,%.0f", p.X, p.Y)
	}
	return sb.String()
}

func checkArity(points geometry.PointSet, size int) error {
	if len(points) != size {
		return &InputFormatError{
			Reason: fmt.Sprintf("expected %d points, got %d", size, len(points)),
		}
	}
	return nil
}
