package core

import "fmt"

// InputFormatError reports a coordinate string or point set that does not
// hold exactly one pattern's worth of integer pairs.
type InputFormatError struct {
	Input  string
	Reason string
}

func (e *InputFormatError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

// DegenerateGeometryError reports a point set whose farthest pair has zero
// length, so no rotation or scale can be derived from it.
type DegenerateGeometryError struct {
	Op string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("%s: degenerate point set, farthest pair has zero length", e.Op)
}

// SweepExhaustedError reports a scale sweep that never produced a score.
type SweepExhaustedError struct {
	Start float64
	Stop  float64
	Step  float64
}

func (e *SweepExhaustedError) Error() string {
	return fmt.Sprintf("scale sweep (%g, %g] step %g found no scoring factor", e.Start, e.Stop, e.Step)
}
