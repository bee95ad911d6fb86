package bezier

import (
	"fmt"
	"math"
)

// Point is an immutable 2D coordinate. It is always passed by value.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Lerp moves from pt toward o by the fraction t.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{
		X: (o.X-pt.X)*t + pt.X,
		Y: (o.Y-pt.Y)*t + pt.Y,
	}
}

// Equal compares by value, exactly.
func (pt Point) Equal(o Point) bool {
	return pt.X == o.X && pt.Y == o.Y
}

func (pt Point) IsFinite() bool {
	return !math.IsNaN(pt.X) && !math.IsInf(pt.X, 0) &&
		!math.IsNaN(pt.Y) && !math.IsInf(pt.Y, 0)
}

// Segment is one straight edge of a reduction level together with the
// division samples computed along it.
type Segment struct {
	Level    int     `json:"level"`
	Start    Point   `json:"start"`
	End      Point   `json:"end"`
	Division []Point `json:"division,omitempty"`
}
