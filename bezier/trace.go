package bezier

import (
	"golang.org/x/exp/slices"
)

// TraceStore maps a subdivision count to the curve point produced at it.
// Recording an existing count overwrites the old point, so the trace never
// holds more than division+1 entries.
type TraceStore struct {
	points map[int]Point
}

func NewTraceStore() *TraceStore {
	return &TraceStore{
		points: make(map[int]Point),
	}
}

func (ts *TraceStore) Record(p int, pt Point) {
	ts.points[p] = pt
}

func (ts *TraceStore) Clear() {
	ts.points = make(map[int]Point)
}

func (ts *TraceStore) Len() int {
	return len(ts.points)
}

func (ts *TraceStore) Get(p int) (pt Point, ok bool) {
	pt, ok = ts.points[p]

	return
}

func (ts *TraceStore) keys() []int {
	keys := make([]int, 0, len(ts.points))
	for p := range ts.points {
		keys = append(keys, p)
	}

	slices.Sort(keys)

	return keys
}

// OrderedPoints returns the recorded points sorted by ascending key.
func (ts *TraceStore) OrderedPoints() []Point {
	keys := ts.keys()

	points := make([]Point, 0, len(keys))
	for _, p := range keys {
		points = append(points, ts.points[p])
	}

	return points
}

// SplitAt partitions OrderedPoints at the first point equal to pt. before
// holds everything ahead of it, from starts with it. If no point matches,
// before is empty and from is the whole trace.
func (ts *TraceStore) SplitAt(pt Point) (before, from []Point) {
	points := ts.OrderedPoints()

	idx := slices.IndexFunc(points, pt.Equal)
	if idx < 0 {
		idx = 0
	}

	before = slices.Clone(points[:idx])
	from = points[idx:]

	return
}
