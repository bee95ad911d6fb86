package bezier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDivideEmpty(t *testing.T) {
	dc := NewDivisionCache(100)

	assert.Empty(t, dc.Divide(Pt(0, 0), Pt(10, 10), 0))
	assert.Empty(t, dc.Divide(Pt(3, -7), Pt(1, 2), 0))
	assert.Empty(t, dc.Divide(Pt(3, -7), Pt(1, 2), -5))
}

func TestDivideLength(t *testing.T) {
	dc := NewDivisionCache(100)

	for _, p := range []int{1, 2, 50, 99} {
		assert.Len(t, dc.Divide(Pt(0, 0), Pt(10, 20), p), p)
	}

	assert.Len(t, dc.Divide(Pt(0, 0), Pt(10, 20), 100), 101)
	assert.Len(t, dc.Divide(Pt(0, 0), Pt(10, 20), 120), 121)
}

func TestDivideValues(t *testing.T) {
	dc := NewDivisionCache(100)

	d := dc.Divide(Pt(0, 0), Pt(100, 200), 3)
	assert.Equal(t, []Point{Pt(0, 0), Pt(1, 2), Pt(2, 4)}, d)

	d = dc.Divide(Pt(0, 0), Pt(100, 200), 100)
	assert.Equal(t, Pt(0, 0), d[0])
	assert.Equal(t, Pt(99, 198), d[99])
	assert.Equal(t, Pt(100, 200), d[100])
}

func TestDivideScaledByDivision(t *testing.T) {
	dc := NewDivisionCache(10)

	d := dc.Divide(Pt(0, 0), Pt(10, 0), 5)
	assert.Equal(t, Pt(4, 0), d[len(d)-1])

	d = dc.Divide(Pt(0, 0), Pt(10, 0), 10)
	assert.Equal(t, Pt(10, 0), d[len(d)-1])
}

func TestDivideMemoized(t *testing.T) {
	dc := NewDivisionCache(100)

	d1 := dc.Divide(Pt(1, 2), Pt(30, 40), 100)
	assert.Equal(t, 1, dc.Len())

	d2 := dc.Divide(Pt(1, 2), Pt(30, 40), 100)
	assert.Equal(t, 1, dc.Len())
	assert.Equal(t, d1, d2)

	d1[0] = Pt(-1, -1)
	d1 = append(d1, Pt(5, 5))

	d3 := dc.Divide(Pt(1, 2), Pt(30, 40), 100)
	assert.Len(t, d3, 101)
	assert.Equal(t, Pt(1, 2), d3[0])
	assert.NotEqual(t, d1, d3)

	dc.Divide(Pt(1, 2), Pt(30, 40), 99)
	assert.Equal(t, 2, dc.Len())
}

func TestDivideDefaultDivision(t *testing.T) {
	assert.Equal(t, DefaultDivision, NewDivisionCache(0).Division())
	assert.Equal(t, DefaultDivision, NewDivisionCache(-3).Division())
}
