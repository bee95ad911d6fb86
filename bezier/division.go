package bezier

import (
	"fmt"

	"github.com/patrickmn/go-cache"
	"golang.org/x/exp/slices"
)

const DefaultDivision = 100

// DivisionCache memoizes Divide results by (start, end, p). Entries never
// expire; the key space is bounded by the control points and division+1.
type DivisionCache struct {
	division int
	cached   *cache.Cache
}

func NewDivisionCache(division int) *DivisionCache {
	if division <= 0 {
		division = DefaultDivision
	}

	return &DivisionCache{
		division: division,
		cached:   cache.New(cache.NoExpiration, 0),
	}
}

func (dc *DivisionCache) Division() int {
	return dc.division
}

func (dc *DivisionCache) Len() int {
	return dc.cached.ItemCount()
}

func (dc *DivisionCache) genKey(start, end Point, p int) string {
	return fmt.Sprintf("%v,%v,%v,%v,%d", start.X, start.Y, end.X, end.Y, p)
}

// Divide returns p points evenly spaced by 1/division from start toward end,
// start included. When p reaches division the true endpoint is appended, so
// the result has p+1 points. p <= 0 yields an empty result.
//
// The returned slice is owned by the caller.
func (dc *DivisionCache) Divide(start, end Point, p int) []Point {
	if p <= 0 {
		return []Point{}
	}

	key := dc.genKey(start, end, p)

	if i, ok := dc.cached.Get(key); ok {
		// nolint:forcetypeassert
		return slices.Clone(i.([]Point))
	}

	division := dc.divide(start, end, p)
	dc.cached.Set(key, division, cache.NoExpiration)

	return slices.Clone(division)
}

func (dc *DivisionCache) divide(start, end Point, p int) []Point {
	n := p
	if p >= dc.division {
		n++
	}

	division := make([]Point, 0, n)

	stepX := (end.X - start.X) / float64(dc.division)
	stepY := (end.Y - start.Y) / float64(dc.division)

	for i := 0; i < p; i++ {
		division = append(division, Point{
			X: stepX*float64(i) + start.X,
			Y: stepY*float64(i) + start.Y,
		})
	}

	if p >= dc.division {
		division = append(division, end)
	}

	return division
}
