package bezier

import "math"

const DefaultStep = 0.02

// Oscillator turns elapsed logical time into a subdivision count that swings
// between division and 0 and back once every 2π.
type Oscillator struct {
	division int
	step     float64
	elapsed  float64
}

func NewOscillator(division int, step float64) *Oscillator {
	if division <= 0 {
		division = DefaultDivision
	}

	if step <= 0 {
		step = DefaultStep
	}

	return &Oscillator{
		division: division,
		step:     step,
	}
}

// PAt returns round((cos(t mod 2π) + 1) * division / 2).
func PAt(t float64, division int) int {
	return int(math.Round((math.Cos(math.Mod(t, 2*math.Pi)) + 1) * float64(division) / 2))
}

// Tick advances elapsed time by dt, or by the configured step when dt <= 0.
func (o *Oscillator) Tick(dt float64) (elapsed float64, p int) {
	if dt <= 0 {
		dt = o.step
	}

	o.elapsed += dt

	return o.elapsed, o.P()
}

func (o *Oscillator) P() int {
	return PAt(o.elapsed, o.division)
}

func (o *Oscillator) Elapsed() float64 {
	return o.elapsed
}

func (o *Oscillator) Step() float64 {
	return o.step
}

func (o *Oscillator) Reset() {
	o.elapsed = 0
}
