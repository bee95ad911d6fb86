package bezier

import (
	"strconv"
	"sync"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/l"
	"golang.org/x/exp/slices"
)

// Frame is everything a renderer needs for one animation tick.
type Frame struct {
	Elapsed float64
	P       int

	// Current is valid only when HasCurrent is true.
	Current    Point
	HasCurrent bool

	TraceBefore []Point
	TraceFrom   []Point
	Segments    []Segment

	ControlPoints []Point
}

// Session owns the control points, the clock, the trace and the division
// cache of one curve. It is safe to add points while another goroutine ticks.
type Session struct {
	logger l.Wrapper
	id     string

	divisions  *DivisionCache
	reducer    *Reducer
	oscillator *Oscillator

	lock          sync.Mutex
	controlPoints []Point
	trace         *TraceStore
}

func NewSession(logger l.Wrapper, options ...Option) *Session {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	id := strconv.FormatUint(snowflake.ID(), 36)

	logger = logger.WithFields(l.StringField(l.ClsKey, "Session"), l.StringField("session", id))

	opts := optionNew(options...)

	if opts.division <= 0 {
		logger.WithFields(l.IntField("division", opts.division)).Error("invalid division, use default")

		opts.division = DefaultDivision
	}

	if opts.step <= 0 {
		logger.Error("invalid step, use default")

		opts.step = DefaultStep
	}

	divisions := opts.divisions
	if divisions == nil {
		divisions = NewDivisionCache(opts.division)
	}

	return &Session{
		logger:     logger,
		id:         id,
		divisions:  divisions,
		reducer:    NewReducer(divisions),
		oscillator: NewOscillator(opts.division, opts.step),
		trace:      NewTraceStore(),
	}
}

func NewSessionFromConfig(cfg Config, logger l.Wrapper) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return NewSession(logger, cfg.SessionOptions()...), nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Division() int {
	return s.divisions.Division()
}

// OnControlPointAdded appends pt and restarts the curve: the trace is
// cleared and elapsed time goes back to 0.
func (s *Session) OnControlPointAdded(pt Point) error {
	if !pt.IsFinite() {
		s.logger.WithFields(l.ErrorField(ErrNonFinitePoint), l.StringField("point", pt.String())).
			Error("control point rejected")

		return ErrNonFinitePoint
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.controlPoints = append(s.controlPoints, pt)
	s.trace.Clear()
	s.oscillator.Reset()

	s.logger.WithFields(l.StringField("point", pt.String()), l.IntField("count", len(s.controlPoints))).
		Debug("control point added, trace reset")

	return nil
}

func (s *Session) ControlPoints() []Point {
	s.lock.Lock()
	defer s.lock.Unlock()

	return slices.Clone(s.controlPoints)
}

// OnTick advances the clock by dt (the configured step when dt <= 0), reduces
// the control points at the new subdivision count and records the result.
func (s *Session) OnTick(dt float64) Frame {
	s.lock.Lock()
	defer s.lock.Unlock()

	elapsed, p := s.oscillator.Tick(dt)

	frame := Frame{
		Elapsed:       elapsed,
		P:             p,
		ControlPoints: slices.Clone(s.controlPoints),
	}

	current, segments, ok := s.reducer.ReduceEx(s.controlPoints, p)
	if !ok {
		frame.TraceFrom = s.trace.OrderedPoints()

		return frame
	}

	s.trace.Record(p, current)

	frame.Current = current
	frame.HasCurrent = true
	frame.Segments = segments
	frame.TraceBefore, frame.TraceFrom = s.trace.SplitAt(current)

	return frame
}

// Trace returns the recorded curve points in ascending subdivision order.
func (s *Session) Trace() []Point {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.trace.OrderedPoints()
}
