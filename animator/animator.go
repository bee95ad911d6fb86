package animator

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libbezier/bezier"
	"github.com/sgostarter/libeasygo/routineman"
)

// Animator ticks a session on a single routine at a fixed cadence and hands
// every frame to the observer.
type Animator struct {
	logger   l.Wrapper
	cfg      Config
	ticker   Ticker
	observer Observer

	routineMan routineman.RoutineMan
	frames     atomic.Uint64
	done       chan struct{}
}

func NewAnimator(ticker Ticker, cfg Config, observer Observer, logger l.Wrapper) *Animator {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "Animator"))

	if ticker == nil {
		logger.Fatal("no ticker")
	}

	if observer == nil {
		observer = FNObserver(func(bezier.Frame) {})
	}

	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = bezier.DefaultFrameInterval
	}

	if cfg.Step <= 0 {
		cfg.Step = bezier.DefaultStep
	}

	return &Animator{
		logger:     logger,
		cfg:        cfg,
		ticker:     ticker,
		observer:   observer,
		routineMan: routineman.NewRoutineMan(context.Background(), logger),
		done:       make(chan struct{}),
	}
}

func (impl *Animator) Start() {
	impl.routineMan.StartRoutine(impl.frameRoutine, "frameRoutine")
}

func (impl *Animator) TriggerStop() {
	impl.routineMan.TriggerStop()
}

func (impl *Animator) Wait() {
	impl.routineMan.Wait()
}

// Done is closed once the frame routine exits.
func (impl *Animator) Done() <-chan struct{} {
	return impl.done
}

func (impl *Animator) Frames() uint64 {
	return impl.frames.Load()
}

func (impl *Animator) frameRoutine(ctx context.Context, _ func() bool) {
	defer close(impl.done)

	impl.logger.WithFields(l.StringField("interval", impl.cfg.FrameInterval.String())).Debug("enter")
	defer impl.logger.Debug("leave")

	ticker := time.NewTicker(impl.cfg.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			frame := impl.ticker.OnTick(impl.cfg.Step)
			impl.observer.OnFrame(frame)

			n := impl.frames.Add(1)
			if impl.cfg.MaxFrames > 0 && n >= impl.cfg.MaxFrames {
				return
			}
		}
	}
}
