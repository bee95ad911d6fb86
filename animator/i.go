package animator

import (
	"time"

	"github.com/sgostarter/libbezier/bezier"
)

type Ticker interface {
	OnTick(dt float64) bezier.Frame
}

type Observer interface {
	OnFrame(frame bezier.Frame)
}

type FNObserver func(frame bezier.Frame)

func (fn FNObserver) OnFrame(frame bezier.Frame) {
	fn(frame)
}

type Config struct {
	FrameInterval time.Duration
	Step          float64

	// MaxFrames stops the animator after that many frames. 0 runs until
	// TriggerStop.
	MaxFrames uint64
}
