package animator

import (
	"sync"
	"testing"
	"time"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libbezier/bezier"
	"github.com/stretchr/testify/assert"
)

type utObserver struct {
	lock   sync.Mutex
	frames []bezier.Frame
}

func (o *utObserver) OnFrame(frame bezier.Frame) {
	o.lock.Lock()
	defer o.lock.Unlock()

	o.frames = append(o.frames, frame)
}

func (o *utObserver) Frames() []bezier.Frame {
	o.lock.Lock()
	defer o.lock.Unlock()

	return append([]bezier.Frame(nil), o.frames...)
}

func TestAnimatorMaxFrames(t *testing.T) {
	session := bezier.NewSession(nil)
	assert.Nil(t, session.OnControlPointAdded(bezier.Pt(0, 0)))
	assert.Nil(t, session.OnControlPointAdded(bezier.Pt(50, 100)))
	assert.Nil(t, session.OnControlPointAdded(bezier.Pt(100, 0)))

	observer := &utObserver{}

	a := NewAnimator(session, Config{
		FrameInterval: time.Millisecond,
		Step:          0.02,
		MaxFrames:     30,
	}, observer, l.NewConsoleLoggerWrapper())
	a.Start()

	select {
	case <-a.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("animator did not finish")
	}

	a.TriggerStop()
	a.Wait()

	frames := observer.Frames()
	assert.Len(t, frames, 30)
	assert.EqualValues(t, 30, a.Frames())

	for idx, frame := range frames {
		assert.True(t, frame.HasCurrent)
		assert.InDelta(t, 0.02*float64(idx+1), frame.Elapsed, 1e-9)
	}
}

func TestAnimatorTriggerStop(t *testing.T) {
	session := bezier.NewSession(nil)

	var count int

	var lock sync.Mutex

	a := NewAnimator(session, Config{FrameInterval: time.Millisecond}, FNObserver(func(frame bezier.Frame) {
		lock.Lock()
		defer lock.Unlock()

		count++

		assert.False(t, frame.HasCurrent)
	}), nil)
	a.Start()

	time.Sleep(50 * time.Millisecond)

	a.TriggerStop()
	a.Wait()

	<-a.Done()

	lock.Lock()
	defer lock.Unlock()

	assert.Greater(t, count, 0)
	assert.EqualValues(t, count, a.Frames())
}
