package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests advance the scheduler clock by hand.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// newTestScheduler builds a scheduler whose ticker fires far too slowly to
// interfere with the test, so frames are produced only via explicit step calls.
func newTestScheduler(cb FrameCallback, options ...BuilderOption) (*frameScheduler, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	options = append([]BuilderOption{WithFrameRate(0.001)}, options...)
	s := New(cb, options...).(*frameScheduler)
	s.now = clock.now
	return s, clock
}

func TestStartIsIdempotent(t *testing.T) {
	s, _ := newTestScheduler(nil)
	defer s.Destroy()

	assert.Equal(t, StateIdle, s.State())
	s.Start()
	assert.Equal(t, StateRunning, s.State())
	s.Start()
	assert.Equal(t, StateRunning, s.State())
}

func TestStepReportsElapsedSinceStart(t *testing.T) {
	var got []float64
	s, clock := newTestScheduler(func(elapsed float64) {
		got = append(got, elapsed)
	})
	defer s.Destroy()

	s.Start()
	clock.advance(250 * time.Millisecond)
	s.step()
	clock.advance(250 * time.Millisecond)
	s.step()

	require.Len(t, got, 2)
	assert.InDelta(t, 0.25, got[0], 1e-9)
	assert.InDelta(t, 0.5, got[1], 1e-9)
}

func TestStopThenStartResetsClock(t *testing.T) {
	var got []float64
	s, clock := newTestScheduler(func(elapsed float64) {
		got = append(got, elapsed)
	})
	defer s.Destroy()

	s.Start()
	clock.advance(5 * time.Second)
	s.step()
	s.Stop()
	assert.Equal(t, StateIdle, s.State())

	// A stopped scheduler produces no frames.
	s.step()
	require.Len(t, got, 1)

	s.Start()
	clock.advance(100 * time.Millisecond)
	s.step()

	require.Len(t, got, 2)
	assert.InDelta(t, 0.1, got[1], 1e-9, "clock restarts from zero on each Start")
}

func TestReducedMotionRendersSingleFrame(t *testing.T) {
	var got []float64
	s, _ := newTestScheduler(func(elapsed float64) {
		got = append(got, elapsed)
	}, WithAnimate(false))
	defer s.Destroy()

	s.Start()
	require.Len(t, got, 1)
	assert.Zero(t, got[0], "still frame is rendered at time zero")
	assert.Equal(t, StateRunning, s.State())

	// No loop is running, so nothing further is produced.
	s.step()
	assert.Len(t, got, 1)

	// A fresh Start produces exactly one more frame.
	s.Stop()
	s.Start()
	assert.Len(t, got, 2)
}

func TestHiddenSurfaceSkipsFramesButKeepsClock(t *testing.T) {
	var onChange func(visible bool)
	source := func(cb func(visible bool)) func() {
		onChange = cb
		return func() {}
	}

	var got []float64
	s, clock := newTestScheduler(func(elapsed float64) {
		got = append(got, elapsed)
	}, WithVisibilitySource(VisibilitySource(source)))
	defer s.Destroy()
	require.NotNil(t, onChange)

	s.Start()
	onChange(false)
	clock.advance(time.Second)
	s.step()
	assert.Empty(t, got, "no frames while hidden")

	onChange(true)
	clock.advance(time.Second)
	s.step()
	require.Len(t, got, 1)
	assert.InDelta(t, 2.0, got[0], 1e-9, "clock kept advancing while hidden")
}

func TestHiddenTicksReportSkips(t *testing.T) {
	var onChange func(visible bool)
	source := func(cb func(visible bool)) func() {
		onChange = cb
		return func() {}
	}

	skips := 0
	s, _ := newTestScheduler(nil,
		WithVisibilitySource(VisibilitySource(source)),
		WithFrameSkippedCallback(func() { skips++ }),
	)
	defer s.Destroy()
	require.NotNil(t, onChange)

	s.Start()
	onChange(false)
	s.step()
	s.step()
	assert.Equal(t, 2, skips)

	onChange(true)
	s.step()
	assert.Equal(t, 2, skips, "visible ticks render instead of skipping")
}

func TestDestroyUnsubscribesAndBlocksRestart(t *testing.T) {
	unsubscribed := 0
	source := func(cb func(visible bool)) func() {
		return func() { unsubscribed++ }
	}

	s, _ := newTestScheduler(nil, WithVisibilitySource(VisibilitySource(source)))
	s.Start()
	s.Destroy()

	assert.Equal(t, StateDestroyed, s.State())
	assert.Equal(t, 1, unsubscribed)

	s.Destroy()
	assert.Equal(t, 1, unsubscribed, "second Destroy is a no-op")

	s.Start()
	assert.Equal(t, StateDestroyed, s.State())
}

func TestFrameRateOption(t *testing.T) {
	s := New(nil, WithFrameRate(30)).(*frameScheduler)
	defer s.Destroy()
	assert.Equal(t, time.Second/30, s.frameRate)

	def := New(nil, WithFrameRate(0)).(*frameScheduler)
	defer def.Destroy()
	assert.Equal(t, time.Second/60, def.frameRate)
}
