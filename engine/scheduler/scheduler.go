// Package scheduler drives the frame loop. It owns the animation clock,
// fires the frame callback at the configured rate, and implements the
// visibility pause and single-frame behavior for reduced motion.
package scheduler

import (
	"sync"
	"time"
)

// State describes the lifecycle phase of a FrameScheduler.
type State int

const (
	// StateIdle means the scheduler has been created or stopped and is not
	// producing frames.
	StateIdle State = iota
	// StateRunning means the frame loop is active (or, with animation
	// disabled, the single still frame has been produced).
	StateRunning
	// StateDestroyed means the scheduler has been torn down and can never
	// run again.
	StateDestroyed
)

// FrameCallback is invoked once per produced frame with the elapsed time in
// seconds since the most recent Start.
type FrameCallback func(elapsed float64)

// frameScheduler implements the FrameScheduler interface.
type frameScheduler struct {
	mu    sync.Mutex
	state State

	frameRate    time.Duration
	animate      bool
	callback     FrameCallback
	frameSkipped func()

	clockOrigin time.Time
	visible     bool

	quitChannel chan struct{}
	wg          sync.WaitGroup

	visibilitySource VisibilitySource
	unsubscribe      func()

	// now is swapped out by tests to drive the clock deterministically.
	now func() time.Time
}

// FrameScheduler paces frame production for the engine.
type FrameScheduler interface {
	// Start resets the animation clock to zero and begins producing frames.
	// With animation disabled it produces exactly one frame synchronously.
	// Calling Start while already running or after Destroy is a no-op.
	Start()

	// Stop halts frame production. The next Start begins a fresh clock at
	// zero. Safe to call when not running.
	Stop()

	// Destroy stops the scheduler and releases its visibility subscription.
	// The scheduler is unusable afterwards. Safe to call multiple times.
	Destroy()

	// State returns the current lifecycle state.
	//
	// Returns:
	//   - State: one of StateIdle, StateRunning, StateDestroyed
	State() State
}

var _ FrameScheduler = &frameScheduler{}

// New creates a FrameScheduler that invokes callback for every produced
// frame. By default the scheduler animates at 60 frames per second and
// considers the surface visible.
//
// Parameters:
//   - callback: function invoked per frame with the elapsed time in seconds
//   - options: functional options for rate, animation, and visibility wiring
//
// Returns:
//   - FrameScheduler: the newly created scheduler
func New(callback FrameCallback, options ...BuilderOption) FrameScheduler {
	s := &frameScheduler{
		state:     StateIdle,
		frameRate: time.Second / 60,
		animate:   true,
		callback:  callback,
		visible:   true,
		now:       time.Now,
	}

	for _, opt := range options {
		opt(s)
	}

	if s.visibilitySource != nil {
		s.unsubscribe = s.visibilitySource(func(visible bool) {
			s.mu.Lock()
			s.visible = visible
			s.mu.Unlock()
		})
	}

	return s
}

func (s *frameScheduler) Start() {
	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return
	}
	s.state = StateRunning
	s.clockOrigin = s.now()
	s.quitChannel = make(chan struct{})

	if !s.animate {
		// Reduced motion renders a single still frame at time zero and
		// settles there without launching the loop.
		cb := s.callback
		s.mu.Unlock()
		if cb != nil {
			cb(0)
		}
		return
	}

	quit := s.quitChannel
	s.mu.Unlock()

	s.wg.Add(1)
	go s.handleFrames(quit)
}

func (s *frameScheduler) Stop() {
	s.mu.Lock()
	if s.state != StateRunning {
		s.mu.Unlock()
		return
	}
	s.state = StateIdle
	quit := s.quitChannel
	s.quitChannel = nil
	s.mu.Unlock()

	if quit != nil {
		close(quit)
	}
	s.wg.Wait()
}

func (s *frameScheduler) Destroy() {
	s.Stop()

	s.mu.Lock()
	if s.state == StateDestroyed {
		s.mu.Unlock()
		return
	}
	s.state = StateDestroyed
	unsub := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

func (s *frameScheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// handleFrames runs the paced frame loop in its own goroutine.
// Exits when the quit channel passed at launch is closed, so a stale loop
// from a previous Start can never race a fresh one.
func (s *frameScheduler) handleFrames(quit chan struct{}) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.frameRate)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			s.step()
		}
	}
}

// step produces one frame if the scheduler is running, animating, and the
// surface is visible. With animation disabled the single still frame was
// already rendered by Start, so ticks never produce more. While hidden the
// clock keeps advancing but no callback fires, so the animation resumes at
// the correct phase when visibility returns.
func (s *frameScheduler) step() {
	s.mu.Lock()
	if s.state != StateRunning || !s.animate {
		s.mu.Unlock()
		return
	}
	if !s.visible {
		skipped := s.frameSkipped
		s.mu.Unlock()
		if skipped != nil {
			skipped()
		}
		return
	}
	elapsed := s.now().Sub(s.clockOrigin).Seconds()
	cb := s.callback
	s.mu.Unlock()

	if cb != nil {
		cb(elapsed)
	}
}
