package engine

import (
	"sync"
	"sync/atomic"

	"github.com/adrian-miasik/eat-or-yeet/events"
	"github.com/adrian-miasik/eat-or-yeet/status"
)

// GameContext holds the session-wide collaborators shared by systems
// Everything that mutates scoring state runs under RunSafe on the scheduler's logical thread
type GameContext struct {
	// Game time source, pausable in the sandbox, mocked in tests
	Clock TimeProvider

	// Producers on any goroutine push here; the scheduler drains it
	Queue *events.EventQueue

	// Metrics polled by display layers
	Status *status.Registry

	IsPaused atomic.Bool

	timers      *TimerQueue
	updateMutex sync.Mutex
	frameNumber atomic.Int64
}

// NewGameContext creates a context measuring game time with clock
func NewGameContext(clock TimeProvider) *GameContext {
	return &GameContext{
		Clock:  clock,
		Queue:  events.NewEventQueue(),
		Status: status.NewRegistry(),
		timers: NewTimerQueue(clock),
	}
}

// Timers returns the session timer queue
// Only call from the scheduler's logical thread
func (ctx *GameContext) Timers() *TimerQueue {
	return ctx.timers
}

// ResetTimers discards every pending callback and installs a fresh queue
// Used when a new session replaces the old one wholesale
func (ctx *GameContext) ResetTimers() *TimerQueue {
	ctx.timers = NewTimerQueue(ctx.Clock)
	return ctx.timers
}

// RunSafe executes fn while holding the update mutex
func (ctx *GameContext) RunSafe(fn func()) {
	ctx.updateMutex.Lock()
	defer ctx.updateMutex.Unlock()
	fn()
}

// PushEvent stamps and enqueues an event; safe from any goroutine
func (ctx *GameContext) PushEvent(eventType events.EventType, payload any) {
	ctx.Queue.Push(events.GameEvent{
		Type:      eventType,
		Payload:   payload,
		Frame:     ctx.frameNumber.Load(),
		Timestamp: ctx.Clock.Now(),
	})
}

// Pause freezes game time if the clock supports it
func (ctx *GameContext) Pause() {
	ctx.IsPaused.Store(true)
	if p, ok := ctx.Clock.(Pauser); ok {
		p.Pause()
	}
}

// Resume restarts game time
func (ctx *GameContext) Resume() {
	if p, ok := ctx.Clock.(Pauser); ok {
		p.Resume()
	}
	ctx.IsPaused.Store(false)
}

// GetFrameNumber returns the current frame number
func (ctx *GameContext) GetFrameNumber() int64 {
	return ctx.frameNumber.Load()
}

// IncrementFrameNumber advances the frame counter and returns the new value
func (ctx *GameContext) IncrementFrameNumber() int64 {
	return ctx.frameNumber.Add(1)
}
