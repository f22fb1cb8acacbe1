package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/adrian-miasik/eat-or-yeet/core"
	"github.com/adrian-miasik/eat-or-yeet/events"
	"github.com/adrian-miasik/eat-or-yeet/status"
)

// System is updated once per clock tick after events and timers
type System interface {
	Update(ctx *GameContext, dt time.Duration)
}

// ClockScheduler runs game logic on a fixed tick
// Each tick: dispatch queued events, fire due timers, update systems
// All of it happens under GameContext.RunSafe, so handlers and timer callbacks never race
type ClockScheduler struct {
	ctx    *GameContext
	router *events.Router[*GameContext]

	systems      []System
	tickInterval time.Duration
	tickCount    atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	updateDone chan struct{}

	statTicks *atomic.Int64
}

// NewClockScheduler creates a scheduler with the given tick interval
// The returned channel receives a signal after each completed tick (non-blocking send)
func NewClockScheduler(ctx *GameContext, tickInterval time.Duration) (*ClockScheduler, <-chan struct{}) {
	updateDone := make(chan struct{}, 1)

	cs := &ClockScheduler{
		ctx:          ctx,
		router:       events.NewRouter[*GameContext](ctx.Queue),
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		updateDone:   updateDone,
		statTicks:    ctx.Status.Ints.Get(status.KeyEngineTicks),
	}
	return cs, updateDone
}

// RegisterEventHandler adds an event handler to router, must be called before Start()
func (cs *ClockScheduler) RegisterEventHandler(handler events.Handler[*GameContext]) {
	cs.router.Register(handler)
}

// SetSystems sets the systems updated each tick, must be called before Start()
func (cs *ClockScheduler) SetSystems(systems ...System) {
	cs.systems = systems
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the running tick to finish
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// TickCount returns the number of completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		cs.Step()

		select {
		case cs.updateDone <- struct{}{}:
		default:
		}

		// Events still flow while paused (reset must work), just less often
		next := cs.tickInterval
		if cs.ctx.IsPaused.Load() {
			next = cs.tickInterval * 2
		}
		timer.Reset(next)
	}
}

// Step executes one tick synchronously
// The loop calls it on every tick; tests call it directly with a mock clock
func (cs *ClockScheduler) Step() {
	cs.ctx.RunSafe(func() {
		cs.router.DispatchAll(cs.ctx)
		cs.ctx.Timers().RunDue()
		for _, s := range cs.systems {
			s.Update(cs.ctx, cs.tickInterval)
		}
	})
	cs.statTicks.Store(int64(cs.tickCount.Add(1)))
}

// DispatchEventsImmediately processes pending events without waiting for the next tick
func (cs *ClockScheduler) DispatchEventsImmediately() {
	cs.ctx.RunSafe(func() {
		cs.router.DispatchAll(cs.ctx)
	})
}
