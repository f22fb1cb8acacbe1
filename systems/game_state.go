package systems

import (
	"log"
	"sync/atomic"

	"github.com/adrian-miasik/eat-or-yeet/constants"
	"github.com/adrian-miasik/eat-or-yeet/engine"
	"github.com/adrian-miasik/eat-or-yeet/events"
	"github.com/adrian-miasik/eat-or-yeet/status"
)

// GameStateSystem is the game-state controller: it supplies the win threshold and ends the game
// Ending pauses game time, which also freezes every pending bonus expiry
type GameStateSystem struct {
	ctx        *engine.GameContext
	scoreToWin int

	statEnded *atomic.Bool
	statToWin *atomic.Int64
	statTotal *atomic.Int64
}

// NewGameStateSystem creates the controller; a non-positive threshold uses the default
func NewGameStateSystem(ctx *engine.GameContext, scoreToWin int) *GameStateSystem {
	if scoreToWin <= 0 {
		scoreToWin = constants.DefaultScoreToWin
	}
	gs := &GameStateSystem{
		ctx:        ctx,
		scoreToWin: scoreToWin,
		statEnded:  ctx.Status.Bools.Get(status.KeyGameEnded),
		statToWin:  ctx.Status.Ints.Get(status.KeyScoreToWin),
		statTotal:  ctx.Status.Ints.Get(status.KeyScoreTotal),
	}
	gs.statToWin.Store(int64(scoreToWin))
	return gs
}

// ScoreToWin implements scoring.WinObserver
func (gs *GameStateSystem) ScoreToWin() int {
	return gs.scoreToWin
}

// EndGame implements scoring.WinObserver
func (gs *GameStateSystem) EndGame() {
	if !gs.statEnded.CompareAndSwap(false, true) {
		return
	}
	score := int(gs.statTotal.Load())
	log.Printf("GameStateSystem: game ended at %d (needed %d)", score, gs.scoreToWin)

	gs.ctx.PushEvent(events.EventGameEnded, &events.GameEndedPayload{
		Score:      score,
		ScoreToWin: gs.scoreToWin,
	})
	gs.ctx.Pause()
}

// Ended reports whether the current session has ended; safe from any goroutine
func (gs *GameStateSystem) Ended() bool {
	return gs.statEnded.Load()
}

// EventTypes implements events.Handler
func (gs *GameStateSystem) EventTypes() []events.EventType {
	return []events.EventType{events.EventGameReset}
}

// HandleEvent implements events.Handler
func (gs *GameStateSystem) HandleEvent(ctx *engine.GameContext, ev events.GameEvent) {
	if ev.Type == events.EventGameReset {
		gs.statEnded.Store(false)
		ctx.Resume()
	}
}
