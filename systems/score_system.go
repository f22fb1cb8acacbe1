package systems

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/adrian-miasik/eat-or-yeet/catalog"
	"github.com/adrian-miasik/eat-or-yeet/engine"
	"github.com/adrian-miasik/eat-or-yeet/events"
	"github.com/adrian-miasik/eat-or-yeet/scoring"
	"github.com/adrian-miasik/eat-or-yeet/status"
)

// ScoreSystem binds the scoring engine to the event router
// Collections and bonus requests arrive as events; score and multiplier state leave as
// status metrics and EventScoreChanged / EventBonus* notifications
type ScoreSystem struct {
	ctx      *engine.GameContext
	observer scoring.WinObserver

	engine *scoring.Engine
	ledger *scoring.Ledger

	// Cached metric pointers
	statTotal    *atomic.Int64
	statDelta    *atomic.Int64
	statActive   *atomic.Int64
	statRejected *atomic.Int64
	statGlobal   *status.AtomicFloat
	statCategory [catalog.CategoryCount]*status.AtomicFloat
	statLastFood *status.AtomicString
}

// NewScoreSystem creates a score system for a fresh session
// observer may be nil, in which case no win check happens
func NewScoreSystem(ctx *engine.GameContext, observer scoring.WinObserver) *ScoreSystem {
	s := &ScoreSystem{
		ctx:          ctx,
		observer:     observer,
		statTotal:    ctx.Status.Ints.Get(status.KeyScoreTotal),
		statDelta:    ctx.Status.Ints.Get(status.KeyScoreDelta),
		statActive:   ctx.Status.Ints.Get(status.KeyBonusActive),
		statRejected: ctx.Status.Ints.Get(status.KeyBonusRejected),
		statGlobal:   ctx.Status.Floats.Get(status.KeyMultiplierGlobal),
		statLastFood: ctx.Status.Strings.Get(status.KeyLastFood),
	}
	for _, c := range catalog.Categories() {
		s.statCategory[c] = ctx.Status.Floats.Get(status.MultiplierKey(c.String()))
	}
	s.newSession(ctx.Timers())
	return s
}

// newSession replaces ledger and engine; bonuses of the previous session go with its timer queue
func (s *ScoreSystem) newSession(timers *engine.TimerQueue) {
	s.ledger = scoring.NewLedger(timers)
	s.ledger.OnExpire(s.onBonusExpired)

	opts := []scoring.Option{scoring.WithListener(s.onScoreChanged)}
	if s.observer != nil {
		opts = append(opts, scoring.WithWinObserver(s.observer))
	}
	s.engine = scoring.NewEngine(s.ledger, opts...)

	s.statTotal.Store(0)
	s.statDelta.Store(0)
	s.statLastFood.Store("")
	s.publishMultipliers()
}

// Engine returns the current session's scoring engine
// Only call from the scheduler's logical thread (handlers, systems, RunSafe)
func (s *ScoreSystem) Engine() *scoring.Engine {
	return s.engine
}

// EventTypes implements events.Handler
func (s *ScoreSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventFoodCollected,
		events.EventGlobalBonusRequest,
		events.EventCategoryBonusRequest,
		events.EventGameReset,
	}
}

// HandleEvent implements events.Handler
func (s *ScoreSystem) HandleEvent(ctx *engine.GameContext, ev events.GameEvent) {
	switch ev.Type {
	case events.EventFoodCollected:
		if payload, ok := ev.Payload.(*events.FoodCollectedPayload); ok {
			s.collect(payload)
		}

	case events.EventGlobalBonusRequest:
		if payload, ok := ev.Payload.(*events.GlobalBonusPayload); ok {
			b, err := s.ledger.ApplyGlobalBonus(payload.Amount, payload.Duration)
			s.afterApply(b, err)
		}

	case events.EventCategoryBonusRequest:
		if payload, ok := ev.Payload.(*events.CategoryBonusPayload); ok {
			b, err := s.ledger.ApplyCategoryBonus(payload.Category, payload.Amount, payload.Duration)
			s.afterApply(b, err)
		}

	case events.EventGameReset:
		log.Printf("ScoreSystem: reset, final score %d", s.engine.Score())
		s.newSession(ctx.ResetTimers())
	}
}

// Update refreshes display multipliers so expiries show without a scoring call
func (s *ScoreSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	s.publishMultipliers()
}

func (s *ScoreSystem) collect(p *events.FoodCollectedPayload) {
	sign := scoring.Credit
	if p.Yeet {
		sign = scoring.Debit
	}

	name := "?"
	if p.Descriptor != nil {
		name = p.Descriptor.Name()
	}
	s.statLastFood.Store(name)

	s.engine.OnFoodCollected(p.Descriptor, sign)
}

func (s *ScoreSystem) afterApply(b scoring.Bonus, err error) {
	if err != nil {
		log.Printf("ScoreSystem: bonus rejected: %v", err)
		s.statRejected.Add(1)
		s.ctx.PushEvent(events.EventBonusRejected, &events.BonusRejectedPayload{Reason: err.Error()})
		return
	}
	s.ctx.PushEvent(events.EventBonusApplied, bonusPayload(b))
	s.publishMultipliers()
}

func (s *ScoreSystem) onScoreChanged(c scoring.ScoreChange) {
	s.statTotal.Store(int64(c.Total))
	s.statDelta.Store(int64(c.Delta))
	s.ctx.PushEvent(events.EventScoreChanged, &events.ScoreChangedPayload{
		Previous:       c.Previous,
		Delta:          c.Delta,
		Total:          c.Total,
		CategoryFactor: c.Factors.Category,
		GlobalFactor:   c.Factors.Global,
	})
}

func (s *ScoreSystem) onBonusExpired(b scoring.Bonus) {
	s.ctx.PushEvent(events.EventBonusExpired, bonusPayload(b))
	s.publishMultipliers()
}

func (s *ScoreSystem) publishMultipliers() {
	s.statGlobal.Set(s.ledger.GlobalDisplayMultiplier())
	for _, c := range catalog.Categories() {
		s.statCategory[c].Set(s.ledger.DisplayMultiplier(c))
	}
	s.statActive.Store(int64(len(s.ledger.ActiveBonuses())))
}

func bonusPayload(b scoring.Bonus) *events.BonusPayload {
	return &events.BonusPayload{
		Global:    b.Scope.Global,
		Category:  b.Scope.Category,
		Amount:    b.Amount,
		ExpiresAt: b.ExpiresAt,
	}
}
