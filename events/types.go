package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventTick is reserved for scheduler-driven updates and never pushed
	EventTick EventType = iota

	// EventFoodCollected signals a food item entering (eat) or leaving (yeet) the hole
	// Trigger: Detection layer (sandbox key press)
	// Consumer: ScoreSystem | Payload: *FoodCollectedPayload
	EventFoodCollected

	// EventGlobalBonusRequest requests a temporary global multiplier bonus
	// Trigger: Power-ups, sandbox hotkey
	// Consumer: ScoreSystem | Payload: *GlobalBonusPayload
	EventGlobalBonusRequest

	// EventCategoryBonusRequest requests a temporary category multiplier bonus
	// Trigger: Power-ups, sandbox hotkey
	// Consumer: ScoreSystem | Payload: *CategoryBonusPayload
	EventCategoryBonusRequest

	// EventScoreChanged reports a committed score adjustment
	// Trigger: ScoreSystem after AdjustScore | Payload: *ScoreChangedPayload
	EventScoreChanged

	// EventBonusApplied reports an accepted bonus
	// Trigger: ScoreSystem | Payload: *BonusPayload
	EventBonusApplied

	// EventBonusRejected reports a bonus refused for invalid arguments
	// Trigger: ScoreSystem | Payload: *BonusRejectedPayload
	EventBonusRejected

	// EventBonusExpired reports a bonus leaving its window
	// Trigger: Ledger expiry callback | Payload: *BonusPayload
	EventBonusExpired

	// EventGameEnded signals the win threshold was crossed
	// Trigger: GameStateSystem.EndGame | Payload: *GameEndedPayload
	EventGameEnded

	// EventGameReset starts a fresh scoring session
	// Trigger: Reset button, sandbox Ctrl-R
	// Consumer: ScoreSystem, GameStateSystem | Payload: nil
	EventGameReset
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64 // For deduplication
	Timestamp time.Time
}
