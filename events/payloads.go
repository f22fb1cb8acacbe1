package events

import (
	"time"

	"github.com/adrian-miasik/eat-or-yeet/catalog"
)

// FoodCollectedPayload carries one collection action
// Descriptor may be nil when the item has no scoring data
type FoodCollectedPayload struct {
	Descriptor *catalog.Descriptor
	Yeet       bool // true removes the item's value instead of adding it
}

// GlobalBonusPayload requests a global multiplier bonus
type GlobalBonusPayload struct {
	Amount   float64
	Duration time.Duration
}

// CategoryBonusPayload requests a category multiplier bonus
type CategoryBonusPayload struct {
	Category catalog.Category
	Amount   float64
	Duration time.Duration
}

// ScoreChangedPayload describes a committed adjustment
type ScoreChangedPayload struct {
	Previous       int
	Delta          int
	Total          int
	CategoryFactor float64
	GlobalFactor   float64
}

// BonusPayload describes an applied or expired bonus
type BonusPayload struct {
	Global    bool
	Category  catalog.Category // Ignored when Global
	Amount    float64
	ExpiresAt time.Time
}

// BonusRejectedPayload carries the rejection reason
type BonusRejectedPayload struct {
	Reason string
}

// GameEndedPayload records the crossing that ended the game
type GameEndedPayload struct {
	Score      int
	ScoreToWin int
}
