// @focus: #constants { gameplay }
package constants

import "time"

// Scoring
const (
	// FallbackPointValue is the base value of a collected item without a descriptor
	FallbackPointValue = 1

	// BaselineMultiplier is the multiplier shown when no bonus is active
	BaselineMultiplier = 1.0

	// MultiplierEpsilon is the float drift tolerance for bonus sums
	MultiplierEpsilon = 1e-6

	// DefaultScoreToWin is the win threshold used when none is configured
	DefaultScoreToWin = 100
)

// Bonus Presets (sandbox hotkeys)
const (
	// GlobalBonusAmount is the amount added by the global bonus hotkey
	GlobalBonusAmount = 2.0

	// GlobalBonusDuration is how long the global bonus hotkey lasts
	GlobalBonusDuration = 10 * time.Second

	// CategoryBonusAmount is the amount added by a category bonus hotkey
	CategoryBonusAmount = 2.0

	// CategoryBonusDuration is how long a category bonus hotkey lasts
	CategoryBonusDuration = 8 * time.Second
)

// Spawning (sandbox)
const (
	// FoodSpawnInterval is the delay between food spawns
	FoodSpawnInterval = 1500 * time.Millisecond

	// MaxFoodOnScreen caps the number of food items alive at once
	MaxFoodOnScreen = 12
)
