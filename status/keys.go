package status

// Metric keys published by the scoring systems
const (
	KeyScoreTotal       = "score.total"
	KeyScoreDelta       = "score.delta"
	KeyScoreToWin       = "score.to_win"
	KeyMultiplierGlobal = "multiplier.global"
	KeyBonusActive      = "bonus.active"
	KeyBonusRejected    = "bonus.rejected"
	KeyGameEnded        = "game.ended"
	KeyLastFood         = "food.last"
	KeyEngineTicks      = "engine.ticks"
)

// MultiplierKey returns the display multiplier key for a category name
func MultiplierKey(category string) string {
	return "multiplier." + category
}
