package constants

// HUD Layout
const (
	// HUDHeight is the number of rows reserved at the bottom for the HUD
	HUDHeight = 3

	// CategoryLabelWidth is the column width of one category multiplier cell
	CategoryLabelWidth = 14

	// SpawnMarginX keeps food away from the horizontal screen edges
	SpawnMarginX = 2

	// SpawnMarginY keeps food away from the top edge
	SpawnMarginY = 1
)

// HUD Colors
const (
	// CategorySaturation is the HSV saturation for category colors
	CategorySaturation = 0.65

	// CategoryValue is the HSV value for category colors
	CategoryValue = 0.95
)
