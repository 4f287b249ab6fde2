package breakout

import "github.com/vovakirdan/blockbreaker/internal/core"

// Screen texts.
const (
	TitleText         = "BLOCK BREAKER"
	StartText         = "START"
	MoveHintText      = "Arrow Keys or Mouse to Move Paddle"
	LaunchHintText    = "SPACE to Launch Ball"
	GameOverText      = "GAME OVER"
	FinalScoreText    = "FINAL SCORE"
	PlayAgainText     = "PLAY AGAIN"
	MenuHintText      = "Press ESC for Main Menu"
	PausedText        = "PAUSED"
	PausedHintText    = "Press P to resume"
	LevelReachedText  = "Level Reached: %d"
	BlocksDestroyText = "Blocks Destroyed: %d"
)

// Layout positions in logical units. Y values name the center line of
// centered text, or the top of HUD text.
const (
	HUDHeight   = 60
	HUDLabelY   = 15
	HUDValueY   = 35
	HUDMarginX  = 30
	LifeY       = 40
	LifeRadius  = 10
	LifeSpacing = 35

	MenuTitleY      = 180
	MenuButtonY     = 360
	MenuMoveHintY   = 480
	MenuLaunchHintY = 510

	OverTitleY       = 100
	OverScoreLabelY  = 200
	OverScoreY       = 250
	OverStatsY       = 320
	OverStatsLevelY  = 350
	OverStatsBlocksY = 390
	OverButtonY      = 470
	OverHintY        = 550

	startButtonW     = 200
	playAgainButtonW = 250
	buttonH          = 60
	statsBoxW        = 400
	statsBoxH        = 120
)

// StartButtonRect returns the menu's START button.
func StartButtonRect(screenW float64) core.Rect {
	return core.NewRect(screenW/2-startButtonW/2, MenuButtonY, startButtonW, buttonH)
}

// PlayAgainButtonRect returns the game over screen's PLAY AGAIN button.
func PlayAgainButtonRect(screenW float64) core.Rect {
	return core.NewRect(screenW/2-playAgainButtonW/2, OverButtonY, playAgainButtonW, buttonH)
}

// StatsBoxRect returns the game over stats panel.
func StatsBoxRect(screenW float64) core.Rect {
	return core.NewRect(screenW/2-statsBoxW/2, OverStatsY, statsBoxW, statsBoxH)
}

// LevelX returns the left edge of the HUD level column.
func LevelX(screenW float64) float64 {
	return screenW/2 - 40
}

// LivesX returns the left edge of the HUD lives column.
func LivesX(screenW float64) float64 {
	return screenW - 150
}

// LifeX returns the center of the i-th life marker.
func LifeX(screenW float64, i int) float64 {
	return screenW - 130 + float64(i)*LifeSpacing
}
