package session

// Audio keys understood by the audio host. Unknown keys play nothing.
const (
	MusicTheme = "mainTheme"

	SoundJump        = "jumpSound"
	SoundGrow        = "growSound"
	SoundShrink      = "shrinkSound"
	SoundDiePlayer   = "diePlayerSound"
	SoundDieEnemy    = "dieEnemySound"
	SoundBlockBreak  = "blockBreakSound"
	SoundBlockBounce = "blockBounceSound"
	SoundPowerUp     = "powerUpSound"
	SoundCoin        = "coinSound"
	SoundExtraLife   = "extraLifeSound"
	SoundGameWin     = "gameWinSound"
	SoundGameOver    = "gameOverSound"
)
