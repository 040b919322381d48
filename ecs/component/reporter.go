package component

// Reporter is the part of the play session that entities report to. Each
// gameplay entity receives it at construction.
type Reporter interface {
	AddPoints(amount int)
	AddRings(amount int)
	AddLives(amount int)
	LoseLife()
	WinGame()
}
