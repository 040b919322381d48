package session

import (
	"fmt"
	"math"
)

const (
	maxScore = 999999
	maxRings = 99
	maxTime  = 999
)

// FormatScore pads the score to six digits, capping at 999999.
func FormatScore(score int) string {
	return fmt.Sprintf("%06d", clampInt(score, 0, maxScore))
}

// FormatRings pads the ring count to two digits, capping at 99.
func FormatRings(rings int) string {
	return fmt.Sprintf("%02d", clampInt(rings, 0, maxRings))
}

// FormatTime shows whole seconds remaining on three digits. Anything under
// one second reads "000".
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 1 {
		return "000"
	}
	return fmt.Sprintf("%03d", clampInt(int(seconds), 0, maxTime))
}

// FormatLives is the lives line of the Info screen.
func FormatLives(lives int) string {
	return fmt.Sprintf("x %d", lives)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
