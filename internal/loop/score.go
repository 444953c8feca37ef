package loop

import (
	"strconv"
	"time"
)

// ScoreResolution is the session time worth one point.
const ScoreResolution = 100 * time.Millisecond

// ScoreAt returns the score for surviving elapsed, truncated to whole points.
func ScoreAt(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	return int(elapsed / ScoreResolution)
}

// FormatScore renders a score for display.
func FormatScore(score int) string {
	return strconv.Itoa(score)
}
