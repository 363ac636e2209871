// Package scoring implements the rules that turn a ball-by-ball delivery
// log into consistent match state: innings totals, batting and bowling
// figures, striker/bowler inference, innings transitions and results.
// Everything here is a pure function over model values; persistence and
// transport live elsewhere.
package scoring

import (
	"fmt"

	"github.com/sksohail19/cricket-score-tracking-app/internal/model"
)

// OverCount expresses bowling progress as whole overs plus balls into the
// next one, e.g. {12, 3} renders as "12.3".
type OverCount struct {
	Overs int `json:"overs"`
	Balls int `json:"balls"`
}

// OverCountFromBalls converts a raw ball count into overs-and-balls form.
func OverCountFromBalls(balls int) OverCount {
	return OverCount{Overs: balls / model.BallsPerOver, Balls: balls % model.BallsPerOver}
}

// String renders the conventional cricket notation: "12.3", or "12" when
// no partial over is in progress.
func (oc OverCount) String() string {
	if oc.Balls == 0 {
		return fmt.Sprintf("%d", oc.Overs)
	}
	return fmt.Sprintf("%d.%d", oc.Overs, oc.Balls)
}

// Float converts to fractional overs (balls as sixths) for rate math.
func (oc OverCount) Float() float64 {
	return float64(oc.Overs) + float64(oc.Balls)/model.BallsPerOver
}

// Reached reports whether the whole-over limit has been bowled.
func (oc OverCount) Reached(limit int) bool { return oc.Overs >= limit }
