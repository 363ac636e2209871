package scoring

import (
	"fmt"
	"math"

	"github.com/sksohail19/cricket-score-tracking-app/internal/model"
)

// BatsmanStats is a batter's line on the scorecard.
type BatsmanStats struct {
	Runs       int     `json:"runs"`
	Balls      int     `json:"balls"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
	StrikeRate float64 `json:"strikeRate"`
}

// BowlerStats is a bowler's line on the scorecard. Runs is runs conceded
// under the bowler-charged definition: batter runs plus extras, except
// byes and leg-byes.
type BowlerStats struct {
	Overs   OverCount `json:"overs"`
	Maidens int       `json:"maidens"`
	Runs    int       `json:"runs"`
	Wickets int       `json:"wickets"`
	Balls   int       `json:"balls"`
	Economy float64   `json:"economy"`
}

// Batting derives a batter's figures from the innings log. A wide is not a
// ball faced; every other delivery to the batter is.
func Batting(in model.Innings, playerID int) BatsmanStats {
	var s BatsmanStats
	for _, over := range in.Overs {
		for _, d := range over.Deliveries {
			if d.BatterID != playerID {
				continue
			}
			if d.Extras == nil || d.Extras.Type != model.ExtraWide {
				s.Balls++
			}
			s.Runs += d.Runs
			switch d.Runs {
			case 4:
				s.Fours++
			case 6:
				s.Sixes++
			}
		}
	}
	if s.Balls > 0 {
		s.StrikeRate = round2(float64(s.Runs) / float64(s.Balls) * 100)
	}
	return s
}

// chargedToBowler returns the runs a single delivery costs its bowler.
func chargedToBowler(d model.Delivery) int {
	runs := d.Runs
	if d.Extras != nil && d.Extras.Type != model.ExtraBye && d.Extras.Type != model.ExtraLegBye {
		runs += d.Extras.Runs
	}
	return runs
}

// Bowling derives a bowler's figures from the innings log, grouping the
// bowler's deliveries by over. Run-outs are not credited to the bowler; a
// maiden is a full over of the bowler's deliveries conceding nothing.
func Bowling(in model.Innings, playerID int) BowlerStats {
	var s BowlerStats
	for _, over := range in.Overs {
		overBalls := 0
		overRuns := 0
		for _, d := range over.Deliveries {
			if d.BowlerID != playerID {
				continue
			}
			overBalls++
			charged := chargedToBowler(d)
			s.Runs += charged
			overRuns += charged
			if d.IsWicket && d.WicketType != model.WicketRunOut {
				s.Wickets++
			}
		}
		s.Balls += overBalls
		if overBalls == model.BallsPerOver && overRuns == 0 {
			s.Maidens++
		}
	}
	s.Overs = OverCountFromBalls(s.Balls)
	if s.Balls > 0 {
		s.Economy = round2(float64(s.Runs) / (float64(s.Balls) / model.BallsPerOver))
	}
	return s
}

// CurrentPair infers the batters at the crease by replaying the log. New
// batters enter on strike; strike rotates on odd batter runs and again at
// the end of each over, the two effects cancelling when they coincide.
// Unfilled slots are model.NoPlayer.
func CurrentPair(in model.Innings) (striker, nonStriker int) {
	striker, nonStriker = model.NoPlayer, model.NoPlayer
	for _, over := range in.Overs {
		countable := 0
		for _, d := range over.Deliveries {
			if d.BatterID != striker {
				switch {
				case d.BatterID == nonStriker:
					// The log says the other end is facing; trust the log
					// over our inference (byes and short runs swap ends in
					// ways the event vocabulary cannot express).
					striker, nonStriker = nonStriker, striker
				case striker == model.NoPlayer:
					striker = d.BatterID
				default:
					nonStriker, striker = striker, d.BatterID
				}
			}
			if d.Countable() {
				countable++
			}
			rotate := d.Runs%2 == 1
			if d.Countable() && countable == model.BallsPerOver {
				rotate = !rotate
			}
			if rotate {
				striker, nonStriker = nonStriker, striker
			}
			if d.IsWicket {
				switch d.BatterID {
				case striker:
					striker = model.NoPlayer
				case nonStriker:
					nonStriker = model.NoPlayer
				}
			}
		}
	}
	return striker, nonStriker
}

// CurrentBowler returns the bowler of the most recent over, or
// model.NoPlayer when that over is complete (or no over exists) and a new
// bowler must be chosen. A bowler never bowls consecutive overs.
func CurrentBowler(in model.Innings) int {
	if len(in.Overs) == 0 {
		return model.NoPlayer
	}
	last := in.Overs[len(in.Overs)-1]
	if last.Complete() {
		return model.NoPlayer
	}
	return last.Bowler()
}

// RunRate is runs per over bowled so far, 0 before the first ball.
func RunRate(runs int, overs OverCount) float64 {
	o := overs.Float()
	if o == 0 {
		return 0
	}
	return round2(float64(runs) / o)
}

// RequiredRunRate reports the chasing side's needed rate as display text:
// "N/A" before the second innings or when no overs remain, "0.00" once the
// target is already passed.
func RequiredRunRate(m model.Match) string {
	if len(m.Innings) < 2 {
		return "N/A"
	}
	target := Totals(m.Innings[0]).Runs + 1
	second := Totals(m.Innings[1])
	needed := target - second.Runs
	if needed <= 0 {
		return "0.00"
	}
	remaining := float64(m.TotalOvers) - second.Overs.Float()
	if remaining <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", float64(needed)/remaining)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
