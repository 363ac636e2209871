package scoring

import (
	"fmt"

	"github.com/sksohail19/cricket-score-tracking-app/internal/model"
)

// Dismissal renders scorecard text for a batter: "b Khan", "c b Khan",
// "run out", "not out", "did not bat" and so on. Stumped is credited to
// the bowler, matching the wicket-to-bowler convention used in the
// bowling figures. bowlingTeam is the side that fielded in this innings.
func Dismissal(in model.Innings, bowlingTeam model.Team, playerID int) string {
	for _, over := range in.Overs {
		for _, d := range over.Deliveries {
			if d.BatterID != playerID || !d.IsWicket {
				continue
			}
			bowler := playerName(bowlingTeam, d.BowlerID)
			switch d.WicketType {
			case model.WicketBowled:
				return fmt.Sprintf("b %s", bowler)
			case model.WicketCaught:
				return fmt.Sprintf("c b %s", bowler)
			case model.WicketLBW:
				return fmt.Sprintf("lbw b %s", bowler)
			case model.WicketRunOut:
				return "run out"
			case model.WicketStumped:
				return fmt.Sprintf("st b %s", bowler)
			case model.WicketHitWicket:
				return fmt.Sprintf("hit wicket b %s", bowler)
			default:
				return "out"
			}
		}
	}
	for _, over := range in.Overs {
		for _, d := range over.Deliveries {
			if d.BatterID == playerID {
				return "not out"
			}
		}
	}
	return "did not bat"
}

func playerName(team model.Team, id int) string {
	for _, p := range team.Players {
		if p.ID == id {
			return p.Name
		}
	}
	return "Unknown"
}
