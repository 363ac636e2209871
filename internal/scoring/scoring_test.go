package scoring_test

import (
	"testing"
	"time"

	"github.com/sksohail19/cricket-score-tracking-app/internal/model"
	"github.com/sksohail19/cricket-score-tracking-app/internal/scoring"
)

// Shared helpers for the scoring tests: compact delivery constructors and a
// scorer that drives the state machine the way the UI would, always bowling
// to the inferred striker and rotating bowlers at over boundaries.

func ball(batter, bowler, runs int) model.Delivery {
	return model.Delivery{BatterID: batter, BowlerID: bowler, Runs: runs}
}

func extraBall(batter, bowler, runs int, et model.ExtraType, extraRuns int) model.Delivery {
	return model.Delivery{BatterID: batter, BowlerID: bowler, Runs: runs, Extras: &model.Extra{Type: et, Runs: extraRuns}}
}

func wicketBall(batter, bowler, runs int, wt model.WicketType) model.Delivery {
	return model.Delivery{BatterID: batter, BowlerID: bowler, Runs: runs, IsWicket: true, WicketType: wt}
}

func squad(prefix string, n int) model.Team {
	t := model.Team{Name: prefix}
	for i := 1; i <= n; i++ {
		t.Players = append(t.Players, model.Player{ID: i, Name: prefix + string(rune('A'+i-1))})
	}
	return t
}

func testMatch(totalOvers, playersPerTeam int) model.Match {
	return scoring.NewMatch("m-1", scoring.MatchSettings{
		Date:           time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC),
		TotalOvers:     totalOvers,
		PlayersPerTeam: playersPerTeam,
		TossWinner:     0,
		TossDecision:   model.TossBat,
	}, squad("Tigers", playersPerTeam), squad("Lions", playersPerTeam))
}

// scorer replays deliveries through Apply, inferring who should face and
// who should bowl so scenario tests only state runs, wickets and extras.
type scorer struct {
	t *testing.T
	m model.Match
}

func newScorer(t *testing.T, totalOvers, playersPerTeam int) *scorer {
	t.Helper()
	return &scorer{t: t, m: testMatch(totalOvers, playersPerTeam)}
}

func (s *scorer) innings() model.Innings {
	return s.m.Innings[s.m.CurrentInnings]
}

func (s *scorer) striker() int {
	in := s.innings()
	striker, nonStriker := scoring.CurrentPair(in)
	if striker != model.NoPlayer {
		return striker
	}
	dismissed := map[int]bool{}
	faced := map[int]bool{}
	for _, d := range in.Deliveries() {
		faced[d.BatterID] = true
		if d.IsWicket {
			dismissed[d.BatterID] = true
		}
	}
	for _, p := range s.m.TeamByID(in.BattingTeamID).Players {
		if !faced[p.ID] && !dismissed[p.ID] && p.ID != nonStriker {
			return p.ID
		}
	}
	s.t.Fatalf("no batter available")
	return model.NoPlayer
}

func (s *scorer) bowler() int {
	in := s.innings()
	if b := scoring.CurrentBowler(in); b != model.NoPlayer {
		return b
	}
	// Alternate between the first two bowlers of the fielding side.
	prev := model.NoPlayer
	if n := len(in.Overs); n > 0 {
		prev = in.Overs[n-1].Bowler()
	}
	if prev == 1 {
		return 2
	}
	return 1
}

func (s *scorer) deliver(d model.Delivery) {
	s.t.Helper()
	out, err := scoring.Apply(s.m, d)
	if err != nil {
		s.t.Fatalf("apply delivery %+v: %v", d, err)
	}
	s.m = out
}

func (s *scorer) runs(n int) {
	s.deliver(ball(s.striker(), s.bowler(), n))
}

func (s *scorer) wicket(wt model.WicketType, runs int) {
	s.deliver(wicketBall(s.striker(), s.bowler(), runs, wt))
}

func (s *scorer) extra(et model.ExtraType, extraRuns, batterRuns int) {
	s.deliver(extraBall(s.striker(), s.bowler(), batterRuns, et, extraRuns))
}
