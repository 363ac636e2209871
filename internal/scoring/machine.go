package scoring

import (
	"fmt"
	"time"

	"github.com/sksohail19/cricket-score-tracking-app/internal/model"
)

// MatchSettings carries the configuration fixed at match setup.
type MatchSettings struct {
	Date           time.Time
	Venue          string
	TotalOvers     int
	PlayersPerTeam int
	TossWinner     int
	TossDecision   model.TossDecision
}

// NewMatch builds a live match with its first innings opened. The side
// batting first follows from the toss: the winner bats if it chose to,
// otherwise the other side does.
func NewMatch(id string, s MatchSettings, team1, team2 model.Team) model.Match {
	battingFirst := s.TossWinner
	if s.TossDecision == model.TossBowl {
		battingFirst = 1 - s.TossWinner
	}
	return model.Match{
		ID:             id,
		Date:           s.Date,
		Venue:          s.Venue,
		TotalOvers:     s.TotalOvers,
		PlayersPerTeam: s.PlayersPerTeam,
		Team1:          team1,
		Team2:          team2,
		Innings: []model.Innings{{
			BattingTeamID: battingFirst,
			BowlingTeamID: 1 - battingFirst,
		}},
		CurrentInnings: 0,
		TossWinner:     s.TossWinner,
		TossDecision:   s.TossDecision,
	}
}

// Apply is the single transition function of the match state machine: it
// validates the delivery against the current state, appends it to the
// current (or a fresh) over, recomputes the innings totals from the log
// and evaluates innings-end and match-end conditions. The input match is
// left untouched; a new value or a typed error is returned.
func Apply(m model.Match, d model.Delivery) (model.Match, error) {
	if m.IsComplete {
		return model.Match{}, ErrMatchComplete
	}
	if m.CurrentInnings < 0 || m.CurrentInnings >= len(m.Innings) {
		return model.Match{}, ErrCorruptLog
	}
	in := m.Innings[m.CurrentInnings]

	if err := validateShape(d); err != nil {
		return model.Match{}, err
	}
	if err := validatePlayers(m, in, d); err != nil {
		return model.Match{}, err
	}
	if err := validateBatterOrder(in, d); err != nil {
		return model.Match{}, err
	}
	if err := validateBowlerOrder(in, d); err != nil {
		return model.Match{}, err
	}

	out := clone(m)
	cur := &out.Innings[out.CurrentInnings]
	if n := len(cur.Overs); n == 0 || cur.Overs[n-1].Complete() {
		cur.Overs = append(cur.Overs, model.Over{Number: n})
	}
	last := &cur.Overs[len(cur.Overs)-1]
	last.Deliveries = append(last.Deliveries, d)
	Recompute(cur)

	if cur.TotalWickets > out.PlayersPerTeam-1 {
		return model.Match{}, ErrCorruptLog
	}
	advance(&out)
	return out, nil
}

// ForceComplete terminates a live match early at the user's request. The
// result is then computed by run comparison alone; a match forced during
// the first innings completes with no winner.
func ForceComplete(m model.Match) (model.Match, error) {
	if m.IsComplete {
		return model.Match{}, ErrMatchComplete
	}
	out := clone(m)
	out.IsComplete = true
	return out, nil
}

// validateShape checks the delivery's own field invariants, independent of
// match state.
func validateShape(d model.Delivery) error {
	if d.Runs < 0 || d.Runs > 6 {
		return fmt.Errorf("%w: runs must be between 0 and 6", ErrInvalidDelivery)
	}
	if d.IsWicket && d.WicketType != "" && !d.WicketType.Valid() {
		return fmt.Errorf("%w: unknown wicket type %q", ErrInvalidDelivery, d.WicketType)
	}
	if !d.IsWicket && d.WicketType != "" {
		return fmt.Errorf("%w: wicket type set without a wicket", ErrInvalidDelivery)
	}
	if d.Extras != nil {
		if !d.Extras.Type.Valid() {
			return fmt.Errorf("%w: unknown extra type %q", ErrInvalidDelivery, d.Extras.Type)
		}
		if d.Extras.Runs < 0 {
			return fmt.Errorf("%w: extra runs must be >= 0", ErrInvalidDelivery)
		}
		// A wide is never a scoring ball for the batter.
		if d.Extras.Type == model.ExtraWide && d.Runs > 0 {
			return fmt.Errorf("%w: a wide cannot carry batter runs", ErrInvalidDelivery)
		}
	}
	return nil
}

func validatePlayers(m model.Match, in model.Innings, d model.Delivery) error {
	if !onTeam(m.TeamByID(in.BattingTeamID), d.BatterID) {
		return ErrUnknownBatter
	}
	if !onTeam(m.TeamByID(in.BowlingTeamID), d.BowlerID) {
		return ErrUnknownBowler
	}
	return nil
}

// validateBatterOrder enforces the replacement rule: a dismissed batter
// never bats again, and a fresh batter is accepted only when the current
// pair has a vacancy. With both slots filled the delivery must come from
// one of the two at the crease.
func validateBatterOrder(in model.Innings, d model.Delivery) error {
	for _, prev := range in.Deliveries() {
		if prev.IsWicket && prev.BatterID == d.BatterID {
			return ErrBatterDismissed
		}
	}
	striker, nonStriker := CurrentPair(in)
	if d.BatterID == striker || d.BatterID == nonStriker {
		return nil
	}
	if striker != model.NoPlayer && nonStriker != model.NoPlayer {
		return ErrBatterNotAtCrease
	}
	return nil
}

// validateBowlerOrder pins a bowler to their over and keeps them from
// bowling the next one.
func validateBowlerOrder(in model.Innings, d model.Delivery) error {
	n := len(in.Overs)
	if n == 0 {
		return nil
	}
	last := in.Overs[n-1]
	if !last.Complete() {
		if b := last.Bowler(); b != model.NoPlayer && b != d.BowlerID {
			return ErrBowlerChangedMidOver
		}
		return nil
	}
	if last.Bowler() == d.BowlerID {
		return ErrBowlerRepeated
	}
	return nil
}

// advance applies the state machine's transition rules after an append.
func advance(m *model.Match) {
	in := &m.Innings[m.CurrentInnings]
	t := Totals(*in)
	oversDone := t.Overs.Reached(m.TotalOvers)
	allOut := t.Wickets >= m.PlayersPerTeam-1

	if m.CurrentInnings == 0 {
		if oversDone || allOut {
			m.Innings = append(m.Innings, model.Innings{
				BattingTeamID: in.BowlingTeamID,
				BowlingTeamID: in.BattingTeamID,
			})
			m.CurrentInnings = 1
		}
		return
	}

	chased := t.Runs > Totals(m.Innings[0]).Runs
	if oversDone || allOut || chased {
		m.IsComplete = true
	}
}

// Result renders the match outcome as user-facing text. A live match is
// "In Progress"; a match forced to completion during its first innings has
// no winner.
func Result(m model.Match) string {
	if !m.IsComplete {
		return "In Progress"
	}
	if len(m.Innings) < 2 {
		return "No result"
	}
	first := Totals(m.Innings[0])
	second := Totals(m.Innings[1])
	switch {
	case second.Runs > first.Runs:
		// Only a completed chase can put the second innings ahead, so the
		// margin is the wickets the chasing side had in hand.
		team := m.TeamByID(m.Innings[1].BattingTeamID)
		return fmt.Sprintf("%s won by %d wickets", team.Name, m.PlayersPerTeam-1-second.Wickets)
	case first.Runs > second.Runs:
		team := m.TeamByID(m.Innings[0].BattingTeamID)
		return fmt.Sprintf("%s won by %d runs", team.Name, first.Runs-second.Runs)
	default:
		return "Match tied"
	}
}

// Summarize produces the history-view row for a match.
func Summarize(m model.Match) model.MatchSummary {
	score := func(teamID int) string {
		for _, in := range m.Innings {
			if in.BattingTeamID == teamID {
				t := Totals(in)
				return fmt.Sprintf("%d/%d", t.Runs, t.Wickets)
			}
		}
		return "0/0"
	}
	return model.MatchSummary{
		ID:           m.ID,
		Date:         m.Date,
		Team1Name:    m.Team1.Name,
		Team2Name:    m.Team2.Name,
		Team1Score:   score(0),
		Team2Score:   score(1),
		Result:       Result(m),
		TossWinner:   m.TeamByID(m.TossWinner).Name,
		TossDecision: string(m.TossDecision),
	}
}

func onTeam(t model.Team, id int) bool {
	for _, p := range t.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}

// clone deep-copies a match so Apply can return a new value without
// sharing any over or delivery slices with the input.
func clone(m model.Match) model.Match {
	out := m
	out.Team1.Players = append([]model.Player(nil), m.Team1.Players...)
	out.Team2.Players = append([]model.Player(nil), m.Team2.Players...)
	out.Innings = make([]model.Innings, len(m.Innings))
	for i, in := range m.Innings {
		ci := in
		ci.Overs = make([]model.Over, len(in.Overs))
		for j, over := range in.Overs {
			co := over
			co.Deliveries = make([]model.Delivery, len(over.Deliveries))
			for k, d := range over.Deliveries {
				cd := d
				if d.Extras != nil {
					e := *d.Extras
					cd.Extras = &e
				}
				co.Deliveries[k] = cd
			}
			ci.Overs[j] = co
		}
		out.Innings[i] = ci
	}
	return out
}
