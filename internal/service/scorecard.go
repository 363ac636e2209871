package service

import (
	"github.com/sksohail19/cricket-score-tracking-app/internal/model"
	"github.com/sksohail19/cricket-score-tracking-app/internal/scoring"
)

// BattingLine is one batter's row on a scorecard.
type BattingLine struct {
	Player    model.Player         `json:"player"`
	Stats     scoring.BatsmanStats `json:"stats"`
	Dismissal string               `json:"dismissal"`
}

// BowlingLine is one bowler's row on a scorecard.
type BowlingLine struct {
	Player model.Player        `json:"player"`
	Stats  scoring.BowlerStats `json:"stats"`
}

// InningsCard is the derived view of one innings.
type InningsCard struct {
	BattingTeam string                `json:"battingTeam"`
	BowlingTeam string                `json:"bowlingTeam"`
	Totals      scoring.InningsTotals `json:"totals"`
	OversText   string                `json:"oversText"`
	RunRate     float64               `json:"runRate"`
	Batting     []BattingLine         `json:"batting"`
	Bowling     []BowlingLine         `json:"bowling"`
}

// Scorecard is the full read model behind the live and historical
// scorecard views. Striker, NonStriker and CurrentBowler are set only for
// a live match and only when the inference has an answer.
type Scorecard struct {
	MatchID         string        `json:"matchId"`
	Result          string        `json:"result"`
	Innings         []InningsCard `json:"innings"`
	Striker         *model.Player `json:"striker,omitempty"`
	NonStriker      *model.Player `json:"nonStriker,omitempty"`
	CurrentBowler   *model.Player `json:"currentBowler,omitempty"`
	RequiredRunRate string        `json:"requiredRunRate"`
}

// buildScorecard runs the statistics engine over every innings. Read-only.
func buildScorecard(m model.Match) Scorecard {
	card := Scorecard{
		MatchID:         m.ID,
		Result:          scoring.Result(m),
		RequiredRunRate: scoring.RequiredRunRate(m),
	}
	for _, in := range m.Innings {
		batting := m.TeamByID(in.BattingTeamID)
		bowling := m.TeamByID(in.BowlingTeamID)
		t := scoring.Totals(in)
		ic := InningsCard{
			BattingTeam: batting.Name,
			BowlingTeam: bowling.Name,
			Totals:      t,
			OversText:   t.Overs.String(),
			RunRate:     scoring.RunRate(t.Runs, t.Overs),
		}
		for _, p := range batting.Players {
			ic.Batting = append(ic.Batting, BattingLine{
				Player:    p,
				Stats:     scoring.Batting(in, p.ID),
				Dismissal: scoring.Dismissal(in, bowling, p.ID),
			})
		}
		for _, p := range bowling.Players {
			bs := scoring.Bowling(in, p.ID)
			if bs.Balls == 0 {
				continue
			}
			ic.Bowling = append(ic.Bowling, BowlingLine{Player: p, Stats: bs})
		}
		card.Innings = append(card.Innings, ic)
	}

	if !m.IsComplete {
		if in := currentInnings(m); in != nil {
			batting := m.TeamByID(in.BattingTeamID)
			bowling := m.TeamByID(in.BowlingTeamID)
			striker, nonStriker := scoring.CurrentPair(*in)
			card.Striker = findPlayer(batting, striker)
			card.NonStriker = findPlayer(batting, nonStriker)
			card.CurrentBowler = findPlayer(bowling, scoring.CurrentBowler(*in))
		}
	}
	return card
}

func currentInnings(m model.Match) *model.Innings {
	if m.CurrentInnings < 0 || m.CurrentInnings >= len(m.Innings) {
		return nil
	}
	return &m.Innings[m.CurrentInnings]
}

func findPlayer(t model.Team, id int) *model.Player {
	if id == model.NoPlayer {
		return nil
	}
	for _, p := range t.Players {
		if p.ID == id {
			cp := p
			return &cp
		}
	}
	return nil
}
