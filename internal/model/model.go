// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import "time"

// NoPlayer marks an unassigned player slot (no striker yet, no bowler selected).
const NoPlayer = -1

// BallsPerOver is the number of countable deliveries in a complete over.
const BallsPerOver = 6

// WicketType enumerates the ways a batter can be dismissed.
type WicketType string

const (
	WicketBowled    WicketType = "bowled"
	WicketCaught    WicketType = "caught"
	WicketLBW       WicketType = "lbw"
	WicketRunOut    WicketType = "runOut"
	WicketStumped   WicketType = "stumped"
	WicketHitWicket WicketType = "hitWicket"
	WicketOther     WicketType = "other"
)

// Valid reports whether w is one of the known dismissal kinds.
func (w WicketType) Valid() bool {
	switch w {
	case WicketBowled, WicketCaught, WicketLBW, WicketRunOut, WicketStumped, WicketHitWicket, WicketOther:
		return true
	}
	return false
}

// ExtraType enumerates runs not credited to the batter.
type ExtraType string

const (
	ExtraWide    ExtraType = "wide"
	ExtraNoBall  ExtraType = "noBall"
	ExtraBye     ExtraType = "bye"
	ExtraLegBye  ExtraType = "legBye"
	ExtraPenalty ExtraType = "penalty"
)

// Valid reports whether e is one of the known extra kinds.
func (e ExtraType) Valid() bool {
	switch e {
	case ExtraWide, ExtraNoBall, ExtraBye, ExtraLegBye, ExtraPenalty:
		return true
	}
	return false
}

// TossDecision is what the toss winner chose to do first.
type TossDecision string

const (
	TossBat  TossDecision = "bat"
	TossBowl TossDecision = "bowl"
)

// Player is a member of a team. IDs are unique within a team and stable
// for the lifetime of a match.
type Player struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Team is a named, ordered list of players. Order is the entry-order
// convention from setup, not an enforced batting order.
type Team struct {
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

// Extra is the extras portion of a single delivery, present only when the
// delivery conceded extras. Runs carries the full extra credit; there is no
// implicit +1 for wides or no-balls.
type Extra struct {
	Type ExtraType `json:"type"`
	Runs int       `json:"runs"`
}

// Delivery is one bowled ball and its outcome. Deliveries are immutable
// once appended; corrections are out of scope.
type Delivery struct {
	BatterID   int        `json:"batterId"`
	BowlerID   int        `json:"bowlerId"`
	Runs       int        `json:"runs"`
	IsWicket   bool       `json:"isWicket"`
	WicketType WicketType `json:"wicketType,omitempty"`
	Extras     *Extra     `json:"extras,omitempty"`
}

// Countable reports whether the delivery counts toward the 6-ball over
// limit. Wides and no-balls extend the over instead.
func (d Delivery) Countable() bool {
	if d.Extras == nil {
		return true
	}
	return d.Extras.Type != ExtraWide && d.Extras.Type != ExtraNoBall
}

// Over is an append-only run of deliveries by a single bowler. Number is
// the zero-based sequence index within the innings.
type Over struct {
	Number     int        `json:"number"`
	Deliveries []Delivery `json:"deliveries"`
}

// CountableBalls returns how many deliveries in the over count toward the
// 6-ball limit.
func (o Over) CountableBalls() int {
	n := 0
	for _, d := range o.Deliveries {
		if d.Countable() {
			n++
		}
	}
	return n
}

// Complete reports whether the over has its full quota of countable balls.
func (o Over) Complete() bool { return o.CountableBalls() >= BallsPerOver }

// Bowler returns the id of the bowler of this over, or NoPlayer for an
// empty over. One bowler per over is an invariant the state machine enforces.
func (o Over) Bowler() int {
	if len(o.Deliveries) == 0 {
		return NoPlayer
	}
	return o.Deliveries[0].BowlerID
}

// Extras is the innings-level breakdown of extra runs by kind.
type Extras struct {
	Wides   int `json:"wides"`
	NoBalls int `json:"noBalls"`
	Byes    int `json:"byes"`
	LegByes int `json:"legByes"`
	Penalty int `json:"penalty"`
}

// Total is the sum of all extra runs in the innings.
func (e Extras) Total() int {
	return e.Wides + e.NoBalls + e.Byes + e.LegByes + e.Penalty
}

// Innings is one team's turn at batting. The over log is the source of
// truth; TotalRuns, TotalWickets, CompletedOvers and ExtrasBreakdown are a
// cache recomputed from the log on every append, never mutated on their own.
type Innings struct {
	BattingTeamID   int    `json:"battingTeamId"`
	BowlingTeamID   int    `json:"bowlingTeamId"`
	Overs           []Over `json:"overs"`
	TotalRuns       int    `json:"totalRuns"`
	TotalWickets    int    `json:"totalWickets"`
	CompletedOvers  int    `json:"completedOvers"`
	ExtrasBreakdown Extras `json:"extras"`
}

// Deliveries flattens the over log into delivery order.
func (i Innings) Deliveries() []Delivery {
	var out []Delivery
	for _, o := range i.Overs {
		out = append(out, o.Deliveries...)
	}
	return out
}

// Match is the aggregate root: two teams, up to two innings, and the
// settings fixed at setup. Teams are referenced by index 0/1.
type Match struct {
	ID             string       `json:"id"`
	Date           time.Time    `json:"date"`
	Venue          string       `json:"venue,omitempty"`
	TotalOvers     int          `json:"totalOvers"`
	PlayersPerTeam int          `json:"playersPerTeam"`
	Team1          Team         `json:"team1"`
	Team2          Team         `json:"team2"`
	Innings        []Innings    `json:"innings"`
	CurrentInnings int          `json:"currentInnings"`
	IsComplete     bool         `json:"isComplete"`
	TossWinner     int          `json:"tossWinner"`
	TossDecision   TossDecision `json:"tossDecision"`
}

// TeamByID returns the team for index 0 or 1.
func (m Match) TeamByID(id int) Team {
	if id == 0 {
		return m.Team1
	}
	return m.Team2
}

// MatchSummary is the row shape for match listings in history views.
type MatchSummary struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	Team1Name    string    `json:"team1Name"`
	Team2Name    string    `json:"team2Name"`
	Team1Score   string    `json:"team1Score"`
	Team2Score   string    `json:"team2Score"`
	Result       string    `json:"result"`
	TossWinner   string    `json:"tossWinner"`
	TossDecision string    `json:"tossDecision"`
}
