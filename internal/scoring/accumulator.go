package scoring

import "github.com/sksohail19/cricket-score-tracking-app/internal/model"

// InningsTotals is the accumulator output for one innings: everything a
// scoreboard header needs, derived solely from the delivery log.
type InningsTotals struct {
	Runs    int          `json:"runs"`
	Wickets int          `json:"wickets"`
	Overs   OverCount    `json:"overs"`
	Extras  model.Extras `json:"extras"`
}

// Totals folds the innings' delivery log into running totals. Idempotent;
// the log is never modified.
func Totals(in model.Innings) InningsTotals {
	var t InningsTotals
	for _, over := range in.Overs {
		for _, d := range over.Deliveries {
			t.Runs += d.Runs
			if d.Extras != nil {
				t.Runs += d.Extras.Runs
				switch d.Extras.Type {
				case model.ExtraWide:
					t.Extras.Wides += d.Extras.Runs
				case model.ExtraNoBall:
					t.Extras.NoBalls += d.Extras.Runs
				case model.ExtraBye:
					t.Extras.Byes += d.Extras.Runs
				case model.ExtraLegBye:
					t.Extras.LegByes += d.Extras.Runs
				case model.ExtraPenalty:
					t.Extras.Penalty += d.Extras.Runs
				}
			}
			if d.IsWicket {
				t.Wickets++
			}
		}
	}
	t.Overs = oversBowled(in)
	return t
}

// oversBowled counts complete overs plus the countable balls of a trailing
// partial over. A trailing over with zero countable deliveries (only wides
// or no-balls so far) reports no fractional remainder.
func oversBowled(in model.Innings) OverCount {
	var oc OverCount
	for _, over := range in.Overs {
		if over.Complete() {
			oc.Overs++
		} else {
			// Only the last over can be partial; the state machine opens a
			// new over the moment the previous one completes.
			oc.Balls = over.CountableBalls()
		}
	}
	return oc
}

// Recompute refreshes the innings' cached totals from its log. Callers
// must invoke it after every append so the cache stays a pure function of
// the log.
func Recompute(in *model.Innings) {
	t := Totals(*in)
	in.TotalRuns = t.Runs
	in.TotalWickets = t.Wickets
	in.CompletedOvers = t.Overs.Overs
	in.ExtrasBreakdown = t.Extras
}
