package scoring_test

import (
	"reflect"
	"testing"

	"github.com/sksohail19/cricket-score-tracking-app/internal/model"
	"github.com/sksohail19/cricket-score-tracking-app/internal/scoring"
)

func TestTotals_RunsWicketsExtras(t *testing.T) {
	in := model.Innings{Overs: []model.Over{
		{Number: 0, Deliveries: []model.Delivery{
			ball(1, 1, 4),
			extraBall(1, 1, 0, model.ExtraWide, 1),
			ball(1, 1, 0),
			extraBall(1, 1, 0, model.ExtraBye, 2),
			wicketBall(1, 1, 0, model.WicketBowled),
			ball(2, 1, 6),
			extraBall(2, 1, 1, model.ExtraNoBall, 1),
			ball(2, 1, 1),
		}},
		{Number: 1, Deliveries: []model.Delivery{
			extraBall(2, 2, 0, model.ExtraLegBye, 1),
			extraBall(2, 2, 0, model.ExtraPenalty, 5),
		}},
	}}

	got := scoring.Totals(in)
	want := scoring.InningsTotals{
		Runs:    22, // 4+0+0+6+1+1 off the bat, 1+2+1+1+5 extras
		Wickets: 1,
		Overs:   scoring.OverCount{Overs: 1, Balls: 2},
		Extras:  model.Extras{Wides: 1, NoBalls: 1, Byes: 2, LegByes: 1, Penalty: 5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("totals mismatch:\n got %+v\nwant %+v", got, want)
	}
	if got.Extras.Total() != 10 {
		t.Fatalf("extras total = %d, want 10", got.Extras.Total())
	}

	// Pure function: a second fold over the same log is identical.
	if again := scoring.Totals(in); !reflect.DeepEqual(again, got) {
		t.Fatalf("Totals not idempotent: %+v vs %+v", again, got)
	}
}

func TestTotals_TrailingOverOfOnlyWides(t *testing.T) {
	in := model.Innings{Overs: []model.Over{
		{Number: 0, Deliveries: []model.Delivery{
			ball(1, 1, 0), ball(1, 1, 0), ball(1, 1, 0),
			ball(1, 1, 0), ball(1, 1, 0), ball(1, 1, 0),
		}},
		{Number: 1, Deliveries: []model.Delivery{
			extraBall(1, 2, 0, model.ExtraWide, 1),
			extraBall(1, 2, 0, model.ExtraWide, 1),
		}},
	}}
	got := scoring.Totals(in)
	if got.Overs != (scoring.OverCount{Overs: 1, Balls: 0}) {
		t.Fatalf("overs = %v, want 1.0 (wides report no fractional remainder)", got.Overs)
	}
	if got.Overs.String() != "1" {
		t.Fatalf("overs text = %q, want \"1\"", got.Overs.String())
	}
}

func TestRecompute_CacheMatchesLog(t *testing.T) {
	s := newScorer(t, 2, 4)
	s.runs(4)
	s.extra(model.ExtraWide, 1, 0)
	s.wicket(model.WicketCaught, 0)
	s.runs(2)

	in := s.innings()
	want := scoring.Totals(in)
	if in.TotalRuns != want.Runs || in.TotalWickets != want.Wickets ||
		in.CompletedOvers != want.Overs.Overs || in.ExtrasBreakdown != want.Extras {
		t.Fatalf("cached totals diverge from log: %+v vs %+v", in, want)
	}
}

// Run conservation: the cached total equals the fold for every prefix of
// the log and never decreases as deliveries are appended.
func TestRunConservation_Prefixes(t *testing.T) {
	s := newScorer(t, 3, 5)
	prev := 0
	steps := []func(){
		func() { s.runs(1) },
		func() { s.extra(model.ExtraWide, 2, 0) },
		func() { s.runs(4) },
		func() { s.extra(model.ExtraBye, 1, 0) },
		func() { s.wicket(model.WicketLBW, 0) },
		func() { s.runs(6) },
		func() { s.extra(model.ExtraNoBall, 1, 2) },
		func() { s.runs(3) },
	}
	for i, step := range steps {
		step()
		in := s.innings()
		sum := 0
		for _, d := range in.Deliveries() {
			sum += d.Runs
			if d.Extras != nil {
				sum += d.Extras.Runs
			}
		}
		if in.TotalRuns != sum {
			t.Fatalf("step %d: cached runs %d != fold %d", i, in.TotalRuns, sum)
		}
		if in.TotalRuns < prev {
			t.Fatalf("step %d: total decreased %d -> %d", i, prev, in.TotalRuns)
		}
		prev = in.TotalRuns
	}
}

// Over completion invariant: every over except the last holds exactly six
// countable deliveries, even when wides and no-balls stretch it.
func TestOverCompletion_Invariant(t *testing.T) {
	s := newScorer(t, 4, 5)
	for i := 0; i < 20; i++ {
		if i%5 == 0 {
			s.extra(model.ExtraWide, 1, 0)
		}
		s.runs(i % 3)
	}
	in := s.innings()
	for i, over := range in.Overs[:len(in.Overs)-1] {
		if over.CountableBalls() != model.BallsPerOver {
			t.Fatalf("over %d has %d countable balls", i, over.CountableBalls())
		}
	}
}

func TestOverCount_Format(t *testing.T) {
	cases := []struct {
		oc   scoring.OverCount
		want string
	}{
		{scoring.OverCount{Overs: 12, Balls: 3}, "12.3"},
		{scoring.OverCount{Overs: 12, Balls: 0}, "12"},
		{scoring.OverCount{}, "0"},
	}
	for _, tc := range cases {
		if got := tc.oc.String(); got != tc.want {
			t.Fatalf("%+v.String() = %q, want %q", tc.oc, got, tc.want)
		}
	}
	if got := scoring.OverCountFromBalls(27); got != (scoring.OverCount{Overs: 4, Balls: 3}) {
		t.Fatalf("OverCountFromBalls(27) = %+v", got)
	}
}
