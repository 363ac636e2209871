package export_test

import (
	"bytes"
	"reflect"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sksohail19/cricket-score-tracking-app/internal/export"
	"github.com/sksohail19/cricket-score-tracking-app/internal/model"
	"github.com/sksohail19/cricket-score-tracking-app/internal/scoring"
)

func sampleMatch(t *testing.T) model.Match {
	t.Helper()
	squad := func(prefix string, n int) []model.Player {
		out := make([]model.Player, n)
		for i := range out {
			out[i] = model.Player{ID: i + 1, Name: prefix + string(rune('A'+i))}
		}
		return out
	}
	m := scoring.NewMatch("exp-1", scoring.MatchSettings{
		Date:           time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC),
		Venue:          "Old Park",
		TotalOvers:     2,
		PlayersPerTeam: 3,
		TossWinner:     0,
		TossDecision:   model.TossBat,
	}, model.Team{Name: "Tigers", Players: squad("T", 3)}, model.Team{Name: "Lions", Players: squad("L", 3)})

	deliveries := []model.Delivery{
		{BatterID: 1, BowlerID: 1, Runs: 4},
		{BatterID: 1, BowlerID: 1, Extras: &model.Extra{Type: model.ExtraWide, Runs: 1}},
		{BatterID: 1, BowlerID: 1, Runs: 1},
		{BatterID: 2, BowlerID: 1, Runs: 6},
		{BatterID: 2, BowlerID: 1, IsWicket: true, WicketType: model.WicketBowled},
	}
	for i, d := range deliveries {
		var err error
		m, err = scoring.Apply(m, d)
		if err != nil {
			t.Fatalf("delivery %d: %v", i, err)
		}
	}
	return m
}

func TestMarshalMatch_RoundTrip(t *testing.T) {
	m := sampleMatch(t)

	data, err := export.MarshalMatch(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := export.UnmarshalMatch(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// Date goes through RFC 3339 and loses its monotonic clock reading.
	if !got.Date.Equal(m.Date) {
		t.Fatalf("date = %v, want %v", got.Date, m.Date)
	}
	got.Date = m.Date
	if !reflect.DeepEqual(got, m) {
		t.Fatalf("round trip changed the match:\ngot  %+v\nwant %+v", got, m)
	}
}

func TestUnmarshalMatch_Invalid(t *testing.T) {
	if _, err := export.UnmarshalMatch([]byte("{not json")); err == nil {
		t.Fatalf("expected an error for malformed input")
	}
}

func TestScorecardXLSX(t *testing.T) {
	m := sampleMatch(t)

	data, err := export.ScorecardXLSX(m)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Innings 1" {
		t.Fatalf("sheets = %v", sheets)
	}
	title, err := f.GetCellValue("Innings 1", "A1")
	if err != nil {
		t.Fatalf("read title: %v", err)
	}
	if title != "Tigers batting vs Lions" {
		t.Fatalf("title = %q", title)
	}
	// First batting row belongs to the opener with 5 runs off 2 balls.
	name, _ := f.GetCellValue("Innings 1", "A4")
	runs, _ := f.GetCellValue("Innings 1", "C4")
	if name != "TA" || runs != "5" {
		t.Fatalf("opener row = %q / %q", name, runs)
	}
}
