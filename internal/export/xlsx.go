package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sksohail19/cricket-score-tracking-app/internal/model"
	"github.com/sksohail19/cricket-score-tracking-app/internal/scoring"
)

// ScorecardXLSX renders one sheet per innings with a batting table, a
// bowling table and the extras/total footer.
func ScorecardXLSX(m model.Match) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, in := range m.Innings {
		sheet := fmt.Sprintf("Innings %d", i+1)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, err
			}
		}
		if err := writeInnings(f, sheet, m, in); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write scorecard workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeInnings(f *excelize.File, sheet string, m model.Match, in model.Innings) error {
	batting := m.TeamByID(in.BattingTeamID)
	bowling := m.TeamByID(in.BowlingTeamID)
	t := scoring.Totals(in)

	set := func(cell string, value any) error { return f.SetCellValue(sheet, cell, value) }

	if err := set("A1", fmt.Sprintf("%s batting vs %s", batting.Name, bowling.Name)); err != nil {
		return err
	}

	headers := []string{"Batter", "Dismissal", "R", "B", "4s", "6s", "SR"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 3)
		if err := set(cell, h); err != nil {
			return err
		}
	}
	row := 4
	for _, p := range batting.Players {
		bs := scoring.Batting(in, p.ID)
		dismissal := scoring.Dismissal(in, bowling, p.ID)
		values := []any{p.Name, dismissal, bs.Runs, bs.Balls, bs.Fours, bs.Sixes, bs.StrikeRate}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := set(cell, v); err != nil {
				return err
			}
		}
		row++
	}
	row++
	if err := set(fmt.Sprintf("A%d", row), "Extras"); err != nil {
		return err
	}
	if err := set(fmt.Sprintf("B%d", row), fmt.Sprintf("w %d, nb %d, b %d, lb %d, pen %d",
		t.Extras.Wides, t.Extras.NoBalls, t.Extras.Byes, t.Extras.LegByes, t.Extras.Penalty)); err != nil {
		return err
	}
	if err := set(fmt.Sprintf("C%d", row), t.Extras.Total()); err != nil {
		return err
	}
	row++
	if err := set(fmt.Sprintf("A%d", row), "Total"); err != nil {
		return err
	}
	if err := set(fmt.Sprintf("B%d", row), fmt.Sprintf("%d/%d (%s ov)", t.Runs, t.Wickets, t.Overs)); err != nil {
		return err
	}

	row += 2
	bowlHeaders := []string{"Bowler", "O", "M", "R", "W", "Econ"}
	for col, h := range bowlHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		if err := set(cell, h); err != nil {
			return err
		}
	}
	row++
	for _, p := range bowling.Players {
		bs := scoring.Bowling(in, p.ID)
		if bs.Balls == 0 {
			continue
		}
		values := []any{p.Name, bs.Overs.String(), bs.Maidens, bs.Runs, bs.Wickets, bs.Economy}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := set(cell, v); err != nil {
				return err
			}
		}
		row++
	}
	return nil
}
