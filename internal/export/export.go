// Package export turns a match into downloadable artifacts: a
// human-readable JSON document that round-trips losslessly, and an XLSX
// scorecard for sharing outside the app.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/sksohail19/cricket-score-tracking-app/internal/model"
)

// MarshalMatch serializes the full match as indented JSON. Parsing the
// output with UnmarshalMatch reproduces an equal match value.
func MarshalMatch(m model.Match) ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal match %s: %w", m.ID, err)
	}
	return data, nil
}

// UnmarshalMatch parses a document produced by MarshalMatch.
func UnmarshalMatch(data []byte) (model.Match, error) {
	var m model.Match
	if err := json.Unmarshal(data, &m); err != nil {
		return model.Match{}, fmt.Errorf("unmarshal match: %w", err)
	}
	return m, nil
}
