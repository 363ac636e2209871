package service

import (
	"fmt"
	"strings"

	"github.com/sksohail19/cricket-score-tracking-app/internal/model"
	"github.com/sksohail19/cricket-score-tracking-app/internal/repository"
)

func normalizePage(p repository.Page) repository.Page {
	limit := p.Limit
	offset := p.Offset
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return repository.Page{Limit: limit, Offset: offset}
}

// validateTeam checks one side's setup: a usable name, the configured
// number of players, and player ids unique within the team.
func validateTeam(field string, tp TeamParams, playersPerTeam int) []FieldError {
	var ferrs []FieldError
	name := strings.TrimSpace(tp.Name)
	if name == "" {
		ferrs = append(ferrs, FieldError{Field: field + ".name", Message: "must not be empty"})
	}
	if playersPerTeam > 0 && len(tp.Players) != playersPerTeam {
		ferrs = append(ferrs, FieldError{Field: field + ".players", Message: fmt.Sprintf("must have exactly %d players", playersPerTeam)})
	}
	seen := make(map[int]bool, len(tp.Players))
	for i, p := range tp.Players {
		if strings.TrimSpace(p.Name) == "" {
			ferrs = append(ferrs, FieldError{Field: fmt.Sprintf("%s.players[%d].name", field, i), Message: "must not be empty"})
		}
		if seen[p.ID] {
			ferrs = append(ferrs, FieldError{Field: fmt.Sprintf("%s.players[%d].id", field, i), Message: "duplicate player id"})
		}
		seen[p.ID] = true
	}
	return ferrs
}

func validateSettings(p CreateMatchParams) []FieldError {
	var ferrs []FieldError
	if p.TotalOvers <= 0 {
		ferrs = append(ferrs, FieldError{Field: "totalOvers", Message: "must be > 0"})
	}
	if p.PlayersPerTeam < 2 {
		ferrs = append(ferrs, FieldError{Field: "playersPerTeam", Message: "must be >= 2"})
	}
	if p.TossWinner != 0 && p.TossWinner != 1 {
		ferrs = append(ferrs, FieldError{Field: "tossWinner", Message: "must be 0 or 1"})
	}
	if p.TossDecision != model.TossBat && p.TossDecision != model.TossBowl {
		ferrs = append(ferrs, FieldError{Field: "tossDecision", Message: "must be bat or bowl"})
	}
	return ferrs
}
