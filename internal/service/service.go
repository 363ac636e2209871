// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/sksohail19/cricket-score-tracking-app/internal/model"
	"github.com/sksohail19/cricket-score-tracking-app/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// ErrNotPersisted marks a mutation that succeeded in memory but could not
// be written to storage. The updated match accompanies the error so the
// caller can keep scoring and retry the save.
var ErrNotPersisted = errors.New("match updated but not persisted")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// TeamParams is one side's setup input.
type TeamParams struct {
	Name    string         `json:"name"`
	Players []model.Player `json:"players"`
}

// CreateMatchParams carries the full match setup: settings, teams and toss.
type CreateMatchParams struct {
	Date           time.Time          `json:"date"`
	Venue          string             `json:"venue"`
	TotalOvers     int                `json:"totalOvers"`
	PlayersPerTeam int                `json:"playersPerTeam"`
	TossWinner     int                `json:"tossWinner"`
	TossDecision   model.TossDecision `json:"tossDecision"`
	Team1          TeamParams         `json:"team1"`
	Team2          TeamParams         `json:"team2"`
}

// MatchService defines the scorekeeping use cases the transport layer consumes.
type MatchService interface {
	CreateMatch(ctx context.Context, p CreateMatchParams) (model.Match, error)
	GetMatch(ctx context.Context, id string) (model.Match, error)
	ListMatches(ctx context.Context, p repository.Page) (repository.PageResult[model.MatchSummary], error)
	DeleteMatch(ctx context.Context, id string) error
	// RecordDelivery applies one ball to the match. On a storage failure the
	// updated match is still returned together with ErrNotPersisted.
	RecordDelivery(ctx context.Context, id string, d model.Delivery) (model.Match, error)
	// CompleteMatch forces early termination of a live match.
	CompleteMatch(ctx context.Context, id string) (model.Match, error)
	Scorecard(ctx context.Context, id string) (Scorecard, error)
	ExportJSON(ctx context.Context, id string) ([]byte, error)
	ExportXLSX(ctx context.Context, id string) ([]byte, error)
}
