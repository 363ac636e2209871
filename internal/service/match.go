package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sksohail19/cricket-score-tracking-app/internal/export"
	"github.com/sksohail19/cricket-score-tracking-app/internal/model"
	"github.com/sksohail19/cricket-score-tracking-app/internal/repository"
	"github.com/sksohail19/cricket-score-tracking-app/internal/scoring"
)

// matchService holds scorekeeping use-case logic: validation + orchestration,
// no transport / SQL details. All rule evaluation is delegated to scoring.
type matchService struct {
	repo repository.MatchRepository
	log  zerolog.Logger
}

func NewMatchService(repo repository.MatchRepository, logger zerolog.Logger) MatchService {
	l := logger.With().Str("module", "service").Str("component", "match").Logger()
	return &matchService{repo: repo, log: l}
}

func (s *matchService) CreateMatch(ctx context.Context, p CreateMatchParams) (model.Match, error) {
	start := time.Now()

	ferrs := validateSettings(p)
	ferrs = append(ferrs, validateTeam("team1", p.Team1, p.PlayersPerTeam)...)
	ferrs = append(ferrs, validateTeam("team2", p.Team2, p.PlayersPerTeam)...)
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("match setup validation failed")
		return model.Match{}, err
	}

	date := p.Date
	if date.IsZero() {
		date = time.Now()
	}
	m := scoring.NewMatch(uuid.NewString(), scoring.MatchSettings{
		Date:           date,
		Venue:          strings.TrimSpace(p.Venue),
		TotalOvers:     p.TotalOvers,
		PlayersPerTeam: p.PlayersPerTeam,
		TossWinner:     p.TossWinner,
		TossDecision:   p.TossDecision,
	}, teamFromParams(p.Team1), teamFromParams(p.Team2))

	if err := s.repo.Save(ctx, m); err != nil {
		s.log.Error().Err(err).Str("match_id", m.ID).Msg("save new match failed")
		return model.Match{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Str("match_id", m.ID).Msg("match created")
	return m, nil
}

func (s *matchService) GetMatch(ctx context.Context, id string) (model.Match, error) {
	if strings.TrimSpace(id) == "" {
		return model.Match{}, NewInvalidInputError([]FieldError{{Field: "id", Message: "must not be empty"}})
	}
	return s.repo.GetByID(ctx, id)
}

func (s *matchService) ListMatches(ctx context.Context, p repository.Page) (repository.PageResult[model.MatchSummary], error) {
	res, err := s.repo.ListSummaries(ctx, normalizePage(p))
	if err != nil {
		s.log.Error().Err(err).Msg("list match summaries failed")
		return repository.PageResult[model.MatchSummary]{}, err
	}
	return res, nil
}

func (s *matchService) DeleteMatch(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return NewInvalidInputError([]FieldError{{Field: "id", Message: "must not be empty"}})
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.log.Error().Err(err).Str("match_id", id).Msg("delete match failed")
		return err
	}
	s.log.Info().Str("match_id", id).Msg("match deleted")
	return nil
}

// RecordDelivery is the one write path of live scoring: load the snapshot,
// run the state machine, persist the result. Rule rejections come back
// untouched from scoring; a failed save still returns the updated match so
// the in-memory state stays authoritative.
func (s *matchService) RecordDelivery(ctx context.Context, id string, d model.Delivery) (model.Match, error) {
	m, err := s.GetMatch(ctx, id)
	if err != nil {
		return model.Match{}, err
	}
	updated, err := scoring.Apply(m, d)
	if err != nil {
		s.log.Debug().Err(err).Str("match_id", id).Msg("delivery rejected")
		return model.Match{}, err
	}
	if err := s.repo.Save(ctx, updated); err != nil {
		s.log.Error().Err(err).Str("match_id", id).Msg("save after delivery failed")
		return updated, fmt.Errorf("%w: %v", ErrNotPersisted, err)
	}
	return updated, nil
}

func (s *matchService) CompleteMatch(ctx context.Context, id string) (model.Match, error) {
	m, err := s.GetMatch(ctx, id)
	if err != nil {
		return model.Match{}, err
	}
	updated, err := scoring.ForceComplete(m)
	if err != nil {
		return model.Match{}, err
	}
	if err := s.repo.Save(ctx, updated); err != nil {
		s.log.Error().Err(err).Str("match_id", id).Msg("save after completion failed")
		return updated, fmt.Errorf("%w: %v", ErrNotPersisted, err)
	}
	s.log.Info().Str("match_id", id).Str("result", scoring.Result(updated)).Msg("match completed")
	return updated, nil
}

func (s *matchService) Scorecard(ctx context.Context, id string) (Scorecard, error) {
	m, err := s.GetMatch(ctx, id)
	if err != nil {
		return Scorecard{}, err
	}
	return buildScorecard(m), nil
}

func (s *matchService) ExportJSON(ctx context.Context, id string) ([]byte, error) {
	m, err := s.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	return export.MarshalMatch(m)
}

func (s *matchService) ExportXLSX(ctx context.Context, id string) ([]byte, error) {
	m, err := s.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	return export.ScorecardXLSX(m)
}

func teamFromParams(tp TeamParams) model.Team {
	t := model.Team{Name: strings.TrimSpace(tp.Name)}
	for _, p := range tp.Players {
		t.Players = append(t.Players, model.Player{ID: p.ID, Name: strings.TrimSpace(p.Name)})
	}
	return t
}
