package repository

import (
	"context"

	"github.com/sksohail19/cricket-score-tracking-app/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// MatchRepository declares persistence operations for match snapshots.
// The unit of storage is the whole match: Save overwrites any prior
// snapshot for the same id (idempotent upsert), and reads return the full
// match. I return domain models and surface domain errors from errors.go
// rather than driver codes.
type MatchRepository interface {
	Save(ctx context.Context, m model.Match) error
	GetByID(ctx context.Context, id string) (model.Match, error)
	// ListSummaries returns history rows freshest first by date.
	ListSummaries(ctx context.Context, p Page) (PageResult[model.MatchSummary], error)
	// DeleteByID removes the record; irreversible.
	DeleteByID(ctx context.Context, id string) error
}
