// Package sqlite implements the persistence gateway on an embedded SQLite
// database via gorm. Each match is stored as one row: a full JSON snapshot
// of the match plus denormalized summary columns so history listings never
// have to unmarshal every snapshot.
package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sksohail19/cricket-score-tracking-app/internal/model"
	"github.com/sksohail19/cricket-score-tracking-app/internal/repository"
	"github.com/sksohail19/cricket-score-tracking-app/internal/scoring"
)

type matchRecord struct {
	ID           string    `gorm:"primaryKey"`
	Date         time.Time `gorm:"index"`
	Team1Name    string
	Team2Name    string
	Team1Score   string
	Team2Score   string
	Result       string
	TossWinner   string
	TossDecision string
	Snapshot     []byte
	UpdatedAt    time.Time
}

func (matchRecord) TableName() string { return "matches" }

// Open opens (or creates) the database file at path.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return db, nil
}

// MatchRepository is the gorm-backed repository.MatchRepository.
type MatchRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewMatchRepository migrates the schema and returns the repository.
func NewMatchRepository(db *gorm.DB, logger zerolog.Logger) (*MatchRepository, error) {
	if err := db.AutoMigrate(&matchRecord{}); err != nil {
		return nil, fmt.Errorf("migrate matches table: %w", err)
	}
	l := logger.With().Str("module", "repository").Str("component", "sqlite").Logger()
	return &MatchRepository{db: db, log: l}, nil
}

var _ repository.MatchRepository = (*MatchRepository)(nil)

// Save upserts the full match snapshot by id.
func (r *MatchRepository) Save(ctx context.Context, m model.Match) error {
	snapshot, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal match %s: %w", m.ID, err)
	}
	s := scoring.Summarize(m)
	rec := matchRecord{
		ID:           m.ID,
		Date:         m.Date,
		Team1Name:    s.Team1Name,
		Team2Name:    s.Team2Name,
		Team1Score:   s.Team1Score,
		Team2Score:   s.Team2Score,
		Result:       s.Result,
		TossWinner:   s.TossWinner,
		TossDecision: s.TossDecision,
		Snapshot:     snapshot,
	}
	if err := r.db.WithContext(ctx).Save(&rec).Error; err != nil {
		r.log.Error().Err(err).Str("match_id", m.ID).Msg("save match failed")
		return repository.MapStorageError(err)
	}
	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (model.Match, error) {
	var rec matchRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return model.Match{}, repository.MapStorageError(err)
	}
	var m model.Match
	if err := json.Unmarshal(rec.Snapshot, &m); err != nil {
		return model.Match{}, fmt.Errorf("unmarshal match %s: %w", id, err)
	}
	return m, nil
}

func (r *MatchRepository) ListSummaries(ctx context.Context, p repository.Page) (repository.PageResult[model.MatchSummary], error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&matchRecord{}).Count(&total).Error; err != nil {
		return repository.PageResult[model.MatchSummary]{}, repository.MapStorageError(err)
	}
	q := r.db.WithContext(ctx).Order("date desc, id")
	if p.Limit > 0 {
		q = q.Limit(p.Limit)
	}
	if p.Offset > 0 {
		q = q.Offset(p.Offset)
	}
	var recs []matchRecord
	if err := q.Find(&recs).Error; err != nil {
		return repository.PageResult[model.MatchSummary]{}, repository.MapStorageError(err)
	}
	out := repository.PageResult[model.MatchSummary]{Total: int(total)}
	for _, rec := range recs {
		out.Items = append(out.Items, model.MatchSummary{
			ID:           rec.ID,
			Date:         rec.Date,
			Team1Name:    rec.Team1Name,
			Team2Name:    rec.Team2Name,
			Team1Score:   rec.Team1Score,
			Team2Score:   rec.Team2Score,
			Result:       rec.Result,
			TossWinner:   rec.TossWinner,
			TossDecision: rec.TossDecision,
		})
	}
	return out, nil
}

func (r *MatchRepository) DeleteByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&matchRecord{}, "id = ?", id)
	if res.Error != nil {
		return repository.MapStorageError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Ping satisfies repository.Pinger for readiness probes.
func (r *MatchRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
