// Package store persists score records, one per (job, candidate) pair.
//
// Every backend enforces the pair as a unique key: a second SaveScore for the
// same pair fails with ErrScoreExists and leaves the first record untouched.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/resume-screener/internal/types"
)

// Supported drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ErrScoreExists is returned when a record already exists for the pair.
var ErrScoreExists = errors.New("score record already exists")

// ScoreStore reads and writes score records.
type ScoreStore interface {
	// GetScore returns the record for the pair, or nil, nil when none exists.
	GetScore(ctx context.Context, jobID, candidateID int64) (*types.ScoreRecord, error)
	// SaveScore inserts a record. It returns ErrScoreExists if the pair is already scored.
	SaveScore(ctx context.Context, rec *types.ScoreRecord) error
	// ListScores returns all records for a job ordered by candidate ID.
	ListScores(ctx context.Context, jobID int64) ([]types.ScoreRecord, error)
	// DeleteScoresForJob removes every record of the job and returns how many were removed.
	DeleteScoresForJob(ctx context.Context, jobID int64) (int64, error)
	Close() error
}

// Open returns a store for the given driver.
func Open(ctx context.Context, driver, dsn string) (ScoreStore, error) {
	switch driver {
	case DriverMemory, "":
		return NewMemory(), nil
	case DriverSQLite:
		return OpenSQLite(ctx, dsn)
	case DriverPostgres:
		return ConnectPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

func validateRecord(rec *types.ScoreRecord) error {
	if rec == nil {
		return fmt.Errorf("score record is required")
	}
	if rec.JobID < 0 || rec.CandidateID < 0 {
		return fmt.Errorf("invalid score record key (job %d, candidate %d)", rec.JobID, rec.CandidateID)
	}
	return nil
}
