package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-screener/internal/types"
)

const selectScoreColumns = `SELECT id, job_id, candidate_id,
	skill_score::float8, experience_score::float8, education_score::float8,
	project_score::float8, final_score::float8, calculated_at
	FROM score_records`

// Postgres is a ScoreStore backed by a PostgreSQL connection pool.
// The schema is managed by Migrator.
type Postgres struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool to the database.
func ConnectPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

func scanScore(row pgx.Row) (*types.ScoreRecord, error) {
	var rec types.ScoreRecord
	err := row.Scan(&rec.ID, &rec.JobID, &rec.CandidateID,
		&rec.SkillScore, &rec.ExperienceScore, &rec.EducationScore,
		&rec.ProjectScore, &rec.FinalScore, &rec.CalculatedAt)
	if err != nil {
		return nil, err
	}
	rec.CalculatedAt = rec.CalculatedAt.UTC()
	return &rec, nil
}

func (p *Postgres) GetScore(ctx context.Context, jobID, candidateID int64) (*types.ScoreRecord, error) {
	rec, err := scanScore(p.pool.QueryRow(ctx,
		selectScoreColumns+` WHERE job_id = $1 AND candidate_id = $2`, jobID, candidateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get score record: %w", err)
	}
	return rec, nil
}

func (p *Postgres) SaveScore(ctx context.Context, rec *types.ScoreRecord) error {
	if err := validateRecord(rec); err != nil {
		return err
	}
	id := rec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	at := rec.CalculatedAt
	if at.IsZero() {
		at = time.Now()
	}

	tag, err := p.pool.Exec(ctx,
		`INSERT INTO score_records
			(id, job_id, candidate_id, skill_score, experience_score, education_score, project_score, final_score, calculated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (job_id, candidate_id) DO NOTHING`,
		id, rec.JobID, rec.CandidateID,
		rec.SkillScore, rec.ExperienceScore, rec.EducationScore, rec.ProjectScore, rec.FinalScore,
		at.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save score record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrScoreExists
	}
	return nil
}

func (p *Postgres) ListScores(ctx context.Context, jobID int64) ([]types.ScoreRecord, error) {
	rows, err := p.pool.Query(ctx, selectScoreColumns+` WHERE job_id = $1 ORDER BY candidate_id`, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list score records: %w", err)
	}
	defer rows.Close()

	var out []types.ScoreRecord
	for rows.Next() {
		rec, err := scanScore(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan score record: %w", err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list score records: %w", err)
	}
	return out, nil
}

func (p *Postgres) DeleteScoresForJob(ctx context.Context, jobID int64) (int64, error) {
	tag, err := p.pool.Exec(ctx, `DELETE FROM score_records WHERE job_id = $1`, jobID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete score records: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Close closes the connection pool
func (p *Postgres) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}
