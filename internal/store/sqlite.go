package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jonathan/resume-screener/internal/types"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS score_records (
	id               TEXT PRIMARY KEY,
	job_id           INTEGER NOT NULL,
	candidate_id     INTEGER NOT NULL,
	skill_score      REAL NOT NULL,
	experience_score REAL NOT NULL,
	education_score  REAL NOT NULL,
	project_score    REAL NOT NULL,
	final_score      REAL NOT NULL,
	calculated_at    TEXT NOT NULL,
	UNIQUE (job_id, candidate_id)
)`

// scoreRow mirrors score_records for sqlx scanning.
type scoreRow struct {
	ID              string  `db:"id"`
	JobID           int64   `db:"job_id"`
	CandidateID     int64   `db:"candidate_id"`
	SkillScore      float64 `db:"skill_score"`
	ExperienceScore float64 `db:"experience_score"`
	EducationScore  float64 `db:"education_score"`
	ProjectScore    float64 `db:"project_score"`
	FinalScore      float64 `db:"final_score"`
	CalculatedAt    string  `db:"calculated_at"`
}

func (r scoreRow) toRecord() (types.ScoreRecord, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return types.ScoreRecord{}, fmt.Errorf("invalid score record id %q: %w", r.ID, err)
	}
	at, err := time.Parse(time.RFC3339Nano, r.CalculatedAt)
	if err != nil {
		return types.ScoreRecord{}, fmt.Errorf("invalid calculated_at %q: %w", r.CalculatedAt, err)
	}
	return types.ScoreRecord{
		ID:              id,
		JobID:           r.JobID,
		CandidateID:     r.CandidateID,
		SkillScore:      r.SkillScore,
		ExperienceScore: r.ExperienceScore,
		EducationScore:  r.EducationScore,
		ProjectScore:    r.ProjectScore,
		FinalScore:      r.FinalScore,
		CalculatedAt:    at.UTC(),
	}, nil
}

// SQLite is a ScoreStore backed by a local SQLite file.
type SQLite struct {
	db *sqlx.DB
}

// OpenSQLite opens (creating if needed) the database at path and ensures the schema exists.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// One writer keeps SQLite from returning SQLITE_BUSY under parallel ranking.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create score_records table: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) GetScore(ctx context.Context, jobID, candidateID int64) (*types.ScoreRecord, error) {
	var rows []scoreRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT * FROM score_records WHERE job_id = ? AND candidate_id = ?`, jobID, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get score record: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	rec, err := rows[0].toRecord()
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *SQLite) SaveScore(ctx context.Context, rec *types.ScoreRecord) error {
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

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO score_records
			(id, job_id, candidate_id, skill_score, experience_score, education_score, project_score, final_score, calculated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (job_id, candidate_id) DO NOTHING`,
		id.String(), rec.JobID, rec.CandidateID,
		rec.SkillScore, rec.ExperienceScore, rec.EducationScore, rec.ProjectScore, rec.FinalScore,
		at.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to save score record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to save score record: %w", err)
	}
	if n == 0 {
		return ErrScoreExists
	}
	return nil
}

func (s *SQLite) ListScores(ctx context.Context, jobID int64) ([]types.ScoreRecord, error) {
	var rows []scoreRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT * FROM score_records WHERE job_id = ? ORDER BY candidate_id`, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list score records: %w", err)
	}

	out := make([]types.ScoreRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *SQLite) DeleteScoresForJob(ctx context.Context, jobID int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM score_records WHERE job_id = ?`, jobID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete score records: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to delete score records: %w", err)
	}
	return n, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
