package types

import (
	"time"

	"github.com/google/uuid"
)

// ScoreRecord is the persisted score for one (job, candidate) pair.
// FinalScore is always the weighted sum of the four components, clamped to [0,100].
type ScoreRecord struct {
	ID              uuid.UUID `json:"id"`
	JobID           int64     `json:"job_id"`
	CandidateID     int64     `json:"candidate_id"`
	SkillScore      float64   `json:"skill_score"`
	ExperienceScore float64   `json:"experience_score"`
	EducationScore  float64   `json:"education_score"`
	ProjectScore    float64   `json:"project_score"`
	FinalScore      float64   `json:"final_score"`
	CalculatedAt    time.Time `json:"calculated_at"`
}

// RankingEntry is one ranked candidate. It is derived on every ranking request and never stored.
type RankingEntry struct {
	CandidateID     int64    `json:"candidate_id"`
	CandidateName   string   `json:"candidate_name"`
	FileName        string   `json:"file_name,omitempty"`
	SkillScore      float64  `json:"skill_score"`
	ExperienceScore float64  `json:"experience_score"`
	EducationScore  float64  `json:"education_score"`
	ProjectScore    float64  `json:"project_score"`
	FinalScore      float64  `json:"final_score"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	Rank            int      `json:"rank"`
}

// RankingFailure reports a candidate whose scoring failed without aborting the batch.
type RankingFailure struct {
	CandidateID   int64  `json:"candidate_id"`
	CandidateName string `json:"candidate_name,omitempty"`
	Error         string `json:"error"`
}

// Ranking is the ordered result of ranking all candidates for one job.
type Ranking struct {
	JobID    int64            `json:"job_id"`
	Entries  []RankingEntry   `json:"entries"`
	Failures []RankingFailure `json:"failures,omitempty"`
}
