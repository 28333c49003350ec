package scoring

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// Components is the result of one scoring pass: the component scores plus the
// matched and missing required skills produced by the skill pass.
type Components struct {
	ComponentScores
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// Scorer evaluates candidate profiles against a job requirement.
// It holds no mutable state and is safe for concurrent use.
type Scorer struct {
	matcher    *skills.Matcher
	weights    Weights
	experience ExperienceOptions
	now        func() time.Time
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithExperienceOptions sets the experience scorer options.
func WithExperienceOptions(opts ExperienceOptions) Option {
	return func(s *Scorer) { s.experience = opts }
}

// WithClock overrides the clock used to stamp score records.
func WithClock(now func() time.Time) Option {
	return func(s *Scorer) { s.now = now }
}

// NewScorer creates a Scorer. A nil matcher uses the strict policy.
func NewScorer(matcher *skills.Matcher, weights Weights, opts ...Option) *Scorer {
	if matcher == nil {
		matcher = skills.NewMatcher(skills.PolicyStrict)
	}
	s := &Scorer{
		matcher: matcher,
		weights: weights,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Weights returns the aggregation weights in use.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Matcher returns the skill matcher in use.
func (s *Scorer) Matcher() *skills.Matcher {
	return s.matcher
}

// ComputeComponentScores scores each component of the profile against the requirement.
func (s *Scorer) ComputeComponentScores(p *types.CandidateProfile, r *types.JobRequirement) Components {
	if p == nil {
		p = &types.CandidateProfile{}
	}
	if r == nil {
		r = &types.JobRequirement{}
	}

	match := s.matcher.Match(p.Skills, r.RequiredSkills)
	return Components{
		ComponentScores: ComponentScores{
			Skill:      Round2(Clamp(match.Ratio)),
			Experience: ExperienceScore(p.ExperienceYears, r.MinExperienceYears, r.JobType, p.JobType, s.experience),
			Education:  EducationScore(p.EducationLevel, p.EducationField, r.RequiredEducationLevel, r.RequiredEducationField),
			Project:    ProjectScore(p.ProjectsSummary, types.DedupeSkills(r.RequiredSkills)),
		},
		MatchedSkills: match.Matched,
		MissingSkills: match.Missing,
	}
}

// ComputeFinalScore returns the weighted final score of the profile.
func (s *Scorer) ComputeFinalScore(p *types.CandidateProfile, r *types.JobRequirement) float64 {
	return Aggregate(s.ComputeComponentScores(p, r).ComponentScores, s.weights)
}

// Score computes a fresh score record for the pair along with the skill pass by-products.
func (s *Scorer) Score(p *types.CandidateProfile, r *types.JobRequirement) (*types.ScoreRecord, Components) {
	c := s.ComputeComponentScores(p, r)
	return s.Record(p, r, c), c
}

// Record builds a new score record for the pair from already computed components.
func (s *Scorer) Record(p *types.CandidateProfile, r *types.JobRequirement, c Components) *types.ScoreRecord {
	rec := &types.ScoreRecord{
		ID:              uuid.New(),
		SkillScore:      c.Skill,
		ExperienceScore: c.Experience,
		EducationScore:  c.Education,
		ProjectScore:    c.Project,
		FinalScore:      Aggregate(c.ComponentScores, s.weights),
		CalculatedAt:    s.now().UTC(),
	}
	if p != nil {
		rec.CandidateID = p.ID
	}
	if r != nil {
		rec.JobID = r.ID
	}
	return rec
}

// ComputeFinalScore scores the profile with the strict matcher and the given weights.
func ComputeFinalScore(p *types.CandidateProfile, r *types.JobRequirement, w Weights) float64 {
	return NewScorer(nil, w).ComputeFinalScore(p, r)
}
