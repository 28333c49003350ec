// Package ranking orders the candidates of a job by score.
//
// Each (job, candidate) pair is scored at most once: the engine reads an
// existing score record when there is one and otherwise computes and stores a
// new one. Candidates are evaluated in parallel; a candidate that fails is
// reported in Ranking.Failures and does not abort the rest of the batch.
package ranking

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/store"
	"github.com/jonathan/resume-screener/internal/types"
)

// ScoreLookup reads existing score records. A missing record is nil, nil.
type ScoreLookup interface {
	GetScore(ctx context.Context, jobID, candidateID int64) (*types.ScoreRecord, error)
}

// ScoreWriter stores new score records. Writing a pair that already exists
// must fail with store.ErrScoreExists.
type ScoreWriter interface {
	SaveScore(ctx context.Context, rec *types.ScoreRecord) error
}

// ErrNoInvalidator is returned by Recompute when there is no store to invalidate.
var ErrNoInvalidator = errors.New("recompute requires a score invalidator")

// ScoreInvalidator drops every score record of a job.
type ScoreInvalidator interface {
	DeleteScoresForJob(ctx context.Context, jobID int64) (int64, error)
}

// Engine ranks candidates for a job.
type Engine struct {
	scorer      *scoring.Scorer
	extractor   *extraction.Extractor
	lookup      ScoreLookup
	writer      ScoreWriter
	logger      *zap.Logger
	parallelism int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithParallelism caps how many candidates are evaluated at once. Zero or less uses GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(e *Engine) { e.parallelism = n }
}

// WithExtractor sets the extractor used for profiles that have not been extracted yet.
func WithExtractor(x *extraction.Extractor) Option {
	return func(e *Engine) {
		if x != nil {
			e.extractor = x
		}
	}
}

// NewEngine creates a ranking engine over the given score lookup and writer.
func NewEngine(scorer *scoring.Scorer, lookup ScoreLookup, writer ScoreWriter, opts ...Option) *Engine {
	if scorer == nil {
		scorer = scoring.NewScorer(nil, scoring.DefaultWeights())
	}
	e := &Engine{
		scorer:    scorer,
		extractor: extraction.New(),
		lookup:    lookup,
		writer:    writer,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RankCandidates ranks profiles with a default engine.
func RankCandidates(ctx context.Context, req *types.JobRequirement, profiles []*types.CandidateProfile, lookup ScoreLookup, writer ScoreWriter) (*types.Ranking, error) {
	return NewEngine(nil, lookup, writer).RankCandidates(ctx, req, profiles)
}

// RankCandidates scores every profile against the requirement and returns the ordered ranking.
// It fails only for an invalid requirement or a cancelled context; per-candidate
// problems are reported in the ranking's Failures.
func (e *Engine) RankCandidates(ctx context.Context, req *types.JobRequirement, profiles []*types.CandidateProfile) (*types.Ranking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	normalized := *req
	normalized.Normalize()
	req = &normalized

	logger := e.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.Int64("job_id", req.ID),
	)
	logger.Info("ranking candidates", zap.Int("candidates", len(profiles)))

	results := make([]candidateResult, len(profiles))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.limit())
	for i, p := range profiles {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = e.evaluate(gCtx, logger, req, p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("ranking cancelled: %w", err)
	}

	ranking := &types.Ranking{JobID: req.ID, Entries: make([]types.RankingEntry, 0, len(profiles))}
	for _, res := range results {
		if res.err != nil {
			ranking.Failures = append(ranking.Failures, res.failure())
			continue
		}
		ranking.Entries = append(ranking.Entries, res.entry)
	}

	SortEntries(ranking.Entries)
	AssignRanks(ranking.Entries)

	logger.Info("ranking complete",
		zap.Int("ranked", len(ranking.Entries)),
		zap.Int("failed", len(ranking.Failures)),
	)
	return ranking, nil
}

// Recompute drops every stored score of the job and ranks the candidates afresh.
func (e *Engine) Recompute(ctx context.Context, inv ScoreInvalidator, req *types.JobRequirement, profiles []*types.CandidateProfile) (*types.Ranking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, ErrNoInvalidator
	}
	n, err := inv.DeleteScoresForJob(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to invalidate scores for job %d: %w", req.ID, err)
	}
	e.logger.Info("invalidated scores", zap.Int64("job_id", req.ID), zap.Int64("deleted", n))
	return e.RankCandidates(ctx, req, profiles)
}

// Evaluate scores a single candidate without reading or writing stored scores.
// The returned entry is unranked.
func (e *Engine) Evaluate(req *types.JobRequirement, p *types.CandidateProfile) (*types.RankingEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	normalized := *req
	normalized.Normalize()

	profile, err := e.prepare(p)
	if err != nil {
		return nil, err
	}
	c := e.scorer.ComputeComponentScores(profile, &normalized)
	return &types.RankingEntry{
		CandidateID:     profile.ID,
		CandidateName:   profile.DisplayName(),
		FileName:        profile.FileName,
		SkillScore:      c.Skill,
		ExperienceScore: c.Experience,
		EducationScore:  c.Education,
		ProjectScore:    c.Project,
		FinalScore:      scoring.Aggregate(c.ComponentScores, e.scorer.Weights()),
		MatchedSkills:   c.MatchedSkills,
		MissingSkills:   c.MissingSkills,
	}, nil
}

func (e *Engine) limit() int {
	if e.parallelism > 0 {
		return e.parallelism
	}
	return runtime.GOMAXPROCS(0)
}

type candidateResult struct {
	candidateID int64
	name        string
	entry       types.RankingEntry
	err         error
}

func (r candidateResult) failure() types.RankingFailure {
	return types.RankingFailure{
		CandidateID:   r.candidateID,
		CandidateName: r.name,
		Error:         r.err.Error(),
	}
}

// evaluate scores one candidate. Panics are converted into a failed result.
func (e *Engine) evaluate(ctx context.Context, logger *zap.Logger, req *types.JobRequirement, p *types.CandidateProfile) (res candidateResult) {
	if p == nil {
		return candidateResult{err: errors.New("candidate profile is nil")}
	}
	res.candidateID = p.ID
	res.name = p.DisplayName()
	logger = logger.With(zap.Int64("candidate_id", p.ID))

	defer func() {
		if r := recover(); r != nil {
			res.err = fmt.Errorf("panic while scoring candidate: %v", r)
		}
		if res.err != nil {
			logger.Warn("candidate scoring failed", zap.Error(res.err))
		}
	}()

	profile, err := e.prepare(p)
	if err != nil {
		res.err = err
		return res
	}

	components := e.scorer.ComputeComponentScores(profile, req)
	rec, err := e.scoreRecord(ctx, logger, req, profile, components)
	if err != nil {
		res.err = err
		return res
	}

	res.entry = types.RankingEntry{
		CandidateID:     profile.ID,
		CandidateName:   profile.DisplayName(),
		FileName:        profile.FileName,
		SkillScore:      rec.SkillScore,
		ExperienceScore: rec.ExperienceScore,
		EducationScore:  rec.EducationScore,
		ProjectScore:    rec.ProjectScore,
		FinalScore:      rec.FinalScore,
		MatchedSkills:   components.MatchedSkills,
		MissingSkills:   components.MissingSkills,
	}
	return res
}

// prepare validates a copy of the profile and extracts it if needed. The caller's profile is never modified.
func (e *Engine) prepare(p *types.CandidateProfile) (*types.CandidateProfile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	profile := *p
	profile.Skills = append([]string(nil), p.Skills...)

	if profile.Extracted() || (profile.RawText == "" && profile.HasDerivedFields()) {
		return &profile, nil
	}
	if err := e.extractor.ExtractProfile(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// scoreRecord returns the stored record for the pair, computing and storing one when absent.
func (e *Engine) scoreRecord(ctx context.Context, logger *zap.Logger, req *types.JobRequirement, p *types.CandidateProfile, c scoring.Components) (*types.ScoreRecord, error) {
	if e.lookup != nil {
		rec, err := e.lookup.GetScore(ctx, req.ID, p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to read score record: %w", err)
		}
		if rec != nil {
			logger.Debug("using stored score", zap.Float64("final_score", rec.FinalScore))
			return rec, nil
		}
	}

	rec := e.scorer.Record(p, req, c)
	if e.writer == nil {
		return rec, nil
	}

	err := e.writer.SaveScore(ctx, rec)
	switch {
	case err == nil:
		logger.Debug("stored new score", zap.Float64("final_score", rec.FinalScore))
		return rec, nil
	case errors.Is(err, store.ErrScoreExists) && e.lookup != nil:
		// Another request scored the pair first; its record wins.
		existing, gerr := e.lookup.GetScore(ctx, req.ID, p.ID)
		if gerr != nil {
			return nil, fmt.Errorf("failed to read score record after duplicate write: %w", gerr)
		}
		if existing == nil {
			return nil, fmt.Errorf("score record for candidate %d vanished after duplicate write", p.ID)
		}
		return existing, nil
	default:
		return nil, fmt.Errorf("failed to save score record: %w", err)
	}
}
