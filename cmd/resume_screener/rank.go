package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	definitions "github.com/jonathan/resume-screener/schemas"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidates against a job requirement",
	Long: `Scores every candidate against the job requirement and prints the ranking, highest score first.
Scores already stored for a (job, candidate) pair are reused; pass --recompute to discard them.

Candidates come from a JSON array of profiles (--candidates) or a directory of resume
documents (--resumes), in which case candidate IDs are assigned 1..n in file name order.`,
	RunE: runRank,
}

var recomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Discard stored scores for a job and rank again",
	RunE: func(cmd *cobra.Command, args []string) error {
		rankRecompute = true
		return runRank(cmd, args)
	},
}

var (
	rankJob        string
	rankCandidates string
	rankResumes    string
	rankOutput     string
	rankRecompute  bool
)

func init() {
	for _, c := range []*cobra.Command{rankCmd, recomputeCmd} {
		c.Flags().StringVarP(&rankJob, "job", "j", "", "Path to JobRequirement JSON file (required)")
		c.Flags().StringVarP(&rankCandidates, "candidates", "c", "", "Path to candidates JSON file")
		c.Flags().StringVarP(&rankResumes, "resumes", "r", "", "Directory of resume documents")
		c.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output Ranking JSON file (default stdout)")
		c.Flags().String("store", "", "Score store driver: memory, sqlite or postgres")
		c.Flags().String("dsn", "", "Score store DSN (SQLite path or PostgreSQL URL)")
		c.Flags().String("policy", "", "Skill matching policy: strict or lenient")
		c.Flags().Int("parallelism", 0, "Concurrent candidate evaluations (0 uses all CPUs)")
		c.MarkFlagsMutuallyExclusive("candidates", "resumes")
		c.MarkFlagsOneRequired("candidates", "resumes")

		if err := c.MarkFlagRequired("job"); err != nil {
			panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
		}
	}
	rankCmd.Flags().BoolVar(&rankRecompute, "recompute", false, "Discard stored scores for the job before ranking")

	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(recomputeCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	job, err := loadJob(rankJob)
	if err != nil {
		return err
	}

	var (
		profiles []*types.CandidateProfile
		failures []types.RankingFailure
	)
	if rankResumes != "" {
		profiles, failures, err = loadResumes(rankResumes)
	} else {
		profiles, err = loadCandidates(rankCandidates)
	}
	if err != nil {
		return err
	}

	s, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore(s)

	engine := newEngine(s)
	var ranking *types.Ranking
	if rankRecompute {
		ranking, err = engine.Recompute(ctx, s, job, profiles)
	} else {
		ranking, err = engine.RankCandidates(ctx, job, profiles)
	}
	if err != nil {
		return fmt.Errorf("failed to rank candidates: %w", err)
	}
	ranking.Failures = append(ranking.Failures, failures...)

	if err := render(cmd, rankOutput, ranking, func(p *observability.Printer) {
		p.PrintRanking(ranking)
	}); err != nil {
		return err
	}

	// Output validation is a safety check, not a requirement
	if rankOutput != "" && outputFormat == "json" {
		if err := schemas.ValidateFile(definitions.Ranking, rankOutput); err != nil {
			log.Warn("output validation failed", zap.Error(err))
		}
	}
	return nil
}

// loadResumes decodes every file in dir. Files that cannot be decoded are
// reported as failures and do not take part in the ranking.
func loadResumes(dir string) ([]*types.CandidateProfile, []types.RankingFailure, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read resume directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, nil, errors.New("resume directory contains no files")
	}
	sort.Strings(names)

	var (
		profiles []*types.CandidateProfile
		failures []types.RankingFailure
	)
	for i, name := range names {
		id := int64(i + 1)
		doc, err := ingestion.DecodeFile(filepath.Join(dir, name), maxUploadBytes())
		if err != nil {
			log.Warn("skipping resume", zap.String("file", name), zap.Error(err))
			failures = append(failures, types.RankingFailure{CandidateID: id, CandidateName: name, Error: err.Error()})
			continue
		}
		profiles = append(profiles, &types.CandidateProfile{ID: id, FileName: doc.FileName, RawText: doc.Text})
	}
	return profiles, failures, nil
}
