package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one candidate against a job requirement",
	Long: `Scores a single candidate against a job requirement and prints the component scores,
the final score and the matched and missing skills. Nothing is stored.

The candidate is either a resume document (--file) or a JSON profile (--candidate).`,
	RunE: runScore,
}

var (
	scoreJob         string
	scoreFile        string
	scoreCandidate   string
	scoreCandidateID int64
	scoreOutput      string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to JobRequirement JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreFile, "file", "f", "", "Path to the candidate's resume document")
	scoreCmd.Flags().StringVarP(&scoreCandidate, "candidate", "c", "", "Path to a CandidateProfile JSON file")
	scoreCmd.Flags().Int64Var(&scoreCandidateID, "id", 0, "Candidate ID when scoring a resume document")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	scoreCmd.Flags().String("policy", "", "Skill matching policy: strict or lenient")
	scoreCmd.MarkFlagsMutuallyExclusive("file", "candidate")
	scoreCmd.MarkFlagsOneRequired("file", "candidate")

	if err := scoreCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	job, err := loadJob(scoreJob)
	if err != nil {
		return err
	}

	var profile *types.CandidateProfile
	if scoreFile != "" {
		doc, err := ingestion.DecodeFile(scoreFile, maxUploadBytes())
		if err != nil {
			return err
		}
		profile = &types.CandidateProfile{ID: scoreCandidateID, FileName: doc.FileName, RawText: doc.Text}
	} else {
		profile, err = loadCandidate(scoreCandidate)
		if err != nil {
			return err
		}
	}

	entry, err := newEngine(nil).Evaluate(job, profile)
	if err != nil {
		return fmt.Errorf("failed to score candidate: %w", err)
	}
	return render(cmd, scoreOutput, entry, func(p *observability.Printer) {
		p.PrintEntry(entry)
	})
}
