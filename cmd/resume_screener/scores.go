package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "List or delete stored scores of a job",
	RunE:  runScores,
}

var (
	scoresJobID  int64
	scoresDelete bool
	scoresOutput string
)

func init() {
	scoresCmd.Flags().Int64Var(&scoresJobID, "job-id", 0, "Job ID (required)")
	scoresCmd.Flags().BoolVar(&scoresDelete, "delete", false, "Delete the stored scores instead of listing them")
	scoresCmd.Flags().StringVarP(&scoresOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	scoresCmd.Flags().String("store", "", "Score store driver: memory, sqlite or postgres")
	scoresCmd.Flags().String("dsn", "", "Score store DSN (SQLite path or PostgreSQL URL)")

	if err := scoresCmd.MarkFlagRequired("job-id"); err != nil {
		panic(fmt.Sprintf("failed to mark job-id flag as required: %v", err))
	}

	rootCmd.AddCommand(scoresCmd)
}

func runScores(cmd *cobra.Command, _ []string) error {
	if scoresJobID < 0 {
		return fmt.Errorf("invalid job ID %d", scoresJobID)
	}
	ctx := cmd.Context()

	s, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore(s)

	if scoresDelete {
		n, err := s.DeleteScoresForJob(ctx, scoresJobID)
		if err != nil {
			return fmt.Errorf("failed to delete scores: %w", err)
		}
		log.Info("invalidated scores", zap.Int64("job_id", scoresJobID), zap.Int64("deleted", n))
		return writeJSON(cmd, scoresOutput, map[string]any{"job_id": scoresJobID, "deleted": n})
	}

	records, err := s.ListScores(ctx, scoresJobID)
	if err != nil {
		return fmt.Errorf("failed to list scores: %w", err)
	}
	return writeJSON(cmd, scoresOutput, map[string]any{"job_id": scoresJobID, "scores": records, "total": len(records)})
}
