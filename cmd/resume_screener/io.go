package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	definitions "github.com/jonathan/resume-screener/schemas"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/store"
	"github.com/jonathan/resume-screener/internal/types"
)

// loadJob reads a JobRequirement JSON file after validating it against its schema.
func loadJob(path string) (*types.JobRequirement, error) {
	data, err := readJSONFile(path, definitions.JobRequirement)
	if err != nil {
		return nil, err
	}
	var job types.JobRequirement
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job requirement JSON: %w", err)
	}
	return &job, nil
}

// loadCandidates reads a JSON array of candidate profiles.
func loadCandidates(path string) ([]*types.CandidateProfile, error) {
	data, err := readJSONFile(path, definitions.Candidates)
	if err != nil {
		return nil, err
	}
	var candidates []*types.CandidateProfile
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidates JSON: %w", err)
	}
	return candidates, nil
}

// loadCandidate reads a single candidate profile object.
func loadCandidate(path string) (*types.CandidateProfile, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	wrapped := make([]byte, 0, len(data)+2)
	wrapped = append(append(append(wrapped, '['), data...), ']')
	if err := schemas.Validate(definitions.Candidates, wrapped); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	var candidate types.CandidateProfile
	if err := json.Unmarshal(data, &candidate); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate JSON: %w", err)
	}
	return &candidate, nil
}

func readJSONFile(path, schema string) ([]byte, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if err := schemas.Validate(schema, data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// render writes v in the selected output format. text may be nil for commands
// without a text rendering, in which case JSON is written.
func render(cmd *cobra.Command, path string, v any, text func(*observability.Printer)) error {
	if outputFormat != "text" || text == nil {
		return writeJSON(cmd, path, v)
	}
	var buf bytes.Buffer
	text(observability.NewPrinter(&buf))
	return writeOutput(cmd, path, buf.Bytes())
}

// writeJSON writes v as indented JSON to path, or to the command's stdout when path is empty.
func writeJSON(cmd *cobra.Command, path string, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	return writeOutput(cmd, path, append(out, '\n'))
}

func writeOutput(cmd *cobra.Command, path string, out []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}

	// Ensure output directory exists
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// openStore opens the configured score store.
func openStore(ctx context.Context) (store.ScoreStore, error) {
	s, err := store.Open(ctx, cfg.Store.Driver, cfg.Store.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Driver, err)
	}
	return s, nil
}

// newEngine builds a ranking engine from the loaded configuration.
func newEngine(s store.ScoreStore) *ranking.Engine {
	var lookup ranking.ScoreLookup
	var writer ranking.ScoreWriter
	if s != nil {
		lookup, writer = s, s
	}
	return ranking.NewEngine(cfg.NewScorer(), lookup, writer,
		ranking.WithLogger(log),
		ranking.WithParallelism(cfg.Ranking.Parallelism),
		ranking.WithExtractor(extraction.New()),
	)
}

func closeStore(s io.Closer) {
	if err := s.Close(); err != nil {
		log.Warn("failed to close store", zap.Error(err))
	}
}

func maxUploadBytes() int64 {
	return int64(cfg.Server.MaxUploadMB) << 20
}
