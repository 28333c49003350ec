package store

import (
	"context"
	"sort"
	"sync"

	"github.com/jonathan/resume-screener/internal/types"
)

type pairKey struct {
	jobID, candidateID int64
}

// Memory is an in-process ScoreStore.
type Memory struct {
	mu     sync.RWMutex
	scores map[pairKey]types.ScoreRecord
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{scores: make(map[pairKey]types.ScoreRecord)}
}

func (m *Memory) GetScore(_ context.Context, jobID, candidateID int64) (*types.ScoreRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.scores[pairKey{jobID, candidateID}]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *Memory) SaveScore(_ context.Context, rec *types.ScoreRecord) error {
	if err := validateRecord(rec); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	key := pairKey{rec.JobID, rec.CandidateID}
	if _, ok := m.scores[key]; ok {
		return ErrScoreExists
	}
	m.scores[key] = *rec
	return nil
}

func (m *Memory) ListScores(_ context.Context, jobID int64) ([]types.ScoreRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []types.ScoreRecord
	for key, rec := range m.scores {
		if key.jobID == jobID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CandidateID < out[j].CandidateID })
	return out, nil
}

func (m *Memory) DeleteScoresForJob(_ context.Context, jobID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for key := range m.scores {
		if key.jobID == jobID {
			delete(m.scores, key)
			n++
		}
	}
	return n, nil
}

func (m *Memory) Close() error {
	return nil
}
