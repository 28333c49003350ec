package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher_Match(t *testing.T) {
	tests := []struct {
		name        string
		policy      Policy
		candidate   []string
		required    []string
		wantMatched []string
		wantMissing []string
		wantRatio   float64
	}{
		{
			name:        "empty requirement scores 100",
			candidate:   []string{"java"},
			required:    nil,
			wantMatched: []string{},
			wantMissing: []string{},
			wantRatio:   100,
		},
		{
			name:        "empty candidate scores 0",
			candidate:   nil,
			required:    []string{"java", "sql"},
			wantMatched: []string{},
			wantMissing: []string{"java", "sql"},
			wantRatio:   0,
		},
		{
			name:        "exact match is case insensitive",
			candidate:   []string{"java"},
			required:    []string{"Java"},
			wantMatched: []string{"Java"},
			wantMissing: []string{},
			wantRatio:   100,
		},
		{
			name:        "synonym group match",
			candidate:   []string{"node.js", "mariadb"},
			required:    []string{"nodejs", "mysql"},
			wantMatched: []string{"nodejs", "mysql"},
			wantMissing: []string{},
			wantRatio:   100,
		},
		{
			name:        "strict policy ignores containment",
			candidate:   []string{"java", "postgresql"},
			required:    []string{"java", "sql"},
			wantMatched: []string{"java"},
			wantMissing: []string{"sql"},
			wantRatio:   50,
		},
		{
			name:        "lenient policy honors containment in both sets",
			policy:      PolicyLenient,
			candidate:   []string{"java", "postgresql"},
			required:    []string{"java", "sql"},
			wantMatched: []string{"java", "sql"},
			wantMissing: []string{},
			wantRatio:   100,
		},
		{
			name:        "duplicate requirements count once",
			candidate:   []string{"go"},
			required:    []string{"Go", "go", "rust"},
			wantMatched: []string{"Go"},
			wantMissing: []string{"rust"},
			wantRatio:   50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(tt.policy)
			got := m.Match(tt.candidate, tt.required)
			assert.Equal(t, tt.wantMatched, got.Matched)
			assert.Equal(t, tt.wantMissing, got.Missing)
			assert.InDelta(t, tt.wantRatio, got.Ratio, 1e-9)
			assert.InDelta(t, tt.wantRatio, m.Ratio(tt.candidate, tt.required), 1e-9)
		})
	}
}

func TestMatcher_SynonymSymmetry(t *testing.T) {
	m := NewMatcher(PolicyStrict)
	for _, group := range equivalenceGroups {
		for _, a := range group {
			for _, b := range group {
				assert.True(t, m.Matches(a, b), "%q should match %q", a, b)
				assert.True(t, m.Matches(b, a), "%q should match %q", b, a)
			}
		}
	}
	for from, to := range canonicalNames {
		assert.True(t, m.Matches(from, to), "%q should match %q", from, to)
		assert.True(t, m.Matches(to, from), "%q should match %q", to, from)
	}
}

func TestMatcher_RatioBoundaries(t *testing.T) {
	m := NewMatcher(PolicyStrict)
	assert.Equal(t, 0.0, m.Ratio(nil, []string{"go"}))
	assert.Equal(t, 100.0, m.Ratio([]string{"go"}, nil))
	assert.Equal(t, 100.0, m.Ratio(nil, nil))
}

func TestMatcher_UnrelatedGroupsDoNotMatch(t *testing.T) {
	m := NewMatcher(PolicyStrict)
	assert.False(t, m.Matches("react", "angular"))
	assert.False(t, m.Matches("java", "javascript"))
	assert.False(t, m.Matches("", ""))
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyStrict, p)

	p, err = ParsePolicy(" Lenient ")
	require.NoError(t, err)
	assert.Equal(t, PolicyLenient, p)

	_, err = ParsePolicy("fuzzy")
	assert.Error(t, err)
}
