package skills

import (
	"fmt"
	"strings"
)

// Policy selects which equivalence rules count as a match.
type Policy string

const (
	// PolicyStrict matches on exact spelling or a shared synonym class.
	PolicyStrict Policy = "strict"
	// PolicyLenient also matches when one skill contains the other, e.g. "spring" and "spring boot".
	PolicyLenient Policy = "lenient"
)

// ParsePolicy converts a configuration value into a Policy. Empty means strict.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyStrict:
		return PolicyStrict, nil
	case PolicyLenient:
		return PolicyLenient, nil
	default:
		return "", fmt.Errorf("unknown matching policy %q", s)
	}
}

// MatchResult is the outcome of matching a candidate's skills against a requirement.
// Matched and Missing keep the requirement's order and spelling.
type MatchResult struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	// Ratio is the matched share of required skills, 0 to 100.
	Ratio float64 `json:"ratio"`
}

// Matcher compares skill sets. One policy drives both the ratio and the matched/missing sets.
type Matcher struct {
	synonyms *SynonymTable
	policy   Policy
}

// NewMatcher returns a matcher over the built-in synonym table.
func NewMatcher(policy Policy) *Matcher {
	if policy == "" {
		policy = PolicyStrict
	}
	return &Matcher{synonyms: DefaultSynonyms(), policy: policy}
}

// Policy returns the matcher's policy.
func (m *Matcher) Policy() Policy {
	return m.policy
}

// Matches reports whether a candidate skill satisfies a required skill.
func (m *Matcher) Matches(candidate, required string) bool {
	c, r := NormalizeSkill(candidate), NormalizeSkill(required)
	if c == "" || r == "" {
		return false
	}
	if c == r || m.synonyms.Equivalent(c, r) {
		return true
	}
	if m.policy == PolicyLenient {
		return containsShorter(c, r) || containsShorter(r, c)
	}
	return false
}

// Match computes matched and missing skills and the match ratio.
// An empty requirement scores 100; an empty candidate set against a non-empty requirement scores 0.
func (m *Matcher) Match(candidate, required []string) MatchResult {
	res := MatchResult{Matched: []string{}, Missing: []string{}}

	reqs := uniqueSkills(required)
	if len(reqs) == 0 {
		res.Ratio = 100
		return res
	}
	cands := uniqueSkills(candidate)

	for _, r := range reqs {
		if m.matchesAny(cands, r) {
			res.Matched = append(res.Matched, r)
		} else {
			res.Missing = append(res.Missing, r)
		}
	}
	res.Ratio = float64(len(res.Matched)) / float64(len(reqs)) * 100
	return res
}

// Ratio returns only the match ratio.
func (m *Matcher) Ratio(candidate, required []string) float64 {
	return m.Match(candidate, required).Ratio
}

func (m *Matcher) matchesAny(candidates []string, required string) bool {
	for _, c := range candidates {
		if m.Matches(c, required) {
			return true
		}
	}
	return false
}

// containsShorter reports whether outer contains inner and inner is strictly shorter.
func containsShorter(outer, inner string) bool {
	return len(inner) < len(outer) && strings.Contains(outer, inner)
}

// uniqueSkills trims skills and drops empties and case-insensitive duplicates.
func uniqueSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.Join(strings.Fields(s), " ")
		key := strings.ToLower(s)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
