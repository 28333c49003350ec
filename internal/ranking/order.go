package ranking

import (
	"sort"

	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
)

// SortEntries orders entries by final score, skill score, experience score and
// matched-skill count (all descending), then candidate ID ascending.
// Scores compare in hundredths so float noise cannot split a tie.
func SortEntries(entries []types.RankingEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if fa, fb := scoring.Cents(a.FinalScore), scoring.Cents(b.FinalScore); fa != fb {
			return fa > fb
		}
		if sa, sb := scoring.Cents(a.SkillScore), scoring.Cents(b.SkillScore); sa != sb {
			return sa > sb
		}
		if ea, eb := scoring.Cents(a.ExperienceScore), scoring.Cents(b.ExperienceScore); ea != eb {
			return ea > eb
		}
		if len(a.MatchedSkills) != len(b.MatchedSkills) {
			return len(a.MatchedSkills) > len(b.MatchedSkills)
		}
		return a.CandidateID < b.CandidateID
	})
}

// AssignRanks sets Rank on sorted entries. An entry tied with its predecessor on
// every key except identity shares its rank; otherwise its rank is its 1-based
// position, so ranks jump after a tie group (1, 1, 3, 4).
func AssignRanks(entries []types.RankingEntry) {
	for i := range entries {
		if i > 0 && tied(entries[i-1], entries[i]) {
			entries[i].Rank = entries[i-1].Rank
			continue
		}
		entries[i].Rank = i + 1
	}
}

func tied(a, b types.RankingEntry) bool {
	return scoring.Cents(a.FinalScore) == scoring.Cents(b.FinalScore) &&
		scoring.Cents(a.SkillScore) == scoring.Cents(b.SkillScore) &&
		scoring.Cents(a.ExperienceScore) == scoring.Cents(b.ExperienceScore) &&
		len(a.MatchedSkills) == len(b.MatchedSkills)
}
