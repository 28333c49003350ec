package scoring

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/extraction"
)

// ProjectScore scores a projects summary, 0 to 100: 50 for having projects,
// 5 per estimated project up to 30, and 5 per required skill mentioned up to 20.
// Mentions are plain substring checks.
func ProjectScore(summary string, requiredSkills []string) float64 {
	if strings.TrimSpace(summary) == "" {
		return 0
	}

	count := extraction.CountProjects(summary)
	countBonus := min(30, float64(count)*5)

	lower := strings.ToLower(summary)
	mentioned := 0
	for _, skill := range requiredSkills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill != "" && strings.Contains(lower, skill) {
			mentioned++
		}
	}
	relevance := min(20, float64(mentioned)*5)

	return Round2(Clamp(50 + countBonus + relevance))
}
