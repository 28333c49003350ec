package scoring

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/extraction"
)

// overqualifiedYears is the excess beyond which the optional over-qualification penalty applies.
const overqualifiedYears = 5

// ExperienceOptions tune the experience scorer.
type ExperienceOptions struct {
	// PenalizeOverqualification scores 95 instead of 100 when the candidate
	// exceeds the requirement by more than five years.
	PenalizeOverqualification bool
}

// ExperienceScore scores a candidate's years against the requirement, 0 to 100.
// Unknown candidate experience scores 0; no requirement scores 100. When both
// job types are known the years score counts for 80% and the role bonus for 20%;
// otherwise the years score stands alone.
func ExperienceScore(candidateYears, requiredYears *int, jobType, candidateJobType string, opts ExperienceOptions) float64 {
	if candidateYears == nil {
		return 0
	}
	if requiredYears == nil || *requiredYears <= 0 {
		return 100
	}

	years := yearsScore(*candidateYears, *requiredYears, opts)
	if strings.TrimSpace(jobType) == "" || strings.TrimSpace(candidateJobType) == "" {
		return Round2(Clamp(years))
	}
	return Round2(Clamp(years*0.80 + RoleBonus(jobType, candidateJobType)*0.20))
}

func yearsScore(have, want int, opts ExperienceOptions) float64 {
	if have >= want {
		if opts.PenalizeOverqualification && have-want > overqualifiedYears {
			return 95
		}
		return 100
	}

	ratio := float64(have) / float64(want)
	switch {
	case ratio < 0.5:
		return ratio * 60
	case ratio < 0.75:
		return ratio * 80
	default:
		return ratio * 90
	}
}

// RoleBonus returns 20 for the same job type, 15 when a fullstack candidate
// applies to a backend or frontend job or both share backend or frontend, 10 for
// a backend or frontend candidate on a fullstack job, else 0.
func RoleBonus(jobType, candidateJobType string) float64 {
	job := extraction.NormalizeJobType(jobType)
	cand := extraction.NormalizeJobType(candidateJobType)
	if job == "" || cand == "" {
		return 0
	}
	if job == cand {
		return 20
	}

	isSide := func(s string) bool {
		return strings.Contains(s, "backend") || strings.Contains(s, "frontend")
	}
	switch {
	case strings.Contains(job, "fullstack") && isSide(cand):
		return 10
	case strings.Contains(cand, "fullstack") && isSide(job):
		return 15
	case strings.Contains(job, "backend") && strings.Contains(cand, "backend"):
		return 15
	case strings.Contains(job, "frontend") && strings.Contains(cand, "frontend"):
		return 15
	default:
		return 0
	}
}
