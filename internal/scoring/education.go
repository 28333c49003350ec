package scoring

import (
	"strings"
)

// educationRank orders the education hierarchy; higher is more advanced.
var educationRank = map[string]int{
	"phd":         5,
	"master":      4,
	"bachelor":    3,
	"diploma":     2,
	"associate":   2,
	"certificate": 1,
}

// EducationScore scores a candidate's education against the requirement, 0 to 100.
// No required level scores 100; a candidate with no level scores 0. Otherwise
// the level score counts for 80% and the field bonus for 20%.
func EducationScore(candidateLevel, candidateField, requiredLevel, requiredField string) float64 {
	requiredLevel = strings.ToLower(strings.TrimSpace(requiredLevel))
	candidateLevel = strings.ToLower(strings.TrimSpace(candidateLevel))
	if requiredLevel == "" {
		return 100
	}
	if candidateLevel == "" {
		return 0
	}

	level := levelScore(candidateLevel, requiredLevel)
	return Round2(Clamp(level*0.80 + fieldBonus(candidateField, requiredField)*0.20))
}

func levelScore(candidate, required string) float64 {
	cRank, cok := educationRank[candidate]
	rRank, rok := educationRank[required]
	if !cok || !rok {
		if strings.Contains(candidate, required) || strings.Contains(required, candidate) {
			return 80
		}
		return 50
	}
	if cRank >= rRank {
		return 100
	}

	ratio := float64(cRank) / float64(rRank)
	switch {
	case ratio >= 0.8:
		return 70
	case ratio >= 0.6:
		return 50
	default:
		return 30
	}
}

// fieldBonus awards 20 for the same field, 15 when one contains the other and
// 10 for related fields.
func fieldBonus(candidate, required string) float64 {
	candidate = strings.ToLower(strings.TrimSpace(candidate))
	required = strings.ToLower(strings.TrimSpace(required))
	if candidate == "" || required == "" {
		return 0
	}
	switch {
	case candidate == required:
		return 20
	case strings.Contains(candidate, required) || strings.Contains(required, candidate):
		return 15
	case relatedFields(candidate, required):
		return 10
	default:
		return 0
	}
}

func relatedFields(a, b string) bool {
	if (strings.Contains(a, "computer") || strings.Contains(a, "cs")) &&
		(strings.Contains(b, "computer") || strings.Contains(b, "software") || strings.Contains(b, "it")) {
		return true
	}
	return strings.Contains(a, "engineer") && strings.Contains(b, "engineer")
}
