package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/textnorm"
)

// Job type labels.
const (
	JobTypeFullstack = "fullstack"
	JobTypeBackend   = "backend"
	JobTypeFrontend  = "frontend"
)

// rolePatterns are checked in order; the first hit labels the candidate.
var rolePatterns = []struct {
	label   string
	pattern *regexp.Regexp
}{
	{JobTypeFullstack, regexp.MustCompile(`\bfull[\s-]?stack\b`)},
	{JobTypeBackend, regexp.MustCompile(`\bback[\s-]?end\b`)},
	{JobTypeFrontend, regexp.MustCompile(`\bfront[\s-]?end\b`)},
}

// JobType labels raw text as fullstack, backend or frontend work, or "".
func JobType(raw string) string {
	normalized := textnorm.Normalize(raw)
	for _, r := range rolePatterns {
		if r.pattern.MatchString(normalized) {
			return r.label
		}
	}
	return ""
}

// NormalizeJobType lowercases a job type and drops everything but letters,
// so "Full-Stack" and "full stack" compare equal.
func NormalizeJobType(jobType string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, strings.ToLower(jobType))
}
