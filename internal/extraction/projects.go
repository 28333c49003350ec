package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/textnorm"
)

// MaxSummaryLength bounds the stored projects excerpt, in characters.
const MaxSummaryLength = 1000

const truncationMarker = "..."

var (
	sentenceSplit = regexp.MustCompile(`[.!?]`)
	numberedEntry = regexp.MustCompile(`^\d+[.)]\s+`)
	bulletEntry   = regexp.MustCompile(`^[-*•]\s+`)
	projectLabel  = regexp.MustCompile(`project\s*:`)
)

// ProjectsSummary returns the projects section of raw text, or project sentences
// from the experience section when there is no projects section. The result is
// truncated to MaxSummaryLength characters and keeps the document's own
// spelling, accents included. Returns "" when nothing is found.
func ProjectsSummary(raw string) string {
	cleaned := textnorm.Tidy(raw)
	if cleaned == "" {
		return ""
	}

	summary := textnorm.FindSection(cleaned, textnorm.ProjectHeaders, textnorm.SectionOptions{})
	if summary == "" {
		summary = projectSentences(textnorm.FindSection(cleaned, textnorm.ExperienceHeaders, textnorm.SectionOptions{}))
	}
	return truncate(strings.TrimSpace(summary), MaxSummaryLength)
}

// projectSentences keeps the sentences of an experience section that mention a project.
func projectSentences(section string) string {
	if !strings.Contains(strings.ToLower(section), "project") {
		return ""
	}
	var b strings.Builder
	for _, sentence := range sentenceSplit.Split(section, -1) {
		sentence = strings.Join(strings.Fields(sentence), " ")
		if !strings.Contains(strings.ToLower(sentence), "project") {
			continue
		}
		b.WriteString(sentence)
		b.WriteString(". ")
	}
	return strings.TrimSpace(b.String())
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + truncationMarker
}

// CountProjects estimates how many projects a summary describes: numbered or
// bulleted entries plus "Project:" labels, otherwise one per 200 characters.
// The result is between 1 and 10 for a non-empty summary and 0 for an empty one.
func CountProjects(summary string) int {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return 0
	}

	count := 0
	for _, line := range strings.Split(summary, "\n") {
		line = strings.TrimSpace(line)
		if numberedEntry.MatchString(line) || bulletEntry.MatchString(line) {
			count++
		}
	}
	count += len(projectLabel.FindAllStringIndex(strings.ToLower(summary), -1))

	if count == 0 {
		count = max(1, len([]rune(summary))/200)
	}
	return min(count, 10)
}
