// Package observability provides human-readable output for the screener CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the text output format.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(clip(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFields outputs the structured fields extracted from one resume.
func (p *Printer) PrintFields(name string, f extraction.Fields) {
	var sb strings.Builder
	if name != "" {
		sb.WriteString(fmt.Sprintf("Resume:     %s\n\n", name))
	}
	sb.WriteString(fmt.Sprintf("Experience: %s\n", years(f.ExperienceYears)))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", orUnknown(strings.TrimSpace(f.EducationLevel+" "+f.EducationField))))
	sb.WriteString(fmt.Sprintf("Role:       %s\n", orUnknown(f.JobType)))
	sb.WriteString(fmt.Sprintf("Projects:   %d\n", extraction.CountProjects(f.ProjectsSummary)))
	sb.WriteString("\n")
	sb.WriteString(skillList("Skills", f.Skills))

	p.printBox("EXTRACTED FIELDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEntry outputs the score breakdown of one candidate.
func (p *Printer) PrintEntry(entry *types.RankingEntry) {
	if entry == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate:  %s (#%d)\n", entry.CandidateName, entry.CandidateID))
	sb.WriteString(fmt.Sprintf("Final:      %.2f\n\n", entry.FinalScore))
	sb.WriteString(fmt.Sprintf("Skills      %6.2f\n", entry.SkillScore))
	sb.WriteString(fmt.Sprintf("Experience  %6.2f\n", entry.ExperienceScore))
	sb.WriteString(fmt.Sprintf("Education   %6.2f\n", entry.EducationScore))
	sb.WriteString(fmt.Sprintf("Projects    %6.2f\n", entry.ProjectScore))
	sb.WriteString("\n")
	sb.WriteString(skillList("Matched", entry.MatchedSkills))
	sb.WriteString(skillList("Missing", entry.MissingSkills))

	p.printBox("CANDIDATE SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs every ranked candidate followed by any failures.
func (p *Printer) PrintRanking(ranking *types.Ranking) {
	if ranking == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job %d: %d ranked, %d failed\n", ranking.JobID, len(ranking.Entries), len(ranking.Failures)))

	for _, e := range ranking.Entries {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("#%-3d %6.2f  %s\n", e.Rank, e.FinalScore, e.CandidateName))
		sb.WriteString(fmt.Sprintf("     S %.0f  E %.0f  Ed %.0f  P %.0f\n", e.SkillScore, e.ExperienceScore, e.EducationScore, e.ProjectScore))
		if len(e.MissingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("     missing: %s\n", joinLimited(e.MissingSkills)))
		}
	}

	if len(ranking.Failures) > 0 {
		sb.WriteString("\nFailures:\n")
		for _, f := range ranking.Failures {
			name := f.CandidateName
			if name == "" {
				name = fmt.Sprintf("candidate-%d", f.CandidateID)
			}
			sb.WriteString(fmt.Sprintf("⚠ %s\n  %s\n", name, f.Error))
		}
	}

	p.printBox("CANDIDATE RANKING", strings.TrimSuffix(sb.String(), "\n"))
}

func skillList(label string, skills []string) string {
	if len(skills) == 0 {
		return fmt.Sprintf("%s: none\n", label)
	}
	return fmt.Sprintf("%s: %s\n", label, joinLimited(skills))
}

// joinLimited joins up to maxItemsToShow items and summarizes the rest.
func joinLimited(items []string) string {
	if len(items) <= maxItemsToShow {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s ... and %d more", strings.Join(items[:maxItemsToShow], ", "), len(items)-maxItemsToShow)
}

func years(y *int) string {
	switch {
	case y == nil:
		return "unknown"
	case *y == 1:
		return "1 year"
	default:
		return fmt.Sprintf("%d years", *y)
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

// clip truncates s to width runes, marking the cut with "...".
func clip(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width-3]) + "..."
}

// pad right-pads s with spaces to width runes. fmt's %-*s counts bytes, not runes.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
