package textnorm

import (
	"regexp"
	"sort"
	"strings"
)

// Header phrases for the sections the extractors read.
var (
	SkillHeaders = []string{
		"technical skills", "core competencies", "technologies", "tech stack",
		"programming languages", "key skills", "skills",
	}
	ExperienceHeaders = []string{
		"work experience", "professional experience", "employment history",
		"work history", "experience",
	}
	EducationHeaders = []string{
		"education", "academic background", "qualifications",
	}
	// Singular "project" is left out: "Project: X" lines are entries inside the section.
	ProjectHeaders = []string{
		"projects", "personal projects", "side projects", "academic projects",
		"key projects", "selected projects", "portfolio",
	}
)

// otherHeaders end a section without being read by any extractor.
var otherHeaders = []string{
	"summary", "professional summary", "profile", "objective", "certifications",
	"certificates", "awards", "achievements", "interests", "hobbies", "references",
	"publications", "volunteer experience", "volunteering", "contact", "personal information",
}

// capitalizedHeader matches an unknown header such as "Hobbies:" on a line of its own.
var capitalizedHeader = regexp.MustCompile(`^[A-Z][A-Za-z &/]*:$`)

var knownHeaders = sortedByLength(append(append(append(append(
	append([]string{}, SkillHeaders...), ExperienceHeaders...),
	EducationHeaders...), ProjectHeaders...), otherHeaders...))

// SectionOptions controls where a section body ends.
type SectionOptions struct {
	// StopAtBlank ends the section at the first blank line after its content starts.
	StopAtBlank bool
}

// FindSections returns the body of every section in cleaned text whose header
// line starts with one of the given phrases. Bodies keep their case and line
// breaks; callers Normalize them before matching. Inline content after a
// "Header:" separator, or a date right after the header, belongs to the body.
func FindSections(cleaned string, headers []string, opts SectionOptions) []string {
	if cleaned == "" || len(headers) == 0 {
		return nil
	}
	phrases := sortedByLength(headers)
	lines := strings.Split(cleaned, "\n")

	var sections []string
	for i := 0; i < len(lines); i++ {
		inline, ok := matchHeader(lines[i], phrases)
		if !ok {
			continue
		}

		var body []string
		if inline != "" {
			body = append(body, inline)
		}
		j := i + 1
		for ; j < len(lines); j++ {
			line := lines[j]
			if line == "" {
				if len(body) == 0 {
					continue
				}
				if opts.StopAtBlank {
					break
				}
				body = append(body, line)
				continue
			}
			if isHeaderLine(line) {
				break
			}
			body = append(body, line)
		}

		if text := strings.TrimSpace(strings.Join(body, "\n")); text != "" {
			sections = append(sections, text)
		}
		i = j - 1
	}
	return sections
}

// FindSection returns the first matching section body, or "" when none exists.
func FindSection(cleaned string, headers []string, opts SectionOptions) string {
	sections := FindSections(cleaned, headers, opts)
	if len(sections) == 0 {
		return ""
	}
	return sections[0]
}

// matchHeader reports whether line is a header for one of phrases and returns any inline content.
func matchHeader(line string, phrases []string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(strings.TrimLeft(line, "# ")))
	for _, phrase := range phrases {
		if !strings.HasPrefix(lower, phrase) {
			continue
		}
		rest := strings.TrimSpace(lower[len(phrase):])
		if rest == "" {
			return "", true
		}
		switch {
		case strings.ContainsRune(":|-;", rune(rest[0])), strings.HasPrefix(rest, "–"):
		case isSpace(lower[len(phrase)]) && rest[0] >= '0' && rest[0] <= '9':
			// "Experience 2018-present": a date may follow the header without a separator.
		default:
			continue
		}
		offset := len(line) - len(strings.TrimLeft(line, "# "))
		original := strings.TrimSpace(line[offset:])
		if len(original) != len(lower) {
			return strings.TrimLeft(rest, ":|-;– "), true
		}
		inline := strings.TrimSpace(original[len(lower)-len(rest):])
		return strings.TrimSpace(strings.TrimLeft(inline, ":|-;–")), true
	}
	return "", false
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

func isHeaderLine(line string) bool {
	if capitalizedHeader.MatchString(line) {
		return true
	}
	_, ok := matchHeader(line, knownHeaders)
	return ok
}

func sortedByLength(phrases []string) []string {
	out := append([]string(nil), phrases...)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}
