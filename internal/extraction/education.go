package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/textnorm"
)

// Education level labels, highest first.
const (
	LevelPhD         = "PhD"
	LevelMaster      = "Master"
	LevelBachelor    = "Bachelor"
	LevelDiploma     = "Diploma"
	LevelAssociate   = "Associate"
	LevelCertificate = "Certificate"
)

type keywordLabel struct {
	keyword string
	label   string
	pattern *regexp.Regexp
}

// levelKeywords is ordered by priority: the earliest match wins.
var levelKeywords = compileKeywords([][2]string{
	{"phd", LevelPhD}, {"ph.d", LevelPhD}, {"doctorate", LevelPhD}, {"doctoral", LevelPhD}, {"d.phil", LevelPhD},
	{"master", LevelMaster}, {"masters", LevelMaster}, {"m.sc", LevelMaster}, {"m.s", LevelMaster},
	{"mba", LevelMaster}, {"m.tech", LevelMaster}, {"m.eng", LevelMaster}, {"ms", LevelMaster},
	{"bachelor", LevelBachelor}, {"bachelors", LevelBachelor}, {"b.sc", LevelBachelor}, {"b.s", LevelBachelor},
	{"b.tech", LevelBachelor}, {"b.eng", LevelBachelor}, {"b.e", LevelBachelor}, {"bs", LevelBachelor},
	{"ba", LevelBachelor}, {"b.com", LevelBachelor},
	{"diploma", LevelDiploma},
	{"associate", LevelAssociate},
	{"certificate", LevelCertificate},
})

// fieldKeywords is ordered so specific names win over generic ones.
// Two-letter acronyms (cs, it, ai) are never reported.
var fieldKeywords = compileKeywords([][2]string{
	{"computer science", ""}, {"software engineering", ""}, {"information technology", ""},
	{"electrical engineering", ""}, {"mechanical engineering", ""}, {"civil engineering", ""},
	{"electronics", ""}, {"telecommunications", ""}, {"data science", ""},
	{"artificial intelligence", ""}, {"machine learning", ""}, {"business administration", ""},
	{"mathematics", ""}, {"physics", ""}, {"chemistry", ""}, {"mba", ""}, {"management", ""},
	{"engineering", ""},
})

var upperWords = map[string]bool{"mba": true}

func compileKeywords(pairs [][2]string) []keywordLabel {
	out := make([]keywordLabel, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, keywordLabel{
			keyword: p[0],
			label:   p[1],
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(p[0]) + `\b`),
		})
	}
	return out
}

// EducationLevel returns the highest-priority degree label found in raw text,
// looking in the education section first. Returns "" when none is found.
func EducationLevel(raw string) string {
	for _, text := range educationScopes(raw) {
		for _, k := range levelKeywords {
			if k.pattern.MatchString(text) {
				return k.label
			}
		}
	}
	return ""
}

// EducationField returns the study field found in raw text in display form, or "".
func EducationField(raw string) string {
	for _, text := range educationScopes(raw) {
		for _, k := range fieldKeywords {
			if k.pattern.MatchString(text) {
				return displayField(k.keyword)
			}
		}
	}
	return ""
}

// educationScopes returns the normalized education section (if any) followed by the whole text.
func educationScopes(raw string) []string {
	normalized := textnorm.Normalize(raw)
	if normalized == "" {
		return nil
	}
	section := textnorm.FindSection(textnorm.Clean(raw), textnorm.EducationHeaders, textnorm.SectionOptions{})
	if section == "" {
		return []string{normalized}
	}
	return []string{textnorm.Normalize(section), normalized}
}

func displayField(field string) string {
	words := strings.Fields(field)
	for i, w := range words {
		if upperWords[w] {
			words[i] = strings.ToUpper(w)
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
