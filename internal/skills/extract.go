package skills

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/textnorm"
)

var (
	sectionDelimiters = regexp.MustCompile(`[,;|•·\n/]`)
	tokenLabel        = regexp.MustCompile(`^[^:,]{1,40}:\s*`)
	plainTerm         = regexp.MustCompile(`^[a-z0-9 ]+$`)
)

// Extractor finds vocabulary skills in free text. It is safe for concurrent use.
type Extractor struct {
	vocab    *Vocabulary
	synonyms *SynonymTable
	// bounded holds word-boundary patterns for terms made of letters, digits and spaces.
	// Other terms (c++, node.js, ci/cd) are matched by substring.
	bounded map[string]*regexp.Regexp
}

var defaultExtractor = NewExtractor(DefaultVocabulary(), DefaultSynonyms())

// NewExtractor builds an extractor over the given tables.
func NewExtractor(vocab *Vocabulary, synonyms *SynonymTable) *Extractor {
	e := &Extractor{
		vocab:    vocab,
		synonyms: synonyms,
		bounded:  make(map[string]*regexp.Regexp),
	}
	for _, term := range vocab.Terms() {
		if !plainTerm.MatchString(term) {
			continue
		}
		pattern := strings.ReplaceAll(regexp.QuoteMeta(term), " ", `\s+`)
		e.bounded[term] = regexp.MustCompile(`\b` + pattern + `\b`)
	}
	return e
}

// Extract returns the sorted, deduplicated, canonical skills found in raw text.
func Extract(raw string) []string {
	return defaultExtractor.Extract(raw)
}

// Extract returns the sorted, deduplicated, canonical skills found in raw text.
// Skills come from skills-like sections and from a scan of the whole text.
func (e *Extractor) Extract(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	found := map[string]bool{}
	sections := textnorm.FindSections(textnorm.Clean(raw), textnorm.SkillHeaders, textnorm.SectionOptions{StopAtBlank: true})
	for _, body := range sections {
		for _, s := range e.fromSection(textnorm.Normalize(body)) {
			found[s] = true
		}
	}
	for _, s := range e.Scan(textnorm.Normalize(raw)) {
		found[s] = true
	}

	out := make([]string, 0, len(found))
	seen := map[string]bool{}
	for s := range found {
		c := e.synonyms.Canonical(s)
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// fromSection keeps section tokens that are vocabulary entries, or versioned
// extensions of one ("java 8" yields "java").
func (e *Extractor) fromSection(body string) []string {
	var out []string
	for _, token := range sectionDelimiters.Split(body, -1) {
		token = strings.TrimSpace(tokenLabel.ReplaceAllString(strings.TrimSpace(token), ""))
		token = strings.TrimRight(strings.TrimLeft(token, "-*+> "), ". ")
		if token == "" {
			continue
		}

		canonical := e.synonyms.Canonical(token)
		switch {
		case e.vocab.Contains(canonical):
			out = append(out, canonical)
			continue
		case e.vocab.Contains(token):
			out = append(out, token)
			continue
		}
		for _, term := range e.vocab.Terms() {
			if strings.HasPrefix(token, term+" ") {
				out = append(out, term)
			}
		}
	}
	return out
}

// Scan returns every vocabulary term present in normalized text.
func (e *Extractor) Scan(normalized string) []string {
	var out []string
	for _, term := range e.vocab.Terms() {
		if !strings.Contains(normalized, strings.Fields(term)[0]) {
			continue
		}
		if re, ok := e.bounded[term]; ok {
			if re.MatchString(normalized) {
				out = append(out, term)
			}
			continue
		}
		if strings.Contains(normalized, term) {
			out = append(out, term)
		}
	}
	return out
}
