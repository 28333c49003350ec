// Package extraction turns raw resume text into the structured fields scoring reads:
// skills, years of experience, education level and field, projects and job type.
package extraction

import (
	"strings"
	"time"

	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// Fields are the structured values derived from one document. Absent values are
// nil or empty, never zero-filled.
type Fields struct {
	Skills          []string `json:"skills"`
	ExperienceYears *int     `json:"experience_years,omitempty"`
	EducationLevel  string   `json:"education_level,omitempty"`
	EducationField  string   `json:"education_field,omitempty"`
	ProjectsSummary string   `json:"projects_summary,omitempty"`
	JobType         string   `json:"job_type,omitempty"`
}

// Extractor runs every field extractor over a document. It holds no mutable
// state and is safe for concurrent use.
type Extractor struct {
	skills *skills.Extractor
	now    func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock sets the clock used to resolve "present" in date ranges.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// WithSkillExtractor replaces the skill extractor.
func WithSkillExtractor(s *skills.Extractor) Option {
	return func(e *Extractor) {
		e.skills = s
	}
}

// New creates an Extractor using the built-in vocabulary and the system clock.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		skills: skills.NewExtractor(skills.DefaultVocabulary(), skills.DefaultSynonyms()),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractStructuredFields extracts every field from raw text with a default Extractor.
func ExtractStructuredFields(raw string) Fields {
	return New().Extract(raw)
}

// Extract derives all fields from raw text. Empty input yields empty Fields, not an error.
func (e *Extractor) Extract(raw string) Fields {
	if strings.TrimSpace(raw) == "" {
		return Fields{Skills: []string{}}
	}
	found := e.skills.Extract(raw)
	if found == nil {
		found = []string{}
	}
	return Fields{
		Skills:          found,
		ExperienceYears: ExperienceYears(raw, e.now()),
		EducationLevel:  EducationLevel(raw),
		EducationField:  EducationField(raw),
		ProjectsSummary: ProjectsSummary(raw),
		JobType:         JobType(raw),
	}
}

// ExtractProfile overwrites the derived fields of p from its raw text and stamps
// the extraction time. Running it twice on the same text yields the same fields.
func (e *Extractor) ExtractProfile(p *types.CandidateProfile) error {
	if p == nil {
		return &PreconditionError{Cause: ErrNoRawText}
	}
	if strings.TrimSpace(p.RawText) == "" {
		return &PreconditionError{CandidateID: p.ID, Cause: ErrNoRawText}
	}

	f := e.Extract(p.RawText)
	p.Skills = f.Skills
	p.ExperienceYears = f.ExperienceYears
	p.EducationLevel = f.EducationLevel
	p.EducationField = f.EducationField
	p.ProjectsSummary = f.ProjectsSummary
	p.JobType = f.JobType

	extractedAt := e.now().UTC()
	p.ExtractedAt = &extractedAt
	return nil
}
