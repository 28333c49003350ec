package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// CandidateProfile holds a candidate's raw text and the fields derived from it.
// Derived fields are only set by extraction; absent values mean "unknown".
type CandidateProfile struct {
	ID       int64  `json:"id" validate:"gte=0"`
	Name     string `json:"name,omitempty" validate:"max=255"`
	FileName string `json:"file_name,omitempty"`
	RawText  string `json:"raw_text,omitempty"`

	Skills          []string   `json:"skills,omitempty"`
	ExperienceYears *int       `json:"experience_years,omitempty" validate:"omitempty,gte=0"`
	EducationLevel  string     `json:"education_level,omitempty"`
	EducationField  string     `json:"education_field,omitempty"`
	ProjectsSummary string     `json:"projects_summary,omitempty"`
	JobType         string     `json:"job_type,omitempty"`
	ExtractedAt     *time.Time `json:"extracted_at,omitempty"`
}

// DisplayName returns the candidate's name, falling back to the file name or identity.
func (p *CandidateProfile) DisplayName() string {
	switch {
	case p.Name != "":
		return p.Name
	case p.FileName != "":
		return p.FileName
	default:
		return fmt.Sprintf("candidate-%d", p.ID)
	}
}

// Extracted reports whether an extraction pass has populated the derived fields.
func (p *CandidateProfile) Extracted() bool {
	return p.ExtractedAt != nil
}

// HasDerivedFields reports whether any derived field carries a value.
func (p *CandidateProfile) HasDerivedFields() bool {
	return len(p.Skills) > 0 || p.ExperienceYears != nil || p.EducationLevel != "" ||
		p.EducationField != "" || p.ProjectsSummary != "" || p.JobType != ""
}

// Validate checks the boundary constraints of a candidate profile, such as non-negative years.
func (p *CandidateProfile) Validate() error {
	if p == nil {
		return &ValidationError{Field: "candidate", Message: "profile is required"}
	}
	validate := validator.New()
	return toValidationError(validate.Struct(p))
}
