// Package types provides type definitions for structured data used throughout the resume-screener system.
package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// JobRequirement is the job-side record a candidate is scored against.
type JobRequirement struct {
	ID                     int64    `json:"id" validate:"gte=0"`
	Title                  string   `json:"title" validate:"required,max=255"`
	Description            string   `json:"description,omitempty"`
	RequiredSkills         []string `json:"required_skills"`
	PreferredSkills        []string `json:"preferred_skills,omitempty"` // advisory, not scored
	MinExperienceYears     *int     `json:"min_experience_years,omitempty" validate:"omitempty,gte=0,lte=50"`
	RequiredEducationLevel string   `json:"required_education_level,omitempty" validate:"max=50"`
	RequiredEducationField string   `json:"required_education_field,omitempty" validate:"max=255"`
	JobType                string   `json:"job_type,omitempty" validate:"max=50"`
}

// Validate checks the requirement at the boundary. Failures are reported as *ValidationError.
func (r *JobRequirement) Validate() error {
	if r == nil {
		return &ValidationError{Field: "job", Message: "requirement is required"}
	}
	validate := validator.New()
	return toValidationError(validate.Struct(r))
}

// Normalize trims whitespace and removes case-insensitive duplicates from both skill lists.
// The first spelling of each skill is kept and order is preserved.
func (r *JobRequirement) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.RequiredSkills = DedupeSkills(r.RequiredSkills)
	r.PreferredSkills = DedupeSkills(r.PreferredSkills)
	r.RequiredEducationLevel = strings.TrimSpace(r.RequiredEducationLevel)
	r.RequiredEducationField = strings.TrimSpace(r.RequiredEducationField)
	r.JobType = strings.TrimSpace(r.JobType)
}

// MinYears returns the experience floor, or 0 when none is set.
func (r *JobRequirement) MinYears() int {
	if r.MinExperienceYears == nil {
		return 0
	}
	return *r.MinExperienceYears
}

// ParseSkillList splits a comma or semicolon separated skill string into a deduplicated list.
func ParseSkillList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';'
	})
	return DedupeSkills(parts)
}

// DedupeSkills trims each skill, drops empties and removes case-insensitive duplicates.
func DedupeSkills(skills []string) []string {
	if len(skills) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.Join(strings.Fields(s), " ")
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

// ValidationError reports an input that was rejected before reaching the scorers.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// toValidationError converts the first validator failure into a *ValidationError.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed on '%s' (value %v)", fe.Tag(), fe.Value()),
		}
	}
	return &ValidationError{Field: "(root)", Message: err.Error()}
}
