// Package scoring computes the component scores of a candidate against a job
// requirement and combines them into a weighted final score.
package scoring

import (
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-screener/internal/types"
)

// Default weights for the four components.
const (
	DefaultSkillWeight      = 0.50
	DefaultExperienceWeight = 0.30
	DefaultEducationWeight  = 0.10
	DefaultProjectWeight    = 0.10
)

// weightSumTolerance is how far the weight sum may drift from 1.0 before it is reported.
const weightSumTolerance = 1e-6

// Weights are the aggregator's component weights. They are expected to sum to 1.0.
type Weights struct {
	Skill      float64 `json:"skill" mapstructure:"skill" validate:"gte=0,lte=1"`
	Experience float64 `json:"experience" mapstructure:"experience" validate:"gte=0,lte=1"`
	Education  float64 `json:"education" mapstructure:"education" validate:"gte=0,lte=1"`
	Project    float64 `json:"project" mapstructure:"project" validate:"gte=0,lte=1"`
}

// DefaultWeights returns 0.50/0.30/0.10/0.10.
func DefaultWeights() Weights {
	return Weights{
		Skill:      DefaultSkillWeight,
		Experience: DefaultExperienceWeight,
		Education:  DefaultEducationWeight,
		Project:    DefaultProjectWeight,
	}
}

// Validate rejects weights outside [0,1] or not finite. The sum is not enforced; see SumsToOne.
func (w Weights) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"Skill", w.Skill},
		{"Experience", w.Experience},
		{"Education", w.Education},
		{"Project", w.Project},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &types.ValidationError{Field: f.name, Message: "weight must be a finite number"}
		}
	}
	if err := validator.New().Struct(w); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return &types.ValidationError{Field: verrs[0].Field(), Message: "weight must be between 0 and 1"}
		}
		return &types.ValidationError{Field: "weights", Message: err.Error()}
	}
	return nil
}

// Sum returns the total of the four weights.
func (w Weights) Sum() float64 {
	return w.Skill + w.Experience + w.Education + w.Project
}

// SumsToOne reports whether the weights add up to 1.0 within tolerance.
func (w Weights) SumsToOne() bool {
	return math.Abs(w.Sum()-1.0) <= weightSumTolerance
}
