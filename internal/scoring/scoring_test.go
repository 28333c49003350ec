package scoring

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

func intPtr(v int) *int { return &v }

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{2.675, 2.68},
		{1.005, 1.01},
		{0.125, 0.13},
		{66.666666, 66.67},
		{55, 55},
		{99.994, 99.99},
		{99.995, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}
}

func TestCents(t *testing.T) {
	assert.Equal(t, int64(5500), Cents(55.00))
	assert.Equal(t, int64(7760), Cents(77.6))
	assert.Equal(t, Cents(0.1+0.2), Cents(0.3))
}

func TestEducationScore(t *testing.T) {
	tests := []struct {
		name                           string
		candLevel, candField           string
		reqLevel, reqField             string
		want                           float64
	}{
		{"no requirement", "", "", "", "", 100},
		{"no requirement ignores field", "", "", "", "Computer Science", 100},
		{"candidate has no level", "", "Computer Science", "Bachelor", "", 0},
		{"meets level", "Bachelor", "", "Bachelor", "", 80},
		{"exceeds level", "PhD", "", "Bachelor", "", 80},
		{"ratio 0.8", "Master", "", "PhD", "", 56},
		{"ratio 0.75", "Bachelor", "", "Master", "", 40},
		{"ratio below 0.6", "Certificate", "", "Bachelor", "", 24},
		{"diploma equals associate", "Diploma", "", "Associate", "", 80},
		{"case insensitive", "bachelor", "", "BACHELOR", "", 80},
		{"unrecognized containment", "Doctorate", "", "doctorate degree", "", 64},
		{"unrecognized neutral", "Bootcamp", "", "Nanodegree", "", 40},
		{"exact field", "Bachelor", "Computer Science", "Bachelor", "Computer Science", 84},
		{"contained field", "Master", "Software Engineering", "Master", "Engineering", 83},
		{"related computing field", "Bachelor", "Computer Science", "Bachelor", "Software", 82},
		{"related engineering field", "Bachelor", "Mechanical Engineering", "Bachelor", "Civil Engineering", 82},
		{"unrelated field", "Bachelor", "Biology", "Bachelor", "History", 80},
		{"missing candidate field", "Bachelor", "", "Bachelor", "Computer Science", 80},
		{"below level with exact field", "Master", "Physics", "PhD", "Physics", 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EducationScore(tt.candLevel, tt.candField, tt.reqLevel, tt.reqField)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExperienceScore(t *testing.T) {
	tests := []struct {
		name             string
		have, want       *int
		jobType, candJob string
		opts             ExperienceOptions
		expected         float64
	}{
		{"unknown candidate", nil, intPtr(5), "", "", ExperienceOptions{}, 0},
		{"no requirement", intPtr(3), nil, "", "", ExperienceOptions{}, 100},
		{"zero requirement", intPtr(0), intPtr(0), "", "", ExperienceOptions{}, 100},
		{"meets exactly", intPtr(5), intPtr(5), "", "", ExperienceOptions{}, 100},
		{"far over is not penalized", intPtr(12), intPtr(5), "", "", ExperienceOptions{}, 100},
		{"far over penalized when enabled", intPtr(12), intPtr(5), "", "", ExperienceOptions{PenalizeOverqualification: true}, 95},
		{"five over stays 100", intPtr(10), intPtr(5), "", "", ExperienceOptions{PenalizeOverqualification: true}, 100},
		{"ratio 0.4", intPtr(2), intPtr(5), "", "", ExperienceOptions{}, 24},
		{"ratio 0.6", intPtr(3), intPtr(5), "", "", ExperienceOptions{}, 48},
		{"ratio 0.8", intPtr(4), intPtr(5), "", "", ExperienceOptions{}, 72},
		{"zero years", intPtr(0), intPtr(5), "", "", ExperienceOptions{}, 0},
		{"only job side known", intPtr(5), intPtr(5), "backend", "", ExperienceOptions{}, 100},
		{"same role", intPtr(5), intPtr(5), "backend", "backend", ExperienceOptions{}, 84},
		{"same role below floor", intPtr(4), intPtr(5), "Backend", "backend", ExperienceOptions{}, 61.6},
		{"fullstack job backend candidate", intPtr(5), intPtr(5), "Full Stack", "backend", ExperienceOptions{}, 82},
		{"backend job fullstack candidate", intPtr(5), intPtr(5), "backend", "full-stack", ExperienceOptions{}, 83},
		{"mismatched role", intPtr(5), intPtr(5), "frontend", "backend", ExperienceOptions{}, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExperienceScore(tt.have, tt.want, tt.jobType, tt.candJob, tt.opts)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRoleBonus(t *testing.T) {
	assert.Equal(t, 20.0, RoleBonus("Backend", "back-end"))
	assert.Equal(t, 10.0, RoleBonus("fullstack", "frontend"))
	assert.Equal(t, 15.0, RoleBonus("frontend", "Full Stack"))
	assert.Equal(t, 0.0, RoleBonus("", "backend"))
	assert.Equal(t, 0.0, RoleBonus("data", "backend"))
}

func TestProjectScore(t *testing.T) {
	tests := []struct {
		name     string
		summary  string
		required []string
		want     float64
	}{
		{"absent", "", []string{"java"}, 0},
		{"whitespace only", "  \n ", nil, 0},
		{"short prose", "Built an internal tool.", nil, 55},
		{"numbered with one skill", "1. Built a payment API in Java\n2. Dashboard in React", []string{"java", "sql"}, 65},
		{"skill check is substring", "Migrated reports to PostgreSQL", []string{"SQL "}, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProjectScore(tt.summary, tt.required))
		})
	}

	t.Run("bonuses are capped", func(t *testing.T) {
		summary := ""
		for i := 0; i < 12; i++ {
			summary += "- service in go, java, python, rust, kotlin, scala\n"
		}
		got := ProjectScore(summary, []string{"go", "java", "python", "rust", "kotlin", "scala"})
		assert.Equal(t, 100.0, got)
	})
}

func TestAggregate(t *testing.T) {
	got := Aggregate(ComponentScores{Skill: 50, Experience: 100}, DefaultWeights())
	assert.Equal(t, 55.0, got)

	got = Aggregate(ComponentScores{Skill: 100, Experience: 100, Education: 100, Project: 100}, DefaultWeights())
	assert.Equal(t, 100.0, got)

	// Over-weighted configurations still clamp.
	got = Aggregate(ComponentScores{Skill: 100, Experience: 100}, Weights{Skill: 1, Experience: 1})
	assert.Equal(t, 100.0, got)
}

func TestAggregateBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		a, b, c := rng.Float64(), rng.Float64(), rng.Float64()
		total := a + b + c + rng.Float64()
		w := Weights{Skill: a / total, Experience: b / total, Education: c / total}
		w.Project = 1 - w.Skill - w.Experience - w.Education

		scores := ComponentScores{
			Skill:      rng.Float64() * 100,
			Experience: rng.Float64() * 100,
			Education:  rng.Float64() * 100,
			Project:    rng.Float64() * 100,
		}
		got := Aggregate(scores, w)
		require.GreaterOrEqual(t, got, 0.0)
		require.LessOrEqual(t, got, 100.0)
		require.Equal(t, got, Round2(got))
	}
}

func TestWeightsValidate(t *testing.T) {
	require.NoError(t, DefaultWeights().Validate())
	assert.True(t, DefaultWeights().SumsToOne())

	err := Weights{Skill: -0.1, Experience: 0.6, Education: 0.3, Project: 0.2}.Validate()
	require.Error(t, err)
	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Skill", verr.Field)

	err = Weights{Skill: 0.5, Experience: 1.5}.Validate()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Experience", verr.Field)

	err = Weights{Skill: math.NaN()}.Validate()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Skill", verr.Field)

	// Several bad weights always report the first one in field order.
	for i := 0; i < 20; i++ {
		err = Weights{Skill: 0.5, Education: math.Inf(1), Project: math.NaN()}.Validate()
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Education", verr.Field)
	}

	unbalanced := Weights{Skill: 0.5, Experience: 0.5, Education: 0.5}
	require.NoError(t, unbalanced.Validate())
	assert.False(t, unbalanced.SumsToOne())
	assert.InDelta(t, 1.5, unbalanced.Sum(), 1e-9)
}

func TestComputeComponentScores(t *testing.T) {
	s := NewScorer(nil, DefaultWeights())
	p := &types.CandidateProfile{
		ID:              7,
		Skills:          []string{"java", "postgresql"},
		ExperienceYears: intPtr(5),
	}
	r := &types.JobRequirement{
		ID:                     3,
		Title:                  "Backend Engineer",
		RequiredSkills:         []string{"java", "sql"},
		MinExperienceYears:     intPtr(5),
		RequiredEducationLevel: "Bachelor",
	}

	c := s.ComputeComponentScores(p, r)
	assert.Equal(t, 50.0, c.Skill)
	assert.Equal(t, 100.0, c.Experience)
	assert.Equal(t, 0.0, c.Education)
	assert.Equal(t, 0.0, c.Project)
	assert.Equal(t, []string{"java"}, c.MatchedSkills)
	assert.Equal(t, []string{"sql"}, c.MissingSkills)
	assert.Equal(t, 55.0, s.ComputeFinalScore(p, r))

	lenient := NewScorer(skills.NewMatcher(skills.PolicyLenient), DefaultWeights())
	c = lenient.ComputeComponentScores(p, r)
	assert.Equal(t, 100.0, c.Skill)
	assert.Empty(t, c.MissingSkills)
}

func TestComputeComponentScores_SecondarySignals(t *testing.T) {
	s := NewScorer(nil, DefaultWeights())
	r := &types.JobRequirement{
		Title:                  "Platform Engineer",
		RequiredSkills:         []string{"java"},
		MinExperienceYears:     intPtr(5),
		RequiredEducationLevel: "Bachelor",
		RequiredEducationField: "Computer Science",
		JobType:                "fullstack",
	}

	tests := []struct {
		name       string
		profile    *types.CandidateProfile
		experience float64
		education  float64
	}{
		{
			name: "backend candidate on fullstack job",
			profile: &types.CandidateProfile{
				Skills: []string{"java"}, ExperienceYears: intPtr(5), JobType: extraction.JobTypeBackend,
				EducationLevel: extraction.LevelBachelor, EducationField: "Computer Science",
			},
			experience: 82,
			education:  84,
		},
		{
			name: "fullstack candidate without field",
			profile: &types.CandidateProfile{
				Skills: []string{"java"}, ExperienceYears: intPtr(5), JobType: extraction.JobTypeFullstack,
				EducationLevel: extraction.LevelBachelor,
			},
			experience: 84,
			education:  80,
		},
		{
			name: "no role information",
			profile: &types.CandidateProfile{
				Skills: []string{"java"}, ExperienceYears: intPtr(5),
				EducationLevel: extraction.LevelMaster, EducationField: "Computer Engineering",
			},
			experience: 100,
			education:  82,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := s.ComputeComponentScores(tt.profile, r)
			assert.Equal(t, tt.experience, c.Experience)
			assert.Equal(t, tt.education, c.Education)
		})
	}
}

func TestComputeComponentScores_DuplicateRequiredSkills(t *testing.T) {
	s := NewScorer(nil, DefaultWeights())
	p := &types.CandidateProfile{ProjectsSummary: "Built a payment API in Java"}
	r := &types.JobRequirement{Title: "Java Developer", RequiredSkills: []string{"java", "Java", " JAVA "}}

	// 50 for projects, 5 for one project, 5 for one distinct skill mentioned.
	assert.Equal(t, 60.0, s.ComputeComponentScores(p, r).Project)
	assert.Equal(t, []string{"java", "Java", " JAVA "}, r.RequiredSkills, "requirement must not be modified")
}

func TestComputeFinalScoreFromText(t *testing.T) {
	fields := extraction.New().Extract("Backend developer with 5 years of experience.\n\nTechnical Skills: Java, PostgreSQL")
	p := &types.CandidateProfile{
		ID:              1,
		Skills:          fields.Skills,
		ExperienceYears: fields.ExperienceYears,
		EducationLevel:  fields.EducationLevel,
		EducationField:  fields.EducationField,
		ProjectsSummary: fields.ProjectsSummary,
		JobType:         fields.JobType,
	}
	r := &types.JobRequirement{
		Title:                  "Java Developer",
		RequiredSkills:         []string{"java", "sql"},
		MinExperienceYears:     intPtr(5),
		RequiredEducationLevel: "Bachelor",
	}
	assert.Equal(t, 55.0, ComputeFinalScore(p, r, DefaultWeights()))
}

func TestComputeComponentScoresNilInputs(t *testing.T) {
	s := NewScorer(nil, DefaultWeights())
	c := s.ComputeComponentScores(nil, nil)
	assert.Equal(t, 100.0, c.Skill)
	assert.Equal(t, 0.0, c.Experience)
	assert.Equal(t, 100.0, c.Education)
	assert.Equal(t, 0.0, c.Project)
}

func TestScoreRecord(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := NewScorer(nil, DefaultWeights(), WithClock(func() time.Time { return at }))
	p := &types.CandidateProfile{ID: 9, Skills: []string{"go"}, ExperienceYears: intPtr(3)}
	r := &types.JobRequirement{ID: 2, Title: "Go Developer", RequiredSkills: []string{"golang"}}

	rec, c := s.Score(p, r)
	require.NotNil(t, rec)
	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Equal(t, int64(2), rec.JobID)
	assert.Equal(t, int64(9), rec.CandidateID)
	assert.Equal(t, at, rec.CalculatedAt)
	assert.Equal(t, 100.0, rec.SkillScore)
	assert.Equal(t, 100.0, rec.ExperienceScore)
	assert.Equal(t, []string{"golang"}, c.MatchedSkills)
	// 100*0.5 + 100*0.3 + 100*0.1 + 0
	assert.Equal(t, 90.0, rec.FinalScore)
}
