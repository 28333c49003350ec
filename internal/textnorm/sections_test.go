package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleResume = `Jane Doe
Senior Engineer

Technical Skills:
Java, PostgreSQL
Docker | Kubernetes

Languages: English, German

Work Experience
Acme Corp, Backend Engineer, 2019 - 2024
Built a payment project.

Beta Ltd 2015-2017

Education
B.Sc. in Computer Science, 2015

Projects: Ledger service
1. Payment gateway in Go
2. Inventory tracker

Hobbies:
Chess`

func TestFindSection(t *testing.T) {
	cleaned := Clean(sampleResume)

	tests := []struct {
		name    string
		headers []string
		opts    SectionOptions
		want    string
	}{
		{
			name:    "skills stops at blank line",
			headers: SkillHeaders,
			opts:    SectionOptions{StopAtBlank: true},
			want:    "Java, PostgreSQL\nDocker | Kubernetes",
		},
		{
			name:    "experience spans blank lines until next header",
			headers: ExperienceHeaders,
			want:    "Acme Corp, Backend Engineer, 2019 - 2024\nBuilt a payment project.\n\nBeta Ltd 2015-2017",
		},
		{
			name:    "education",
			headers: EducationHeaders,
			want:    "B.Sc. in Computer Science, 2015",
		},
		{
			name:    "inline content after separator keeps case",
			headers: ProjectHeaders,
			want:    "Ledger service\n1. Payment gateway in Go\n2. Inventory tracker",
		},
		{
			name:    "missing section",
			headers: []string{"certifications"},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindSection(cleaned, tt.headers, tt.opts))
		})
	}
}

func TestFindSections_AllOccurrences(t *testing.T) {
	cleaned := Clean("Skills: Java, Go\n\nSummary\nLikes Go\n\nTech Stack\nReact\nVue")
	got := FindSections(cleaned, SkillHeaders, SectionOptions{StopAtBlank: true})
	assert.Equal(t, []string{"Java, Go", "React\nVue"}, got)
}

func TestFindSections_HeaderNeedsSeparator(t *testing.T) {
	cleaned := Clean("Skills and interests include chess\nJava")
	assert.Empty(t, FindSections(cleaned, SkillHeaders, SectionOptions{}))
}

func TestFindSections_DateAfterHeader(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"date on header line", "Experience 2018-present", "2018-present"},
		{"date then more lines", "Work Experience 2019 - 2024 Acme\nBeta 2015 - 2017", "2019 - 2024 Acme\nBeta 2015 - 2017"},
		{"words still need a separator", "Experience with Java", ""},
		{"digits glued to header", "Experience2018", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindSection(Clean(tt.text), ExperienceHeaders, SectionOptions{}))
		})
	}
}

func TestFindSections_LongestPhraseWins(t *testing.T) {
	cleaned := Clean("Work Experience: 2019 - 2024\nEducation\nBSc")
	assert.Equal(t, "2019 - 2024", FindSection(cleaned, ExperienceHeaders, SectionOptions{}))
}
