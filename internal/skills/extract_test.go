package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "skills section with mixed case",
			text: "Backend developer with 5 years of experience.\n\nTechnical Skills: Java, PostgreSQL",
			want: []string{"java", "postgresql"},
		},
		{
			name: "versioned tokens and labels in section",
			text: "Skills\nLanguages: Java 17, Python 3\nTools: Docker",
			want: []string{"docker", "java", "python"},
		},
		{
			name: "synonyms are canonicalized",
			text: "Tech Stack: golang, k8s, postgres, reactjs",
			want: []string{"go", "kubernetes", "postgresql", "react"},
		},
		{
			name: "whole text scan respects word boundaries",
			text: "Wrote javascript daily for three years",
			want: []string{"javascript"},
		},
		{
			name: "symbol skills fall back to substring",
			text: "Shipped firmware in C++ and a CI/CD pipeline",
			want: []string{"c++", "ci/cd"},
		},
		{
			name: "multi word terms match across a line break",
			text: "Studied machine\nlearning models",
			want: []string{"machine learning"},
		},
		{
			name: "aws canonical name",
			text: "Deployed services on AWS",
			want: []string{"amazon web services"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text))
		})
	}
}

func TestExtract_Deterministic(t *testing.T) {
	text := "Skills: Python, Docker, Java\nExperience with Kubernetes and Redis"
	first := Extract(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Extract(text))
	}
	assert.IsIncreasing(t, first)
}

func TestVocabulary(t *testing.T) {
	v := DefaultVocabulary()
	assert.True(t, v.Contains("Java"))
	assert.True(t, v.Contains("spring  boot"))
	assert.False(t, v.Contains("cobol"))
	assert.IsIncreasing(t, v.Terms())
	assert.Equal(t, len(v.Terms()), v.Len())
}
