package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobType(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "Full-stack developer", want: JobTypeFullstack},
		{text: "Senior FULL STACK engineer", want: JobTypeFullstack},
		{text: "Backend engineer", want: JobTypeBackend},
		{text: "back-end and front-end work", want: JobTypeBackend},
		{text: "front end specialist", want: JobTypeFrontend},
		{text: "Data analyst", want: ""},
		{text: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, JobType(tt.text))
		})
	}
}

func TestNormalizeJobType(t *testing.T) {
	assert.Equal(t, "fullstack", NormalizeJobType("Full-Stack "))
	assert.Equal(t, "backenddeveloper", NormalizeJobType("Backend Developer"))
	assert.Equal(t, "", NormalizeJobType("42"))
}
