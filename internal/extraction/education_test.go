package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEducationLevelAndField(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLevel string
		wantField string
	}{
		{name: "empty", text: ""},
		{
			name:      "bachelor in section",
			text:      "Education\nB.Sc in Computer Science",
			wantLevel: LevelBachelor,
			wantField: "Computer Science",
		},
		{
			name:      "higher level wins regardless of order",
			text:      "Bachelor of Arts, then a Master of Science",
			wantLevel: LevelMaster,
			wantField: "",
		},
		{
			name:      "phd dominates",
			text:      "Bachelor's degree, later a PhD in Physics",
			wantLevel: LevelPhD,
			wantField: "Physics",
		},
		{
			name:      "mba is displayed in capitals",
			text:      "MBA, 2015",
			wantLevel: LevelMaster,
			wantField: "MBA",
		},
		{
			name:      "section is searched before whole text",
			text:      "Summary\nMentored interns pursuing a PhD.\n\nEducation\nBachelor of Engineering",
			wantLevel: LevelBachelor,
			wantField: "Engineering",
		},
		{
			name:      "diploma",
			text:      "Diploma in Electronics",
			wantLevel: LevelDiploma,
			wantField: "Electronics",
		},
		{
			name:      "two letter acronyms are not reported",
			text:      "Degree in CS and AI",
			wantLevel: "",
			wantField: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLevel, EducationLevel(tt.text))
			assert.Equal(t, tt.wantField, EducationField(tt.text))
		})
	}
}
