package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func TestExperienceYears(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *int
	}{
		{name: "empty", text: "", want: nil},
		{name: "no signal", text: "Enthusiastic engineer", want: nil},
		{name: "years of experience", text: "I have 5 years of experience", want: intPtr(5)},
		{name: "experience label", text: "Experience: 7 years", want: intPtr(7)},
		{name: "largest signal wins", text: "3+ years in Go and 8 yrs overall", want: intPtr(8)},
		{name: "year range in section", text: "Work Experience\nAcme 2019 - 2024", want: intPtr(5)},
		{name: "present resolves to current year", text: "Work Experience\nAcme 2018-present", want: intPtr(7)},
		{name: "range on header line", text: "Experience 2018-present", want: intPtr(7)},
		{name: "current resolves to current year", text: "Experience\nAcme 2020 – current", want: intPtr(5)},
		{name: "section ranges are summed", text: "Work Experience\nAcme 2015 - 2018\nBeta 2019 - 2024", want: intPtr(8)},
		{name: "implausible range rejected", text: "Company history 1900 - 2020", want: nil},
		{name: "implausible count rejected", text: "120 years of tradition", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExperienceYears(tt.text, fixedNow)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestSumDateRanges(t *testing.T) {
	total, ok := sumDateRanges("acme 2010 - 2012\nbeta 2012 - present", 2020)
	assert.True(t, ok)
	assert.Equal(t, 10, total)

	_, ok = sumDateRanges("no dates", 2020)
	assert.False(t, ok)
}

func intPtr(v int) *int { return &v }
