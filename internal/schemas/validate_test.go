package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	definitions "github.com/jonathan/resume-screener/schemas"
)

func TestValidate_JobRequirement(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantField string
	}{
		{"valid", `{"id": 1, "title": "Java Developer", "required_skills": ["java", "sql"], "min_experience_years": 5}`, ""},
		{"null floor", `{"title": "Java Developer", "min_experience_years": null}`, ""},
		{"missing title", `{"required_skills": ["java"]}`, "(root)"},
		{"negative years", `{"title": "x", "min_experience_years": -1}`, "min_experience_years"},
		{"skills not array", `{"title": "x", "required_skills": "java"}`, "required_skills"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(definitions.JobRequirement, []byte(tt.doc))
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.NotEmpty(t, verr.Errors)
			assert.Equal(t, tt.wantField, verr.Errors[0].Field)
			assert.Contains(t, err.Error(), definitions.JobRequirement)
		})
	}
}

func TestValidate_Candidates(t *testing.T) {
	assert.NoError(t, Validate(definitions.Candidates, []byte(`[
		{"id": 1, "raw_text": "Java developer"},
		{"id": 2, "skills": ["go"], "experience_years": 3}
	]`)))

	err := Validate(definitions.Candidates, []byte(`[{"id": 1, "experience_years": -2}]`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "0.experience_years", verr.Errors[0].Field)

	err = Validate(definitions.Candidates, []byte(`{"id": 1}`))
	require.ErrorAs(t, err, &verr)
}

func TestValidate_Ranking(t *testing.T) {
	assert.NoError(t, Validate(definitions.Ranking, []byte(`{
		"job_id": 1,
		"entries": [{
			"candidate_id": 4, "candidate_name": "Jane", "skill_score": 50, "experience_score": 100,
			"education_score": 0, "project_score": 0, "final_score": 55,
			"matched_skills": ["java"], "missing_skills": ["sql"], "rank": 1
		}]
	}`)))

	err := Validate(definitions.Ranking, []byte(`{"job_id": 1, "entries": [{"candidate_id": 4, "final_score": 101}]}`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestValidate_Errors(t *testing.T) {
	err := Validate("missing.schema.json", []byte(`{}`))
	var lerr *SchemaLoadError
	require.ErrorAs(t, err, &lerr)

	err = Validate(definitions.JobRequirement, []byte(`{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON document")
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title": "Go Developer"}`), 0644))
	assert.NoError(t, ValidateFile(definitions.JobRequirement, path))

	err := ValidateFile(definitions.JobRequirement, filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(`{"type": "object", "required": ["name"]}`), 0644))

	valid := filepath.Join(dir, "valid.json")
	require.NoError(t, os.WriteFile(valid, []byte(`{"name": "x"}`), 0644))
	assert.NoError(t, ValidateJSON(schemaPath, valid))

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{}`), 0644))
	err := ValidateJSON(schemaPath, invalid)
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)

	err = ValidateJSON(filepath.Join(dir, "nonexistent.json"), valid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, filepath.Join(dir, "nonexistent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "properties": {"age": {"type": "integer"}}}`
	assert.NoError(t, ValidateJSONString(schema, `{"age": 3}`))

	err := ValidateJSONString(schema, `{"age": "three"}`)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "age", verr.Errors[0].Field)

	err = ValidateJSONString(`{"type": 12}`, `{}`)
	var lerr *SchemaLoadError
	require.ErrorAs(t, err, &lerr)
}
