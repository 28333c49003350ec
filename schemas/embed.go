// Package schemas embeds the JSON Schemas for the screener's input and output documents.
package schemas

import "embed"

// Schema file names.
const (
	JobRequirement = "job_requirement.schema.json"
	Candidates     = "candidates.schema.json"
	Ranking        = "ranking.schema.json"
)

//go:embed *.schema.json
var FS embed.FS

// Names lists every embedded schema.
func Names() []string {
	return []string{JobRequirement, Candidates, Ranking}
}
