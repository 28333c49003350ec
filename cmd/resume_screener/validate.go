package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	definitions "github.com/jonathan/resume-screener/schemas"

	"github.com/jonathan/resume-screener/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON document against a built-in schema",
	Long:  "Validates a job requirement, candidates or ranking JSON file against the embedded JSON Schema.",
	RunE:  runValidate,
}

var (
	validateSchema string
	validateJSON   string
)

var schemaAliases = map[string]string{
	"job":        definitions.JobRequirement,
	"candidates": definitions.Candidates,
	"ranking":    definitions.Ranking,
}

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Schema: job, candidates or ranking (required)")
	validateCmd.Flags().StringVar(&validateJSON, "file", "", "Path to JSON file to validate (required)")

	if err := validateCmd.MarkFlagRequired("schema"); err != nil {
		panic(fmt.Sprintf("failed to mark schema flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	name, ok := schemaAliases[validateSchema]
	if !ok {
		if !slices.Contains(definitions.Names(), validateSchema) {
			return fmt.Errorf("unknown schema %q (want job, candidates or ranking)", validateSchema)
		}
		name = validateSchema
	}

	if err := schemas.ValidateFile(name, validateJSON); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s matches %s\n", validateJSON, strings.TrimSuffix(name, ".schema.json"))
	return err
}
