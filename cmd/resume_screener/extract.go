package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/observability"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured fields from a resume",
	Long:  "Decodes a PDF, DOCX, HTML or plain text resume and prints the skills, experience, education, projects and role found in it.",
	RunE:  runExtract,
}

var (
	extractFile   string
	extractOutput string
)

func init() {
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Path to the resume document (required)")
	extractCmd.Flags().StringVarP(&extractOutput, "out", "o", "", "Path to output JSON file (default stdout)")

	if err := extractCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

// extractOutputDoc is the JSON printed by extract.
type extractOutputDoc struct {
	Document *ingestion.Metadata `json:"document"`
	Fields   extraction.Fields   `json:"fields"`
}

func runExtract(cmd *cobra.Command, _ []string) error {
	doc, err := ingestion.DecodeFile(extractFile, maxUploadBytes())
	if err != nil {
		return err
	}
	log.Debug("decoded resume",
		zap.String("file", doc.FileName),
		zap.String("format", string(doc.Format)),
		zap.String("excerpt", logger.TruncateForLog(doc.Text, 80)),
	)

	fields := extraction.New().Extract(doc.Text)
	return render(cmd, extractOutput, extractOutputDoc{Document: doc.Metadata, Fields: fields}, func(p *observability.Printer) {
		p.PrintFields(doc.FileName, fields)
	})
}
