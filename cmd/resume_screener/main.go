// Package main provides the resume_screener CLI and HTTP server entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/logger"
)

var (
	cfgFile      string
	outputFormat string

	// cfg and log are populated by setup before any subcommand runs.
	cfg *config.Config
	log *zap.Logger
)

// flagKeys binds command-line flags to configuration keys when a command defines them.
var flagKeys = map[string]string{
	"debug":       "log.debug",
	"json":        "log.json",
	"port":        "server.port",
	"store":       "store.driver",
	"dsn":         "store.dsn",
	"policy":      "matching.policy",
	"parallelism": "ranking.parallelism",
}

var rootCmd = &cobra.Command{
	Use:               "resume_screener",
	Short:             "Resume screening and candidate ranking",
	Long:              "resume_screener extracts structured fields from resumes, scores candidates against job requirements and ranks them.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is resume-screener.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Verbose/debug output")
	rootCmd.PersistentFlags().Bool("json", false, "JSON format for logging")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "json", "Output format: json or text")
}

// setup loads the configuration and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if outputFormat != "json" && outputFormat != "text" {
		return fmt.Errorf("unknown output format %q (want json or text)", outputFormat)
	}

	v := viper.New()
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	loaded, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	log, err = logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	for _, w := range cfg.Warnings() {
		log.Warn(w)
	}
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
