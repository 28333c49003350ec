package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/server"
	"github.com/jonathan/resume-screener/internal/server/ratelimit"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing extraction, scoring and ranking endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	serveCmd.Flags().String("store", "", "Score store driver: memory, sqlite or postgres")
	serveCmd.Flags().String("dsn", "", "Score store DSN (SQLite path or PostgreSQL URL)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	s, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStore(s)

	srv, err := server.New(server.Config{
		Port:           cfg.Server.Port,
		Store:          s,
		Scorer:         cfg.NewScorer(),
		Extractor:      extraction.New(),
		Logger:         log,
		Parallelism:    cfg.Ranking.Parallelism,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		MaxUploadBytes: maxUploadBytes(),
		RateLimit:      ratelimit.NewConfig(cfg.Server.RateLimit, cfg.Server.RateBurst),
		APIKeys:        cfg.Server.APIKeys,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
