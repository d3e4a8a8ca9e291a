package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-screen/internal/config"
	"github.com/jonathan/talent-screen/internal/logger"
	"github.com/jonathan/talent-screen/internal/server"
)

var (
	serveConfigPath string
	servePort       int
	serveVocabulary string
	serveLogJSON    bool
	serveDebug      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for candidates, jobs,
interviews and analytics.

Configuration can be loaded from a JSON file using --config. Environment
variables and command-line flags override config file values.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveVocabulary, "vocabulary", "", "Path to skill vocabulary JSON (default built-in set)")
	serveCmd.Flags().BoolVar(&serveLogJSON, "log-json", false, "Emit JSON logs instead of console encoding")
	serveCmd.Flags().BoolVarP(&serveDebug, "verbose", "v", false, "Lower the log level to debug")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		cfg.LogJSON = fileCfg.LogJSON
		cfg.Debug = fileCfg.Debug
	}

	// Flags win over both env and config file
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveVocabulary != "" {
		cfg.Vocabulary = serveVocabulary
	}
	if serveLogJSON {
		cfg.LogJSON = true
	}
	if serveDebug {
		cfg.Debug = true
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	srv, err := server.New(server.Config{
		Port:           cfg.Port,
		DatabaseURL:    cfg.DatabaseURL,
		APIKey:         cfg.APIKey,
		VocabularyPath: cfg.Vocabulary,
		Logger:         log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
