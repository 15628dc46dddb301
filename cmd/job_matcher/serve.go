package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Job Matcher HTTP API server",
	Long: `Starts the REST API: auth, resume upload, profile retrieval and job search.

Requires DATABASE_URL and JWT_SECRET in the environment (a .env file is honored).
Configuration can be loaded from a JSON file using --config; flags override it.`,
	RunE: runServe,
}

var (
	serveConfigPath  string
	servePort        int
	serveDatabaseURL string
	serveUploadDir   string
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP listen port (default 8080)")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	serveCmd.Flags().StringVar(&serveUploadDir, "upload-dir", "", "Directory for stored resume files (default uploads/resumes)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	// CLI flags take priority over config file values
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = serveDatabaseURL
	}
	if cmd.Flags().Changed("upload-dir") {
		cfg.UploadDir = serveUploadDir
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL environment variable or use --db-url)")
	}

	s, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		UploadDir:   cfg.UploadDir,
		Boards:      cfg.Boards,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return s.Start()
}
