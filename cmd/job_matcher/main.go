// Package main provides the entry point for the Job Matcher CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_matcher",
	Short: "Job Matcher HTTP API Server and CLI",
	Long:  "Job Matcher extracts candidate profiles from uploaded resumes and ranks job postings by compatibility, served over a REST API or run as one-off CLI steps.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
