package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/extract"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/pdftext"
	"github.com/jonathan/job-matcher/internal/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume file into profile JSON",
	Long:  "Extracts skills, experience, education and projects from a .pdf or .docx resume and writes the profile as JSON. No database required.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume file (.pdf or .docx)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a summary of the extracted profile")
	_ = parseCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	text, err := pdftext.FromFile(parseInputFile, data)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	profile := types.FromFragment(extract.Extract(text))
	if parseVerbose {
		observability.NewPrinter(os.Stderr).PrintProfile(&profile)
	}

	jsonBytes, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if parseOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(parseOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Profile written to %s\n", parseOutputFile)
	return nil
}
