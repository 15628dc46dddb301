package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/extract"
	"github.com/jonathan/job-matcher/internal/match"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/pdftext"
	"github.com/jonathan/job-matcher/internal/sources"
	"github.com/jonathan/job-matcher/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank job postings against a candidate profile",
	Long: `Loads a candidate profile (from a profile JSON or directly from a resume
file), searches the configured job sources plus any local feed file, and
prints the postings ranked by compatibility score.

Configuration can be loaded from a JSON file using --config; flags override it.`,
	RunE: runMatch,
}

var (
	matchConfigPath string
	matchResume     string
	matchProfile    string
	matchFeed       string
	matchFeedOnly   bool
	matchKeywords   string
	matchLocation   string
	matchJobType    string
	matchExperience string
	matchOutputFile string
	matchVerbose    bool
)

func init() {
	matchCmd.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume file (mutually exclusive with --profile)")
	matchCmd.Flags().StringVar(&matchProfile, "profile", "", "Path to profile JSON file (mutually exclusive with --resume)")
	matchCmd.Flags().StringVarP(&matchFeed, "feed", "f", "", "Path to a local job feed JSON file")
	matchCmd.Flags().BoolVar(&matchFeedOnly, "feed-only", false, "Search only the local feed, skipping builtin boards")
	matchCmd.Flags().StringVarP(&matchKeywords, "keywords", "k", "", "Search keywords")
	matchCmd.Flags().StringVar(&matchLocation, "location", "", "Preferred location")
	matchCmd.Flags().StringVar(&matchJobType, "job-type", "", "Job type filter (e.g. Full-time, Contract, all)")
	matchCmd.Flags().StringVar(&matchExperience, "experience-level", "", "Experience level filter")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print summaries of the profile and top matches")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMatchConfig(cmd)
	if err != nil {
		return err
	}

	profile, err := loadProfile(cfg)
	if err != nil {
		return err
	}

	boards := []sources.Source{}
	if !matchFeedOnly {
		boards = sources.BuiltinBoards(nil)
		for _, bc := range cfg.Boards {
			boards = append(boards, sources.FromBoardConfig(bc))
		}
	}
	if cfg.Feed != "" {
		boards = append(boards, &sources.FeedBoard{BoardName: "feed", Path: cfg.Feed})
	}
	if len(boards) == 0 {
		return fmt.Errorf("no job sources: --feed-only requires --feed")
	}

	query := sources.Query{
		Keywords:        cfg.Keywords,
		Location:        cfg.Location,
		JobType:         cfg.JobType,
		ExperienceLevel: cfg.ExperienceLevel,
	}

	jobs := sources.Aggregate(context.Background(), query, boards)
	matches := match.Rank(jobs, profile)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintProfile(&profile)
		printer.PrintMatches(matches)
	}

	result := map[string]any{
		"jobs":  matches,
		"count": len(matches),
	}
	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if matchOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(matchOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Matches written to %s\n", matchOutputFile)
	return nil
}

// loadMatchConfig merges the optional config file with CLI flag overrides.
func loadMatchConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if matchConfigPath != "" {
		loaded, err := config.LoadConfig(matchConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// CLI flags take priority over config file values
	if cmd.Flags().Changed("resume") {
		cfg.Resume = matchResume
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = matchProfile
	}
	if cmd.Flags().Changed("feed") {
		cfg.Feed = matchFeed
	}
	if cmd.Flags().Changed("keywords") {
		cfg.Keywords = matchKeywords
	}
	if cmd.Flags().Changed("location") {
		cfg.Location = matchLocation
	}
	if cmd.Flags().Changed("job-type") {
		cfg.JobType = matchJobType
	}
	if cmd.Flags().Changed("experience-level") {
		cfg.ExperienceLevel = matchExperience
	}
	if matchVerbose {
		cfg.Verbose = true
	}
	cfg = cfg.MergeWithDefaults(config.Config{JobType: "all"})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Resume == "" && cfg.Profile == "" {
		return cfg, fmt.Errorf("a profile source is required (use --resume or --profile)")
	}
	return cfg, nil
}

// loadProfile builds the candidate profile from whichever source is configured.
func loadProfile(cfg config.Config) (types.Profile, error) {
	if cfg.Resume != "" {
		data, err := os.ReadFile(cfg.Resume)
		if err != nil {
			return types.Profile{}, fmt.Errorf("failed to read resume file: %w", err)
		}
		text, err := pdftext.FromFile(cfg.Resume, data)
		if err != nil {
			return types.Profile{}, fmt.Errorf("failed to extract text: %w", err)
		}
		return types.FromFragment(extract.Extract(text)), nil
	}

	data, err := os.ReadFile(cfg.Profile)
	if err != nil {
		return types.Profile{}, fmt.Errorf("failed to read profile file: %w", err)
	}
	var profile types.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return types.Profile{}, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return profile, nil
}
