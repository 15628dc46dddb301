// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume  string `json:"resume,omitempty"`  // Path to a résumé file (.pdf/.docx)
	Profile string `json:"profile,omitempty"` // Path to a profile JSON file
	Feed    string `json:"feed,omitempty"`    // Path to a job feed JSON file

	// Search defaults
	Keywords        string `json:"keywords,omitempty"`
	Location        string `json:"location,omitempty"`
	JobType         string `json:"job_type,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`

	// Behavior
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	UploadDir   string `json:"upload_dir,omitempty"`   // Directory for stored résumé files

	// Boards are additional HTML job boards scraped alongside the built-in
	// ones, by the server and by offline matching alike.
	Boards []BoardConfig `json:"boards,omitempty"`
}

// BoardConfig describes one HTML job board listing page. Name, URL and the
// item selector are required; the field selectors are optional refinements
// inside each matched item.
type BoardConfig struct {
	Name             string `json:"name"`
	URL              string `json:"url"`
	ItemSelector     string `json:"item_selector"`
	TitleSelector    string `json:"title_selector,omitempty"`
	CompanySelector  string `json:"company_selector,omitempty"`
	LocationSelector string `json:"location_selector,omitempty"`
	LinkSelector     string `json:"link_selector,omitempty"`
	JobType          string `json:"job_type,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Resume != "" && c.Profile != "" {
		return fmt.Errorf("config error: 'resume' and 'profile' are mutually exclusive")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}
	if c.Feed != "" {
		if _, err := os.Stat(c.Feed); os.IsNotExist(err) {
			return fmt.Errorf("config error: feed file not found: %s", c.Feed)
		}
	}

	for i, board := range c.Boards {
		if board.Name == "" || board.URL == "" || board.ItemSelector == "" {
			return fmt.Errorf("config error: boards[%d] requires 'name', 'url' and 'item_selector'", i)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Feed == "" {
		result.Feed = defaults.Feed
	}
	if result.Keywords == "" {
		result.Keywords = defaults.Keywords
	}
	if result.Location == "" {
		result.Location = defaults.Location
	}
	if result.JobType == "" {
		result.JobType = defaults.JobType
	}
	if result.ExperienceLevel == "" {
		result.ExperienceLevel = defaults.ExperienceLevel
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.UploadDir == "" {
		result.UploadDir = defaults.UploadDir
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	if len(result.Boards) == 0 {
		result.Boards = defaults.Boards
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
