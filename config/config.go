package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config struct to hold the configuration settings
type Config struct {
	Courses CoursesConfig `yaml:"courses"`
	Scoring ScoringConfig `yaml:"scoring"`
	Chart   ChartConfig   `yaml:"chart"`
}

// CoursesConfig holds course catalog and converter paths.
type CoursesConfig struct {
	// CatalogDir holds the JSON/YAML course files the standings computation
	// reads.
	CatalogDir string `yaml:"catalog_dir"`
	// DataDir holds the tab-delimited .txt course data files to convert.
	DataDir string `yaml:"data_dir"`
	// JSONOutDir and YAMLOutDir are the converter's fixed output directories.
	JSONOutDir string `yaml:"json_out_dir"`
	YAMLOutDir string `yaml:"yaml_out_dir"`
}

// ScoringConfig holds standings computation settings.
type ScoringConfig struct {
	// MaxHoleScore is the blow-up highlight threshold. 0 means double par.
	MaxHoleScore int `yaml:"max_hole_score"`
	// EventRankSource selects the ranking that drives season points:
	// "net" (default) or "gross".
	EventRankSource string `yaml:"event_rank_source"`
	// FinaleEvent names the season finale. Finale standings stay inactive
	// until this event has ranked results.
	FinaleEvent string `yaml:"finale_event"`
}

// ChartConfig holds points-race chart settings.
type ChartConfig struct {
	// TopN limits the chart to the top N leaderboard players.
	TopN int `yaml:"top_n"`
}

// LoadConfig loads the configuration from a YAML file, falling back to
// environment variables when the file is absent. Env vars override file
// values either way.
func LoadConfig(filename string) (*Config, error) {
	cfg := defaultConfig()

	if data, err := os.ReadFile(filename); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if v := os.Getenv("LEAGUE_CATALOG_DIR"); v != "" {
		cfg.Courses.CatalogDir = v
	}
	if v := os.Getenv("LEAGUE_COURSE_DATA_DIR"); v != "" {
		cfg.Courses.DataDir = v
	}
	if v := os.Getenv("LEAGUE_JSON_OUT_DIR"); v != "" {
		cfg.Courses.JSONOutDir = v
	}
	if v := os.Getenv("LEAGUE_YAML_OUT_DIR"); v != "" {
		cfg.Courses.YAMLOutDir = v
	}
	if v := os.Getenv("LEAGUE_MAX_HOLE_SCORE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LEAGUE_MAX_HOLE_SCORE value: %v", err)
		}
		cfg.Scoring.MaxHoleScore = n
	}
	if v := os.Getenv("LEAGUE_EVENT_RANK_SOURCE"); v != "" {
		cfg.Scoring.EventRankSource = v
	}
	if v := os.Getenv("LEAGUE_FINALE_EVENT"); v != "" {
		cfg.Scoring.FinaleEvent = v
	}
	if v := os.Getenv("LEAGUE_CHART_TOP_N"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LEAGUE_CHART_TOP_N value: %v", err)
		}
		cfg.Chart.TopN = n
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Courses: CoursesConfig{
			CatalogDir: "courses",
			DataDir:    "coursedata",
			JSONOutDir: "courses/json",
			YAMLOutDir: "courses/yaml",
		},
		Scoring: ScoringConfig{
			EventRankSource: "net",
		},
		Chart: ChartConfig{
			TopN: 10,
		},
	}
}

func (c *Config) validate() error {
	switch c.Scoring.EventRankSource {
	case "", "net", "gross":
	default:
		return fmt.Errorf("invalid event_rank_source %q: want net or gross", c.Scoring.EventRankSource)
	}
	if c.Scoring.MaxHoleScore < 0 {
		return fmt.Errorf("max_hole_score must not be negative")
	}
	return nil
}
