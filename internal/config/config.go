package config

import (
	"fmt"
	"log"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv       = "FINTECH_REVIEWS_CONFIG"
	postgresDBEnv       = "POSTGRES_DB"
	postgresUserEnv     = "POSTGRES_USER"
	postgresPasswordEnv = "POSTGRES_PASSWORD"
	postgresHostEnv     = "POSTGRES_HOST"
	postgresPortEnv     = "POSTGRES_PORT"
	feedURLEnv          = "REVIEW_FEED_URL"
	sentimentAPIKeyEnv  = "SENTIMENT_API_KEY"
)

// Config holds high-level settings required across the batch stages.
type Config struct {
	Logging       LoggingConfig       `yaml:"logging"`
	Database      DatabaseConfig      `yaml:"database"`
	Feed          FeedConfig          `yaml:"feed"`
	Acquisition   AcquisitionConfig   `yaml:"acquisition"`
	Normalization NormalizationConfig `yaml:"normalization"`
	Analysis      AnalysisConfig      `yaml:"analysis"`
	Load          LoadConfig          `yaml:"load"`
}

// LoggingConfig controls slog verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DatabaseConfig describes Postgres connection details.
type DatabaseConfig struct {
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
}

// DSN renders the pgx connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		url.QueryEscape(d.User), url.QueryEscape(d.Password), d.Host, d.Port, d.Name)
}

// FeedConfig points at the external review feed and the store front.
type FeedConfig struct {
	URL      string `yaml:"url"`
	StoreURL string `yaml:"storeUrl"`
}

// AcquisitionConfig maps bank display names to application identifiers.
type AcquisitionConfig struct {
	Banks     map[string]string `yaml:"banks"`
	Count     int               `yaml:"count"`
	Language  string            `yaml:"language"`
	Country   string            `yaml:"country"`
	OutputDir string            `yaml:"outputDir"`
}

// NormalizationConfig parameterizes the cleaning stage.
type NormalizationConfig struct {
	RawDir     string   `yaml:"rawDir"`
	CleanedDir string   `yaml:"cleanedDir"`
	Files      []string `yaml:"files"`
	MinReviews int      `yaml:"minReviews"`
	Dictionary string   `yaml:"dictionary"`
}

// AnalysisConfig wires the sentiment service and the combined output file.
type AnalysisConfig struct {
	Endpoint   string `yaml:"endpoint"`
	APIKey     string `yaml:"apiKey"`
	CleanedDir string `yaml:"cleanedDir"`
	OutputPath string `yaml:"outputPath"`
}

// LoadConfig names the analyzed file fed into Postgres.
type LoadConfig struct {
	InputPath string `yaml:"inputPath"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.Acquisition.Banks) == 0 {
		cfg.Acquisition.Banks = defaultConfig().Acquisition.Banks
	}
	if len(cfg.Normalization.Files) == 0 {
		cfg.Normalization.Files = defaultConfig().Normalization.Files
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(postgresDBEnv); v != "" {
		c.Database.Name = v
	}
	if v := os.Getenv(postgresUserEnv); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv(postgresPasswordEnv); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(postgresHostEnv); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv(postgresPortEnv); v != "" {
		c.Database.Port = v
	}
	if v := os.Getenv(feedURLEnv); v != "" {
		c.Feed.URL = v
	}
	if v := os.Getenv(sentimentAPIKeyEnv); v != "" {
		c.Analysis.APIKey = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Database.Name != "" {
		base.Database.Name = override.Database.Name
	}
	if override.Database.User != "" {
		base.Database.User = override.Database.User
	}
	if override.Database.Password != "" {
		base.Database.Password = override.Database.Password
	}
	if override.Database.Host != "" {
		base.Database.Host = override.Database.Host
	}
	if override.Database.Port != "" {
		base.Database.Port = override.Database.Port
	}

	if override.Feed.URL != "" {
		base.Feed.URL = override.Feed.URL
	}
	if override.Feed.StoreURL != "" {
		base.Feed.StoreURL = override.Feed.StoreURL
	}

	if len(override.Acquisition.Banks) > 0 {
		base.Acquisition.Banks = override.Acquisition.Banks
	}
	if override.Acquisition.Count > 0 {
		base.Acquisition.Count = override.Acquisition.Count
	}
	if override.Acquisition.Language != "" {
		base.Acquisition.Language = override.Acquisition.Language
	}
	if override.Acquisition.Country != "" {
		base.Acquisition.Country = override.Acquisition.Country
	}
	if override.Acquisition.OutputDir != "" {
		base.Acquisition.OutputDir = override.Acquisition.OutputDir
	}

	if override.Normalization.RawDir != "" {
		base.Normalization.RawDir = override.Normalization.RawDir
	}
	if override.Normalization.CleanedDir != "" {
		base.Normalization.CleanedDir = override.Normalization.CleanedDir
	}
	if len(override.Normalization.Files) > 0 {
		base.Normalization.Files = override.Normalization.Files
	}
	if override.Normalization.MinReviews > 0 {
		base.Normalization.MinReviews = override.Normalization.MinReviews
	}
	if override.Normalization.Dictionary != "" {
		base.Normalization.Dictionary = override.Normalization.Dictionary
	}

	if override.Analysis.Endpoint != "" {
		base.Analysis.Endpoint = override.Analysis.Endpoint
	}
	if override.Analysis.APIKey != "" {
		base.Analysis.APIKey = override.Analysis.APIKey
	}
	if override.Analysis.CleanedDir != "" {
		base.Analysis.CleanedDir = override.Analysis.CleanedDir
	}
	if override.Analysis.OutputPath != "" {
		base.Analysis.OutputPath = override.Analysis.OutputPath
	}

	if override.Load.InputPath != "" {
		base.Load.InputPath = override.Load.InputPath
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Database: DatabaseConfig{
			Name:     "fintech_db",
			User:     "fintech_user",
			Password: "fintech_password",
			Host:     "localhost",
			Port:     "5432",
		},
		Feed: FeedConfig{
			URL:      "https://reviews-feed.example.org/v1",
			StoreURL: "https://play.google.com",
		},
		Acquisition: AcquisitionConfig{
			Banks: map[string]string{
				"Commercial Bank of Ethiopia": "com.combanketh.mobilebanking",
				"Bank of Abyssinia":           "com.boa.boaMobileBanking",
				"Dashen Bank":                 "com.dashen.dashensuperapp",
			},
			Count:     2000,
			Language:  "en",
			Country:   "us",
			OutputDir: "data/raw",
		},
		Normalization: NormalizationConfig{
			RawDir:     "data/raw",
			CleanedDir: "data/cleaned",
			Files: []string{
				"Commercial_Bank_of_Ethiopia_reviews_data.csv",
				"Bank_of_Abyssinia_reviews_data.csv",
				"Dashen_Bank_reviews_data.csv",
			},
			MinReviews: 400,
		},
		Analysis: AnalysisConfig{
			Endpoint:   "https://ml.example.org/sentiment",
			CleanedDir: "data/cleaned",
			OutputPath: "data/analyzed/final_sentiment_analysis.csv",
		},
		Load: LoadConfig{InputPath: "data/analyzed/final_sentiment_analysis.csv"},
	}
}
