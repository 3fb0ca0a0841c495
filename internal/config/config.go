// Package config loads and validates the application configuration from
// environment variables, an optional .env file, and an optional workspace
// overlay file. Invalid repository-filter entries are dropped with a warning
// and never block startup.
package config

import (
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	"github.com/sevigo/review-radar/internal/logger"
)

// MinRefreshInterval is the floor for the polling cadence, in seconds.
const MinRefreshInterval = 60

// DefaultRetentionDays is how long saved review records are kept.
const DefaultRetentionDays = 30

var repoPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+/[A-Za-z0-9._-]+$`)

// Config holds the application's configuration values.
type Config struct {
	Token             string
	RefreshInterval   int // seconds, already clamped
	ShowNotifications bool
	PlaySound         bool
	GroupByRepository bool
	RepositoryFilter  []string // validated owner/name entries only
	ReviewsDir        string
	RetentionDays     int
	AutoCleanup       bool
	AssistantCommand  string
	Logging           logger.Config
}

// IsConfigured reports whether a token is present.
func (c *Config) IsConfigured() bool {
	return c.Token != ""
}

// LoadConfig reads configuration from environment variables and a .env file,
// applies defaults and clamps, and validates the repository filter. A missing
// token is not an error here: the aggregation layer surfaces it as a
// persistent "not configured" state instead.
func LoadConfig(log *slog.Logger) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetEnvPrefix("RADAR")
	v.AutomaticEnv()

	v.SetDefault("REFRESH_INTERVAL", 300)
	v.SetDefault("SHOW_NOTIFICATIONS", true)
	v.SetDefault("PLAY_SOUND", true)
	v.SetDefault("GROUP_BY_REPOSITORY", true)
	v.SetDefault("REVIEWS_DIR", "reviews")
	v.SetDefault("RETENTION_DAYS", DefaultRetentionDays)
	v.SetDefault("AUTO_CLEANUP", true)
	v.SetDefault("ASSISTANT_COMMAND", "claude")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stderr")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Debug("no .env file loaded", "error", err)
		}
	}

	token := v.GetString("GITHUB_TOKEN")
	if token == "" {
		// Fall back to the conventional unprefixed variable.
		token = strings.TrimSpace(os.Getenv("GITHUB_TOKEN"))
	}

	cfg := &Config{
		Token:             token,
		RefreshInterval:   ClampRefreshInterval(v.GetInt("REFRESH_INTERVAL")),
		ShowNotifications: v.GetBool("SHOW_NOTIFICATIONS"),
		PlaySound:         v.GetBool("PLAY_SOUND"),
		GroupByRepository: v.GetBool("GROUP_BY_REPOSITORY"),
		RepositoryFilter:  ValidateRepositoryFilter(v.GetStringSlice("REPOSITORY_FILTER"), log),
		ReviewsDir:        v.GetString("REVIEWS_DIR"),
		RetentionDays:     v.GetInt("RETENTION_DAYS"),
		AutoCleanup:       v.GetBool("AUTO_CLEANUP"),
		AssistantCommand:  v.GetString("ASSISTANT_COMMAND"),
		Logging: logger.Config{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
	}
	if cfg.RetentionDays <= 0 {
		cfg.RetentionDays = DefaultRetentionDays
	}
	return cfg, nil
}

// ClampRefreshInterval enforces the minimum polling cadence.
func ClampRefreshInterval(seconds int) int {
	if seconds < MinRefreshInterval {
		return MinRefreshInterval
	}
	return seconds
}

// ValidateRepositoryFilter keeps only entries matching the owner/name pattern.
// Rejected entries are reported once as a single warning listing them verbatim;
// they are otherwise ignored. An empty result means no filtering.
func ValidateRepositoryFilter(raw []string, log *slog.Logger) []string {
	var valid, invalid []string
	for _, entry := range raw {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		if repoPattern.MatchString(trimmed) {
			valid = append(valid, trimmed)
		} else {
			invalid = append(invalid, trimmed)
		}
	}

	if len(invalid) > 0 && log != nil {
		log.Warn("ignoring invalid repository filter entries, expected owner/name",
			"rejected", strings.Join(invalid, ", "))
	}
	return valid
}
