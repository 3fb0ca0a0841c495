package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrWorkspaceConfigNotFound indicates the workspace has no overlay file.
var ErrWorkspaceConfigNotFound = errors.New("workspace config not found")

const workspaceConfigName = ".review-radar.yml"

// WorkspaceConfig is the optional per-workspace overlay. Only fields that are
// set in the file override the environment configuration.
type WorkspaceConfig struct {
	RepositoryFilter  []string `yaml:"repository_filter"`
	GroupByRepository *bool    `yaml:"group_by_repository"`
	RetentionDays     *int     `yaml:"retention_days"`
	ReviewsDir        string   `yaml:"reviews_dir"`
}

// LoadWorkspaceConfig reads .review-radar.yml from the workspace root.
func LoadWorkspaceConfig(workspaceRoot string) (*WorkspaceConfig, error) {
	path := filepath.Join(workspaceRoot, workspaceConfigName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrWorkspaceConfigNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", workspaceConfigName, err)
	}

	var ws WorkspaceConfig
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", workspaceConfigName, err)
	}
	return &ws, nil
}

// Apply merges the overlay into cfg. The overlay's repository filter goes
// through the same validation as the environment one.
func (w *WorkspaceConfig) Apply(cfg *Config, log *slog.Logger) {
	if len(w.RepositoryFilter) > 0 {
		cfg.RepositoryFilter = ValidateRepositoryFilter(w.RepositoryFilter, log)
	}
	if w.GroupByRepository != nil {
		cfg.GroupByRepository = *w.GroupByRepository
	}
	if w.RetentionDays != nil && *w.RetentionDays > 0 {
		cfg.RetentionDays = *w.RetentionDays
	}
	if w.ReviewsDir != "" {
		cfg.ReviewsDir = w.ReviewsDir
	}
}
