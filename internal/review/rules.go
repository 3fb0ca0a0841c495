package review

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sevigo/review-radar/internal/core"
)

// ruleFileCandidates is probed in order; the first existing readable file
// wins. The list follows the conventions-document locations commonly found
// in repositories.
var ruleFileCandidates = []string{
	".cursor/rules/rules.md",
	".cursor/rules.md",
	"CLAUDE.md",
	"CODING_GUIDELINES.md",
	"DEVELOPMENT.md",
	"CONTRIBUTING.md",
}

// FindProjectRules probes the workspace root for a conventions document.
// Returns nil when the workspace is empty ("") or no candidate exists; an
// unreadable candidate is skipped, not an error.
func FindProjectRules(workspaceRoot string, log *slog.Logger) *core.ProjectRules {
	if workspaceRoot == "" {
		return nil
	}

	for _, candidate := range ruleFileCandidates {
		path := filepath.Join(workspaceRoot, candidate)
		content, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) && log != nil {
				log.Warn("could not read rules file", "file", candidate, "error", err)
			}
			continue
		}
		return &core.ProjectRules{Content: string(content), File: candidate}
	}
	return nil
}
