package review

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRulesFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFindProjectRules(t *testing.T) {
	log := slog.New(slog.DiscardHandler)

	t.Run("empty workspace root yields nothing", func(t *testing.T) {
		assert.Nil(t, FindProjectRules("", log))
	})

	t.Run("no candidate present", func(t *testing.T) {
		root := t.TempDir()
		writeRulesFile(t, root, "README.md", "not a rules file")

		assert.Nil(t, FindProjectRules(root, log))
	})

	t.Run("single candidate", func(t *testing.T) {
		root := t.TempDir()
		writeRulesFile(t, root, "CONTRIBUTING.md", "be nice")

		rules := FindProjectRules(root, log)
		require.NotNil(t, rules)
		assert.Equal(t, "CONTRIBUTING.md", rules.File)
		assert.Equal(t, "be nice", rules.Content)
	})

	t.Run("cursor rules win over claude instructions", func(t *testing.T) {
		root := t.TempDir()
		writeRulesFile(t, root, ".cursor/rules/rules.md", "cursor rules")
		writeRulesFile(t, root, "CLAUDE.md", "claude rules")

		rules := FindProjectRules(root, log)
		require.NotNil(t, rules)
		assert.Equal(t, ".cursor/rules/rules.md", rules.File)
		assert.Equal(t, "cursor rules", rules.Content)
	})

	t.Run("probe order is deterministic", func(t *testing.T) {
		root := t.TempDir()
		writeRulesFile(t, root, "DEVELOPMENT.md", "dev")
		writeRulesFile(t, root, "CODING_GUIDELINES.md", "guidelines")

		rules := FindProjectRules(root, log)
		require.NotNil(t, rules)
		assert.Equal(t, "CODING_GUIDELINES.md", rules.File)
	})
}
