package review

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/sevigo/review-radar/internal/core"
)

// recordFilePattern matches only filenames this tool generates. Cleanup
// refuses to touch anything else, regardless of age.
var recordFilePattern = regexp.MustCompile(`^PR-.+-\d+-\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}\.md$`)

const recordTimeLayout = "2006-01-02T15-04-05"

// Store persists review records as markdown files and prunes its own old
// files past the retention window.
type Store struct {
	dir           string
	retentionDays int
	autoCleanup   bool
	logger        *slog.Logger
	now           func() time.Time
}

// NewStore creates a record store rooted at dir.
func NewStore(dir string, retentionDays int, autoCleanup bool, logger *slog.Logger) *Store {
	return &Store{
		dir:           dir,
		retentionDays: retentionDays,
		autoCleanup:   autoCleanup,
		logger:        logger,
		now:           time.Now,
	}
}

// SetNow overrides the clock. Tests only.
func (s *Store) SetNow(now func() time.Time) { s.now = now }

// RecordFileName builds the canonical record filename for a request at t.
func RecordFileName(req core.ReviewRequest, t time.Time) string {
	repo := strings.ReplaceAll(req.Repository, "/", "-")
	return fmt.Sprintf("PR-%s-%d-%s.md", repo, req.Number, t.Format(recordTimeLayout))
}

// Save wraps the formatted review in a header document localized to lang and
// writes it to the store, then runs retention cleanup when enabled. Returns
// the written path.
func (s *Store) Save(req core.ReviewRequest, formattedReview string, lang Language) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create reviews directory: %w", err)
	}

	now := s.now()
	path := filepath.Join(s.dir, RecordFileName(req, now))

	var content string
	if lang == LanguageJapanese {
		content = japaneseRecord(req, formattedReview, now)
	} else {
		content = englishRecord(req, formattedReview, now)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write review record: %w", err)
	}

	if s.autoCleanup {
		if _, err := s.Cleanup(); err != nil {
			s.logger.Warn("review record cleanup failed", "error", err)
		}
	}
	return path, nil
}

// Cleanup deletes generated record files whose modification time is older
// than the retention window. Files not matching the generated-name pattern
// are never touched. Returns the number of deleted files.
func (s *Store) Cleanup() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read reviews directory: %w", err)
	}

	cutoff := s.now().AddDate(0, 0, -s.retentionDays)
	deleted := 0

	for _, entry := range entries {
		if entry.IsDir() || !recordFilePattern.MatchString(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
				s.logger.Warn("could not delete old review record", "file", entry.Name(), "error", err)
				continue
			}
			deleted++
		}
	}

	if deleted > 0 {
		s.logger.Info("cleaned up old review records",
			"deleted", deleted, "retention_days", s.retentionDays)
	}
	return deleted, nil
}

// LatestRecord returns the newest saved record path for a request, or ""
// when none exists.
func (s *Store) LatestRecord(req core.ReviewRequest) string {
	repo := strings.ReplaceAll(req.Repository, "/", "-")
	prefix := fmt.Sprintf("PR-%s-%d-", repo, req.Number)

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return ""
	}

	var latest string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, prefix) && recordFilePattern.MatchString(name) && name > latest {
			latest = name
		}
	}
	if latest == "" {
		return ""
	}
	return filepath.Join(s.dir, latest)
}

func englishRecord(req core.ReviewRequest, review string, now time.Time) string {
	status := "Ready for Review"
	if req.Draft {
		status = "Draft"
	}
	return fmt.Sprintf(`# AI Code Review: %s

## PR Information

| Field | Value |
|-------|-------|
| Repository | %s |
| PR Number | #%d |
| Author | %s |
| URL | [View PR](%s) |
| Status | %s |
| Generated | %s |

## Change Statistics

| Metric | Count |
|--------|-------|
| Files Changed | %d |
| Lines Added | +%d |
| Lines Deleted | -%d |
| Review Comments | %d |

---

%s

---

*Generated by Review Radar*
`,
		req.Title, req.Repository, req.Number, req.Author, req.URL, status,
		now.Format("2006-01-02 15:04:05"),
		req.ChangedFiles, req.Additions, req.Deletions, req.ReviewComments,
		review)
}

func japaneseRecord(req core.ReviewRequest, review string, now time.Time) string {
	status := "レビュー準備完了"
	if req.Draft {
		status = "ドラフト"
	}
	return fmt.Sprintf(`# AIコードレビュー: %s

## PR情報

| 項目 | 値 |
|------|-----|
| リポジトリ | %s |
| PR番号 | #%d |
| 作成者 | %s |
| URL | [PRを確認](%s) |
| ステータス | %s |
| 生成日時 | %s |

## 変更統計

| 項目 | 数 |
|------|-----|
| 変更ファイル数 | %d |
| 追加行数 | +%d |
| 削除行数 | -%d |
| レビューコメント数 | %d |

---

%s

---

*Review Radar AIレビュー機能により生成*
`,
		req.Title, req.Repository, req.Number, req.Author, req.URL, status,
		now.Format("2006-01-02 15:04:05"),
		req.ChangedFiles, req.Additions, req.Deletions, req.ReviewComments,
		review)
}
