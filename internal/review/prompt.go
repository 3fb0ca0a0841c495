// Package review implements the AI review pipeline: gathering the context of
// a pull request, rendering it into a locale-aware prompt, normalizing the
// assistant's response, and persisting review records with retention cleanup.
package review

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/sevigo/review-radar/internal/core"
)

//go:embed prompts/*.prompt
var promptFiles embed.FS

const promptTimeLayout = "2006-01-02 15:04"

var promptTemplates = template.Must(template.ParseFS(promptFiles, "prompts/*.prompt"))

// promptData is the flattened, pre-formatted view handed to the templates.
// Times are rendered here so the templates stay logic-free and the output is
// deterministic for identical input.
type promptData struct {
	Title        string
	Repository   string
	Author       string
	URL          string
	Status       string
	Description  string
	ChangedFiles int
	Additions    int
	Deletions    int
	Rules        *core.ProjectRules
	HasThreads   bool
	Reviews      []promptReview
	Comments     []promptComment
	Diff         string
}

type promptReview struct {
	Author      string
	State       string
	SubmittedAt string
	Body        string
}

type promptComment struct {
	Author    string
	Location  string
	CreatedAt string
	DiffHunk  string
	Body      string
}

// BuildPrompt renders the review prompt for the gathered context, selecting
// the Japanese variant when the PR title or description reads as Japanese.
// The detected language is returned so downstream output can match it.
func BuildPrompt(rc core.ReviewContext) (string, Language, error) {
	lang := DetectLanguage(rc.Request.Title, rc.Description)
	prompt, err := renderPrompt(rc, lang)
	return prompt, lang, err
}

func renderPrompt(rc core.ReviewContext, lang Language) (string, error) {
	name := "review_en.prompt"
	if lang == LanguageJapanese {
		name = "review_ja.prompt"
	}

	var sb strings.Builder
	if err := promptTemplates.ExecuteTemplate(&sb, name, toPromptData(rc, lang)); err != nil {
		return "", fmt.Errorf("failed to render prompt template %s: %w", name, err)
	}
	return sb.String(), nil
}

func toPromptData(rc core.ReviewContext, lang Language) promptData {
	d := promptData{
		Title:        rc.Request.Title,
		Repository:   rc.Request.Repository,
		Author:       rc.Request.Author,
		URL:          rc.Request.URL,
		Status:       statusLabel(rc.Request.Draft, lang),
		Description:  rc.Description,
		ChangedFiles: rc.Request.ChangedFiles,
		Additions:    rc.Request.Additions,
		Deletions:    rc.Request.Deletions,
		Rules:        rc.Rules,
		HasThreads:   rc.Threads.HasActivity(),
		Diff:         rc.Diff.Text,
	}

	if d.Description == "" {
		if lang == LanguageJapanese {
			d.Description = "説明がありません"
		} else {
			d.Description = "No description provided"
		}
	}

	for _, rv := range rc.Threads.Reviews {
		body := rv.Body
		if body == "" {
			if lang == LanguageJapanese {
				body = "（コメントなし）"
			} else {
				body = "(no summary comment)"
			}
		}
		d.Reviews = append(d.Reviews, promptReview{
			Author:      rv.Author,
			State:       rv.State,
			SubmittedAt: formatPromptTime(rv.SubmittedAt),
			Body:        body,
		})
	}

	for _, c := range rc.Threads.Comments {
		location := c.Path
		if c.Line > 0 {
			location = fmt.Sprintf("%s:%d", c.Path, c.Line)
		}
		d.Comments = append(d.Comments, promptComment{
			Author:    c.Author,
			Location:  location,
			CreatedAt: formatPromptTime(c.CreatedAt),
			DiffHunk:  c.DiffHunk,
			Body:      c.Body,
		})
	}

	return d
}

func statusLabel(draft bool, lang Language) string {
	if lang == LanguageJapanese {
		if draft {
			return "ドラフト"
		}
		return "レビュー準備完了"
	}
	if draft {
		return "Draft"
	}
	return "Ready for Review"
}

func formatPromptTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(promptTimeLayout)
}
