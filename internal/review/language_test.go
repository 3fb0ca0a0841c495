package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        Language
	}{
		{
			name:  "plain english",
			title: "This is a test",
			want:  LanguageEnglish,
		},
		{
			name:  "hiragana title",
			title: "これはテストです",
			want:  LanguageJapanese,
		},
		{
			name:  "kanji only",
			title: "認証機能修正",
			want:  LanguageJapanese,
		},
		{
			name:        "english title japanese description",
			title:       "Fix auth bug",
			description: "認証のバグを修正します",
			want:        LanguageJapanese,
		},
		{
			name:  "particle in otherwise latin text",
			title: "API を update",
			want:  LanguageJapanese,
		},
		{
			name:        "empty input",
			title:       "",
			description: "",
			want:        LanguageEnglish,
		},
		{
			name:  "emoji and symbols stay english",
			title: "feat: add 🚀 launch mode!!",
			want:  LanguageEnglish,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.title, tt.description))
		})
	}
}
