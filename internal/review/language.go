package review

import "regexp"

// Language selects which prompt and record template variant is rendered.
type Language string

const (
	LanguageEnglish  Language = "en"
	LanguageJapanese Language = "ja"
)

var (
	// Hiragana, Katakana, and the common CJK unified ideograph range.
	japaneseScript = regexp.MustCompile(`[\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{4E00}-\x{9FAF}]`)

	// Grammatical particles and verb endings, as a second signal for text
	// that mixes scripts.
	japanesePatterns = []*regexp.Regexp{
		regexp.MustCompile(`を|が|の|に|は|で|と|から|まで|より`),
		regexp.MustCompile(`です|である|だ|ます|する|した|される`),
		regexp.MustCompile(`こと|もの|ため|について|において`),
	}
)

// DetectLanguage inspects the concatenated title and description and returns
// Japanese when either Japanese script code points or common grammatical
// patterns are present.
func DetectLanguage(title, description string) Language {
	text := title + " " + description
	if japaneseScript.MatchString(text) {
		return LanguageJapanese
	}
	for _, p := range japanesePatterns {
		if p.MatchString(text) {
			return LanguageJapanese
		}
	}
	return LanguageEnglish
}
