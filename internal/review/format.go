package review

import (
	"regexp"
	"strings"
)

// Best-effort cosmetic normalization of assistant output. This is not a
// markdown parser: it only improves readability and must never be relied on
// for structural correctness.
var (
	spaceRuns    = regexp.MustCompile(` {2,}`)
	headingStart = regexp.MustCompile(`^#{1,6}\s`)
	listMarker   = regexp.MustCompile(`^([-*+]|\d+\.)\s`)
	boldSpacing  = regexp.MustCompile(`([^*\s])\*\*([^*]+)\*\*([^*\s])`)
	sentenceEnd  = regexp.MustCompile(`[.!?。！？]$`)
	capitalStart = regexp.MustCompile(`^[A-Z]`)
)

// FormatResult normalizes a raw assistant response before it is rendered or
// persisted: per-line whitespace trimming, space-run collapsing, emphasis
// spacing, blank lines around headings, fences, and list starts, and a cap
// of one blank line between paragraphs. Fenced code block contents pass
// through untouched.
func FormatResult(raw string) string {
	var out []string
	inFence := false

	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if inFence {
			out = append(out, strings.TrimRight(line, " \t"))
			if strings.HasPrefix(strings.TrimSpace(line), "```") {
				inFence = false
				out = append(out, "")
			}
			continue
		}

		line = spaceRuns.ReplaceAllString(strings.TrimSpace(line), " ")
		line = boldSpacing.ReplaceAllString(line, "$1 **$2** $3")

		prev := ""
		if len(out) > 0 {
			prev = out[len(out)-1]
		}

		switch {
		case line == "":
			if prev != "" {
				out = append(out, "")
			}
		case strings.HasPrefix(line, "```"):
			if prev != "" {
				out = append(out, "")
			}
			out = append(out, line)
			inFence = true
		case headingStart.MatchString(line):
			if prev != "" {
				out = append(out, "")
			}
			out = append(out, line, "")
		case listMarker.MatchString(line):
			if prev != "" && !listMarker.MatchString(prev) {
				out = append(out, "")
			}
			out = append(out, line)
		default:
			// A sentence ending followed by a capitalized line reads as a
			// new paragraph.
			if sentenceEnd.MatchString(prev) && capitalStart.MatchString(line) {
				out = append(out, "")
			}
			out = append(out, line)
		}
	}

	return strings.TrimSpace(strings.Join(out, "\n")) + "\n"
}
