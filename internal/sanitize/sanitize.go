// Package sanitize strips AI-generation artifacts and duplicated
// chapter-title echoes from raw chapter text before any formatting is
// applied. Sanitize is pure and idempotent; passes run in a fixed order
// because later passes assume earlier ones already ran.
package sanitize

import (
	"fmt"
	"regexp"
	"strings"
)

// Artifact-marker passes. Each pass is a regex plus its replacement; they
// are applied in order on the whole text.
var artifactPasses = []struct {
	re   *regexp.Regexp
	repl string
}{
	// Bracketed or braced instruction placeholders on their own line,
	// e.g. "[Insert description here]" or "{scene continues}".
	{regexp.MustCompile(`(?m)^\s*\[[^\[\]\n]*\]\s*$`), ""},
	{regexp.MustCompile(`(?m)^\s*\{[^{}\n]*\}\s*$`), ""},

	// Meta-commentary lines the generator leaves behind.
	{regexp.MustCompile(`(?mi)^\s*(?:to be )?continued\.{0,3}\s*$`), ""},
	{regexp.MustCompile(`(?mi)^\s*\[?end(?: of chapter)?\]?\s*$`), ""},
	{regexp.MustCompile(`(?mi)^\s*note:\s.*$`), ""},
	{regexp.MustCompile(`(?mi)^\s*\(word count:.*\)\s*$`), ""},

	// Markdown headers become plain text.
	{regexp.MustCompile(`(?m)^#{1,6}\s+`), ""},

	// Emphasis markers: triple first so the double pass doesn't leave
	// stray asterisks behind.
	{regexp.MustCompile(`\*\*\*([^*]+)\*\*\*`), "$1"},
	{regexp.MustCompile(`\*\*([^*]+)\*\*`), "$1"},
	{regexp.MustCompile(`___([^_]+)___`), "$1"},
	{regexp.MustCompile(`__([^_]+)__`), "$1"},

	// HTML emphasis tags.
	{regexp.MustCompile(`(?i)</?(?:em|i|b|strong)>`), ""},

	// Spaced or doubled dash sequences collapse to an em dash. Word-char
	// anchors keep scene-break lines ("---") untouched.
	{regexp.MustCompile(`(\w) *-- *(\w)`), "$1—$2"},
	{regexp.MustCompile(`(\w) +— +(\w)`), "$1—$2"},
}

// tripleNewline collapses runs of 3+ newlines (with optional interior
// horizontal whitespace) to exactly one blank line.
var tripleNewline = regexp.MustCompile(`\n[ \t]*\n(?:[ \t]*\n)+`)

// Sanitize cleans raw chapter text. It never fails: unmatched patterns are
// no-ops and the worst case is imperfect cleanup. Sanitizing already-clean
// text returns it unchanged.
func Sanitize(rawText, chapterTitle string, chapterNumber int) string {
	text := rawText

	for _, pass := range artifactPasses {
		text = pass.re.ReplaceAllString(text, pass.repl)
	}

	text = stripTitleEchoes(text, chapterTitle, chapterNumber)

	// If nothing but the title or a bare chapter label survived, the
	// chapter has no real content.
	if isOnlyTitle(text, chapterTitle, chapterNumber) {
		return ""
	}

	text = tripleNewline.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// titleEchoPatterns builds the ordered list of patterns matching a
// duplicated chapter heading at the start of the content. Each matched
// pattern is deleted; order matters because the more specific forms must be
// tried before the bare ones.
func titleEchoPatterns(title string, number int) []*regexp.Regexp {
	qt := regexp.QuoteMeta(strings.TrimSpace(title))
	n := number

	patterns := []string{
		// "Chapter 3: Title", "Chapter 3 - Title", "Chapter 3 — Title"
		fmt.Sprintf(`(?i)^\s*chapter\s+%d\s*[:\-–—]\s*%s\s*\n+`, n, qt),
		// "Chapter 3 Title"
		fmt.Sprintf(`(?i)^\s*chapter\s+%d\s+%s\s*\n+`, n, qt),
		// bare "Chapter 3:" or "Chapter 3"
		fmt.Sprintf(`(?i)^\s*chapter\s+%d\s*:?\s*\n+`, n),
	}
	if qt != "" {
		patterns = append(patterns,
			// bare title at the very start
			fmt.Sprintf(`(?i)^\s*%s\s*\n+`, qt),
			// title repeated after leading newlines
			fmt.Sprintf(`(?i)^\n+\s*%s\s*\n+`, qt),
		)
	}

	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		res = append(res, regexp.MustCompile(p))
	}
	return res
}

// stripTitleEchoes deletes duplicated chapter headings from the start of
// text. Every pattern is tried; each runs to a fixpoint because deleting one
// echo can expose another at the new start of the text (idempotence of
// Sanitize depends on this).
func stripTitleEchoes(text, title string, number int) string {
	for _, re := range titleEchoPatterns(title, number) {
		for {
			next := re.ReplaceAllString(text, "")
			if next == text {
				break
			}
			text = next
		}
	}
	return text
}

// isOnlyTitle reports whether the remaining content reduces to just the
// chapter title or a bare "Chapter N" label, case-insensitively.
func isOnlyTitle(text, title string, number int) bool {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	if trimmed == "" {
		return true
	}
	if trimmed == strings.ToLower(strings.TrimSpace(title)) {
		return true
	}
	return trimmed == fmt.Sprintf("chapter %d", number)
}
