package comment

import "strings"

// htmlLookalikes swaps the three HTML-significant characters for inert
// Unicode lookalikes. The stored text is rendered as plain text downstream,
// where entity-escaping would double-encode if ever re-escaped; the exact
// glyphs are relied upon by the renderer, so keep this table as is.
var htmlLookalikes = strings.NewReplacer(
	"<", "‹", // ‹
	">", "›", // ›
	"&", "＆", // ＆
)

// dropRune filters the characters never allowed to persist: C0 controls
// (except the newline that survives line normalization), zero-width
// characters and bidi controls.
func dropRune(r rune) bool {
	if r == '\n' {
		return false
	}
	if r < 0x20 || r == 0x7f {
		return true
	}
	switch r {
	case '\u200b', '\u200c', '\u200d', '\ufeff', // zero-width
		'\u200e', '\u200f', '\u061c', // direction marks
		'\u202a', '\u202b', '\u202c', '\u202d', '\u202e', // embedding/override
		'\u2066', '\u2067', '\u2068', '\u2069': // isolates
		return true
	}
	return false
}

// Sanitize cleans submitted comment content: line endings become \n, each
// line loses trailing whitespace, control/invisible characters are removed
// and <, > and & are replaced by lookalike glyphs. The result is stable
// under repeated application.
func Sanitize(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	content = strings.Join(lines, "\n")

	var b strings.Builder
	b.Grow(len(content))
	for _, r := range content {
		if !dropRune(r) {
			b.WriteRune(r)
		}
	}

	return htmlLookalikes.Replace(b.String())
}
