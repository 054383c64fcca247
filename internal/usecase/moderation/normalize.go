package moderation

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/adiwarta/warta/domain"
)

// stripMarks decomposes to NFD, drops the combining marks and recomposes,
// so "Café" and "cafe" reduce to the same bytes. Chains and casers hold
// per-use buffers and must not be shared between goroutines, so both are
// built per call.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Normalize reduces text to its canonical comparable form: diacritics
// stripped, lower-cased, every maximal run of non-letter/non-number
// characters collapsed to a single space, trimmed. Blank input normalizes
// to the empty string.
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	stripped, _, err := transform.String(stripMarks(), text)
	if err != nil {
		stripped = text
	}
	stripped = cases.Lower(language.Und).String(stripped)

	var b strings.Builder
	b.Grow(len(stripped))
	pendingSpace := false
	for _, r := range stripped {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		} else {
			pendingSpace = true
		}
	}
	return b.String()
}

// MatchForbidden returns the first term whose pre-normalized phrase is a
// non-empty substring of the normalized text, or nil. Plain substring
// containment, no word boundaries: spacing and punctuation tricks still
// normalize into a match.
func MatchForbidden(text string, terms []domain.ForbiddenTerm) *domain.ForbiddenTerm {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	for i := range terms {
		phrase := terms[i].NormalizedPhrase
		if phrase != "" && strings.Contains(normalized, phrase) {
			return &terms[i]
		}
	}
	return nil
}
