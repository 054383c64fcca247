package moderation_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adiwarta/warta/domain"
	"github.com/adiwarta/warta/internal/usecase/moderation"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"blank", "   \t ", ""},
		{"lower cases", "HELLO World", "hello world"},
		{"strips diacritics", "Café", "cafe"},
		{"strips diacritics upper", "CAFÉ", "cafe"},
		{"collapses punctuation run", "kata-kasar", "kata kasar"},
		{"collapses mixed separators", "kata -- kasar!!", "kata kasar"},
		{"keeps digits", "4chan  stuff", "4chan stuff"},
		{"trims edges", "  ...hello...  ", "hello"},
		{"unicode letters survive", "Señor pérez", "senor perez"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, moderation.Normalize(tc.input))
		})
	}
}

func TestNormalizeDiacriticInsensitive(t *testing.T) {
	assert.Equal(t, moderation.Normalize("Café"), moderation.Normalize("cafe"))
	assert.Equal(t, moderation.Normalize("cafe"), moderation.Normalize("CAFÉ"))
}

// Normalize runs on every concurrent comment submission; run it in parallel
// under the race detector against a long diacritic-heavy input.
func TestNormalizeConcurrent(t *testing.T) {
	input := strings.Repeat("Señor Pérez commenté au CAFÉ — naïve coöperation!! ", 64)
	expected := moderation.Normalize(input)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				assert.Equal(t, expected, moderation.Normalize(input))
			}
		}()
	}
	wg.Wait()
}

func TestMatchForbidden(t *testing.T) {
	terms := []domain.ForbiddenTerm{
		{ID: 1, Phrase: "kata kasar", NormalizedPhrase: "kata kasar"},
		{ID: 2, Phrase: "bad word", NormalizedPhrase: "bad word"},
	}

	t.Run("punctuation between words still matches", func(t *testing.T) {
		match := moderation.MatchForbidden("ini ada kata-kasar sekali", terms)
		assert.NotNil(t, match)
		assert.Equal(t, "kata kasar", match.Phrase)
	})

	t.Run("clean text does not match", func(t *testing.T) {
		assert.Nil(t, moderation.MatchForbidden("ini komentar yang sopan", terms))
	})

	t.Run("first stored term wins", func(t *testing.T) {
		match := moderation.MatchForbidden("bad word dan kata kasar", terms)
		assert.NotNil(t, match)
		assert.Equal(t, int64(1), match.ID)
	})

	t.Run("blank text never matches", func(t *testing.T) {
		assert.Nil(t, moderation.MatchForbidden("  \t ", terms))
	})

	t.Run("empty normalized phrase never matches", func(t *testing.T) {
		empty := []domain.ForbiddenTerm{{ID: 3, Phrase: "!!!", NormalizedPhrase: ""}}
		assert.Nil(t, moderation.MatchForbidden("anything", empty))
	})
}
