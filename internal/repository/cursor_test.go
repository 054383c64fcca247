package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwarta/warta/domain"
	"github.com/adiwarta/warta/internal/repository"
)

func TestCursorRoundTrip(t *testing.T) {
	for _, id := range []int64{1, 42, 9_000_000_000} {
		decoded, err := repository.DecodeCursor(repository.EncodeCursor(id))
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}
}

func TestDecodeEmptyCursor(t *testing.T) {
	id, err := repository.DecodeCursor("")
	require.NoError(t, err)
	assert.Zero(t, id)
}

func TestDecodeInvalidCursor(t *testing.T) {
	for _, cursor := range []string{"%%%", "bm90IGEgbnVtYmVy", repository.EncodeCursor(-5)} {
		_, err := repository.DecodeCursor(cursor)
		assert.ErrorIs(t, err, domain.ErrBadParamInput, "cursor %q", cursor)
	}
}
