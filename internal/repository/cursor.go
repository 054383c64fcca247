package repository

import (
	"encoding/base64"
	"strconv"

	"github.com/adiwarta/warta/domain"
)

// EncodeCursor encodes the last-seen row ID into an opaque page cursor.
func EncodeCursor(id int64) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.FormatInt(id, 10)))
}

// DecodeCursor decodes an opaque page cursor back into a row ID.
// An empty cursor decodes to zero (first page).
func DecodeCursor(cursor string) (int64, error) {
	if cursor == "" {
		return 0, nil
	}
	byt, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return 0, domain.ErrBadParamInput
	}
	id, err := strconv.ParseInt(string(byt), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrBadParamInput
	}
	return id, nil
}
