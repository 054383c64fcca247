package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden will throw if the caller may not act on the item
	ErrForbidden = errors.New("you are not allowed to do this")

	// ErrEmptyComment means the comment had no visible characters left after sanitization
	ErrEmptyComment = errors.New("comment has no visible content")
	// ErrInvalidParent means the reply target is not a published top-level comment on the same article
	ErrInvalidParent = errors.New("reply target is not a valid top-level comment")
	// ErrCommentsDisabled means commenting is switched off site-wide
	ErrCommentsDisabled = errors.New("commenting is currently disabled")
	// ErrRateLimited means the caller exceeded its submission quota and may retry later
	ErrRateLimited = errors.New("too many submissions, please try again later")
	// ErrLikesUnavailable means the like store has not been provisioned yet.
	// Unlike notifications, toggling cannot degrade silently because it must
	// report a boolean state back to the caller.
	ErrLikesUnavailable = errors.New("like storage is not available")
	// ErrSchemaMissing is the persistence layer's signal that a table or column
	// referenced by the query has not been migrated yet. Services decide per
	// feature whether to swallow it or surface it.
	ErrSchemaMissing = errors.New("schema object is not provisioned")
)

// ForbiddenTermError is returned when comment content matches a stored
// forbidden phrase. It carries the original phrase for user display.
type ForbiddenTermError struct {
	Phrase string
}

func (e *ForbiddenTermError) Error() string {
	return fmt.Sprintf("content contains forbidden phrase %q", e.Phrase)
}
