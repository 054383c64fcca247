package rest

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/adiwarta/warta/domain"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// getStatusCode will get the code of the error raised by the engagement services
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)

	var forbiddenTerm *domain.ForbiddenTermError
	if errors.As(err, &forbiddenTerm) {
		return http.StatusUnprocessableEntity
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBadParamInput),
		errors.Is(err, domain.ErrInvalidParent),
		errors.Is(err, domain.ErrEmptyComment):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrCommentsDisabled):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrLikesUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
