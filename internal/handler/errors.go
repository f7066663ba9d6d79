package handler

import (
	"errors"
	"net/http"

	"github.com/BloggingApp/dailylight-service/internal/service"
)

var (
	errInvalidDate     = errors.New("date must be YYYY-MM-DD")
	errNoPostForDate   = errors.New("no post found for this date")
	errMissingPostID   = errors.New("post id is required")
	errInvalidPostBody = errors.New("invalid request body")
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrDuplicateDate):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrVerseLookup):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
