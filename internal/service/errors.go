package service

import "errors"

var (
	ErrInternal      = errors.New("internal server error")
	ErrValidation    = errors.New("validation failed")
	ErrDuplicateDate = errors.New("a post already exists for this date")
	ErrPostNotFound  = errors.New("post not found")
	ErrVerseLookup   = errors.New("could not retrieve this scripture")
)
