package repository

import "errors"

var (
	ErrNotFound      = errors.New("post not found")
	ErrDuplicateDate = errors.New("a post already exists for this date")
)
