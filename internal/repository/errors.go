package repository

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrPostNotFound    = errors.New("post not found")
)
