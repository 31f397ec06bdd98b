package service

import "errors"

var (
	ErrFieldsRequired     = errors.New("all fields are required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooLong    = errors.New("password too long")
	ErrEmptyBody          = errors.New("empty body")
	ErrPostNotFound       = errors.New("post not found")
	ErrEmojiRequired      = errors.New("emoji required")
	ErrEmojiTooLong       = errors.New("emoji too long")
	ErrNoSession          = errors.New("no session")
)
