package auth

import "errors"

// Signup errors
var (
	ErrWeakPassword          = errors.New("weak-password")
	ErrPasswordTooLong       = errors.New("password-too-long")
	ErrInvalidUsernameFormat = errors.New("invalid-username-format")
	ErrUsernameAlreadyExists = errors.New("username-already-exists")
)

// Login errors
var (
	ErrUsernameNotFound  = errors.New("username-not-found")
	ErrIncorrectPassword = errors.New("incorrect-password")
)
