package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidInput = errors.New("invalid user data")
	ErrEmailTaken   = errors.New("email already registered")
)
