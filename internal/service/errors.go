package service

import "errors"

var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidInput indicates a form value that cannot be used, such as
	// a malformed date.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials is returned for any login failure. It is
	// deliberately the same for an unknown email and a wrong password so
	// callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
