// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Toggle state errors.
	ErrCorruptState    = errors.New("corrupt toggle state")
	ErrIndexOutOfRange = errors.New("index out of range")

	// Storage errors.
	ErrNotFound = errors.New("not found")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// NetworkError is a transport-level failure talking to the remote API.
// Undecodable response bodies are reported the same way.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError is a non-2xx response from the remote API.
type ServerError struct {
	Code int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %d", e.Code)
}

// EmptyResultError is a successful response that carried no items.
type EmptyResultError struct {
	Resource string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no %s found", e.Resource)
}

// IOError is a read or write failure on a persisted record.
type IOError struct {
	Err  error
	Op   string
	Path string
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage renders err as the line shown on screen. It returns "" for nil.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var (
		netErr    *NetworkError
		serverErr *ServerError
		emptyErr  *EmptyResultError
		ioErr     *IOError
		userErr   *UserError
	)

	switch {
	case errors.As(err, &netErr):
		return fmt.Sprintf("Network error: %v", netErr.Err)
	case errors.As(err, &serverErr):
		return fmt.Sprintf("Server error: %d", serverErr.Code)
	case errors.As(err, &emptyErr):
		return fmt.Sprintf("No %s found", emptyErr.Resource)
	case errors.Is(err, ErrCorruptState):
		return fmt.Sprintf("Failed to load data: %v", err)
	case errors.As(err, &ioErr):
		if ioErr.Op == "write" {
			return fmt.Sprintf("Failed to save: %v", ioErr.Err)
		}
		return fmt.Sprintf("Failed to load data: %v", ioErr.Err)
	case errors.As(err, &userErr):
		return userErr.UserMessage
	default:
		return err.Error()
	}
}
