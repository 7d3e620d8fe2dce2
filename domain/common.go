package domain

import (
	"errors"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

var (
	MessageFailedBodyRequest    = "failed to parse body request"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrParseID        = errors.New("failed to parse numeric id")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")

	// ErrTransactionFailure is returned when the store aborts a mutation
	// (deadlock, lost connection). The whole operation rolled back, so the
	// caller may retry it as-is.
	ErrTransactionFailure = errors.New("transaction failed, please retry")
)
