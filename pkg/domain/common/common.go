// Package common holds errors shared across domain packages.
package common

import "errors"

// ErrValidation is the base error for malformed or out-of-range input
// submitted by a user. Handlers recover it locally and re-prompt; it is
// never a server fault.
var ErrValidation = errors.New("invalid input")

// ErrNotFound is returned when a record does not exist or does not belong
// to the caller's user scope.
var ErrNotFound = errors.New("record not found")

// ErrStorageUnavailable is returned when the storage backend cannot be
// reached. Fatal for the current request only; the process keeps serving.
var ErrStorageUnavailable = errors.New("storage unavailable")
