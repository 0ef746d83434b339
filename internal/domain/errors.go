package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrOffline indicates the record store is unreachable
	ErrOffline = errors.New("record store is unreachable")

	// ErrAuthFailed indicates the API token was rejected
	ErrAuthFailed = errors.New("record store token is invalid")

	// ErrUnexpectedStatus indicates a non-2xx response from the record store
	ErrUnexpectedStatus = errors.New("unexpected status from record store")

	// ErrNotConfigured indicates required settings are missing
	ErrNotConfigured = errors.New("record store is not configured")

	// ErrNoSnapshot indicates the offline cache has never been filled
	ErrNoSnapshot = errors.New("no cached records")
)
