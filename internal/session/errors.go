package session

import "errors"

var (
	// ErrSessionNotFound is returned when a session ID is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNotFailed is returned when Retry is called on a slot that is not in
	// the Failed state.
	ErrNotFailed = errors.New("slot is not in failed state")

	// ErrNoRequest is returned when Retry is called before any request was made.
	ErrNoRequest = errors.New("slot has no previous request")

	// ErrUnknownSlot is returned when a slot name does not match a flow.
	ErrUnknownSlot = errors.New("unknown slot")

	// ErrBusy is the failure recorded when work cannot be queued.
	ErrBusy = errors.New("too many requests in progress, please try again")
)
