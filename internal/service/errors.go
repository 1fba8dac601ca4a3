package service

import "errors"

var (
	// ErrInvalidCredentials covers both unknown user and wrong password so the
	// login response cannot be used for account enumeration.
	ErrInvalidCredentials = errors.New("could not verify")

	// ErrTalkNotFound covers both a nonexistent talk and a talk owned by
	// someone else. The two cases must stay indistinguishable.
	ErrTalkNotFound = errors.New("Talk not found or access denied")
)
