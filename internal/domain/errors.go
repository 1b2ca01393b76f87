package domain

import "errors"

var (
	// ErrAuth means the credentials were rejected or are missing.
	ErrAuth = errors.New("authentication failed")
	// ErrFetch is a transient failure to load the timeline.
	ErrFetch = errors.New("fetch timeline")
	// ErrPost is a failure to submit a status.
	ErrPost = errors.New("post status")
	// ErrStalled is reported when a fetch outlives the watchdog timeout.
	ErrStalled = errors.New("timeline fetch stalled")
	// ErrNoCredentials means the credential file is absent or has no login.
	ErrNoCredentials = errors.New("no credentials configured")
)
