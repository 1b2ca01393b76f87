package ui

import (
	"time"

	"twitterui/internal/domain"
)

// TimelineMsg replaces the rendered timeline.
type TimelineMsg struct {
	Timeline domain.Timeline
}

// StatusMsg replaces the one-line status message. An empty text hides it.
type StatusMsg struct {
	Text string
}

// ClearComposeMsg empties the compose box.
type ClearComposeMsg struct{}

// CredentialsRequestMsg is sent when the stored credentials were rejected.
type CredentialsRequestMsg struct {
	Err error
}

type connectResultMsg struct {
	Session domain.Session
	Err     error
}

// ageTickMsg re-renders relative timestamps.
type ageTickMsg time.Time
