package domain

import "time"

type EventKind string

const (
	EventTimelineUpdated EventKind = "timeline.updated"
	EventStatusPosted    EventKind = "status.posted"
)

// Event describes something the poller did, for external consumers.
type Event struct {
	Kind          EventKind  `json:"kind"`
	Login         string     `json:"login"`
	At            time.Time  `json:"at"`
	Count         int        `json:"count,omitempty"`
	HeadCreatedAt *time.Time `json:"head_created_at,omitempty"`
	Text          string     `json:"text,omitempty"`
}
