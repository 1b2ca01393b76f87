package poller

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"twitterui/internal/domain"
)

type TimelineClient interface {
	FetchFriendsTimeline(ctx context.Context, session domain.Session) (domain.Timeline, error)
	PostStatus(ctx context.Context, session domain.Session, text string) error
}

// View receives results from background goroutines. Implementations must hand
// every call off to the goroutine that owns the UI and must not block on it.
type View interface {
	ShowTimeline(timeline domain.Timeline)
	ShowStatus(msg string)
	ClearCompose()
	RequestCredentials(err error)
}

type Publisher interface {
	Publish(ctx context.Context, event domain.Event) error
	Close() error
}

// Restarter replaces a wedged poll loop with a fresh one.
type Restarter interface {
	Restart(msg string)
}
