package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"twitterui/internal/domain"
)

type Authenticator interface {
	Authenticate(ctx context.Context, creds domain.Credentials) (domain.Session, error)
}

type CredentialStore interface {
	Load() (domain.Credentials, error)
	Save(creds domain.Credentials) error
}

type Poller interface {
	Start(ctx context.Context) error
	Started() bool
	SetSession(session domain.Session)
	SetBusy(busy bool)
	Reenter()
	TriggerImmediateRefresh(msg string)
	PostStatus(text string)
}
