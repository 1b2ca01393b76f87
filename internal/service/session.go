package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"twitterui/internal/domain"
)

// SessionService owns the signed-in account and forwards user actions to the
// poller.
type SessionService struct {
	ctx    context.Context
	auth   Authenticator
	store  CredentialStore
	poller Poller
	logger *slog.Logger
}

func NewSessionService(
	ctx context.Context,
	auth Authenticator,
	store CredentialStore,
	poller Poller,
	logger *slog.Logger,
) *SessionService {
	return &SessionService{
		ctx:    ctx,
		auth:   auth,
		store:  store,
		poller: poller,
		logger: logger.With("component", "session"),
	}
}

// Resume starts polling with the stored credentials. They are not verified
// up front: a rejected login surfaces through the poller like any other
// authentication failure.
func (s *SessionService) Resume() (domain.Session, error) {
	creds, err := s.store.Load()
	if err != nil {
		return domain.Session{}, fmt.Errorf("load credentials: %w", err)
	}

	session := domain.Session{Login: creds.Login, Password: creds.Password, ScreenName: creds.Login}
	s.poller.SetSession(session)

	if err := s.poller.Start(s.ctx); err != nil {
		return domain.Session{}, fmt.Errorf("start polling: %w", err)
	}

	s.logger.Info("session resumed", "login", session.Login)
	return session, nil
}

// Connect verifies creds, stores them and (re)starts polling with them.
// When the service cannot be reached the credentials are kept anyway.
func (s *SessionService) Connect(creds domain.Credentials) (domain.Session, error) {
	session, err := s.auth.Authenticate(s.ctx, creds)
	switch {
	case errors.Is(err, domain.ErrAuth):
		s.logger.Warn("credentials rejected", "login", creds.Login)
		return domain.Session{}, fmt.Errorf("verify credentials: %w", err)
	case err != nil:
		s.logger.Warn("could not verify credentials, keeping them", "login", creds.Login, "error", err)
		session = domain.Session{Login: creds.Login, Password: creds.Password, ScreenName: creds.Login}
	}

	if err := s.store.Save(creds); err != nil {
		return domain.Session{}, fmt.Errorf("save credentials: %w", err)
	}

	s.poller.SetSession(session)

	if s.poller.Started() {
		s.poller.Reenter()
	} else if err := s.poller.Start(s.ctx); err != nil {
		return domain.Session{}, fmt.Errorf("start polling: %w", err)
	}

	s.logger.Info("connected", "login", session.Login, "screen_name", session.ScreenName)
	return session, nil
}

func (s *SessionService) Refresh(msg string) {
	s.poller.TriggerImmediateRefresh(msg)
}

func (s *SessionService) Post(text string) {
	s.poller.PostStatus(text)
}

func (s *SessionService) SetBusy(busy bool) {
	s.poller.SetBusy(busy)
}

func (s *SessionService) Reenter() {
	s.poller.Reenter()
}
