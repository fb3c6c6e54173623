// Package service implements account sign-up, sign-in, and session identity.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/codexly-app/codexly/internal/auth/session"
	"github.com/codexly-app/codexly/internal/auth/user"
	apperrors "github.com/codexly-app/codexly/internal/platform/errors"
	"github.com/codexly-app/codexly/internal/platform/id"
	"github.com/codexly-app/codexly/internal/storage"
)

var (
	// ErrPasswordMismatch indicates sign-up confirmation that differs from
	// the password.
	ErrPasswordMismatch = apperrors.New(apperrors.CodeUserPasswordMismatch, "passwords do not match")
	// ErrBadCredentials covers both unknown emails and wrong passwords so
	// sign-in failures never reveal which one occurred.
	ErrBadCredentials = apperrors.New(apperrors.CodeAuthBadCredentials, "email or password is incorrect")
)

// Service provides the acting identity for every request: it registers
// users, verifies credentials, and resolves session tokens to owner ids.
type Service struct {
	store       storage.UserStore
	sessions    *session.Manager
	clock       func() time.Time
	idGenerator func() (string, error)
}

// NewService creates an auth Service with default dependencies.
func NewService(store storage.UserStore, sessions *session.Manager) *Service {
	return &Service{
		store:       store,
		sessions:    sessions,
		clock:       time.Now,
		idGenerator: id.NewID,
	}
}

// WithClock overrides the service clock; intended for tests.
func (s *Service) WithClock(clock func() time.Time) *Service {
	if clock != nil {
		s.clock = clock
	}
	return s
}

// WithIDGenerator overrides id generation; intended for tests.
func (s *Service) WithIDGenerator(idGenerator func() (string, error)) *Service {
	if idGenerator != nil {
		s.idGenerator = idGenerator
	}
	return s
}

// SignUp registers a new user and returns a session token for it.
func (s *Service) SignUp(ctx context.Context, email, password, confirm string) (user.User, string, error) {
	if password != confirm {
		return user.User{}, "", ErrPasswordMismatch
	}
	u, err := user.CreateUser(user.CreateUserInput{Email: email, Password: password}, s.clock, s.idGenerator)
	if err != nil {
		return user.User{}, "", err
	}
	if err := s.store.PutUser(ctx, u); err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			return user.User{}, "", storage.ErrEmailTaken
		}
		return user.User{}, "", apperrors.Wrap(apperrors.CodeUnknown, "persist user", err)
	}
	token, err := s.sessions.Issue(u.ID)
	if err != nil {
		return user.User{}, "", err
	}
	return u, token, nil
}

// SignIn verifies credentials and returns a session token on success.
func (s *Service) SignIn(ctx context.Context, email, password string) (user.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return user.User{}, "", ErrBadCredentials
		}
		return user.User{}, "", apperrors.Wrap(apperrors.CodeUnknown, "look up user", err)
	}
	if !u.CheckPassword(password) {
		return user.User{}, "", ErrBadCredentials
	}
	token, err := s.sessions.Issue(u.ID)
	if err != nil {
		return user.User{}, "", err
	}
	return u, token, nil
}

// ResolveUserID maps a session token to the id of a user that still exists.
//
// An empty result means no acting identity; handlers must redirect to
// sign-in before any ownership-scoped operation runs.
func (s *Service) ResolveUserID(ctx context.Context, token string) (string, error) {
	userID, err := s.sessions.Verify(token)
	if err != nil {
		return "", err
	}
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", session.ErrInvalidToken
		}
		return "", apperrors.Wrap(apperrors.CodeUnknown, "look up session user", err)
	}
	return userID, nil
}
