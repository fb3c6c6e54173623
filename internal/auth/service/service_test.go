package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/codexly-app/codexly/internal/auth/session"
	"github.com/codexly-app/codexly/internal/auth/user"
	"github.com/codexly-app/codexly/internal/storage"
)

type fakeUserStore struct {
	users map[string]user.User // keyed by id
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]user.User)}
}

func (f *fakeUserStore) PutUser(_ context.Context, u user.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return storage.ErrEmailTaken
		}
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserStore) GetUser(_ context.Context, userID string) (user.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return user.User{}, storage.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, storage.ErrNotFound
}

func newTestAuth(t *testing.T) (*Service, *fakeUserStore) {
	t.Helper()
	sessions, err := session.NewManager([]byte("test-secret"), time.Hour)
	if err != nil {
		t.Fatalf("new session manager: %v", err)
	}
	store := newFakeUserStore()
	return NewService(store, sessions), store
}

func TestSignUpThenResolve(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuth(t)
	ctx := context.Background()

	u, token, err := svc.SignUp(ctx, "demo@example.com", "password123", "password123")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	userID, err := svc.ResolveUserID(ctx, token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if userID != u.ID {
		t.Fatalf("resolved %q, want %q", userID, u.ID)
	}
}

func TestSignUpPasswordMismatch(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuth(t)
	_, _, err := svc.SignUp(context.Background(), "demo@example.com", "password123", "different123")
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuth(t)
	ctx := context.Background()

	if _, _, err := svc.SignUp(ctx, "demo@example.com", "password123", "password123"); err != nil {
		t.Fatalf("first sign up: %v", err)
	}
	_, _, err := svc.SignUp(ctx, "demo@example.com", "password456", "password456")
	if !errors.Is(err, storage.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestSignInVerifiesCredentials(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuth(t)
	ctx := context.Background()

	if _, _, err := svc.SignUp(ctx, "demo@example.com", "password123", "password123"); err != nil {
		t.Fatalf("sign up: %v", err)
	}

	if _, token, err := svc.SignIn(ctx, "Demo@Example.com", "password123"); err != nil || token == "" {
		t.Fatalf("sign in: token=%q err=%v", token, err)
	}

	if _, _, err := svc.SignIn(ctx, "demo@example.com", "wrong-password"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for wrong password, got %v", err)
	}
	if _, _, err := svc.SignIn(ctx, "ghost@example.com", "password123"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for unknown email, got %v", err)
	}
}

func TestResolveRejectsDeletedUser(t *testing.T) {
	t.Parallel()

	svc, store := newTestAuth(t)
	ctx := context.Background()

	u, token, err := svc.SignUp(ctx, "demo@example.com", "password123", "password123")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	delete(store.users, u.ID)

	if _, err := svc.ResolveUserID(ctx, token); !errors.Is(err, session.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestResolveRejectsGarbageToken(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuth(t)
	if _, err := svc.ResolveUserID(context.Background(), "junk"); err == nil {
		t.Fatal("expected error for garbage token")
	}
}
