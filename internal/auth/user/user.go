// Package user provides account identity records.
package user

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/codexly-app/codexly/internal/platform/errors"
	"github.com/codexly-app/codexly/internal/platform/id"
)

// MinPasswordLength is the shortest password accepted at sign-up.
const MinPasswordLength = 8

var (
	// ErrEmptyEmail indicates a missing email address.
	ErrEmptyEmail = apperrors.New(apperrors.CodeUserEmailEmpty, "email is required")
	// ErrInvalidEmail indicates an email that does not match the required format.
	ErrInvalidEmail = apperrors.New(apperrors.CodeUserEmailInvalid, "email address is not valid")
	// ErrPasswordTooShort indicates a password below the minimum length.
	ErrPasswordTooShort = apperrors.New(apperrors.CodeUserPasswordTooShort, "password must be at least 8 characters long")

	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// User represents an authenticated identity record.
//
// ID is the owner identifier stamped on every task and note the user
// creates; it is the sole basis for access control.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// CreateUserInput describes the data needed to create a user.
type CreateUserInput struct {
	Email    string
	Password string
}

// ValidateEmail enforces the canonical email constraints used at sign-up.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// CreateUser creates a durable user identity from untrusted sign-up input.
//
// This is the canonical point where a password becomes a bcrypt hash; the
// clear text is never stored or logged.
func CreateUser(input CreateUserInput, now func() time.Time, idGenerator func() (string, error)) (User, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if err := ValidateEmail(email); err != nil {
		return User{}, err
	}
	if len(input.Password) < MinPasswordLength {
		return User{}, ErrPasswordTooShort
	}

	userID, err := idGenerator()
	if err != nil {
		return User{}, apperrors.Wrap(apperrors.CodeUnknown, "generate user id", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, apperrors.Wrap(apperrors.CodeUnknown, "hash password", err)
	}

	return User{
		ID:           userID,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now().UTC().Truncate(time.Millisecond),
	}, nil
}

// CheckPassword reports whether password matches the stored hash.
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
