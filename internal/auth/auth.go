// Package auth implements registration, login, and session handling over
// the stored user list. Passwords are compared in plain text; all data
// stays on this machine.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Khoiidayy/linguabot/internal/store"
	"github.com/Khoiidayy/linguabot/internal/vocab"
)

// Validation errors carry the user-facing message shown inline on the form.
var (
	ErrEmptyFields        = errors.New("Please fill in all fields.")
	ErrPasswordMismatch   = errors.New("Passwords do not match.")
	ErrUsernameWhitespace = errors.New("Username must not contain spaces.")
	ErrDuplicateUsername  = errors.New("Username already exists.")

	// ErrInvalidCredentials is deliberately generic: login failure does not
	// reveal whether the username exists.
	ErrInvalidCredentials = errors.New("Invalid credentials.")
)

// Service handles authentication and user persistence.
type Service struct {
	users store.UserRepo
}

// NewService creates an auth service over the given repository.
func NewService(users store.UserRepo) *Service {
	return &Service{users: users}
}

// Register validates the form, creates a user with an empty set list,
// persists it, and establishes it as the current session.
func (s *Service) Register(ctx context.Context, username, password, confirm string) (*vocab.User, error) {
	if username == "" || password == "" {
		return nil, ErrEmptyFields
	}
	if password != confirm {
		return nil, ErrPasswordMismatch
	}
	if !vocab.ValidUsername(username) {
		return nil, ErrUsernameWhitespace
	}

	existing, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	for i := range existing {
		if existing[i].Username == username {
			return nil, ErrDuplicateUsername
		}
	}

	u := vocab.NewUser(username, password)
	if err := s.users.UpsertUser(ctx, u); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	if err := s.users.SetCurrentSession(ctx, &u); err != nil {
		return nil, fmt.Errorf("set session: %w", err)
	}
	return &u, nil
}

// Login scans the stored list for an exact, case-sensitive username and
// password match and establishes the session on success.
func (s *Service) Login(ctx context.Context, username, password string) (*vocab.User, error) {
	if username == "" || password == "" {
		return nil, ErrEmptyFields
	}

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	for i := range users {
		if users[i].Username == username && users[i].Password == password {
			u := users[i]
			if err := s.users.SetCurrentSession(ctx, &u); err != nil {
				return nil, fmt.Errorf("set session: %w", err)
			}
			return &u, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Logout clears the session marker. The underlying user record is kept.
func (s *Service) Logout(ctx context.Context) error {
	return s.users.SetCurrentSession(ctx, nil)
}

// Current returns the logged-in user, or nil when no session exists.
func (s *Service) Current(ctx context.Context) (*vocab.User, error) {
	return s.users.CurrentSession(ctx)
}

// Save re-persists a mutated user. Every vocabulary mutation in the app
// funnels through this single replace-current-user call.
func (s *Service) Save(ctx context.Context, u *vocab.User) error {
	return s.users.UpsertUser(ctx, *u)
}
