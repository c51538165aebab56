package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Khoiidayy/linguabot/internal/vocab"
)

// Record keys. These match the key names the app has always persisted
// under, so an existing data file keeps working.
const (
	usersKey   = "linguabot_users"
	sessionKey = "linguabot_current_user"
)

// UserRepo stores the user list and the current-session record.
//
// UpsertUser inserts when the username is absent and replaces the matching
// entry otherwise, rewriting the whole list; when the upserted username
// matches the current session, the session record is refreshed too.
// SetCurrentSession(ctx, nil) clears the session marker.
type UserRepo interface {
	ListUsers(ctx context.Context) ([]vocab.User, error)
	UpsertUser(ctx context.Context, u vocab.User) error
	CurrentSession(ctx context.Context) (*vocab.User, error)
	SetCurrentSession(ctx context.Context, u *vocab.User) error
}

type userRepo struct {
	db *sql.DB
}

func (r *userRepo) ListUsers(ctx context.Context) ([]vocab.User, error) {
	raw, ok, err := r.getRecord(ctx, usersKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []vocab.User{}, nil
	}

	var users []vocab.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("decode user list: %w", err)
	}
	return users, nil
}

func (r *userRepo) UpsertUser(ctx context.Context, u vocab.User) error {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range users {
		if users[i].Username == u.Username {
			users[i] = u
			replaced = true
			break
		}
	}
	if !replaced {
		users = append(users, u)
	}

	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode user list: %w", err)
	}
	if err := r.putRecord(ctx, usersKey, raw); err != nil {
		return err
	}

	// Keep the session record in step with the list.
	current, err := r.CurrentSession(ctx)
	if err != nil {
		return err
	}
	if current != nil && current.Username == u.Username {
		return r.SetCurrentSession(ctx, &u)
	}
	return nil
}

func (r *userRepo) CurrentSession(ctx context.Context) (*vocab.User, error) {
	raw, ok, err := r.getRecord(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var u vocab.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decode session record: %w", err)
	}
	return &u, nil
}

func (r *userRepo) SetCurrentSession(ctx context.Context, u *vocab.User) error {
	if u == nil {
		return r.deleteRecord(ctx, sessionKey)
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	return r.putRecord(ctx, sessionKey, raw)
}

func (r *userRepo) getRecord(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM records WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read record %q: %w", key, err)
	}
	return []byte(value), true, nil
}

func (r *userRepo) putRecord(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO records (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(value))
	if err != nil {
		return fmt.Errorf("write record %q: %w", key, err)
	}
	return nil
}

func (r *userRepo) deleteRecord(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM records WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("delete record %q: %w", key, err)
	}
	return nil
}
