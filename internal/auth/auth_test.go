package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Khoiidayy/linguabot/internal/store"
	"github.com/Khoiidayy/linguabot/internal/vocab"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return NewService(s.UserRepo())
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name                        string
		username, password, confirm string
		wantErr                     error
	}{
		{"empty username", "", "pw", "pw", ErrEmptyFields},
		{"empty password", "amy", "", "", ErrEmptyFields},
		{"mismatched confirm", "amy", "pw1", "pw2", ErrPasswordMismatch},
		{"space in username", "a my", "pw1", "pw1", ErrUsernameWhitespace},
		{"tab in username", "a\tmy", "pw1", "pw1", ErrUsernameWhitespace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.username, tt.password, tt.confirm)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterDuplicateLeavesListUnchanged(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "amy", "pw1", "pw1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "amy", "other", "other")
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	users, err := svc.users.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "pw1", users[0].Password, "stored record must be untouched")
}

func TestRegisterEstablishesSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, "amy", "pw1", "pw1")
	require.NoError(t, err)
	assert.Empty(t, u.VocabSets)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "amy", current.Username)
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "amy", "pw1", "pw1")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	// Unknown user and wrong password yield the same generic error.
	_, err = svc.Login(ctx, "nobody", "pw1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "amy", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "AMY", "pw1")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "match is case-sensitive")

	u, err := svc.Login(ctx, "amy", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "amy", u.Username)
	assert.Empty(t, u.VocabSets)
}

func TestLogoutKeepsUserRecord(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "amy", "pw1", "pw1")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	users, err := svc.users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

// Full scenario: register, build a set, log out and back in, and find the
// same vocabulary.
func TestVocabSurvivesRelogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, "amy", "pw1", "pw1")
	require.NoError(t, err)

	set := vocab.NewSet("Chapter 1")
	set.AddWord(vocab.NewWord("gato", "cat"))
	u.AddSet(set)
	require.NoError(t, svc.Save(ctx, u))

	require.NoError(t, svc.Logout(ctx))

	u, err = svc.Login(ctx, "amy", "pw1")
	require.NoError(t, err)
	require.Len(t, u.VocabSets, 1)
	assert.Equal(t, "Chapter 1", u.VocabSets[0].Name)
	require.Len(t, u.VocabSets[0].Words, 1)
	assert.Equal(t, "gato", u.VocabSets[0].Words[0].Word)
	assert.Equal(t, "cat", u.VocabSets[0].Words[0].Definition)
}
