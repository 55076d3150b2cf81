package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"user", RoleUser, true},
		{"admin", RoleAdmin, true},
		{"Admin", RoleAdmin, true},
		{"ADMIN", RoleAdmin, true},
		{"  user ", RoleUser, true},
		{"superuser", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseRole(%q) ok", tt.in)
		assert.Equal(t, tt.want, got, "ParseRole(%q)", tt.in)
	}
}

func TestSessionAuthenticated(t *testing.T) {
	user := &User{ID: "u1", Name: "Jess", Email: "jess@example.com", Role: "user"}

	assert.True(t, Session{User: user, Token: "tok"}.Authenticated())
	assert.False(t, Session{User: user}.Authenticated(), "missing token")
	assert.False(t, Session{Token: "tok"}.Authenticated(), "missing user")
	assert.False(t, Session{}.Authenticated())
}

func TestKeyringStore_SaveLoadClear(t *testing.T) {
	keyring.MockInit()
	store := NewKeyringStore("api.example.com")

	user := &User{ID: "u1", Name: "Jess", Email: "jess@example.com", Role: "user", IsEmailVerified: true}
	require.NoError(t, store.Save(Session{User: user, Token: "tok-123"}))

	loaded := store.Load()
	require.True(t, loaded.Authenticated())
	assert.Equal(t, "tok-123", loaded.Token)
	assert.Equal(t, *user, *loaded.User)

	require.NoError(t, store.Clear())
	assert.False(t, store.Load().Authenticated())
}

func TestKeyringStore_LoadEmpty(t *testing.T) {
	keyring.MockInit()
	store := NewKeyringStore("api.example.com")

	sess := store.Load()
	assert.False(t, sess.Authenticated())
	assert.Nil(t, sess.User)
	assert.Empty(t, sess.Token)
}

func TestKeyringStore_MalformedUserDegrades(t *testing.T) {
	keyring.MockInit()
	store := NewKeyringStore("api.example.com")

	require.NoError(t, keyring.Set(service, store.tokenKey(), "tok-123"))
	require.NoError(t, keyring.Set(service, store.userKey(), "{not json"))

	sess := store.Load()
	assert.False(t, sess.Authenticated())
	assert.Nil(t, sess.User)
}

func TestKeyringStore_PartialStateDegrades(t *testing.T) {
	keyring.MockInit()
	store := NewKeyringStore("api.example.com")

	// Token without a user record must read as unauthenticated.
	require.NoError(t, keyring.Set(service, store.tokenKey(), "orphan-token"))

	sess := store.Load()
	assert.False(t, sess.Authenticated())
	assert.Empty(t, sess.Token)
}

func TestKeyringStore_RefusesPartialSave(t *testing.T) {
	keyring.MockInit()
	store := NewKeyringStore("api.example.com")

	assert.Error(t, store.Save(Session{Token: "tok"}))
	assert.Error(t, store.Save(Session{User: &User{ID: "u1"}}))
	assert.False(t, store.Load().Authenticated())
}

func TestKeyringStore_ClearEmptyIsNoError(t *testing.T) {
	keyring.MockInit()
	store := NewKeyringStore("api.example.com")

	assert.NoError(t, store.Clear())
}

func TestKeyringStore_SaveReplacesPrevious(t *testing.T) {
	keyring.MockInit()
	store := NewKeyringStore("api.example.com")

	first := Session{User: &User{ID: "u1", Role: "user"}, Token: "tok-1"}
	second := Session{User: &User{ID: "u2", Role: "admin"}, Token: "tok-2"}

	require.NoError(t, store.Save(first))
	require.NoError(t, store.Save(second))

	loaded := store.Load()
	require.True(t, loaded.Authenticated())
	assert.Equal(t, "u2", loaded.User.ID)
	assert.Equal(t, "tok-2", loaded.Token)
}
