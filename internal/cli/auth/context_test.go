package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentwheels-dev/rentwheels/internal/cli/session"
)

// memStore is a simple in-memory session store for testing.
type memStore struct {
	sess session.Session
}

func (m *memStore) Load() session.Session { return m.sess }

func (m *memStore) Save(s session.Session) error {
	m.sess = s
	return nil
}

func (m *memStore) Clear() error {
	m.sess = session.Session{}
	return nil
}

func TestContext_InitializesFromStore(t *testing.T) {
	user := &session.User{ID: "u1", Name: "Jess", Role: "user"}
	store := &memStore{sess: session.Session{User: user, Token: "tok"}}

	ctx := New(store)

	sess := ctx.Session()
	require.True(t, sess.Authenticated())
	assert.Equal(t, "u1", sess.User.ID)
}

func TestContext_LoginPersistsAndIsVisible(t *testing.T) {
	store := &memStore{}
	ctx := New(store)

	user := session.User{ID: "u1", Name: "Jess", Email: "jess@example.com", Role: "user"}
	require.NoError(t, ctx.Login(user, "tok-abc"))

	// Visible in memory.
	assert.True(t, ctx.Session().Authenticated())

	// Persisted: a fresh context (simulated reload) sees the same session.
	reloaded := New(store)
	sess := reloaded.Session()
	require.True(t, sess.Authenticated())
	assert.Equal(t, "tok-abc", sess.Token)
	assert.Equal(t, user, *sess.User)
}

func TestContext_LoginValidatesInputs(t *testing.T) {
	store := &memStore{}
	ctx := New(store)

	assert.Error(t, ctx.Login(session.User{ID: "u1"}, ""), "empty credential")
	assert.Error(t, ctx.Login(session.User{}, "tok"), "missing user")
	assert.False(t, store.sess.Authenticated(), "nothing should have been persisted")
}

func TestContext_LogoutClearsEverywhere(t *testing.T) {
	store := &memStore{}
	ctx := New(store)
	require.NoError(t, ctx.Login(session.User{ID: "u1", Role: "user"}, "tok"))

	require.NoError(t, ctx.Logout())

	assert.False(t, ctx.Session().Authenticated())
	assert.False(t, store.Load().Authenticated())
}

func TestContext_LogoutNotifiesListeners(t *testing.T) {
	store := &memStore{}
	ctx := New(store)
	require.NoError(t, ctx.Login(session.User{ID: "u1", Role: "user"}, "tok"))

	var got []Reason
	ctx.OnSessionEnd(func(r Reason) { got = append(got, r) })

	require.NoError(t, ctx.Logout())
	assert.Equal(t, []Reason{ReasonLogout}, got)
}

func TestContext_InvalidateNotifiesWithExpired(t *testing.T) {
	store := &memStore{}
	ctx := New(store)
	require.NoError(t, ctx.Login(session.User{ID: "u1", Role: "user"}, "tok"))

	var got []Reason
	ctx.OnSessionEnd(func(r Reason) { got = append(got, r) })

	require.NoError(t, ctx.Invalidate())
	assert.Equal(t, []Reason{ReasonExpired}, got)
	assert.False(t, ctx.Session().Authenticated())
	assert.False(t, store.Load().Authenticated())
}

func TestContext_LoginReplacesSessionWholesale(t *testing.T) {
	store := &memStore{}
	ctx := New(store)
	require.NoError(t, ctx.Login(session.User{ID: "u1", Role: "user"}, "tok-1"))
	require.NoError(t, ctx.Login(session.User{ID: "u2", Role: "admin"}, "tok-2"))

	sess := ctx.Session()
	assert.Equal(t, "u2", sess.User.ID)
	assert.Equal(t, "tok-2", sess.Token)
	assert.Equal(t, "u2", store.Load().User.ID)
}

func TestContext_LogoutFromAnyPriorState(t *testing.T) {
	// Logging out while already unauthenticated must still leave a clean slate.
	store := &memStore{}
	ctx := New(store)

	require.NoError(t, ctx.Logout())
	assert.False(t, ctx.Session().Authenticated())
	assert.False(t, store.Load().Authenticated())
}
