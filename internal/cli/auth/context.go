// Package auth owns the in-memory session for the lifetime of the process:
// the single source of truth for "who is logged in". It writes through to the
// session store on every change and notifies listeners when a session ends,
// leaving navigation to whoever is hosting the screens.
package auth

import (
	"errors"
	"fmt"

	"github.com/rentwheels-dev/rentwheels/internal/cli/session"
)

// Reason says why a session ended.
type Reason string

const (
	// ReasonLogout is an explicit logout by the user.
	ReasonLogout Reason = "logout"
	// ReasonExpired is a teardown forced by the API rejecting the credential.
	ReasonExpired Reason = "expired"
)

// Context holds the current session. It is not safe for concurrent use;
// the CLI drives it from a single goroutine.
type Context struct {
	store     session.Store
	sess      session.Session
	listeners []func(Reason)
}

// New builds a Context initialized from whatever the store holds.
func New(store session.Store) *Context {
	return &Context{store: store, sess: store.Load()}
}

// Session returns a snapshot of the current session.
func (c *Context) Session() session.Session {
	return c.sess
}

// Login establishes a new session, replacing any previous one. The session is
// persisted before it becomes visible, so a reload immediately after Login
// sees the same state.
func (c *Context) Login(user session.User, token string) error {
	if token == "" {
		return errors.New("login requires a credential")
	}
	if user.ID == "" {
		return errors.New("login requires a user record")
	}

	sess := session.Session{User: &user, Token: token}
	if err := c.store.Save(sess); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	c.sess = sess
	return nil
}

// Logout clears the session everywhere and notifies listeners. Where the user
// goes next is the listener's call, not ours.
func (c *Context) Logout() error {
	return c.end(ReasonLogout)
}

// Invalidate tears the session down after the API rejected the credential.
func (c *Context) Invalidate() error {
	return c.end(ReasonExpired)
}

func (c *Context) end(reason Reason) error {
	c.sess = session.Session{}
	err := c.store.Clear()
	for _, fn := range c.listeners {
		fn(reason)
	}
	if err != nil {
		return fmt.Errorf("failed to clear persisted session: %w", err)
	}
	return nil
}

// OnSessionEnd registers a listener invoked synchronously whenever the
// session is cleared, whether by logout or by credential expiry.
func (c *Context) OnSessionEnd(fn func(Reason)) {
	c.listeners = append(c.listeners, fn)
}
