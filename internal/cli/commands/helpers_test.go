package commands

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/rentwheels-dev/rentwheels/internal/cli/client"
	"github.com/rentwheels-dev/rentwheels/internal/cli/config"
	"github.com/rentwheels-dev/rentwheels/internal/cli/session"
)

// memStore is an in-memory session store for command tests.
type memStore struct {
	sess session.Session
}

func (m *memStore) Load() session.Session        { return m.sess }
func (m *memStore) Save(s session.Session) error { m.sess = s; return nil }
func (m *memStore) Clear() error                 { m.sess = session.Session{}; return nil }

func sessionWithRole(role string) session.Session {
	return session.Session{
		User:  &session.User{ID: "u1", Name: "Dana", Email: "dana@example.com", Role: role},
		Token: "token-123",
	}
}

// testOptions wires a command's dependencies to a mock API server and an
// in-memory session store, capturing output in the returned buffer.
func testOptions(t *testing.T, srv *httptest.Server, sess session.Session) ([]Option, *memStore, *bytes.Buffer) {
	t.Helper()

	store := &memStore{sess: sess}
	out := &bytes.Buffer{}
	cfg := &config.Config{APIURL: srv.URL, LogLevel: "error"}

	opts := []Option{
		WithConfig(cfg),
		WithStore(store),
		WithAPI(client.New(srv.URL, store)),
		WithOutput(out),
	}
	return opts, store, out
}
