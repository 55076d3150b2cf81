package commands

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentwheels-dev/rentwheels/internal/cli/session"
)

// loginServer serves /auth/login plus the dashboard endpoints a successful
// login navigates to.
func loginServer(t *testing.T, role string, acceptPassword string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			if r.Method != http.MethodPost {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}

			var req struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

			if req.Password != acceptPassword {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
				return
			}

			_ = json.NewEncoder(w).Encode(map[string]any{
				"token": "jwt-abc",
				"user": map[string]any{
					"id":    "u1",
					"name":  "Dana",
					"email": req.Email,
					"role":  role,
				},
			})
		case "/bookings/my":
			_, _ = w.Write([]byte(`[]`))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestRunLogin_EstablishesSessionAndLandsOnDashboard(t *testing.T) {
	srv := loginServer(t, "user", "hunter22")
	defer srv.Close()

	opts, store, out := testOptions(t, srv, session.Session{})

	err := runLogin("dana@example.com", "hunter22", opts...)
	require.NoError(t, err)

	sess := store.Load()
	require.True(t, sess.Authenticated())
	assert.Equal(t, "jwt-abc", sess.Token)
	assert.Equal(t, "dana@example.com", sess.User.Email)

	assert.Contains(t, out.String(), "Login successful")
	assert.Contains(t, out.String(), "Welcome back, Dana!")
}

func TestRunLogin_AdminLandsOnAdminConsole(t *testing.T) {
	// The API reports roles with inconsistent casing; "Admin" still counts.
	srv := loginServer(t, "Admin", "hunter22")
	defer srv.Close()

	opts, store, out := testOptions(t, srv, session.Session{})

	err := runLogin("dana@example.com", "hunter22", opts...)
	require.NoError(t, err)

	require.True(t, store.Load().Authenticated())
	assert.Contains(t, out.String(), "Admin console")
}

func TestRunLogin_UnknownRoleRejected(t *testing.T) {
	srv := loginServer(t, "superuser", "hunter22")
	defer srv.Close()

	opts, store, out := testOptions(t, srv, session.Session{})

	err := runLogin("dana@example.com", "hunter22", opts...)
	require.Error(t, err)

	assert.False(t, store.Load().Authenticated(), "no session for an unknown role")
	assert.Contains(t, out.String(), "Invalid user role.")
}

func TestRunLogin_BadCredentials(t *testing.T) {
	srv := loginServer(t, "user", "hunter22")
	defer srv.Close()

	opts, store, _ := testOptions(t, srv, session.Session{})

	err := runLogin("dana@example.com", "wrong", opts...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
	assert.False(t, store.Load().Authenticated())
}

func TestRunLogin_RejectsInvalidEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be sent for an invalid form")
	}))
	defer srv.Close()

	opts, _, _ := testOptions(t, srv, session.Session{})

	err := runLogin("not-an-email", "hunter22", opts...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid login details")
}

func TestRunSignup_RejectsShortPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be sent for an invalid form")
	}))
	defer srv.Close()

	opts, _, _ := testOptions(t, srv, session.Session{})

	err := runSignup("Dana", "dana@example.com", "short", opts...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid signup details")
}

func TestRunSignup_RegistersAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var req struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Dana", req.Name)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	opts, store, out := testOptions(t, srv, session.Session{})

	err := runSignup("Dana", "dana@example.com", "hunter22", opts...)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Account created")
	assert.False(t, store.Load().Authenticated(), "signup does not log in")
}

// A stale stored credential gets attached to the register call too; if the
// API rejects it, the teardown must be as loud as anywhere else.
func TestRunSignup_StaleCredentialTornDownLoudly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"jwt expired"}`))
	}))
	defer srv.Close()

	opts, store, out := testOptions(t, srv, sessionWithRole("user"))

	err := runSignup("Dana", "dana@example.com", "hunter22", opts...)
	require.Error(t, err)

	assert.False(t, store.Load().Authenticated(), "session must be cleared after a 401")
	assert.Contains(t, out.String(), "Your session has expired. Please run 'rentwheels login'.")
}
