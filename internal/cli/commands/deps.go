package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/rentwheels-dev/rentwheels/internal/cli/auth"
	"github.com/rentwheels-dev/rentwheels/internal/cli/client"
	"github.com/rentwheels-dev/rentwheels/internal/cli/config"
	"github.com/rentwheels-dev/rentwheels/internal/cli/session"
	"github.com/rentwheels-dev/rentwheels/internal/logger"
)

// deps bundles what every command needs: configuration, the session store,
// the auth context, and the API client. Production wiring comes from
// defaultDeps; tests inject their own pieces through options.
type deps struct {
	cfg     *config.Config
	store   session.Store
	authCtx *auth.Context
	api     *client.Client
	out     io.Writer
}

// Option overrides a dependency, mainly for tests.
type Option func(*deps)

// WithConfig overrides the loaded configuration.
func WithConfig(cfg *config.Config) Option {
	return func(d *deps) { d.cfg = cfg }
}

// WithStore overrides the session store.
func WithStore(store session.Store) Option {
	return func(d *deps) { d.store = store }
}

// WithAPI overrides the API client.
func WithAPI(api *client.Client) Option {
	return func(d *deps) { d.api = api }
}

// WithOutput overrides where command output is written.
func WithOutput(out io.Writer) Option {
	return func(d *deps) { d.out = out }
}

// newDeps assembles the dependency graph. The API client's 401 policy is
// wired to the auth context here, once, so no individual command has to
// think about expired credentials.
func newDeps(opts ...Option) (*deps, error) {
	d := &deps{out: os.Stdout}
	for _, opt := range opts {
		opt(d)
	}

	if d.cfg == nil {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		d.cfg = cfg
	}

	logger.Init(d.cfg.LogLevel)

	if d.store == nil {
		d.store = session.NewKeyringStore(d.cfg.APIHost())
	}
	if d.api == nil {
		d.api = client.New(d.cfg.APIURL, d.store)
	}

	d.authCtx = auth.New(d.store)
	d.api.OnUnauthorized(func() {
		// The client already cleared the store; this clears the in-memory
		// session and lets session-end listeners handle navigation.
		_ = d.authCtx.Invalidate()
	})

	return d, nil
}

// notifySessionEndOnce registers the one-shot command behavior for a session
// teardown: tell the user where to go, since there is no live screen to
// redirect.
func (d *deps) notifySessionEndOnce() {
	d.authCtx.OnSessionEnd(func(reason auth.Reason) {
		switch reason {
		case auth.ReasonExpired:
			fmt.Fprintln(d.out, "Your session has expired. Please run 'rentwheels login'.")
		case auth.ReasonLogout:
			fmt.Fprintln(d.out, "Signed out. Run 'rentwheels login' to sign in again.")
		}
	})
}
