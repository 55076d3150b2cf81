package commands

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami()
		},
	}
}

func runWhoami(opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}

	sess := d.authCtx.Session()
	if !sess.Authenticated() {
		fmt.Fprintln(d.out, "Not signed in. Run 'rentwheels login'.")
		return nil
	}

	fmt.Fprintf(d.out, "User:  %s (%s)\n", sess.User.Name, sess.User.Email)
	fmt.Fprintf(d.out, "Role:  %s\n", sess.User.Role)
	fmt.Fprintf(d.out, "Email verified: %t\n", sess.User.IsEmailVerified)

	if expiry := tokenExpiry(sess.Token); !expiry.IsZero() {
		fmt.Fprintf(d.out, "Session expires: %s\n", expiry.Local().Format(time.RFC1123))
	}
	return nil
}

// tokenExpiry reads the exp claim out of the bearer token without verifying
// it; the server is the authority on validity, this is display only. Tokens
// that aren't JWTs or carry no expiry yield a zero time.
func tokenExpiry(token string) time.Time {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
