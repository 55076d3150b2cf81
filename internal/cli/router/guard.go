// Package router decides, per navigation, whether a screen renders or the
// user gets sent somewhere else. The guards are pure functions over the
// current session; the Router applies them to a route table.
package router

import (
	"github.com/rentwheels-dev/rentwheels/internal/cli/session"
)

// Well-known paths the guards redirect to.
const (
	PathLogin         = "/login"
	PathAdminHome     = "/admin"
	PathUserDashboard = "/user/dashboard"
)

// Action is the outcome kind of a guard decision.
type Action int

const (
	// Render means the requested screen may be shown.
	Render Action = iota
	// Redirect means the navigation goes to Target instead.
	Redirect
)

// Decision is the result of evaluating a guard: render the requested screen,
// or redirect to Target. Notice, when set, is surfaced to the user.
type Decision struct {
	Action Action
	Target string
	Notice string
}

func render() Decision {
	return Decision{Action: Render}
}

func redirect(target, notice string) Decision {
	return Decision{Action: Redirect, Target: target, Notice: notice}
}

// RequireRole guards a subtree that only the given role may see. The branch
// order matters: an admin hitting a user-only screen lands on the admin home,
// not the login screen, and vice versa. Only a session with no credential or
// no user at all goes back to login.
func RequireRole(sess session.Session, required session.Role) Decision {
	if !sess.Authenticated() {
		return redirect(PathLogin, "Please log in to access this page.")
	}

	role, known := session.ParseRole(sess.User.Role)
	if known && role == required {
		return render()
	}

	switch role {
	case session.RoleAdmin:
		return redirect(PathAdminHome, "Admins cannot access user pages.")
	case session.RoleUser:
		return redirect(PathUserDashboard, "You do not have permission to access admin pages.")
	default:
		return redirect(PathLogin, "Invalid user role.")
	}
}

// RedirectIfAuthenticated guards entry screens like login and signup: a user
// who already has a session is sent to the dashboard instead.
func RedirectIfAuthenticated(sess session.Session) Decision {
	if sess.Authenticated() {
		return redirect(PathUserDashboard, "")
	}
	return render()
}
