package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/rentwheels-dev/rentwheels/internal/cli/router"
	"github.com/rentwheels-dev/rentwheels/internal/cli/session"
)

// newRouter builds the screen table. Every navigation, whether from a
// one-shot command or the browse shell, goes through the same guards the
// web client applied per route.
func (d *deps) newRouter() *router.Router {
	r := router.New(d.authCtx.Session, func(notice string) {
		fmt.Fprintln(d.out, notice)
	})

	requireUser := func(s session.Session) router.Decision {
		return router.RequireRole(s, session.RoleUser)
	}
	requireAdmin := func(s session.Session) router.Decision {
		return router.RequireRole(s, session.RoleAdmin)
	}

	r.Handle("/", router.Route{Render: d.renderHome})
	r.Handle(router.PathLogin, router.Route{
		Guard:  router.RedirectIfAuthenticated,
		Render: d.renderLoginScreen,
	})
	r.Handle("/signup", router.Route{
		Guard:  router.RedirectIfAuthenticated,
		Render: d.renderSignupScreen,
	})
	r.Handle("/vehicles", router.Route{Render: d.renderVehicles})
	r.Handle(router.PathUserDashboard, router.Route{Guard: requireUser, Render: d.renderDashboard})
	r.Handle("/bookings", router.Route{Render: d.renderBookings})
	r.Handle("/payments", router.Route{Render: d.renderPayments})
	r.Handle("/reviews", router.Route{Render: d.renderMyReviews})

	r.Handle(router.PathAdminHome, router.Route{Guard: requireAdmin, Render: d.renderAdminHome})
	r.Handle("/admin/users", router.Route{Guard: requireAdmin, Render: d.renderAdminUsers})
	r.Handle("/admin/vehicles", router.Route{Guard: requireAdmin, Render: d.renderAdminVehicles})
	r.Handle("/admin/bookings", router.Route{Guard: requireAdmin, Render: d.renderAdminBookings})
	r.Handle("/admin/payments", router.Route{Guard: requireAdmin, Render: d.renderAdminPayments})
	r.Handle("/admin/reviews", router.Route{Guard: requireAdmin, Render: d.renderAdminReviews})
	r.Handle("/admin/support", router.Route{Guard: requireAdmin, Render: d.renderAdminSupport})

	r.HandleNotFound(func() error {
		fmt.Fprintln(d.out, "Page not found.")
		return nil
	})

	return r
}

// guardedAction runs an admin mutation behind Guard A. On a redirect decision
// the notice is shown and the redirect target renders instead, mirroring what
// the browser client did with guarded routes.
func (d *deps) guardedAction(required session.Role, fn func() error) error {
	decision := router.RequireRole(d.authCtx.Session(), required)
	if decision.Action == router.Redirect {
		if decision.Notice != "" {
			fmt.Fprintln(d.out, decision.Notice)
		}
		return d.newRouter().Navigate(decision.Target)
	}
	return fn()
}

func (d *deps) renderHome() error {
	fmt.Fprintln(d.out, "RentWheels — vehicle rentals from your terminal.")
	fmt.Fprintln(d.out, "\nBrowse the catalog with 'rentwheels vehicles', or sign in with 'rentwheels login'.")
	return nil
}

func (d *deps) renderLoginScreen() error {
	fmt.Fprintln(d.out, "You are not signed in. Run 'rentwheels login' to sign in.")
	return nil
}

func (d *deps) renderSignupScreen() error {
	fmt.Fprintln(d.out, "Create an account with 'rentwheels signup'.")
	return nil
}

func (d *deps) renderVehicles() error {
	vehicles, err := d.api.ListVehicles()
	if err != nil {
		return err
	}

	if len(vehicles) == 0 {
		fmt.Fprintln(d.out, "No vehicles available right now.")
		return nil
	}

	w := tabwriter.NewWriter(d.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVEHICLE\tLOCATION\tSEATS\tPRICE/DAY\tRATING")
	for _, v := range vehicles {
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%d\t%.2f\t%.1f\n",
			v.ID, v.Make, v.Model, v.Location, v.Seats, v.PricePerDay, v.AverageRating)
	}
	return w.Flush()
}

func (d *deps) renderDashboard() error {
	sess := d.authCtx.Session()
	fmt.Fprintf(d.out, "Welcome back, %s!\n\n", sess.User.Name)

	bookings, err := d.api.MyBookings()
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "You have %d booking(s). See them with 'rentwheels bookings'.\n", len(bookings))
	fmt.Fprintln(d.out, "Find your next ride with 'rentwheels vehicles'.")
	return nil
}

func (d *deps) renderBookings() error {
	bookings, err := d.api.MyBookings()
	if err != nil {
		return err
	}

	if len(bookings) == 0 {
		fmt.Fprintln(d.out, "No bookings yet.")
		fmt.Fprintln(d.out, "\nBook a vehicle with: rentwheels book <vehicle-id>")
		return nil
	}

	w := tabwriter.NewWriter(d.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VEHICLE\tFROM\tTO\tTOTAL\tSTATUS")
	for _, b := range bookings {
		fmt.Fprintf(w, "%s %s\t%s\t%s\t%.2f\t%s\n",
			b.Vehicle.Make, b.Vehicle.Model, b.StartDate, b.EndDate, b.TotalPrice, b.Status)
	}
	return w.Flush()
}

func (d *deps) renderPayments() error {
	payments, err := d.api.PaymentHistory()
	if err != nil {
		return err
	}

	if len(payments) == 0 {
		fmt.Fprintln(d.out, "No payments yet.")
		return nil
	}

	w := tabwriter.NewWriter(d.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tVEHICLE\tAMOUNT\tMETHOD\tSTATUS")
	for _, p := range payments {
		fmt.Fprintf(w, "%s\t%s %s\t%.2f\t%s\t%s\n",
			p.CreatedAt, p.Vehicle.Make, p.Vehicle.Model, p.Amount, p.Method, p.Status)
	}
	return w.Flush()
}

func (d *deps) renderMyReviews() error {
	reviews, err := d.api.MyReviews()
	if err != nil {
		return err
	}

	if len(reviews) == 0 {
		fmt.Fprintln(d.out, "You haven't written any reviews.")
		return nil
	}

	w := tabwriter.NewWriter(d.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VEHICLE\tRATING\tCOMMENT\tAPPROVED")
	for _, r := range reviews {
		fmt.Fprintf(w, "%s %s\t%d/5\t%s\t%t\n",
			r.Vehicle.Make, r.Vehicle.Model, r.Rating, r.Comment, r.IsApproved)
	}
	return w.Flush()
}

func (d *deps) renderAdminHome() error {
	sess := d.authCtx.Session()
	fmt.Fprintf(d.out, "Admin console — signed in as %s.\n\n", sess.User.Name)
	fmt.Fprintln(d.out, "Moderation screens:")
	fmt.Fprintln(d.out, "  rentwheels admin users      — manage accounts")
	fmt.Fprintln(d.out, "  rentwheels admin vehicles   — approve listings")
	fmt.Fprintln(d.out, "  rentwheels admin bookings   — oversee bookings")
	fmt.Fprintln(d.out, "  rentwheels admin payments   — monitor payments")
	fmt.Fprintln(d.out, "  rentwheels admin reviews    — moderate reviews")
	fmt.Fprintln(d.out, "  rentwheels admin support    — answer support tickets")
	return nil
}

func (d *deps) renderAdminUsers() error {
	users, err := d.api.AdminListUsers()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(d.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tBLOCKED")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", u.ID, u.Name, u.Email, u.Role, u.IsBlocked)
	}
	return w.Flush()
}

func (d *deps) renderAdminVehicles() error {
	vehicles, err := d.api.AdminListVehicles()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(d.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVEHICLE\tPRICE/DAY\tAPPROVED")
	for _, v := range vehicles {
		fmt.Fprintf(w, "%s\t%s %s\t%.2f\t%t\n", v.ID, v.Make, v.Model, v.PricePerDay, v.IsApproved)
	}
	return w.Flush()
}

func (d *deps) renderAdminBookings() error {
	bookings, err := d.api.AdminListBookings()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(d.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSER\tVEHICLE\tFROM\tTO\tTOTAL\tSTATUS")
	for _, b := range bookings {
		fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\t%s\t%.2f\t%s\n",
			b.ID, b.User.Name, b.Vehicle.Make, b.Vehicle.Model, b.StartDate, b.EndDate, b.TotalPrice, b.Status)
	}
	return w.Flush()
}

func (d *deps) renderAdminPayments() error {
	payments, err := d.api.AdminListPayments()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(d.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSER\tVEHICLE\tAMOUNT\tSTATUS\tDATE")
	for _, p := range payments {
		fmt.Fprintf(w, "%s\t%s\t%s %s\t%.2f\t%s\t%s\n",
			p.ID, p.User.Name, p.Vehicle.Make, p.Vehicle.Model, p.Amount, p.Status, p.CreatedAt)
	}
	return w.Flush()
}

func (d *deps) renderAdminReviews() error {
	reviews, err := d.api.AdminListReviews()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(d.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSER\tVEHICLE\tRATING\tCOMMENT\tAPPROVED")
	for _, r := range reviews {
		fmt.Fprintf(w, "%s\t%s\t%s %s\t%d/5\t%s\t%t\n",
			r.ID, r.User.Name, r.Vehicle.Make, r.Vehicle.Model, r.Rating, r.Comment, r.IsApproved)
	}
	return w.Flush()
}

func (d *deps) renderAdminSupport() error {
	tickets, err := d.api.AdminListSupportTickets()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(d.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSER\tSUBJECT\tSTATUS\tRESPONSE")
	for _, s := range tickets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.User.Name, s.Subject, s.Status, s.Response)
	}
	return w.Flush()
}
