package client

import (
	"fmt"
	"net/url"
)

// AdminUser is an account row in the moderation screens.
type AdminUser struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsBlocked bool   `json:"isBlocked"`
}

// AdminListUsers fetches every account.
func (c *Client) AdminListUsers() ([]AdminUser, error) {
	var users []AdminUser
	if err := c.get("/admin/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AdminBlockUser blocks an account.
func (c *Client) AdminBlockUser(id string) error {
	return c.put(fmt.Sprintf("/admin/users/%s/block", url.PathEscape(id)), nil, nil)
}

// AdminUnblockUser unblocks an account.
func (c *Client) AdminUnblockUser(id string) error {
	return c.put(fmt.Sprintf("/admin/users/%s/unblock", url.PathEscape(id)), nil, nil)
}

// AdminListVehicles fetches every vehicle, including unapproved ones.
func (c *Client) AdminListVehicles() ([]Vehicle, error) {
	var vehicles []Vehicle
	if err := c.get("/admin/vehicles", &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// AdminApproveVehicle approves a vehicle for the public catalog.
func (c *Client) AdminApproveVehicle(id string) error {
	return c.put(fmt.Sprintf("/admin/vehicles/%s/approve", url.PathEscape(id)), nil, nil)
}

// AdminRejectVehicle rejects a vehicle listing.
func (c *Client) AdminRejectVehicle(id string) error {
	return c.put(fmt.Sprintf("/admin/vehicles/%s/reject", url.PathEscape(id)), nil, nil)
}

// AdminListBookings fetches every booking.
func (c *Client) AdminListBookings() ([]Booking, error) {
	var bookings []Booking
	if err := c.get("/admin/bookings", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// AdminCancelBooking cancels a booking.
func (c *Client) AdminCancelBooking(id string) error {
	return c.put(fmt.Sprintf("/admin/bookings/%s/cancel", url.PathEscape(id)), nil, nil)
}

// AdminListPayments fetches every payment.
func (c *Client) AdminListPayments() ([]Payment, error) {
	var payments []Payment
	if err := c.get("/admin/payments", &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// AdminListReviews fetches every review, approved or not.
func (c *Client) AdminListReviews() ([]Review, error) {
	var reviews []Review
	if err := c.get("/admin/reviews", &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// AdminApproveReview publishes a review.
func (c *Client) AdminApproveReview(id string) error {
	return c.put(fmt.Sprintf("/admin/reviews/%s/approve", url.PathEscape(id)), nil, nil)
}

// AdminDeleteReview removes a review.
func (c *Client) AdminDeleteReview(id string) error {
	return c.delete(fmt.Sprintf("/admin/reviews/%s", url.PathEscape(id)))
}

// SupportTicket is a support request with the admin's response, if any.
type SupportTicket struct {
	ID       string      `json:"_id"`
	User     BookingUser `json:"user"`
	Subject  string      `json:"subject"`
	Message  string      `json:"message"`
	Response string      `json:"response"`
	Status   string      `json:"status"`
}

// AdminListSupportTickets fetches every support ticket.
func (c *Client) AdminListSupportTickets() ([]SupportTicket, error) {
	var tickets []SupportTicket
	if err := c.get("/admin/support", &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// AdminRespondSupportTicket answers a support ticket.
func (c *Client) AdminRespondSupportTicket(id, response string) error {
	body := struct {
		Response string `json:"response"`
	}{Response: response}
	return c.post(fmt.Sprintf("/admin/support/%s/respond", url.PathEscape(id)), body, nil)
}
