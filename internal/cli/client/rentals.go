package client

import (
	"fmt"
	"net/url"
)

// Vehicle is a rentable vehicle from the catalog.
type Vehicle struct {
	ID            string   `json:"_id"`
	Make          string   `json:"make"`
	Model         string   `json:"model"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	FuelType      string   `json:"fuelType"`
	Transmission  string   `json:"transmission"`
	Seats         int      `json:"seats"`
	PricePerDay   float64  `json:"pricePerDay"`
	AverageRating float64  `json:"averageRating"`
	IsApproved    bool     `json:"isApproved"`
	Images        []string `json:"images"`
}

// ListVehicles fetches the vehicle catalog. This endpoint is public.
func (c *Client) ListVehicles() ([]Vehicle, error) {
	var vehicles []Vehicle
	if err := c.get("/vehicles", &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// GetVehicle fetches one vehicle by id.
func (c *Client) GetVehicle(id string) (*Vehicle, error) {
	var vehicle Vehicle
	if err := c.get(fmt.Sprintf("/vehicles/%s", url.PathEscape(id)), &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// BookingUser is the user summary embedded in booking and payment records.
type BookingUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BookingVehicle is the vehicle summary embedded in booking records.
type BookingVehicle struct {
	Make  string `json:"make"`
	Model string `json:"model"`
}

// Booking is a vehicle rental for a date range.
type Booking struct {
	ID         string         `json:"_id"`
	User       BookingUser    `json:"user"`
	Vehicle    BookingVehicle `json:"vehicle"`
	StartDate  string         `json:"startDate"`
	EndDate    string         `json:"endDate"`
	TotalPrice float64        `json:"totalPrice"`
	Status     string         `json:"status"`
}

// MyBookings fetches the authenticated user's bookings.
func (c *Client) MyBookings() ([]Booking, error) {
	var bookings []Booking
	if err := c.get("/bookings/my", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CheckoutRequest is the body for POST /payments/create-checkout-session.
type CheckoutRequest struct {
	VehicleID   string  `json:"vehicleId"`
	FromDate    string  `json:"fromDate"`
	ToDate      string  `json:"toDate"`
	TotalAmount float64 `json:"totalAmount"`
}

// CheckoutSession is the payment session returned by the gateway, with the
// URL the user completes payment at.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreateCheckoutSession starts the payment flow for a booking.
func (c *Client) CreateCheckoutSession(req CheckoutRequest) (*CheckoutSession, error) {
	var sess CheckoutSession
	if err := c.post("/payments/create-checkout-session", req, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// ConfirmBookingRequest is the body for POST /payments/confirm-booking, sent
// after the payment session completes.
type ConfirmBookingRequest struct {
	SessionID string `json:"sessionId"`
	VehicleID string `json:"vehicleId"`
	FromDate  string `json:"fromDate"`
	ToDate    string `json:"toDate"`
}

// ConfirmBooking finalizes a booking after payment.
func (c *Client) ConfirmBooking(req ConfirmBookingRequest) (*Booking, error) {
	var booking Booking
	if err := c.post("/payments/confirm-booking", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// Payment is one entry from the payment history.
type Payment struct {
	ID        string         `json:"_id"`
	BookingID string         `json:"bookingId"`
	User      BookingUser    `json:"user"`
	Vehicle   BookingVehicle `json:"vehicle"`
	Amount    float64        `json:"amount"`
	Method    string         `json:"method"`
	Status    string         `json:"paymentStatus"`
	CreatedAt string         `json:"createdAt"`
}

// PaymentHistory fetches the authenticated user's payments.
func (c *Client) PaymentHistory() ([]Payment, error) {
	var payments []Payment
	if err := c.get("/payments/payment-history", &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// Review is a user's review of a vehicle.
type Review struct {
	ID         string         `json:"_id"`
	User       BookingUser    `json:"user"`
	Vehicle    BookingVehicle `json:"vehicle"`
	Rating     int            `json:"rating"`
	Comment    string         `json:"comment"`
	IsApproved bool           `json:"isApproved"`
	CreatedAt  string         `json:"createdAt"`
}

// VehicleReviews fetches the approved reviews for a vehicle. Public endpoint.
func (c *Client) VehicleReviews(vehicleID string) ([]Review, error) {
	var reviews []Review
	if err := c.get(fmt.Sprintf("/reviews/%s", url.PathEscape(vehicleID)), &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// MyReviews fetches the authenticated user's reviews.
func (c *Client) MyReviews() ([]Review, error) {
	var reviews []Review
	if err := c.get("/reviews/my", &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// SubmitReviewRequest is the body for POST /reviews.
type SubmitReviewRequest struct {
	VehicleID string `json:"vehicleId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// SubmitReview files a review; it stays hidden until an admin approves it.
func (c *Client) SubmitReview(req SubmitReviewRequest) error {
	return c.post("/reviews", req, nil)
}

// SupportRequest is the body for POST /support.
type SupportRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// OpenSupportTicket files a support request.
func (c *Client) OpenSupportTicket(subject, message string) error {
	return c.post("/support", SupportRequest{Subject: subject, Message: message}, nil)
}
