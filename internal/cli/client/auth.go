package client

import (
	"fmt"
	"net/url"

	"github.com/rentwheels-dev/rentwheels/internal/cli/session"
)

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the successful login payload.
type LoginResponse struct {
	Token string       `json:"token"`
	User  session.User `json:"user"`
}

// Login exchanges credentials for a bearer token and the user record. It does
// not touch the session store; establishing the session is the caller's job.
func (c *Client) Login(email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.post("/auth/login", LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account. The user still logs in separately.
func (c *Client) Register(name, email, password string) error {
	return c.post("/auth/register", RegisterRequest{Name: name, Email: email, Password: password}, nil)
}

// ForgotPassword asks the API to send a password-reset email.
func (c *Client) ForgotPassword(email string) error {
	body := struct {
		Email string `json:"email"`
	}{Email: email}
	return c.post("/auth/forgot-password", body, nil)
}

// VerifyResetToken checks a password-reset token before prompting for the
// new password.
func (c *Client) VerifyResetToken(token string) error {
	return c.get(fmt.Sprintf("/auth/verify-reset-token/%s", url.PathEscape(token)), nil)
}

// ResetPassword sets a new password using a reset token.
func (c *Client) ResetPassword(token, password string) error {
	body := struct {
		Password string `json:"password"`
	}{Password: password}
	return c.post(fmt.Sprintf("/auth/reset-password/%s", url.PathEscape(token)), body, nil)
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile() (*session.User, error) {
	var user session.User
	if err := c.get("/auth/profile", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfileRequest is the body for PUT /auth/profile. Empty fields are
// omitted and left unchanged server-side.
type UpdateProfileRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// UpdateProfile edits the authenticated user's profile.
func (c *Client) UpdateProfile(req UpdateProfileRequest) (*session.User, error) {
	var user session.User
	if err := c.put("/auth/profile", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
