package gateway

import (
	"context"
	"net/http"

	"bloomshop/internal/domain"
)

// SignUpInput carries the fields expected by the signup endpoint. The
// password/confirmation check happens client-side before this is sent.
type SignUpInput struct {
	UserName        string `json:"userName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// CheckPassword validates credentials and returns the account identity.
// A mismatch surfaces as domain.ErrInvalidCredentials.
func (c *Client) CheckPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	body := map[string]string{"email": email, "password": password}
	var session domain.Session
	err := c.do(ctx, http.MethodPost, "/checkpassword", nil, body, &session)
	if err != nil {
		if IsServerStatus(err, http.StatusUnauthorized) || err == domain.ErrNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	return &session, nil
}

// SignUp registers a new account. Duplicate emails surface as
// domain.ErrEmailTaken.
func (c *Client) SignUp(ctx context.Context, in SignUpInput) (*domain.Session, error) {
	var session domain.Session
	if err := c.do(ctx, http.MethodPost, "/signup", nil, in, &session); err != nil {
		if IsServerStatus(err, http.StatusConflict) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return &session, nil
}

// User fetches one account's profile.
func (c *Client) User(ctx context.Context, id string) (*domain.Session, error) {
	var session domain.Session
	if err := c.do(ctx, http.MethodGet, "/users/"+id, nil, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateUser sends a partial profile update. Fields absent from the input
// are left untouched server-side.
func (c *Client) UpdateUser(ctx context.Context, id string, fields map[string]interface{}) (*domain.Session, error) {
	var session domain.Session
	if err := c.do(ctx, http.MethodPut, "/users/"+id, nil, fields, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteUser removes the account.
func (c *Client) DeleteUser(ctx context.Context, id, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodDelete, "/users/"+id, nil, body, nil)
}

// ChangePassword swaps the account password after verifying the current one.
func (c *Client) ChangePassword(ctx context.Context, id, email, currentPassword, newPassword string) error {
	body := map[string]string{
		"email":           email,
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	err := c.do(ctx, http.MethodPut, "/users/"+id+"/password", nil, body, nil)
	if IsServerStatus(err, http.StatusUnauthorized) {
		return domain.ErrInvalidCredentials
	}
	return err
}

// ExportUser returns the server's full snapshot of the account: profile,
// cart, wishlist and order history.
func (c *Client) ExportUser(ctx context.Context, id string) (map[string]interface{}, error) {
	var snapshot map[string]interface{}
	if err := c.do(ctx, http.MethodGet, "/users/"+id+"/export", nil, nil, &snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// UserStats returns order count and lifetime spend for the account.
func (c *Client) UserStats(ctx context.Context, id string) (map[string]interface{}, error) {
	var stats map[string]interface{}
	if err := c.do(ctx, http.MethodGet, "/users/"+id+"/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
