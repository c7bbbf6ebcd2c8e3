package store

import (
	"context"
	"strings"

	"bloomshop/internal/domain"
	"bloomshop/internal/gateway"
)

// SignIn checks credentials against the remote store. On success the session
// is persisted and cart and wishlist are hydrated in the same pass; hydration
// failures are logged, not returned, since the sign-in itself succeeded.
func (s *Store) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, &domain.ValidationError{Reason: "email and password are required"}
	}

	sess, err := s.gw.CheckPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.session = sess
	if err := s.state.SaveSession(*sess); err != nil {
		s.logger.Printf("persist session: %v", err)
	}
	if err := s.refreshCartLocked(ctx, sess.Email); err != nil {
		s.logger.Printf("hydrate cart: %v", err)
	}
	if err := s.refreshWishlistLocked(ctx, sess.Email); err != nil {
		s.logger.Printf("hydrate wishlist: %v", err)
	}
	s.mu.Unlock()

	s.notify()
	return s.Session(), nil
}

// SignUp registers a new account. The password/confirmation check happens
// here, before any network call.
func (s *Store) SignUp(ctx context.Context, in gateway.SignUpInput) (*domain.Session, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.UserName == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, &domain.ValidationError{Reason: "all fields are required"}
	}
	if in.Password != in.ConfirmPassword {
		return nil, &domain.ValidationError{Field: "confirmPassword", Reason: "passwords don't match"}
	}

	sess, err := s.gw.SignUp(ctx, in)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.session = sess
	s.cart = nil
	s.wishlist = nil
	if err := s.state.SaveSession(*sess); err != nil {
		s.logger.Printf("persist session: %v", err)
	}
	s.mu.Unlock()

	s.notify()
	return s.Session(), nil
}

// SignOut clears session, cart and wishlist in memory and in durable
// storage. Idempotent; signing out twice is fine.
func (s *Store) SignOut() {
	s.mu.Lock()
	s.session = nil
	s.cart = nil
	s.wishlist = nil
	s.mu.Unlock()

	if err := s.state.ClearSession(); err != nil {
		s.logger.Printf("clear persisted session: %v", err)
	}
	s.notify()
}

// UpdateProfile sends a partial update and merges the accepted fields into
// the current session. Fields absent from the input are never removed.
func (s *Store) UpdateProfile(ctx context.Context, fields map[string]interface{}) (*domain.Session, error) {
	s.mu.Lock()
	sess, err := s.sessionLocked()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	if _, err := s.gw.UpdateUser(ctx, sess.UserID, fields); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	if v, ok := fields["userName"].(string); ok && v != "" {
		s.session.UserName = v
	}
	if v, ok := fields["email"].(string); ok && v != "" {
		s.session.Email = v
	}
	if v, ok := fields["settings"].(map[string]interface{}); ok {
		if s.session.Settings == nil {
			s.session.Settings = make(map[string]interface{}, len(v))
		}
		for k, val := range v {
			s.session.Settings[k] = val
		}
	}
	if err := s.state.SaveSession(*s.session); err != nil {
		s.logger.Printf("persist session: %v", err)
	}
	s.mu.Unlock()

	s.notify()
	return s.Session(), nil
}

// UpdateSettings replaces the settings map on the account.
func (s *Store) UpdateSettings(ctx context.Context, settings map[string]interface{}) (*domain.Session, error) {
	return s.UpdateProfile(ctx, map[string]interface{}{"settings": settings})
}

// ChangePassword swaps the account password after the server verifies the
// current one.
func (s *Store) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	if newPassword == "" {
		return &domain.ValidationError{Field: "newPassword", Reason: "required"}
	}
	s.mu.Lock()
	sess, err := s.sessionLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.gw.ChangePassword(ctx, sess.UserID, sess.Email, currentPassword, newPassword)
}

// ExportData fetches the server's full snapshot of the account.
func (s *Store) ExportData(ctx context.Context) (map[string]interface{}, error) {
	s.mu.Lock()
	sess, err := s.sessionLocked()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.gw.ExportUser(ctx, sess.UserID)
}

// Stats fetches order count and lifetime spend for the account.
func (s *Store) Stats(ctx context.Context) (map[string]interface{}, error) {
	s.mu.Lock()
	sess, err := s.sessionLocked()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.gw.UserStats(ctx, sess.UserID)
}

// DeleteAccount removes the account remotely, then signs out locally.
func (s *Store) DeleteAccount(ctx context.Context) error {
	s.mu.Lock()
	sess, err := s.sessionLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if err := s.gw.DeleteUser(ctx, sess.UserID, sess.Email); err != nil {
		return err
	}
	s.SignOut()
	return nil
}
