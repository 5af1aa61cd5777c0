package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fleachain_backend/models"
)

// Login resolves after the configured simulated latency and succeeds iff
// username matches a known user. The password is accepted but never checked;
// identity here is wallet-based marketing copy, not real authentication.
//
// Only one login may be in flight at a time: a newer call takes over the
// slot and an older, still-pending call is preempted. A preempted call
// resolves false and leaves the current user untouched, so the last call
// started always determines the session.
func (s *Store) Login(ctx context.Context, username, password string) (bool, error) {
	s.mu.Lock()
	s.loginGen++
	gen := s.loginGen
	s.mu.Unlock()

	if s.loginDelay > 0 {
		timer := time.NewTimer(s.loginDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.loginGen {
		// A later login attempt took over the slot; discard this result.
		return false, nil
	}
	s.current = &user
	return true, nil
}

// Logout clears the current user. No other entity is touched.
func (s *Store) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// CurrentUser returns the logged-in user, if any.
func (s *Store) CurrentUser() (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, false
	}
	u := *s.current
	return &u, true
}
