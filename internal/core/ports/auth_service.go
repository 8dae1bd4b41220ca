package ports

import (
	"context"

	"github.com/fintrack/personal-finance/internal/core/domain"
)

// AuthService manages registration, login and the process-wide session.
type AuthService interface {
	// Register creates the user, makes it the current session and returns a
	// bearer token for it.
	Register(ctx context.Context, fullName, username, password string) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Logout(ctx context.Context) error
	// Current returns the logged-in user or domain.ErrNotLoggedIn.
	Current() (*domain.User, error)
}

// SessionObserver is notified when the current user changes. user is nil
// after logout.
type SessionObserver interface {
	SessionChanged(ctx context.Context, user *domain.User)
}
