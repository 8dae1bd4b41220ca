package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/fintrack/personal-finance/internal/core/domain"
)

// SessionSource reports the process-wide logged-in user.
type SessionSource interface {
	Current() (*domain.User, error)
}

// Session admits a request only when the token's user is the current session.
// Tokens issued before a logout, or for another account, are rejected.
// Must run after Auth.
func Session(sessions SessionSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := sessions.Current()
			if err != nil {
				return err
			}
			if id, _ := c.Get("user_id").(string); id != user.ID {
				return domain.ErrSessionMismatch
			}
			return next(c)
		}
	}
}
