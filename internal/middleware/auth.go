package middleware

import (
	"net/http"

	"bakery-storefront/internal/model"
	"bakery-storefront/internal/repository"

	"github.com/labstack/echo/v4"
)

const sessionKey = "session"

// adminLogin marks the account allowed into the admin views.
const adminLogin = "admin"

// RequireSession gates views that need an authenticated user. The
// stored session is attached to the request context for handlers.
func RequireSession(sessions repository.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, err := sessions.Get(c.Request().Context())
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "read session")
			}
			if session == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "login required")
			}

			c.Set(sessionKey, session)
			return next(c)
		}
	}
}

// RequireAdmin keeps non-admin users out of the admin views. Must run
// after RequireSession.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := SessionFromContext(c)
			if session == nil || session.Login != adminLogin {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}

			return next(c)
		}
	}
}

// SessionFromContext returns the session attached by RequireSession,
// or nil when the route is not gated.
func SessionFromContext(c echo.Context) *model.Session {
	session, _ := c.Get(sessionKey).(*model.Session)
	return session
}
