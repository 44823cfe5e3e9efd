package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/crmconsole/internal/session"
)

// Restorer adopts backend session when console session knows credentials but not the user
type Restorer interface {
	Restore(context.Context) (bool, error)
}

// Restore probes backend once for sessions carrying credentials without user,
// failures leave session anonymous
func Restore(r Restorer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := session.FromContext(c.Request().Context())
			if s != nil && !s.Authenticated() && s.HasCredentials() {
				if _, err := r.Restore(c.Request().Context()); err != nil {
					logrus.WithField("session", s.ID).Warnf("failed to restore backend session - %v", err)
				}
			}
			return next(c)
		}
	}
}

// RequireUser lets only signed in users through, others are sent to login page
func RequireUser(loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := session.FromContext(c.Request().Context())
			if s == nil || !s.Authenticated() {
				return c.Redirect(http.StatusSeeOther, loginPath)
			}
			return next(c)
		}
	}
}
