package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/crmconsole/internal/session"
)

// CookieCfg configures console session cookie
type CookieCfg struct {
	Name   string
	Secure bool
	// Skipper excludes requests which don't need session, e.g. health checks
	Skipper func(echo.Context) bool
}

// Session loads console session by cookie and puts it into request context.
// Lifetime of stored session is extended on every request, cookie is issued once session is stored.
func Session(manager *session.Manager, cfg CookieCfg) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.Skipper != nil && cfg.Skipper(c) {
				return next(c)
			}

			var id string
			if cookie, err := c.Cookie(cfg.Name); err == nil {
				id = cookie.Value
			}

			req := c.Request()
			s, err := manager.Load(req.Context(), id)
			if err != nil {
				return err
			}

			ctx := session.WithSession(req.Context(), s)
			c.SetRequest(req.WithContext(ctx))
			c.Response().Before(func() {
				if !s.Stored() {
					return
				}
				c.SetCookie(&http.Cookie{
					Name:     cfg.Name,
					Value:    s.ID,
					Path:     "/",
					MaxAge:   int(manager.TTL().Seconds()),
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			})

			err = next(c)

			if sErr := manager.Save(ctx, s); sErr != nil {
				if errors.Is(sErr, session.ErrStale) {
					logrus.WithField("session", s.ID).Debug("session changed by concurrent request, stale copy is dropped")
				} else {
					logrus.WithField("session", s.ID).Errorf("failed to save session - %v", sErr)
				}
			}
			return err
		}
	}
}
