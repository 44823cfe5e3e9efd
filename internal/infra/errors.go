package infra

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/crmconsole/internal/errors"
	"github.com/umalmyha/crmconsole/internal/session"
	"github.com/umalmyha/crmconsole/internal/view"
)

// errorHandler maps errors escaping handlers onto pages. Authentication failures send
// user to login page, session is already cleared by the API client at this point.
func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var authErr *apperrors.AuthErr
		if errors.As(err, &authErr) {
			logrus.WithField("op", authErr.Op).Info("backend rejected credentials, redirecting to login")
			respond(c, c.Redirect(http.StatusSeeOther, "/login"))
			return
		}

		var nfErr *apperrors.NotFoundErr
		if errors.As(err, &nfErr) {
			p := view.Page{Title: "Not found", Error: nfErr.Error()}
			if s := session.FromContext(c.Request().Context()); s != nil {
				if u, ok := s.CurrentUser(); ok {
					p.User = &u
				}
			}
			respond(c, c.Render(http.StatusNotFound, "not_found", p))
			return
		}

		var netErr *apperrors.NetworkErr
		if errors.As(err, &netErr) {
			logrus.WithField("op", netErr.Op).Warnf("backend is unreachable - %v", err)
			err = echo.NewHTTPError(http.StatusServiceUnavailable, "Couldn't reach the server. Please try again later.")
		}

		var vErr *apperrors.ValidationErr
		if errors.As(err, &vErr) {
			err = echo.NewHTTPError(http.StatusUnprocessableEntity, vErr.Error())
		}

		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code >= http.StatusInternalServerError {
			logrus.Errorf("request failed - %v", err)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

func respond(c echo.Context, err error) {
	if err != nil {
		logrus.Errorf("failed to write error response - %v", err)
	}
}
