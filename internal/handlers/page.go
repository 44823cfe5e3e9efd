package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apperrors "github.com/umalmyha/crmconsole/internal/errors"
	"github.com/umalmyha/crmconsole/internal/session"
	"github.com/umalmyha/crmconsole/internal/view"
)

const unreachableMessage = "Couldn't reach the server, your changes were not saved. Please try again."

func page(c echo.Context, title, section string, content interface{}) view.Page {
	p := view.Page{Title: title, Section: section, Content: content}
	if s := session.FromContext(c.Request().Context()); s != nil {
		if u, ok := s.CurrentUser(); ok {
			p.User = &u
		}
	}
	return p
}

// rejected re-renders form after failed submit keeping everything user typed.
// Validation failures are shown inline, unreachable backend as blocking message,
// anything else goes to the global error handler.
func rejected(c echo.Context, err error, template string, p view.Page) error {
	var vErr *apperrors.ValidationErr
	if errors.As(err, &vErr) {
		p.Errors = vErr
		return c.Render(http.StatusUnprocessableEntity, template, p)
	}

	var netErr *apperrors.NetworkErr
	if errors.As(err, &netErr) {
		p.Error = unreachableMessage
		return c.Render(http.StatusServiceUnavailable, template, p)
	}

	return err
}

func redirect(c echo.Context, path string) error {
	return c.Redirect(http.StatusSeeOther, path)
}
