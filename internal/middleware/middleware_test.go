package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/crmconsole/internal/cache"
	"github.com/umalmyha/crmconsole/internal/model"
	"github.com/umalmyha/crmconsole/internal/session"
)

type restorerFunc func(context.Context) (bool, error)

func (f restorerFunc) Restore(ctx context.Context) (bool, error) {
	return f(ctx)
}

func TestSessionAndGate(t *testing.T) {
	manager := session.NewManager(session.NewStore(cache.NewMemoryStore(8<<20)), time.Hour)
	e := echo.New()
	e.Use(Session(manager, CookieCfg{Name: "sid"}))

	var restored int
	e.Use(Restore(restorerFunc(func(ctx context.Context) (bool, error) {
		restored++
		return false, nil
	})))

	var seen *session.Session
	e.GET("/private", func(c echo.Context) error {
		seen = session.FromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	}, RequireUser("/login"))
	e.GET("/public", func(c echo.Context) error {
		seen = session.FromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	var anonymousID string
	e.POST("/signin", func(c echo.Context) error {
		seen = session.FromContext(c.Request().Context())
		anonymousID = seen.ID
		if err := manager.Establish(c.Request().Context(), "opaque-token", model.User{ID: "u1"}); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/")
	})

	t.Log("anonymous request is sent to login without storing session")
	{
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/private", nil))
		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
		require.Empty(t, rec.Result().Cookies())
		require.Zero(t, restored, "session without credentials must not be restored")
	}

	t.Log("signing in issues cookie of the new session id")
	var cookie *http.Cookie
	{
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/signin", nil))
		require.Equal(t, http.StatusSeeOther, rec.Code)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		cookie = cookies[0]
		require.Equal(t, "sid", cookie.Name)
		require.True(t, cookie.HttpOnly)
		require.Equal(t, seen.ID, cookie.Value)
		require.NotEqual(t, anonymousID, cookie.Value)
	}

	t.Log("signed in session is loaded by cookie and passes the gate")
	{
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, cookie.Value, seen.ID)
		require.True(t, seen.Authenticated())
	}

	t.Log("session with credentials but without user is restored")
	{
		ctx := session.WithSession(context.Background(), seen)
		require.NoError(t, manager.Clear(ctx, ""))
		manager.Authorize(ctx, "opaque-token")
		require.NoError(t, manager.Save(ctx, seen))

		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		req.AddCookie(cookie)
		e.ServeHTTP(httptest.NewRecorder(), req)
		require.Equal(t, 1, restored)
	}
}
