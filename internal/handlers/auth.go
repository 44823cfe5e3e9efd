package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crmconsole/internal/form"
	"github.com/umalmyha/crmconsole/internal/service"
	"github.com/umalmyha/crmconsole/internal/session"
	"github.com/umalmyha/crmconsole/internal/view"
)

// Noticer hands out one-off notices left in session
type Noticer interface {
	TakeNotice(context.Context) string
}

// AuthHandler serves login, signup and logout
type AuthHandler struct {
	authSvc service.AuthService
	notices Noticer
}

// NewAuthHandler builds new AuthHandler
func NewAuthHandler(authSvc service.AuthService, notices Noticer) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, notices: notices}
}

func (h *AuthHandler) LoginPage(c echo.Context) error {
	if signedIn(c) {
		return redirect(c, "/")
	}

	p := h.loginPage(c, form.Login{})
	p.Notice = h.notices.TakeNotice(c.Request().Context())
	return c.Render(http.StatusOK, "login", p)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var f form.Login
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.authSvc.Login(c.Request().Context(), f); err != nil {
		f.Password = ""
		return rejected(c, err, "login", h.loginPage(c, f))
	}
	return redirect(c, "/")
}

// GoogleLogin hands sign in over to backend OAuth flow
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	return c.Redirect(http.StatusFound, h.authSvc.GoogleLoginURL())
}

// Callback completes OAuth sign in with token handed back by backend
func (h *AuthHandler) Callback(c echo.Context) error {
	if _, err := h.authSvc.Callback(c.Request().Context(), c.QueryParam("token")); err != nil {
		return rejected(c, err, "login", h.loginPage(c, form.Login{}))
	}
	return redirect(c, "/")
}

func (h *AuthHandler) SignupPage(c echo.Context) error {
	if signedIn(c) {
		return redirect(c, "/")
	}
	return c.Render(http.StatusOK, "signup", page(c, "Sign up", "", view.Signup{}))
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var f form.Signup
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.authSvc.Signup(c.Request().Context(), f); err != nil {
		f.Password, f.ConfirmPassword = "", ""
		return rejected(c, err, "signup", page(c, "Sign up", "", view.Signup{Form: f}))
	}
	return redirect(c, "/")
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authSvc.Logout(c.Request().Context()); err != nil {
		return err
	}
	return redirect(c, "/login")
}

func (h *AuthHandler) loginPage(c echo.Context, f form.Login) view.Page {
	return page(c, "Sign in", "", view.Login{Form: f, GoogleURL: "/login/google"})
}

func signedIn(c echo.Context) bool {
	s := session.FromContext(c.Request().Context())
	return s != nil && s.Authenticated()
}
