package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/umalmyha/crmconsole/internal/model"
)

// Credentials are returned by login and signup, backends relying on cookie sessions return no token
type Credentials struct {
	Token string
	User  *model.User
}

func (c *Credentials) UnmarshalJSON(b []byte) error {
	var aux struct {
		Token       string          `json:"token"`
		AccessToken string          `json:"accessToken"`
		User        json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	c.Token = firstNonEmpty(aux.Token, aux.AccessToken)
	if len(aux.User) > 0 && !bytes.Equal(aux.User, []byte("null")) {
		var u model.User
		if err := json.Unmarshal(aux.User, &u); err != nil {
			return err
		}
		c.User = &u
	}
	return nil
}

// userPayload accepts user object either bare or wrapped into {"user": {...}}
type userPayload struct {
	user model.User
}

func (p *userPayload) UnmarshalJSON(b []byte) error {
	var wrapped struct {
		User *model.User `json:"user"`
	}
	if err := json.Unmarshal(b, &wrapped); err == nil && wrapped.User != nil {
		p.user = *wrapped.User
		return nil
	}
	return json.Unmarshal(b, &p.user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CurrentUser probes backend session, fails with *errors.AuthErr when there is none
func (c *Client) CurrentUser(ctx context.Context) (model.User, error) {
	var p userPayload
	err := c.do(ctx, call{op: "auth.current", method: http.MethodGet, path: "/auth/current", out: &p})
	if err != nil {
		return model.User{}, err
	}
	return p.user, nil
}

// Login authenticates with email and password
func (c *Client) Login(ctx context.Context, email, password string) (Credentials, error) {
	var cr Credentials
	err := c.do(ctx, call{
		op:     "auth.login",
		method: http.MethodPost,
		path:   "/auth/login",
		body:   &loginRequest{Email: email, Password: password},
		out:    &cr,
	})
	return cr, err
}

// Signup registers new account, backend signs it in straight away
func (c *Client) Signup(ctx context.Context, name, email, password string) (Credentials, error) {
	var cr Credentials
	err := c.do(ctx, call{
		op:     "auth.signup",
		method: http.MethodPost,
		path:   "/auth/signup",
		body:   &signupRequest{Name: name, Email: email, Password: password},
		out:    &cr,
	})
	return cr, err
}

// Logout terminates backend session
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, call{op: "auth.logout", method: http.MethodPost, path: "/auth/logout"})
}

// GoogleLoginURL is where browser is sent to start OAuth sign in, backend hands back to /login/callback
func (c *Client) GoogleLoginURL() string {
	return c.URL("/auth/google")
}
